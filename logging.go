package amqpoptions

import (
	"github.com/labstack/gommon/log"
)

const logPrefix = "amqpoptions"

type logger struct {
	logger *log.Logger
}

func newDefaultLogger() *log.Logger {
	l := log.New(logPrefix)
	l.SetLevel(log.WARN)
	l.SetHeader("${time_rfc3339} ${level} ${short_file}:${line} -")

	return l
}

func newLogger(l *log.Logger) *logger {
	if l == nil {
		l = newDefaultLogger()
	}

	return &logger{l}
}

func (l *logger) logDebug(format string, args ...any) {
	l.logger.Debugf(format, args...)
}

func (l *logger) logWarn(format string, args ...any) {
	l.logger.Warnf(format, args...)
}

func (l *logger) logError(format string, args ...any) {
	l.logger.Errorf(format, args...)
}
