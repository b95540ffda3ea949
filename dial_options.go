package amqpoptions

import (
	"time"

	"github.com/labstack/gommon/log"
)

const (
	defaultHeartbeat   time.Duration = 10 * time.Second
	defaultIdleTimeout time.Duration = time.Minute
)

type (
	DialOption func(*DialOptions)

	// DialOptions are used to describe how a broker connection will be opened from ConnectionOptions.
	DialOptions struct {
		Logger         *log.Logger
		ConnectionName string
		Heartbeat      time.Duration
		IdleTimeout    time.Duration
	}
)

func defaultDialOptions() *DialOptions {
	return &DialOptions{
		Heartbeat:   defaultHeartbeat,
		IdleTimeout: defaultIdleTimeout,
	}
}

func applyDialOptions(options []DialOption) *DialOptions {
	opt := defaultDialOptions()

	for i := 0; i < len(options); i++ {
		options[i](opt)
	}

	return opt
}

// WithDialOptionConnectionName sets the name the broker shows for the connection.
//
// For AMQP 1.0 it is used as the container id.
func WithDialOptionConnectionName(name string) DialOption {
	return func(o *DialOptions) { o.ConnectionName = name }
}

// WithDialOptionHeartbeat sets the AMQP 0-9-1 heartbeat interval.
//
// Default: 10s.
func WithDialOptionHeartbeat(interval time.Duration) DialOption {
	return func(o *DialOptions) { o.Heartbeat = interval }
}

// WithDialOptionIdleTimeout sets the AMQP 1.0 idle timeout.
//
// Default: 1m.
func WithDialOptionIdleTimeout(timeout time.Duration) DialOption {
	return func(o *DialOptions) { o.IdleTimeout = timeout }
}

// WithDialOptionLogger sets the logger.
//
// The default logger writes to Stdout at WARN level.
func WithDialOptionLogger(logger *log.Logger) DialOption {
	return func(o *DialOptions) { o.Logger = logger }
}
