package amqpoptions

import (
	"context"
	"fmt"

	"github.com/Azure/go-amqp"
	"github.com/pkg/errors"
)

// AMQP1Address returns the AMQP 1.0 address of the broker, without credentials.
func AMQP1Address(options ConnectionOptions) string {
	return fmt.Sprintf("%s://%s", defaultScheme, options.Address())
}

// AMQP1ConnOptions returns the AMQP 1.0 connection options used by DialAMQP1.
//
// The credentials are sent with SASL PLAIN.
func AMQP1ConnOptions(options ConnectionOptions, dialOptions ...DialOption) *amqp.ConnOptions {
	opt := applyDialOptions(dialOptions)

	return &amqp.ConnOptions{
		ContainerID: opt.ConnectionName,
		HostName:    options.Host,
		IdleTimeout: opt.IdleTimeout,
		SASLType:    amqp.SASLTypePlain(options.UserName, string(options.Password)),
	}
}

// DialAMQP1 opens an AMQP 1.0 connection to the broker described by options.
func DialAMQP1(ctx context.Context, options ConnectionOptions, dialOptions ...DialOption) (*amqp.Conn, error) {
	const errMessage = "failed to dial broker"

	if err := options.Validate(); err != nil {
		return nil, errors.Wrap(err, errMessage)
	}

	logger := newLogger(applyDialOptions(dialOptions).Logger)

	conn, err := amqp.Dial(ctx, AMQP1Address(options), AMQP1ConnOptions(options, dialOptions...))
	if err != nil {
		logger.logError("dialing %s failed: %v", options, err)

		return nil, errors.Wrapf(err, "%s %s", errMessage, options.Address())
	}

	return conn, nil
}
