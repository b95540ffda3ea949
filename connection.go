package amqpoptions

import (
	"sync"

	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/tevino/abool"
)

// Connection is an AMQP 0-9-1 connection opened from ConnectionOptions.
type Connection struct {
	mtx       *sync.Mutex
	conn      *amqp.Connection
	isBlocked *abool.AtomicBool
	logger    *logger
	name      string
}

// AMQPConfig returns the handshake configuration used by Dial.
func AMQPConfig(options ConnectionOptions, dialOptions ...DialOption) amqp.Config {
	opt := applyDialOptions(dialOptions)

	config := amqp.Config{
		Heartbeat:  opt.Heartbeat,
		Properties: make(amqp.Table),
		Vhost:      defaultVhost,
	}

	if opt.ConnectionName != "" {
		config.Properties.SetClientConnectionName(opt.ConnectionName)
	}

	return config
}

// Dial opens an AMQP 0-9-1 connection to the broker described by options.
//
// Needs to be closed with the Close() method.
func Dial(options ConnectionOptions, dialOptions ...DialOption) (*Connection, error) {
	const errMessage = "failed to dial broker"

	if err := options.Validate(); err != nil {
		return nil, errors.Wrap(err, errMessage)
	}

	opt := applyDialOptions(dialOptions)
	logger := newLogger(opt.Logger)

	conn, err := amqp.DialConfig(options.URI(), AMQPConfig(options, dialOptions...))
	if err != nil {
		logger.logError("dialing %s failed: %v", options, err)

		return nil, errors.Wrapf(err, "%s %s", errMessage, options.Address())
	}

	c := &Connection{
		mtx:       &sync.Mutex{},
		conn:      conn,
		isBlocked: abool.New(),
		logger:    logger,
		name:      opt.ConnectionName,
	}

	go c.watchBlocked(conn.NotifyBlocked(make(chan amqp.Blocking, 1)))

	return c, nil
}

func (c *Connection) watchBlocked(blockings <-chan amqp.Blocking) {
	for blocking := range blockings {
		c.setBlocked(blocking)
	}
}

func (c *Connection) setBlocked(blocking amqp.Blocking) {
	if blocking.Active {
		c.isBlocked.Set()
		c.logger.logWarn("connection %q is blocked by the broker: %s", c.name, blocking.Reason)

		return
	}

	c.isBlocked.UnSet()
	c.logger.logDebug("connection %q is unblocked", c.name)
}

// IsBlocked reports whether the broker currently blocks publishing on this connection.
func (c *Connection) IsBlocked() bool {
	return c.isBlocked.IsSet()
}

// IsClosed reports whether the connection has been closed.
func (c *Connection) IsClosed() bool {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	return c.conn == nil || c.conn.IsClosed()
}

// Channel opens a new channel on the connection.
func (c *Connection) Channel() (*amqp.Channel, error) {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	if c.conn == nil || c.conn.IsClosed() {
		return nil, ErrNoActiveConnection
	}

	channel, err := c.conn.Channel()
	if err != nil {
		return nil, errors.Wrap(err, "failed to open channel")
	}

	return channel, nil
}

// Close gracefully closes the connection. Closing twice is a no-op.
func (c *Connection) Close() error {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	if c.conn == nil {
		return nil
	}

	conn := c.conn
	c.conn = nil

	if err := conn.Close(); err != nil && !errors.Is(err, amqp.ErrClosed) {
		return errors.Wrap(err, "failed to close connection gracefully")
	}

	return nil
}
