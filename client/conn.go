package client

import (
	"bufio"
	"context"
	"errors"
	"io"
	"net"
	"strings"
	"sync"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/luma/parley/protocol"
	"github.com/luma/parley/session"
)

const (
	NotificationBufferSize = 255
)

// Conn is one client connection to an IRC server. It owns the transport:
// it buffers raw bytes into lines, feeds them through the parser and
// dispatcher, and transmits whatever the dispatcher asks for. Parsing and
// dispatching themselves stay pure; every transport error surfaces here.
type Conn struct {
	conf session.Config
	conn net.Conn

	notifyChan chan session.Notification

	mu    sync.Mutex
	state session.State

	log *zap.Logger
}

// Dial connects to the server named by conf. The returned Conn does
// nothing until Run is called.
func Dial(ctx context.Context, conf session.Config, log *zap.Logger) (*Conn, error) {
	var dialer net.Dialer

	conn, err := dialer.DialContext(ctx, "tcp", conf.Addr())
	if err != nil {
		return nil, err
	}

	return &Conn{
		conf:       conf,
		conn:       conn,
		notifyChan: make(chan session.Notification, NotificationBufferSize),
		state:      session.StateConnecting,
		log:        log,
	}, nil
}

// Notifications returns the channel the dispatcher's notifications are
// delivered on. It is closed when the stream ends.
func (c *Conn) Notifications() <-chan session.Notification {
	return c.notifyChan
}

// State returns the session's current registration state.
func (c *Conn) State() session.State {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state
}

func (c *Conn) setState(state session.State) {
	c.mu.Lock()
	c.state = state
	c.mu.Unlock()
}

// Run performs the registration handshake and then reads lines until the
// server closes the stream. Each line is parsed and dispatched, and any
// outgoing commands are transmitted before the next line is read; the
// server disconnects clients that delay their keepalive response.
//
// End-of-stream is normal termination and returns nil. Run returns early
// with the transport error on any other read or write failure.
func (c *Conn) Run(ctx context.Context) error {
	log := c.log.Named("readLoop")

	defer close(c.notifyChan)

	if err := c.register(); err != nil {
		return err
	}

	reader := bufio.NewReader(c.conn)

	for {
		select {
		case <-ctx.Done():
			log.Info("Context cancelled, exiting...")
			return ctx.Err()

		default:
		}

		line, err := reader.ReadString('\n')

		if err != nil && !errors.Is(err, io.EOF) {
			if ctx.Err() != nil {
				// The connection was torn down underneath us during
				// shutdown. Not an error.
				return nil
			}

			return err
		}

		atEOF := errors.Is(err, io.EOF)

		if line != "" {
			if derr := c.handleLine(line, log); derr != nil {
				return derr
			}
		}

		if atEOF {
			log.Info("Server closed the stream")

			_, state := session.EndOfStream(c.State())
			c.setState(state)

			return nil
		}
	}
}

func (c *Conn) handleLine(line string, log *zap.Logger) error {
	msg, err := protocol.Parse(line)
	if err != nil {
		// A malformed line never terminates the session. Skip it.
		log.Debug("Skipping unparseable line",
			zap.String("line", strings.TrimSpace(line)),
			zap.Error(err))
		return nil
	}

	out, state := session.Dispatch(msg, c.conf, c.State())
	c.setState(state)

	for _, command := range out.Commands {
		log.Debug("Sending", zap.String("command", command))

		if err := protocol.WriteLine(c.conn, command); err != nil {
			return err
		}
	}

	for _, notification := range out.Notifications {
		c.notifyChan <- notification
	}

	return nil
}

// register sends the two fixed registration lines. Servers expect them
// before anything else on the connection.
func (c *Conn) register() error {
	if err := protocol.WriteLine(c.conn, protocol.Nick(c.conf.Nick)); err != nil {
		return err
	}

	return protocol.WriteLine(c.conn, protocol.User(c.conf.Username, c.conf.RealName))
}

// Close tears the connection down. Writes are shut down first so the
// server sees a clean half-close when possible.
func (c *Conn) Close() (err error) {
	if tcp, ok := c.conn.(*net.TCPConn); ok {
		werr := tcp.CloseWrite()
		if werr != nil && !errors.Is(werr, net.ErrClosed) &&
			!strings.Contains(werr.Error(), "transport endpoint is not connected") {
			err = multierr.Append(err, werr)
		}
	}

	if cerr := c.conn.Close(); cerr != nil && !errors.Is(cerr, net.ErrClosed) {
		err = multierr.Append(err, cerr)
	}

	return err
}
