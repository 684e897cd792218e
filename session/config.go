package session

import (
	"net"
	"strconv"
)

// Config holds the per-connection parameters. It is created once at
// startup and never mutated by the dispatcher.
type Config struct {
	// Host and Port of the server to connect to.
	Host string
	Port int

	// Nick is the nickname to register with.
	Nick string

	// Username and RealName are sent in the user-registration command.
	Username string
	RealName string

	// Channels to join once registration succeeds. The first entry is
	// joined automatically; the rest are kept for manual joins.
	Channels []string
}

// Addr returns the dial address for the configured server.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
