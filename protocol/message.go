package protocol

import "strings"

// Message is the parsed form of one inbound line. It is constructed once
// by Parse, never mutated, and consumed synchronously by the dispatcher.
type Message struct {
	// Origin is the sender identity from the line's prefix, with the
	// leading ':' stripped. Empty when the line carried no prefix.
	Origin string

	// Command identifies the message type.
	Command Command

	// Params holds the middle parameters plus, if present, exactly one
	// trailing parameter as the final element.
	Params []string

	// Trailing records whether the final element of Params came from a
	// ` :` trailing boundary rather than whitespace tokenisation.
	Trailing bool
}

// TrailingParam returns the trailing parameter and true when the message
// had one, or "" and false otherwise.
func (m Message) TrailingParam() (string, bool) {
	if !m.Trailing || len(m.Params) == 0 {
		return "", false
	}

	return m.Params[len(m.Params)-1], true
}

// NickOf extracts the nickname from an origin like 'nick!user@host'.
// It is total: when the origin has no '!' the whole origin is returned.
func NickOf(origin string) string {
	if idx := strings.Index(origin, "!"); idx != -1 {
		return origin[:idx]
	}

	return origin
}
