package protocol

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyLine      = errors.New("Line is empty after trimming whitespace")
	ErrMissingCommand = errors.New("Line is malformed, it has no command token")
)

// Parse parses one inbound line into a Message. The line must already be
// stripped of its terminator; surrounding whitespace is trimmed here.
//
// The grammar is handled in a single pass: the first ` :` occurrence on
// the line is the trailing-parameter boundary, everything before it is
// whitespace tokenised into prefix, command and middle parameters, and
// everything after it is one verbatim parameter.
func Parse(line string) (Message, error) {
	line = strings.TrimSpace(line)

	if line == "" {
		return Message{}, ErrEmptyLine
	}

	head := line
	trailing := ""
	hasTrailing := false

	if idx := strings.Index(line, " :"); idx != -1 {
		head = line[:idx]
		trailing = line[idx+2:]
		hasTrailing = true
	}

	tokens := strings.Fields(head)

	origin := ""
	if len(tokens) > 0 && strings.HasPrefix(tokens[0], ":") {
		origin = tokens[0][1:]
		tokens = tokens[1:]
	}

	if len(tokens) == 0 {
		return Message{}, fmt.Errorf("Failed to parse '%s': %w", line, ErrMissingCommand)
	}

	params := tokens[1:]
	if hasTrailing {
		params = append(params, trailing)
	}

	return Message{
		Origin:   origin,
		Command:  CommandOf(tokens[0]),
		Params:   params,
		Trailing: hasTrailing,
	}, nil
}
