package session

import (
	"github.com/luma/parley/protocol"
)

// Numeric reply codes the dispatcher knows. They are exact 3-character
// tokens, compared as strings. See RFC 1459 section 6.
const (
	// ReplyWelcome is RPL_WELCOME, confirming registration.
	ReplyWelcome = "001"

	// ReplyNames is RPL_NAMREPLY, one page of a channel membership listing.
	ReplyNames = "353"

	// ReplyEndOfNames is RPL_ENDOFNAMES.
	ReplyEndOfNames = "366"

	// ReplyMOTD, ReplyMOTDStart and ReplyEndOfMOTD carry the message of
	// the day.
	ReplyMOTD      = "372"
	ReplyMOTDStart = "375"
	ReplyEndOfMOTD = "376"
)

// classifyNumeric turns a numeric reply into a notification, or nil when
// the reply carries nothing worth surfacing. Replies missing their
// expected parameters fall through to the generic notice rule rather
// than indexing out of range.
func classifyNumeric(msg protocol.Message) Notification {
	params := msg.Params

	switch msg.Command.Text {
	case ReplyNames:
		if len(params) >= 4 {
			return NamesList{Channel: params[2], Users: params[3]}
		}

	case ReplyEndOfNames:
		if len(params) >= 2 {
			return EndOfNames{Channel: params[1]}
		}

	case ReplyMOTD:
		if trailing, ok := msg.TrailingParam(); ok {
			return MOTDLine{Text: trailing}
		}

		return nil

	case ReplyMOTDStart:
		return MOTDStart{}

	case ReplyEndOfMOTD:
		return MOTDEnd{}
	}

	// Generic rule: surface the last parameter as a server notice, but
	// suppress empty and single-character replies.
	if len(params) >= 1 && len(params[len(params)-1]) > 1 {
		return ServerNotice{Text: params[len(params)-1]}
	}

	return nil
}
