package session

import (
	"github.com/luma/parley/protocol"
)

// State tracks where the session is in its registration lifecycle.
type State int

const (
	// StateConnecting means we have sent our registration lines but the
	// server has not yet confirmed them.
	StateConnecting State = iota

	// StateRegistered means the server accepted our registration.
	StateRegistered

	// StateClosed is terminal; the peer's stream has ended.
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateConnecting:
		return "connecting"
	case StateRegistered:
		return "registered"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// Outcome is the result of dispatching one message: outgoing commands to
// transmit (zero or one today, a slice so future rules can emit more) and
// notifications for the display collaborator.
type Outcome struct {
	Commands      []string
	Notifications []Notification
}

// Dispatch reacts to one parsed message. It is a pure function of the
// message, the session config and the current state; the caller owns
// transmitting the returned commands before dispatching the next line.
func Dispatch(msg protocol.Message, conf Config, state State) (Outcome, State) {
	var out Outcome

	if msg.Command.Kind == protocol.CommandNumeric {
		if msg.Command.Text == ReplyWelcome && state == StateConnecting {
			state = StateRegistered

			if len(conf.Channels) > 0 {
				out.Commands = append(out.Commands, protocol.Join(conf.Channels[0]))
			}

			return out, state
		}

		if n := classifyNumeric(msg); n != nil {
			out.Notifications = append(out.Notifications, n)
		}

		return out, state
	}

	switch msg.Command.Text {
	case protocol.CmdPing:
		if len(msg.Params) >= 1 {
			out.Commands = append(out.Commands, protocol.Pong(msg.Params[0]))
		}

	case protocol.CmdPrivmsg:
		if msg.Origin != "" && len(msg.Params) >= 2 {
			out.Notifications = append(out.Notifications, ChatMessage{
				Target: msg.Params[0],
				Nick:   protocol.NickOf(msg.Origin),
				Text:   msg.Params[1],
			})
		}

	case protocol.CmdJoin:
		if msg.Origin != "" && len(msg.Params) >= 1 {
			out.Notifications = append(out.Notifications, UserJoined{
				Nick:    protocol.NickOf(msg.Origin),
				Channel: msg.Params[0],
			})
		}

	case protocol.CmdPart:
		if msg.Origin != "" && len(msg.Params) >= 1 {
			out.Notifications = append(out.Notifications, UserLeft{
				Nick:    protocol.NickOf(msg.Origin),
				Channel: msg.Params[0],
			})
		}

	default:
		out.Notifications = append(out.Notifications, Unhandled{Command: msg.Command.Text})
	}

	return out, state
}

// EndOfStream moves the session to its terminal state. The stream ending
// never produces an outgoing command.
func EndOfStream(state State) (Outcome, State) {
	return Outcome{}, StateClosed
}
