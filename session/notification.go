package session

// Notification is an observable event produced by dispatching one message.
// Notifications are consumed by a display or logging collaborator; the
// dispatcher itself never performs I/O.
type Notification interface{}

// ChatMessage is a chat line addressed to a channel or to us directly.
type ChatMessage struct {
	Target string
	Nick   string
	Text   string
}

// UserJoined reports another user joining a channel.
type UserJoined struct {
	Nick    string
	Channel string
}

// UserLeft reports another user leaving a channel.
type UserLeft struct {
	Nick    string
	Channel string
}

// NamesList carries one membership listing reply for a channel. Users is
// the raw space-separated list, not parsed further here.
type NamesList struct {
	Channel string
	Users   string
}

// EndOfNames marks the end of a channel's membership listing.
type EndOfNames struct {
	Channel string
}

// MOTDLine is one line of the server's message of the day.
type MOTDLine struct {
	Text string
}

// MOTDStart and MOTDEnd bracket the message of the day.
type MOTDStart struct{}
type MOTDEnd struct{}

// ServerNotice is the catch-all for informational numeric replies.
type ServerNotice struct {
	Text string
}

// Unhandled reports a verb the dispatcher has no rule for.
type Unhandled struct {
	Command string
}
