package protocol

// CommandKind distinguishes alphabetic verbs from 3-digit numeric replies.
type CommandKind int

const (
	// CommandVerb is an alphabetic command like PRIVMSG or PING.
	CommandVerb CommandKind = iota

	// CommandNumeric is a 3-digit server reply code like 001 or 353.
	CommandNumeric
)

// Command is the type token of a message. Numeric codes keep their exact
// 3-character form; they are never parsed as integers.
type Command struct {
	Kind CommandKind
	Text string
}

// Verbs the dispatcher reacts to. Comparisons are case sensitive.
const (
	CmdPing    = "PING"
	CmdPong    = "PONG"
	CmdPrivmsg = "PRIVMSG"
	CmdJoin    = "JOIN"
	CmdPart    = "PART"
	CmdNick    = "NICK"
	CmdUser    = "USER"
)

// CommandOf classifies a raw command token. A token is numeric iff it is
// exactly three ASCII digits, everything else is a verb.
func CommandOf(token string) Command {
	if isNumeric(token) {
		return Command{Kind: CommandNumeric, Text: token}
	}

	return Command{Kind: CommandVerb, Text: token}
}

// IsVerb returns true if the command is the given alphabetic verb.
func (c Command) IsVerb(verb string) bool {
	return c.Kind == CommandVerb && c.Text == verb
}

// IsNumeric returns true if the command is the given 3-digit reply code.
func (c Command) IsNumeric(code string) bool {
	return c.Kind == CommandNumeric && c.Text == code
}

func (c Command) String() string {
	return c.Text
}

func isNumeric(token string) bool {
	if len(token) != 3 {
		return false
	}

	for i := 0; i < len(token); i++ {
		if token[i] < '0' || token[i] > '9' {
			return false
		}
	}

	return true
}
