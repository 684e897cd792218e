package protocol

import (
	"fmt"
	"io"
	"strings"
)

var Terminal = []byte("\r\n")

// WriteLine writes one outgoing command to w, appending exactly one CRLF
// terminator and nothing else.
func WriteLine(w io.Writer, line string) error {
	b := append([]byte(line), Terminal...)
	_, err := w.Write(b)
	return err
}

// Nick builds the nickname-registration command.
func Nick(nick string) string {
	return CmdNick + " " + nick
}

// User builds the user-registration command. The real name is always sent
// as a trailing parameter since it may contain spaces.
func User(username, realName string) string {
	return fmt.Sprintf("%s %s 0 * :%s", CmdUser, username, realName)
}

// Join builds a channel join command.
func Join(channel string) string {
	return CmdJoin + " " + channel
}

// Pong builds the keepalive response, echoing the server's token. The
// token is sent as a middle parameter unless it needs the trailing form.
func Pong(token string) string {
	if token == "" || strings.Contains(token, " ") || strings.HasPrefix(token, ":") {
		return CmdPong + " :" + token
	}

	return CmdPong + " " + token
}
