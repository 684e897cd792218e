package display

import (
	"fmt"

	"github.com/luma/parley/session"
)

// Render formats one notification as a single console line.
func Render(n session.Notification) string {
	switch n := n.(type) {
	case session.ChatMessage:
		return fmt.Sprintf("[%s] <%s> %s", n.Target, n.Nick, n.Text)

	case session.UserJoined:
		return fmt.Sprintf("[%s] %s joined", n.Channel, n.Nick)

	case session.UserLeft:
		return fmt.Sprintf("[%s] %s left", n.Channel, n.Nick)

	case session.NamesList:
		return fmt.Sprintf("[%s] users: %s", n.Channel, n.Users)

	case session.EndOfNames:
		return fmt.Sprintf("[%s] end of user list", n.Channel)

	case session.MOTDStart:
		return "-- message of the day --"

	case session.MOTDLine:
		return n.Text

	case session.MOTDEnd:
		return "-- end of message of the day --"

	case session.ServerNotice:
		return "-- " + n.Text

	case session.Unhandled:
		return fmt.Sprintf("(unhandled %s)", n.Command)

	default:
		return fmt.Sprintf("%v", n)
	}
}
