package protocol

// This package implements parsing and serialising for the line-oriented
// text protocol that Parley speaks with IRC servers.
//
// This parser aims to be
//
// - faithful to the wire grammar of RFC 1459 section 2.3.1
// - a single pass over each line
// - free of I/O and side effects
//
// - `Message` - One parsed inbound line.
// - `Command` - The message type: an alphabetic verb or a 3-digit numeric reply.
// - Outgoing commands are plain strings without a line terminator; WriteLine
//   appends the terminator when the line is sent.
//
// === General Syntax
//
// - lines are `\r\n` delimited
// - an optional origin prefix is introduced with a leading ':'
//   (e.g. ':nick!user@host')
// - the command follows the origin: a verb like 'PRIVMSG' or a numeric
//   reply like '001'
// - middle parameters are whitespace delimited
// - at most one trailing parameter, introduced by the first ` :` on the
//   line, runs verbatim to the end of the line and may contain spaces
//   and further colons
//
// For example
//   ```
//     :nick!user@host PRIVMSG #general :hello there
//     PING :irc.example.com
//     :irc.example.com 001 mynick :Welcome to the network
//   ```
//
// === Numeric replies
//
// Servers convey status with 3-digit tokens instead of verbs. They are
// matched as exact 3-character strings, never converted to integers, so
// leading zeros survive ('001' is not '1').
//
// === Outgoing commands
//
// Clients register with two fixed lines before anything else
//
//  ```
//    > NICK <nick>\r\n
//    > USER <username> 0 * :<real name>\r\n
//  ```
//
// and must answer keepalive pings promptly or the server disconnects them
//
//  ```
//    < PING :irc.example.com\r\n
//    > PONG irc.example.com\r\n
//  ```
