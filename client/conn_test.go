package client_test

import (
	"bufio"
	"context"
	"net"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"

	"github.com/luma/parley/client"
	"github.com/luma/parley/session"
)

var _ = Describe("client", func() {
	Describe("Conn", func() {
		It("registers, answers pings, joins on welcome and surfaces chat", func() {
			listener, err := net.Listen("tcp", "127.0.0.1:0")
			Expect(err).To(Succeed())
			defer listener.Close()

			conf := session.Config{
				Host:     "127.0.0.1",
				Port:     listener.Addr().(*net.TCPAddr).Port,
				Nick:     "mynick",
				Username: "mynick",
				RealName: "My Nick",
				Channels: []string{"#general"},
			}

			conn, err := client.Dial(context.Background(), conf, zap.NewNop())
			Expect(err).To(Succeed())
			defer conn.Close()

			Expect(conn.State()).To(Equal(session.StateConnecting))

			runDone := make(chan error, 1)
			go func() {
				runDone <- conn.Run(context.Background())
			}()

			server, err := listener.Accept()
			Expect(err).To(Succeed())

			reader := bufio.NewReader(server)
			readLine := func() string {
				line, rerr := reader.ReadString('\n')
				Expect(rerr).To(Succeed())
				return line
			}

			sendLine := func(line string) {
				_, werr := server.Write([]byte(line + "\r\n"))
				Expect(werr).To(Succeed())
			}

			// The handshake comes before anything is read
			Expect(readLine()).To(Equal("NICK mynick\r\n"))
			Expect(readLine()).To(Equal("USER mynick 0 * :My Nick\r\n"))

			sendLine("PING :irc.example.com")
			Expect(readLine()).To(Equal("PONG irc.example.com\r\n"))

			sendLine(":server 001 mynick :Welcome")
			Expect(readLine()).To(Equal("JOIN #general\r\n"))
			Expect(conn.State()).To(Equal(session.StateRegistered))

			sendLine(":nick!user@host PRIVMSG #general :hello there")

			var notification session.Notification
			Eventually(conn.Notifications()).Should(Receive(&notification))
			Expect(notification).To(Equal(session.ChatMessage{
				Target: "#general",
				Nick:   "nick",
				Text:   "hello there",
			}))

			// A malformed line is skipped, not fatal
			sendLine("   ")
			sendLine("PING :still.alive")
			Expect(readLine()).To(Equal("PONG still.alive\r\n"))

			Expect(server.Close()).To(Succeed())

			Eventually(runDone).Should(Receive(BeNil()))
			Expect(conn.State()).To(Equal(session.StateClosed))
			Eventually(conn.Notifications()).Should(BeClosed())
		})
	})
})
