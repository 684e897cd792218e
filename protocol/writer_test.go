package protocol_test

import (
	"bytes"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/luma/parley/protocol"
)

var _ = Describe("Parsing/ Writer", func() {
	Describe("WriteLine", func() {
		It("ends in \r\n", func() {
			w := bytes.NewBuffer([]byte{})

			Expect(protocol.WriteLine(w, "NICK user")).To(Succeed())
			Expect(w.String()).To(HaveSuffix("\r\n"))
		})

		It("appends exactly one terminator and nothing else", func() {
			w := bytes.NewBuffer([]byte{})

			Expect(protocol.WriteLine(w, "NICK user")).To(Succeed())
			Expect(w.String()).To(Equal("NICK user\r\n"))
		})
	})

	Describe("Nick", func() {
		It("builds the nickname-registration command", func() {
			Expect(protocol.Nick("user")).To(Equal("NICK user"))
		})
	})

	Describe("User", func() {
		It("always sends the real name in trailing form", func() {
			Expect(protocol.User("user", "Real Name")).To(Equal("USER user 0 * :Real Name"))
			Expect(protocol.User("user", "user")).To(Equal("USER user 0 * :user"))
		})
	})

	Describe("Join", func() {
		It("builds the channel join command", func() {
			Expect(protocol.Join("#general")).To(Equal("JOIN #general"))
		})
	})

	Describe("Pong", func() {
		It("echoes the token as a middle parameter", func() {
			Expect(protocol.Pong("irc.example.com")).To(Equal("PONG irc.example.com"))
		})

		It("uses the trailing form when the token contains spaces", func() {
			Expect(protocol.Pong("two words")).To(Equal("PONG :two words"))
		})

		It("uses the trailing form for an empty token", func() {
			Expect(protocol.Pong("")).To(Equal("PONG :"))
		})
	})
})
