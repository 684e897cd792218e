package session_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/luma/parley/session"
)

var _ = Describe("Numeric replies", func() {
	conf := session.Config{Nick: "mynick", Channels: []string{"#general"}}

	dispatch := func(line string) session.Outcome {
		out, _ := session.Dispatch(mustParse(line), conf, session.StateRegistered)
		return out
	}

	Describe("names listing", func() {
		It("carries the channel and the raw user list", func() {
			out := dispatch(":server 353 mynick = #general :mynick @oper somebody")
			Expect(out.Notifications).To(Equal([]session.Notification{
				session.NamesList{Channel: "#general", Users: "mynick @oper somebody"},
			}))
		})

		It("falls through to the generic rule with fewer than 4 parameters", func() {
			out := dispatch(":server 353 mynick #general")
			Expect(out.Notifications).To(Equal([]session.Notification{
				session.ServerNotice{Text: "#general"},
			}))
		})

		It("never produces output for a bare 353", func() {
			out := dispatch(":server 353")
			Expect(out.Commands).To(BeEmpty())
			Expect(out.Notifications).To(BeEmpty())
		})
	})

	Describe("end of names", func() {
		It("carries the channel", func() {
			out := dispatch(":server 366 mynick #general :End of /NAMES list")
			Expect(out.Notifications).To(Equal([]session.Notification{
				session.EndOfNames{Channel: "#general"},
			}))
		})
	})

	Describe("message of the day", func() {
		It("carries a motd line verbatim", func() {
			out := dispatch(":server 372 mynick :- stay a while, and listen")
			Expect(out.Notifications).To(Equal([]session.Notification{
				session.MOTDLine{Text: "- stay a while, and listen"},
			}))
		})

		It("stays silent for a motd line with no trailing parameter", func() {
			out := dispatch(":server 372 mynick")
			Expect(out.Notifications).To(BeEmpty())
		})

		It("marks the start and end of the motd", func() {
			out := dispatch(":server 375 mynick :- server message of the day")
			Expect(out.Notifications).To(Equal([]session.Notification{session.MOTDStart{}}))

			out = dispatch(":server 376 mynick :End of /MOTD command")
			Expect(out.Notifications).To(Equal([]session.Notification{session.MOTDEnd{}}))
		})
	})

	Describe("everything else", func() {
		It("surfaces the last parameter as a server notice", func() {
			out := dispatch(":server 251 mynick :There are 42 users on 1 server")
			Expect(out.Notifications).To(Equal([]session.Notification{
				session.ServerNotice{Text: "There are 42 users on 1 server"},
			}))
		})

		It("suppresses single-character replies", func() {
			out := dispatch(":server 396 x")
			Expect(out.Notifications).To(BeEmpty())
		})

		It("suppresses empty trailing replies", func() {
			out := dispatch(":server 305 :")
			Expect(out.Notifications).To(BeEmpty())
		})

		It("suppresses replies with no parameters at all", func() {
			out := dispatch(":server 302")
			Expect(out.Notifications).To(BeEmpty())
		})
	})
})
