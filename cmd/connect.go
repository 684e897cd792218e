package cmd

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/luma/parley/client"
	"github.com/luma/parley/display"
	"github.com/luma/parley/internal/env"
	"github.com/luma/parley/session"
	"github.com/luma/parley/storage"
)

var (
	// The IRC server to connect to
	host string
	port int

	// The identity to register with
	nick string

	// Channels to join after registering
	channels []string

	// Named profile to load connection settings from
	profileName  string
	profilesFile string

	// The port to serve session status over HTTP on. Disabled when empty
	httpPort string
)

func init() {
	flags := ConnectCmd.PersistentFlags()

	flags.StringVarP(&host, "host", "a", "localhost", "The IRC server host to connect to")
	flags.IntVarP(&port, "port", "p", 6667, "The IRC server port to connect to")
	flags.StringVarP(&nick, "nick", "n", "", "The nickname to register with")
	flags.StringSliceVarP(&channels, "channel", "c", nil, "A channel to join after registering. May be repeated")
	flags.StringVar(&profileName, "profile", "", "Load connection settings from this named profile")
	flags.StringVar(&profilesFile, "profiles-file", "profiles.json", "The JSON file holding named connection profiles")
	flags.StringVar(&httpPort, "http-port", "", "The port to serve session status HTTP requests on")
}

var ConnectCmd = &cobra.Command{
	Use:   "connect",
	Short: "Connect to an IRC server and print the conversation",
	Long: `Connect to an IRC server and print the conversation

Usage
	parley connect --host irc.libera.chat --nick mynick --channel "#go-nuts"
	parley connect --profile libera

`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		ctx, signalStop := signal.NotifyContext(context.Background(), os.Interrupt, os.Kill)
		defer signalStop()

		log, err := env.MakeLogger()
		if err != nil {
			return err
		}

		envConf, err := env.LoadConfig(ctx)
		if err != nil {
			return err
		}

		conf, err := buildConfig(cmd, envConf)
		if err != nil {
			return err
		}

		conn, err := client.Dial(ctx, conf, log.Named("client"))
		if err != nil {
			return err
		}

		log.Info("Connected",
			zap.String("addr", conf.Addr()),
			zap.String("nick", conf.Nick),
			zap.Strings("channels", conf.Channels))

		var statusServer *http.Server
		if httpPort != "" {
			statusServer = startStatusServer(conn, conf, envConf.DebugHTTP, log)
		}

		runDone := make(chan error, 1)
		go func() {
			runDone <- conn.Run(ctx)
		}()

		go func() {
			for notification := range conn.Notifications() {
				fmt.Println(display.Render(notification))
			}
		}()

		select {
		case err = <-runDone:
			if err != nil {
				log.Error("Connection errored", zap.Error(err))
			}

		case <-ctx.Done():
			// Restore default behavior on the interrupt signal and notify user of shutdown.
			signalStop()
			log.Info("Shutting down gracefully, press Ctrl+C again to force")
			err = nil
		}

		if statusServer != nil {
			// The context is used to inform the server it has 5 seconds to finish
			// the request it is currently handling
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			statusServer.SetKeepAlivesEnabled(false)

			if herr := statusServer.Shutdown(shutdownCtx); herr != nil {
				log.Error("Http server forced to shutdown", zap.Error(herr))
			}
		}

		if cerr := conn.Close(); cerr != nil {
			log.Error("Connection did not close cleanly", zap.Error(cerr))
		}

		log.Info("Exiting")
		return err
	},
}

// buildConfig layers the session config: env defaults, then the named
// profile when one is given, then explicit flags on top.
func buildConfig(cmd *cobra.Command, envConf *env.Config) (session.Config, error) {
	conf := session.Config{
		Host:     host,
		Port:     port,
		Nick:     envConf.Nick,
		Username: envConf.Username,
		RealName: envConf.RealName,
	}

	if profileName != "" {
		store := storage.NewProfileStore()

		if err := store.LoadFile(profilesFile); err != nil {
			return session.Config{}, err
		}

		profile, err := store.Profile(profileName)
		if err != nil {
			return session.Config{}, err
		}

		conf.Host = profile.Host
		conf.Port = profile.Port
		conf.Channels = profile.Channels

		if profile.Nick != "" {
			conf.Nick = profile.Nick
			conf.Username = profile.Username
			conf.RealName = profile.RealName
		}

		// Explicit flags still win over the profile
		if cmd.Flags().Changed("host") {
			conf.Host = host
		}

		if cmd.Flags().Changed("port") {
			conf.Port = port
		}
	}

	if nick != "" {
		conf.Nick = nick
	}

	if len(channels) > 0 {
		conf.Channels = channels
	}

	if conf.Nick == "" {
		return session.Config{}, errors.New("a nickname is required, set --nick or PARLEY_NICK")
	}

	if conf.Username == "" {
		conf.Username = conf.Nick
	}

	if conf.RealName == "" {
		conf.RealName = conf.Nick
	}

	return conf, nil
}

func startStatusServer(conn *client.Conn, conf session.Config, debugHTTP bool, log *zap.Logger) *http.Server {
	router := setupRouter(debugHTTP, log)

	// Ping test
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	router.GET("/session", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"state":    conn.State().String(),
			"server":   conf.Addr(),
			"nick":     conf.Nick,
			"channels": conf.Channels,
		})
	})

	s := &http.Server{
		Addr:    net.JoinHostPort("127.0.0.1", httpPort),
		Handler: router,
	}

	// Initializing the server in a goroutine so that
	// it won't block the connection loop
	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("Http server errored", zap.Error(err))
		}
	}()

	return s
}

func setupRouter(debugHTTP bool, log *zap.Logger) *gin.Engine {
	gin.DisableConsoleColor()
	if !debugHTTP {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Add a ginzap middleware, which:
	//   - Logs all requests, like a combined access and error log.
	//   - Logs to stdout.
	//   - RFC3339 with UTC time format.
	r.Use(ginzap.Ginzap(log, time.RFC3339, true))

	// Logs all panic to error log
	//   - stack means whether output the stack info.
	r.Use(ginzap.RecoveryWithZap(log, true))

	return r
}
