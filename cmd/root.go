package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/luma/parley/cmd/gen"
)

var RootCmd = &cobra.Command{
	Use:   "parley",
	Short: "A small console IRC client",
	Long: `Parley is a small console IRC client.

It connects to a single server, registers, joins a channel and prints
the conversation. Connection settings come from flags, the environment
or a named profile in a JSON profiles file.
`,
}

func init() {
	RootCmd.AddCommand(ConnectCmd)
	RootCmd.AddCommand(VersionCmd)
	RootCmd.AddCommand(gen.RootCmd)
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
