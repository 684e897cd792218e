package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/luma/parley/internal/meta"
)

var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version and build information",
	Run: func(cmd *cobra.Command, args []string) {
		info := meta.GetInfo()

		fmt.Printf("parley %s\n", info.Version)
		fmt.Printf("  build:    %s (%s)\n", info.Build, info.Branch)
		fmt.Printf("  built at: %s\n", info.BuildTime)
		fmt.Printf("  platform: %s, %s\n", info.Platform, info.GoVersion)
	},
}
