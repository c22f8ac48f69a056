package cli

import (
	"fmt"
	"os"

	"github.com/agentforge-dev/agentforge/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:     "agentforge",
	Short:   "Scaffold on-chain agent projects",
	Long:    `agentforge generates ready-to-run agent projects: package manifest, environment template, chain registration script, and optional A2A/MCP servers.`,
	Version: fmt.Sprintf("%s (%s)", version.Version, version.Commit),
}

// settings holds the environment-derived defaults shared by commands.
var settings *Settings

func Execute() {
	s, err := LoadSettings()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	settings = s

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(chainsCmd)
}
