// Package cli implements the stacks command-line interface: the root
// command, configuration loading, and the interactive inventory
// session.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/stacks/internal/paths"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values shared by the session.
type rootFlags struct {
	configDir string
	jsonMode  bool
}

// NewRootCmd creates the top-level "stacks" command with global flags
// and all subcommands registered. Running the root with no subcommand
// starts an interactive session.
func NewRootCmd() *cobra.Command {
	flags := &rootFlags{}
	root := &cobra.Command{
		Use:   "stacks",
		Short: "An in-memory library shelf inventory",
		Long: "Stacks tracks books, magazines, and movies across a fixed grid of\n" +
			"shelves and compartments, with checkout and check-in handling.\n" +
			"State lives only for the duration of a session.",
		// Do not print usage on errors returned by subcommands.
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSession(cmd, flags)
		},
	}

	root.PersistentFlags().StringVar(&flags.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	root.PersistentFlags().BoolVar(&flags.jsonMode, "json", false, "output listings as JSON")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newSessionCmd(flags))

	return root
}

// newSessionCmd creates the explicit "session" subcommand; it behaves
// exactly like running the bare root.
func newSessionCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "session",
		Short: "Start an interactive inventory session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSession(cmd, flags)
		},
	}
}

// runSession loads configuration and hands control to the session loop.
func runSession(cmd *cobra.Command, flags *rootFlags) error {
	configDir, err := paths.ResolveConfigDir(flags.configDir)
	if err != nil {
		return fmt.Errorf("resolve config dir: %w", err)
	}

	cfg, err := loadConfig(configDir)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	session := NewSession(cfg, flags.jsonMode,
		cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
	return session.Run()
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(exitUserError)
	}
}
