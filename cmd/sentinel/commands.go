package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/loykin/sentinel"
	"github.com/spf13/cobra"
)

// version is stamped at release time via -ldflags.
var version = "dev"

// run executes the CLI and returns the process exit code. Usage and
// configuration errors print a diagnostic plus usage guidance and exit
// with code 2; everything else is the supervised command's own code.
func run(args []string) int {
	exitCode := sentinel.ExitOK
	root := newRootCommand(&exitCode)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "Error:", err)
		_, _ = fmt.Fprint(os.Stderr, root.UsageString())
		return sentinel.ExitUsage
	}
	return exitCode
}

func newRootCommand(exitCode *int) *cobra.Command {
	root := &cobra.Command{
		Use:   "sentinel [flags] [--] <command>...",
		Short: "Run a shell command and report its lifecycle to Telegram",
		Long: `Sentinel runs a single command via the system shell, mirrors its
output to the terminal while capturing it, and sends start/finish
notifications to a Telegram chat.

Required environment: TG_BOT_TOKEN, TG_CHAT_ID.

Examples:
  sentinel -- "echo hello"
  sentinel -- ls -la
  sentinel make test`,
		Version:       version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			command := joinCommand(args)
			if command == "" {
				if cmd.ArgsLenAtDash() == 0 {
					return errors.New("missing command after --")
				}
				return errors.New("missing command")
			}
			cfg, err := sentinel.LoadConfig()
			if err != nil {
				return err
			}
			*exitCode = sentinel.New(cfg).Run(command)
			return nil
		},
	}
	// Stop flag parsing at the first positional so flags belonging to
	// the supervised command are never interpreted here.
	root.Flags().SetInterspersed(false)
	return root
}

// joinCommand joins argv tokens into a single shell command line.
func joinCommand(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}
