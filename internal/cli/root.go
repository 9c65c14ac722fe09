// Package cli implements the rose command-line interface.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mesh-intelligence/rose/internal/logging"
	"github.com/mesh-intelligence/rose/internal/paths"
	"github.com/mesh-intelligence/rose/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// app holds state shared by the subcommands of one invocation.
type app struct {
	configDir string
	logLevel  string
	logFormat string

	v   *viper.Viper
	log zerolog.Logger
}

// NewRootCmd creates the top-level "rose" command with global flags and all
// subcommands registered.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New(), log: zerolog.Nop()}

	root := &cobra.Command{
		Use:   "rose",
		Short: "Simulate daily quality updates of a shop inventory",
		Long: `rose advances a shop inventory day by day. Items lose or gain quality
according to their category: normal items degrade, Aged Brie improves,
Backstage passes rise towards the concert and collapse after it, Sulfuras
never changes, and "Conjured " items degrade twice as fast.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usageError{err}
	})

	root.PersistentFlags().StringVar(&a.configDir, "config-dir", "", "configuration directory (default: $XDG_CONFIG_HOME/rose)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (trace, debug, info, warn, error, disabled)")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "log output format (console, json)")
	_ = a.v.BindPFlag(cfgKeyLogLevel, root.PersistentFlags().Lookup("log-level"))
	_ = a.v.BindPFlag(cfgKeyLogFormat, root.PersistentFlags().Lookup("log-format"))

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd(a))
	root.AddCommand(newClassifyCmd())
	root.AddCommand(newSimulateCmd(a))

	return root
}

// setup loads configuration and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	dir, err := paths.ResolveConfigDir(a.configDir)
	if err != nil {
		return fmt.Errorf("resolve config dir: %w", err)
	}
	a.configDir = dir

	if err := loadConfig(a.v, dir); err != nil {
		return err
	}

	log, err := logging.New(a.v.GetString(cfgKeyLogLevel), a.v.GetString(cfgKeyLogFormat), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.log = log.With().Str("command", cmd.Name()).Logger()
	a.log.Debug().Str("config_dir", dir).Str("config_file", a.v.ConfigFileUsed()).Msg("configuration loaded")
	return nil
}

// Execute runs the root command and returns the process exit code.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := NewRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return exitCode(err)
	}
	return exitSuccess
}

// exitCode maps an error to a user or system exit code.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitSuccess
	case errors.Is(err, types.ErrUnknownFormat),
		errors.Is(err, types.ErrUnsupportedFormat),
		errors.Is(err, types.ErrInvalidInventory),
		errors.Is(err, types.ErrInvalidDays),
		errors.Is(err, types.ErrInvalidLogLevel),
		errors.Is(err, types.ErrInvalidLogFormat),
		errors.Is(err, os.ErrNotExist),
		isUsageError(err):
		return exitUserError
	default:
		return exitSysError
	}
}

// usageError marks errors caused by bad arguments.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

func isUsageError(err error) bool {
	var u usageError
	return errors.As(err, &u)
}

// usageArgs wraps a positional-argument validator so its errors map to the
// user error exit code.
func usageArgs(fn cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := fn(cmd, args); err != nil {
			return usageError{err}
		}
		return nil
	}
}
