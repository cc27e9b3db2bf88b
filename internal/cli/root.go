// Package cli implements the consttable command line.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"

	"github.com/spf13/cobra"
)

// DebugEnv enables --debug when set to "1".
const DebugEnv = "CONSTTABLE_DEBUG"

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"
	Debug   bool

	logger *slog.Logger
}

// Logger returns the command logger, discarding output until the root
// command has configured it.
func (o *RootOptions) Logger() *slog.Logger {
	if o.logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return o.logger
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the consttable CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "consttable",
		Short: "consttable - enums backed by constant value tables",
		Long: `consttable generates Go enumerations whose cases each carry a constant
record. A declaration file lists the record layout followed by one
initializer per case; the generator emits the enum type, the record type,
a lookup table, iterators and a range-checked constructor.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				err := NewExitError(ExitCommandError,
					fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
				fmt.Fprintf(cmd.ErrOrStderr(), "error: %s\n", err.Message)

				return err
			}

			if os.Getenv(DebugEnv) == "1" {
				opts.Debug = true
			}

			opts.logger = newLogger(cmd.ErrOrStderr(), opts)

			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().BoolVar(&opts.Debug, "debug", false, "dump the resolved plan to stderr (also "+DebugEnv+"=1)")

	// Add subcommands
	cmd.AddCommand(NewGenCommand(opts))
	cmd.AddCommand(NewCheckCommand(opts))

	return cmd
}

// Execute runs the root command with os.Args and returns the process exit
// code. Errors not already reported by a command (flag and argument
// errors) are printed to stderr.
func Execute() int {
	err := NewRootCommand().Execute()

	var exitErr *ExitError
	if err != nil && !errors.As(err, &exitErr) {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	}

	return GetExitCode(err)
}

// newLogger builds the stderr logger. Verbose and debug runs log at debug
// level; otherwise only warnings and errors are shown.
func newLogger(w io.Writer, opts *RootOptions) *slog.Logger {
	level := slog.LevelWarn
	if opts.Verbose || opts.Debug {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	return slices.Contains(ValidFormats, format)
}
