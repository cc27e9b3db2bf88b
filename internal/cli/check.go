package cli

import (
	"github.com/spf13/cobra"

	"consttable/internal/expand"
)

// CheckOptions holds flags for the check command.
type CheckOptions struct {
	File string
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CheckOptions{}

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate a declaration file without writing anything",
		Long: `Validate a declaration file and report every diagnostic.

The declaration is expanded in memory, so problems found while rendering
the generated source are reported as well.`,
		Example: `  consttable check -f species.yaml
  consttable check -f species.yaml --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, rootOpts, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.File, "file", "f", "", "declaration file (required)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runCheck(cmd *cobra.Command, rootOpts *RootOptions, opts *CheckOptions) error {
	formatter := &OutputFormatter{
		Format:    rootOpts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
	}

	report := &Report{File: opts.File}

	doc, diags, err := loadDeclaration(opts.File)
	if err != nil {
		return formatter.CommandError("loading declaration", err)
	}

	if doc == nil {
		report.Diagnostics = diags
		return formatter.Report(report)
	}

	result := expand.Document(doc, expand.DefaultConfig())
	report.Diagnostics = result.Diagnostics

	if rootOpts.Debug {
		dumpPlan(cmd.ErrOrStderr(), result.Plan)
	}

	rootOpts.Logger().Debug("declaration checked",
		"file", opts.File, "tables", len(result.Files), "errors", len(result.Diagnostics.Errors))

	return formatter.Report(report)
}
