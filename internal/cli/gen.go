package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"consttable/internal/analyze"
	"consttable/internal/common"
	"consttable/internal/expand"
	"consttable/internal/gen"
)

// GenOptions holds flags for the gen command.
type GenOptions struct {
	File        string
	OutputDir   string
	Package     string
	KeepPartial bool
	TypeCheck   bool
	NoComments  bool
}

// NewGenCommand creates the gen command.
func NewGenCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &GenOptions{}

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate Go sources from a declaration file",
		Long: `Generate one Go file per enum declared in the declaration file.

Files are written only when the declaration has no errors, unless
--keep-partial is set. The package name is taken from --package, then from
the declaration file, then from the Go package already in the output
directory, then from the output directory name.`,
		Example: `  consttable gen -f species.yaml -o .
  consttable gen -f planets.yaml -o ./planets --typecheck
  consttable gen -f species.yaml -o . --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGen(cmd, rootOpts, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.File, "file", "f", "", "declaration file (required)")
	cmd.Flags().StringVarP(&opts.OutputDir, "output", "o", ".", "output directory")
	cmd.Flags().StringVar(&opts.Package, "package", "", "package name of the generated files")
	cmd.Flags().BoolVar(&opts.KeepPartial, "keep-partial", false, "write files even when errors were reported")
	cmd.Flags().BoolVar(&opts.TypeCheck, "typecheck", false, "type-check the output package after writing")
	cmd.Flags().BoolVar(&opts.NoComments, "no-comments", false, "omit generated doc comments")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runGen(cmd *cobra.Command, rootOpts *RootOptions, opts *GenOptions) error {
	formatter := &OutputFormatter{
		Format:    rootOpts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
	}
	logger := rootOpts.Logger()

	report := &Report{File: opts.File}

	doc, diags, err := loadDeclaration(opts.File)
	if err != nil {
		return formatter.CommandError("loading declaration", err)
	}

	if doc == nil {
		report.Diagnostics = diags
		return formatter.Report(report)
	}

	if opts.Package != "" {
		doc.Package = opts.Package
	}

	if doc.Package == "" {
		doc.Package, err = outputPackage(opts.OutputDir)
		if err != nil {
			return formatter.CommandError("determining package name", err)
		}
	}

	logger.Debug("declaration loaded",
		"file", opts.File, "items", len(doc.Items), "package", doc.Package)

	cfg := expand.DefaultConfig()
	cfg.Generator.GenerateComments = !opts.NoComments

	result := expand.Document(doc, cfg)
	report.Diagnostics = result.Diagnostics

	if rootOpts.Debug {
		dumpPlan(cmd.ErrOrStderr(), result.Plan)
	}

	if !result.OK() && !opts.KeepPartial {
		logger.Warn("not writing files", "errors", len(result.Diagnostics.Errors))
		return formatter.Report(report)
	}

	written, err := gen.WriteFiles(result.Files, opts.OutputDir)
	if err != nil {
		return formatter.CommandError("writing files", err)
	}

	report.Written = written

	for _, path := range written {
		logger.Info("wrote file", "path", path)
	}

	if opts.TypeCheck && len(written) > 0 {
		typeDiags, err := analyze.TypeCheck(opts.OutputDir)
		if err != nil {
			return formatter.CommandError("type-checking output", err)
		}

		report.Diagnostics.Merge(typeDiags)
	}

	return formatter.Report(report)
}

// outputPackage names the package of dir: the existing Go package if there
// is one, otherwise a name derived from the directory.
func outputPackage(dir string) (string, error) {
	name, err := analyze.PackageName(dir)
	if err != nil {
		return "", err
	}

	if name != "" {
		return name, nil
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", dir, err)
	}

	return common.PkgNameFromDir(abs), nil
}
