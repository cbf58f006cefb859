package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mpyw/unusedexpr/internal/config"
	"github.com/mpyw/unusedexpr/internal/report"
)

// Exit codes.
const (
	exitOK       = 0
	exitProblems = 1
	exitError    = 2
)

// errProblems is returned by the root command when diagnostics were
// reported. It is mapped to exitProblems and never printed.
var errProblems = errors.New("problems found")

type rootFlags struct {
	configFile          string
	format              string
	allowShortCircuit   bool
	allowTernary        bool
	allowTaggedTemplate bool
	reportUnusedIgnores bool
	watch               bool
	verbose             bool
	noColor             bool
}

func newRootCmd() *cobra.Command {
	var flags rootFlags

	cmd := &cobra.Command{
		Use:   "unusedexpr [flags] FILE...",
		Short: "Report unused expressions in ESTree JSON trees",
		Long: `unusedexpr reports expression statements whose value is discarded without
an observable effect, such as "x;" or "a + b;".

Each FILE is an ESTree Program serialized as JSON with location data. Use
"-" to read a tree from standard input.

Configuration is read from --config, or from .unusedexpr.yaml in the
working directory when it exists. Flags given on the command line override
the file.`,
		Args:          cobra.MinimumNArgs(1),
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, &flags, args)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&flags.configFile, "config", "c", "", "configuration file path (default "+config.DefaultFile+" if present)")
	f.StringVar(&flags.format, "format", config.FormatText, "output format (text, json)")
	f.BoolVar(&flags.allowShortCircuit, "allow-short-circuit", false, "allow a && b() and a || b()")
	f.BoolVar(&flags.allowTernary, "allow-ternary", false, "allow a ? b() : c()")
	f.BoolVar(&flags.allowTaggedTemplate, "allow-tagged-templates", false, "allow tag`text`")
	f.BoolVar(&flags.reportUnusedIgnores, "report-unused-ignores", false, "report unusedexpr:ignore comments that suppress nothing")
	f.BoolVarP(&flags.watch, "watch", "w", false, "re-check files when they change")
	f.BoolVarP(&flags.verbose, "verbose", "v", false, "verbose output")
	f.BoolVar(&flags.noColor, "no-color", false, "disable colored output")

	return cmd
}

// loadConfig resolves the configuration file and applies flags that were
// set explicitly.
func loadConfig(cmd *cobra.Command, flags *rootFlags) (*config.Config, error) {
	cfg, err := config.Resolve(flags.configFile)
	if err != nil {
		return nil, err
	}

	f := cmd.Flags()
	if f.Changed("format") {
		cfg.Format = flags.format
	}
	if f.Changed("allow-short-circuit") {
		cfg.Options.AllowShortCircuit = flags.allowShortCircuit
	}
	if f.Changed("allow-ternary") {
		cfg.Options.AllowTernary = flags.allowTernary
	}
	if f.Changed("allow-tagged-templates") {
		cfg.Options.AllowTaggedTemplates = flags.allowTaggedTemplate
	}
	if f.Changed("report-unused-ignores") {
		cfg.ReportUnusedIgnores = flags.reportUnusedIgnores
	}

	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid flags: %w", err)
	}
	return cfg, nil
}

func runRoot(cmd *cobra.Command, flags *rootFlags, files []string) error {
	logger := newLogger(cmd.ErrOrStderr(), flags.verbose)

	cfg, err := loadConfig(cmd, flags)
	if err != nil {
		return err
	}
	logger.Debug("configuration loaded",
		"format", cfg.Format,
		"allowShortCircuit", cfg.Options.AllowShortCircuit,
		"allowTernary", cfg.Options.AllowTernary,
		"allowTaggedTemplates", cfg.Options.AllowTaggedTemplates,
		"reportUnusedIgnores", cfg.ReportUnusedIgnores,
	)

	l, err := newLinter(cfg, cmd.OutOrStdout(), !flags.noColor, logger)
	if err != nil {
		return err
	}
	l.stdin = cmd.InOrStdin()

	if flags.watch {
		return watchFiles(cmd.Context(), l, files, logger)
	}

	results, err := l.lint(cmd.Context(), files)
	if err != nil {
		return err
	}
	if err := l.print(results); err != nil {
		return err
	}
	if report.Count(results) > 0 {
		return errProblems
	}
	return nil
}

// Execute runs the root command against the process arguments and returns
// the exit code.
func Execute() int {
	return run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, errProblems):
		return exitProblems
	default:
		fmt.Fprintln(stderr, "Error:", err)
		return exitError
	}
}
