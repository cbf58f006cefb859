package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"sync"

	"github.com/hashicorp/go-multierror"
	"github.com/mattn/go-isatty"
	"golang.org/x/sync/errgroup"

	"github.com/mpyw/unusedexpr"
	"github.com/mpyw/unusedexpr/internal/config"
	"github.com/mpyw/unusedexpr/internal/report"
)

// stdinName is the file argument that reads standard input.
const stdinName = "-"

// linter checks files with a single rule activation and prints results.
type linter struct {
	rule      *unusedexpr.Rule
	formatter report.Formatter
	out       io.Writer
	stdin     io.Reader
	logger    *slog.Logger

	// mu serializes writes to out in watch mode.
	mu sync.Mutex
}

func newLinter(cfg *config.Config, out io.Writer, color bool, logger *slog.Logger) (*linter, error) {
	formatter, err := report.NewFormatter(cfg.Format, color && useColor(out))
	if err != nil {
		return nil, err
	}
	return &linter{
		rule:      unusedexpr.NewWithConfig(cfg),
		formatter: formatter,
		out:       out,
		stdin:     os.Stdin,
		logger:    logger,
	}, nil
}

// lint checks files concurrently. Results are in argument order. Files
// that cannot be read or decoded are collected into a single error.
func (l *linter) lint(ctx context.Context, files []string) ([]report.FileResult, error) {
	results := make([]report.FileResult, len(files))
	errs := make([]error, len(files))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, file := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i], errs[i] = l.lintFile(file)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var merr *multierror.Error
	for _, err := range errs {
		if err != nil {
			merr = multierror.Append(merr, err)
		}
	}
	if err := merr.ErrorOrNil(); err != nil {
		return nil, err
	}
	return results, nil
}

func (l *linter) lintFile(file string) (report.FileResult, error) {
	data, err := l.read(file)
	if err != nil {
		return report.FileResult{}, err
	}

	diags, err := l.rule.CheckJSON(data)
	if err != nil {
		return report.FileResult{}, fmt.Errorf("%s: %w", file, err)
	}

	l.logger.Debug("checked file", "file", file, "problems", len(diags))
	return report.FileResult{File: file, Diagnostics: diags}, nil
}

func (l *linter) read(file string) ([]byte, error) {
	if file == stdinName {
		data, err := io.ReadAll(l.stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read standard input: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return data, nil
}

func (l *linter) print(results []report.FileResult) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.formatter.Format(l.out, results)
}

// useColor reports whether w is a terminal that should receive ANSI colors.
// NO_COLOR disables colors regardless of the terminal.
func useColor(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
