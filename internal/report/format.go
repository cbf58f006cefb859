package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/mpyw/unusedexpr/internal/config"
)

// Formatter writes results to w.
type Formatter interface {
	Format(w io.Writer, results []FileResult) error
}

// NewFormatter returns the formatter for a config format name.
func NewFormatter(format string, useColor bool) (Formatter, error) {
	switch format {
	case config.FormatText, "":
		return NewTextFormatter(useColor), nil
	case config.FormatJSON:
		return &JSONFormatter{Indent: true}, nil
	default:
		return nil, fmt.Errorf("%q: %w", format, config.ErrInvalidFormat)
	}
}

// TextFormatter writes one line per diagnostic followed by a summary:
//
//	file.json:3:1: Expected an assignment ... [no-unused-expressions]
type TextFormatter struct {
	file    *color.Color
	rule    *color.Color
	problem *color.Color
}

// NewTextFormatter returns a text formatter, coloured if useColor is set.
func NewTextFormatter(useColor bool) *TextFormatter {
	f := &TextFormatter{
		file:    color.New(color.FgCyan),
		rule:    color.New(color.FgMagenta),
		problem: color.New(color.FgRed, color.Bold),
	}
	for _, c := range []*color.Color{f.file, f.rule, f.problem} {
		if useColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return f
}

// Format writes results in text form. Nothing is written when there are no
// diagnostics.
func (f *TextFormatter) Format(w io.Writer, results []FileResult) error {
	for _, r := range results {
		for _, d := range r.Diagnostics {
			_, err := fmt.Fprintf(w, "%s %s %s\n",
				f.file.Sprintf("%s:%d:%d:", r.File, d.Line, d.Column),
				d.Message,
				f.rule.Sprintf("[%s]", d.Rule),
			)
			if err != nil {
				return err
			}
		}
	}

	if n := Count(results); n > 0 {
		if _, err := fmt.Fprintf(w, "\n%s\n", f.problem.Sprint(plural(n, "problem"))); err != nil {
			return err
		}
	}
	return nil
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}

// JSONFormatter writes a single document:
//
//	{"files": [{"file": ..., "diagnostics": [...]}], "count": N}
type JSONFormatter struct {
	Indent bool
}

type jsonDocument struct {
	Files []FileResult `json:"files"`
	Count int          `json:"count"`
}

// Format writes results as JSON. Diagnostics lists are never null.
func (f *JSONFormatter) Format(w io.Writer, results []FileResult) error {
	doc := jsonDocument{Files: make([]FileResult, len(results)), Count: Count(results)}
	for i, r := range results {
		if r.Diagnostics == nil {
			r.Diagnostics = []Diagnostic{}
		}
		doc.Files[i] = r
	}

	encoder := json.NewEncoder(w)
	if f.Indent {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(doc)
}
