// Package ruletest runs the rule against txtar fixture archives.
//
// # Archive Layout
//
// Each archive under testdata/src holds an optional config.yaml and any
// number of NAME.js / NAME.json pairs. NAME.json is the ESTree tree the
// rule checks; NAME.js is its source, annotated with expectations:
//
//	-- config.yaml --
//	options:
//	  allowShortCircuit: true
//	-- input.js --
//	a && f();
//	f() && a; // want "Expected an assignment"
//	-- input.json --
//	{"type": "Program", ...}
//
// A want comment holds one or more quoted regular expressions. Every
// diagnostic on that line must match one of them, and every expectation
// must be matched by exactly one diagnostic.
package ruletest

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"testing"

	"golang.org/x/tools/txtar"

	"github.com/mpyw/unusedexpr"
	"github.com/mpyw/unusedexpr/internal/config"
)

// TestData returns the absolute path of the testdata directory in the
// current working directory.
func TestData() string {
	dir, err := filepath.Abs("testdata")
	if err != nil {
		panic(err)
	}
	return dir
}

// Run checks every tree in dir/src/NAME.txtar for each name.
func Run(t *testing.T, dir string, names ...string) {
	t.Helper()

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			RunArchive(t, filepath.Join(dir, "src", name+".txtar"))
		})
	}
}

// RunArchive checks every tree in a single archive.
func RunArchive(t *testing.T, path string) {
	t.Helper()

	ar, err := txtar.ParseFile(path)
	if err != nil {
		t.Fatalf("failed to read archive: %v", err)
	}

	files := make(map[string][]byte, len(ar.Files))
	for _, f := range ar.Files {
		files[f.Name] = f.Data
	}

	cfg := config.Default()
	if data, ok := files["config.yaml"]; ok {
		if cfg, err = config.Parse(data); err != nil {
			t.Fatalf("config.yaml: %v", err)
		}
	}
	rule := unusedexpr.NewWithConfig(cfg)

	trees := 0
	for _, f := range ar.Files {
		base, ok := strings.CutSuffix(f.Name, ".json")
		if !ok {
			continue
		}
		trees++

		src, ok := files[base+".js"]
		if !ok {
			t.Errorf("%s: no matching %s.js", f.Name, base)
			continue
		}
		wants, err := parseWants(src)
		if err != nil {
			t.Errorf("%s.js: %v", base, err)
			continue
		}

		diags, err := rule.CheckJSON(f.Data)
		if err != nil {
			t.Errorf("%s: %v", f.Name, err)
			continue
		}
		check(t, base+".js", diags, wants)
	}

	if trees == 0 {
		t.Fatalf("%s: archive holds no .json trees", path)
	}
}

type expectation struct {
	line    int
	pattern *regexp.Regexp
	matched bool
}

var wantRe = regexp.MustCompile(`//\s*want\s+(.*)$`)

// parseWants reads want comments from annotated source.
func parseWants(src []byte) ([]*expectation, error) {
	var wants []*expectation

	for i, line := range strings.Split(string(src), "\n") {
		m := wantRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		rest := strings.TrimSpace(m[1])
		for rest != "" {
			quoted, err := strconv.QuotedPrefix(rest)
			if err != nil {
				return nil, fmt.Errorf("line %d: malformed want %q", i+1, rest)
			}
			text, err := strconv.Unquote(quoted)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", i+1, err)
			}
			re, err := regexp.Compile(text)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", i+1, err)
			}
			wants = append(wants, &expectation{line: i + 1, pattern: re})
			rest = strings.TrimSpace(rest[len(quoted):])
		}
	}

	return wants, nil
}

func check(t *testing.T, file string, diags []unusedexpr.Diagnostic, wants []*expectation) {
	t.Helper()

	for _, d := range diags {
		found := false
		for _, w := range wants {
			if w.matched || w.line != d.Line || !w.pattern.MatchString(d.Message) {
				continue
			}
			w.matched = true
			found = true
			break
		}
		if !found {
			t.Errorf("%s:%d:%d: unexpected diagnostic: %s", file, d.Line, d.Column, d.Message)
		}
	}

	var missing []string
	for _, w := range wants {
		if !w.matched {
			missing = append(missing, fmt.Sprintf("%s:%d: no diagnostic was reported matching %q", file, w.line, w.pattern))
		}
	}
	sort.Strings(missing)
	for _, m := range missing {
		t.Error(m)
	}
}

// Archives lists the fixture names under dir/src.
func Archives(dir string) ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(dir, "src"))
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if name, ok := strings.CutSuffix(e.Name(), ".txtar"); ok && !e.IsDir() {
			names = append(names, name)
		}
	}
	return names, nil
}
