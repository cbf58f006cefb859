// Package ignore handles unusedexpr:ignore directives.
package ignore

import (
	"sort"
	"strings"

	"github.com/mpyw/unusedexpr/estree"
)

// Keyword is the directive name recognized in comments.
const Keyword = "unusedexpr:ignore"

// Entry tracks an ignore directive and its usage.
type Entry struct {
	Comment estree.Comment // The directive comment
	Reason  string         // Text after " - ", if any
	used    bool
}

// Used reports whether the directive suppressed at least one diagnostic.
func (e *Entry) Used() bool {
	return e.used
}

// Map tracks ignore entries by the line they end on.
type Map map[int]*Entry

// Build scans comments for ignore directives and returns a map.
func Build(comments []estree.Comment) Map {
	m := make(Map)

	for _, c := range comments {
		reason, ok := parseComment(c.Value)
		if !ok {
			continue
		}
		line := c.End.Line
		if line == 0 {
			line = c.Start.Line
		}
		if _, exists := m[line]; exists {
			continue
		}
		m[line] = &Entry{Comment: c, Reason: reason}
	}

	return m
}

// parseComment parses an ignore directive and returns its reason.
// Returns false if not an ignore comment.
//
// The value is the comment body without its delimiters, as ESTree stores it.
func parseComment(value string) (string, bool) {
	text := strings.TrimSpace(value)
	text = strings.TrimPrefix(text, "*")
	text = strings.TrimSpace(text)

	if !strings.HasPrefix(text, Keyword) {
		return "", false
	}

	rest := strings.TrimPrefix(text, Keyword)
	if rest != "" && rest[0] != ' ' && rest[0] != '\t' && rest[0] != '\n' {
		// e.g. "unusedexpr:ignored"
		return "", false
	}
	rest = strings.TrimSpace(rest)

	// Stop at a trailing comment marker
	if strings.HasPrefix(rest, "//") {
		rest = ""
	}
	if idx := strings.Index(rest, " //"); idx >= 0 {
		rest = strings.TrimSpace(rest[:idx])
	}

	// Handle "- reason" and a bare "-"
	if rest == "-" {
		return "", true
	}
	if reason, ok := strings.CutPrefix(rest, "- "); ok {
		return strings.TrimSpace(reason), true
	}

	return "", true
}

// ShouldIgnore returns true if a diagnostic on the given line should be
// suppressed. A directive applies to its own line and the line below it.
func (m Map) ShouldIgnore(line int) bool {
	if m.use(m[line]) {
		return true
	}
	if m.use(m[line-1]) {
		return true
	}

	return false
}

func (m Map) use(entry *Entry) bool {
	if entry == nil {
		return false
	}
	entry.used = true
	return true
}

// Unused returns the directives that suppressed nothing, ordered by
// position.
func (m Map) Unused() []*Entry {
	var unused []*Entry

	for _, entry := range m {
		if !entry.used {
			unused = append(unused, entry)
		}
	}

	sort.Slice(unused, func(i, j int) bool {
		a, b := unused[i].Comment.Start, unused[j].Comment.Start
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		return a.Column < b.Column
	})

	return unused
}
