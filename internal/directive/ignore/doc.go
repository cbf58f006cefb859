// Package ignore provides unusedexpr:ignore directive parsing.
//
// # Overview
//
// The ignore directive suppresses no-unused-expressions reports for
// specific lines.
//
// # Directive Placement
//
// The directive can appear on the line before or the same line:
//
//	// unusedexpr:ignore
//	a && b;  // Report suppressed
//
//	a && b;  // unusedexpr:ignore
//
// Block comments work as well; a block comment applies to the line it
// ends on and the line below:
//
//	/* unusedexpr:ignore */ x;
//
// # Reasons
//
// Anything after " - " is a free-form reason:
//
//	// unusedexpr:ignore - the getter has side effects
//	obj.lazy;
//
// # Parsing
//
// Use [Build] with the comments of a decoded program:
//
//	ignores := ignore.Build(prog.Comments)
//	if ignores.ShouldIgnore(line) {
//	    return // Skip this report
//	}
//
// # Unused Ignore Detection
//
// [Map.ShouldIgnore] marks the matching directive as used. [Map.Unused]
// returns the directives that never suppressed anything so they can be
// reported:
//
//	// unusedexpr:ignore  // Warning: unused ignore directive
//	f();                  // No report to suppress
package ignore
