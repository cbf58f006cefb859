// Package directive provides directive handling for unusedexpr.
//
// # Overview
//
// Two unrelated things are called directives here, and each has its own
// subpackage:
//
//	directive/
//	├── prologue/  # "use strict"-style directive prologue statements
//	└── ignore/    # unusedexpr:ignore comments
//
// # Directive Prologue
//
// A string literal statement at the start of a program or function body is
// a directive, not an unused expression:
//
//	"use strict";        // Directive, not reported
//	function f() {
//	    "use asm";       // Directive, not reported
//	    g();
//	    "late";          // Reported
//	}
//
// Blocks that are not function bodies have no prologue:
//
//	if (x) {
//	    "use strict";    // Reported
//	}
//
// See [prologue] package for details.
//
// # Ignore Directive
//
// Suppresses reports for the next line or same line:
//
//	// unusedexpr:ignore
//	a && b;              // No report
//
//	a && b;              // unusedexpr:ignore
//
// See [ignore] package for details.
package directive
