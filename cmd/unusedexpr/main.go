// Command unusedexpr reports expression statements whose value is discarded
// in ESTree JSON trees.
//
// The trees come from any ESTree-compatible parser (esprima, acorn,
// espree, @babel/parser with the estree plugin), serialized with location
// data and, for ignore directives, comments.
//
// Usage:
//
//	# Check trees with the default options
//	unusedexpr app.json lib.json
//
//	# Allow a && b() and a ? b() : c()
//	unusedexpr --allow-short-circuit --allow-ternary app.json
//
//	# Read a tree from standard input
//	acorn --ecma2024 --locations app.js | unusedexpr -
//
//	# Use a configuration file and emit JSON
//	unusedexpr --config .unusedexpr.yaml --format json app.json
//
//	# Re-check files whenever they change
//	unusedexpr --watch app.json
//
// Exit status is 0 when no problems are found, 1 when there are problems
// and 2 when a file or the configuration could not be processed.
package main

import "os"

func main() {
	os.Exit(Execute())
}
