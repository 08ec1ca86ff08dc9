/*
Package statictree compiles a trie keyed by sequences of discrete tokens into a
single contiguous block of memory, for fast and cache-friendly lookups against
a key set that is built once and then queried heavily.

Entries are collected with a Planner, which keeps a counted trie: every node
knows how many insertions passed through it. Compile sorts siblings by that
weight (heavier subtrees first, as lookups scan siblings linearly), sizes an
arena to hold exactly one fixed-size record per node and flattens the trie in
a single stack-driven, depth-first pass. Records reference their children by
byte offset into the arena; every sibling block is contiguous.

The resulting Tree is immutable and may be queried from any number of
goroutines without synchronization.

	planner := statictree.NewPlanner[string, int]().
		Add([]string{"a", "b", "c"}, 1).
		Add([]string{"a", "b", "d"}, 2).
		Add([]string{"e", "f"}, 3)
	tree, err := planner.Compile()
	...
	v, ok := tree.Find([]string{"a", "b", "d"})   // 2, true

Key tokens are stored in the arena as dense 32-bit symbols; values live in a
side table referenced from the records. Front-ends which map strings to
integer keys are found in package keys, a streaming loader for textual entry
lists in package entries.

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package statictree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'statictree'
func tracer() tracing.Trace {
	return tracing.Select("statictree")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
