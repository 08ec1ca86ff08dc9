/*
Package entries reads textual entry lists and compiles them into trees.

Example usage:

	f, _ := os.Open("path/to/routes.txt")
	defer f.Close()

	tree, err := entries.Load("routes", f)

Lines without a path are skipped. Parsing stops at the first malformed line.
*/
package entries

import (
	"io"

	"github.com/npillmayer/statictree"
)

// Load parses entries from reader and compiles them into a tree named name.
func Load(name string, reader io.Reader, opts ...statictree.Option) (*statictree.Tree[string, string], error) {
	return statictree.LoadEntries[string, string](name, NewReader(reader), opts...)
}

// LoadWithSeparator is like Load, but splits paths at sep.
func LoadWithSeparator(name string, reader io.Reader, sep string, opts ...statictree.Option) (*statictree.Tree[string, string], error) {
	return statictree.LoadEntries[string, string](name, NewReader(reader, WithSeparator(sep)), opts...)
}
