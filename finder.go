package statictree

import (
	"github.com/npillmayer/statictree/trie"
)

// Status classifies the outcome of a lookup. It tells apart key sequences
// which do not denote a path (NotFound) from paths which exist but carry no
// value (FoundNoValue).
type Status = trie.Status

const (
	NotFound     = trie.NotFound
	FoundNoValue = trie.FoundNoValue
	Found        = trie.Found
)

// Finder answers point lookups for key sequences. Both the mutable reference
// trie.Map and the compiled Tree implement it, with identical results for
// identical entries and non-empty keys.
type Finder[K comparable, V any] interface {
	Find(key []K) (V, bool)
	Lookup(key []K) (V, Status)
}

var (
	_ Finder[string, int] = (*trie.Map[string, int])(nil)
	_ Finder[string, int] = (*Tree[string, int])(nil)
)
