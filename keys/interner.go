package keys

import (
	"math"

	"github.com/derekparker/trie"
)

// Interner assigns dense, sequential IDs to tokens, starting at 1. Tokens are
// kept in a prefix trie, which allows to enumerate them by prefix.
type Interner struct {
	tokens *trie.Trie
	empty  uint64 // ID of the empty token, kept outside the trie
	next   uint64
}

// NewInterner creates an interning mapper.
func NewInterner() *Interner {
	return &Interner{tokens: trie.New(), next: 1}
}

// Intern returns the ID of token, assigning a new one if token is unknown.
func (in *Interner) Intern(token string) (uint64, error) {
	if id, ok := in.ID(token); ok {
		return id, nil
	}
	if in.next == math.MaxUint64 {
		return 0, ErrExhausted
	}
	id := in.next
	in.next++
	if token == "" {
		in.empty = id
	} else {
		in.tokens.Add(token, id)
	}
	return id, nil
}

// ID returns the ID of a known token.
func (in *Interner) ID(token string) (uint64, bool) {
	if token == "" {
		return in.empty, in.empty != 0
	}
	node, ok := in.tokens.Find(token)
	if !ok {
		return 0, false
	}
	id, ok := node.Meta().(uint64)
	return id, ok
}

// Map interns every token of path.
func (in *Interner) Map(path []string) ([]uint64, error) {
	keys := make([]uint64, len(path))
	for i, token := range path {
		id, err := in.Intern(token)
		if err != nil {
			return nil, err
		}
		keys[i] = id
	}
	return keys, nil
}

// Resolve looks up the IDs of the tokens of path. Unknown tokens cannot be
// part of a stored path, so they make Resolve fail.
func (in *Interner) Resolve(path []string) ([]uint64, bool) {
	keys := make([]uint64, len(path))
	for i, token := range path {
		id, ok := in.ID(token)
		if !ok {
			return nil, false
		}
		keys[i] = id
	}
	return keys, true
}

// Tokens returns all interned tokens starting with prefix.
func (in *Interner) Tokens(prefix string) []string {
	return in.tokens.PrefixSearch(prefix)
}

// Len returns the number of interned tokens.
func (in *Interner) Len() int {
	return int(in.next - 1)
}
