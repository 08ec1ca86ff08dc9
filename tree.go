package statictree

import (
	"github.com/npillmayer/statictree/arena"
)

// Tree is a compiled, read-only trie. All of its records live in a single
// arena; lookups follow byte offsets between contiguous sibling blocks.
//
// A Tree never changes after Compile returns and is safe for concurrent use.
type Tree[K comparable, V any] struct {
	name    string
	view    *arena.View
	symbols map[K]uint32
	values  *valueStore[V]
}

// Find returns the value stored for key. Find panics with ErrEmptyKey if
// key is empty.
func (t *Tree[K, V]) Find(key []K) (V, bool) {
	v, status := t.Lookup(key)
	return v, status == Found
}

// Lookup returns the value stored for key, together with the status of the
// lookup. Lookup panics with ErrEmptyKey if key is empty.
func (t *Tree[K, V]) Lookup(key []K) (value V, status Status) {
	if len(key) == 0 {
		panic(ErrEmptyKey)
	}
	current := arena.Read(t.view, codec, 0) // synthetic root
	for i, k := range key {
		sym, ok := t.symbols[k]
		if !ok || !current.hasChildren() {
			return value, NotFound
		}
		match, found := t.scan(current, sym)
		if !found {
			return value, NotFound
		}
		if i == len(key)-1 {
			if v, ok := t.values.get(match.value); ok {
				return v, Found
			}
			return value, FoundNoValue
		}
		current = match
	}
	return value, NotFound
}

// scan searches the children block of parent for a record with key sym.
func (t *Tree[K, V]) scan(parent record, sym uint32) (record, bool) {
	off := int(parent.childrenOffset)
	for j := int32(0); j < parent.childCount; j++ {
		r := arena.Read(t.view, codec, off)
		if r.key == sym {
			return r, true
		}
		off += RecordBytes
	}
	return record{}, false
}

// Name returns the identifier of the tree.
func (t *Tree[K, V]) Name() string {
	return t.name
}

// Len returns the number of values stored in the tree.
func (t *Tree[K, V]) Len() int {
	return t.values.len()
}

// Size returns the size of the tree's arena in bytes.
func (t *Tree[K, V]) Size() int {
	return t.view.Len()
}

// Close releases the tree's memory. A closed tree must not be queried.
// Close is only required for trees compiled off-heap, but is always safe.
func (t *Tree[K, V]) Close() error {
	return t.view.Close()
}
