/*
Package trie implements a plain, pointer-linked trie keyed by sequences of
discrete tokens.

Map is the mutable reference structure: every node owns an ordered list of
children and lookups walk these lists linearly. It is used to accumulate and
cross-check entries for the compiled trees of package statictree, which have to
answer every query exactly as a Map holding the same entries does.
*/
package trie

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'statictree.trie'
func tracer() tracing.Trace {
	return tracing.Select("statictree.trie")
}

// Status classifies the outcome of a lookup.
type Status int8

const (
	// NotFound means that the key sequence does not denote a path in the trie.
	NotFound Status = iota
	// FoundNoValue means that the path exists, but it was never given a value.
	FoundNoValue
	// Found means that the path exists and carries a value.
	Found
)

func (s Status) String() string {
	switch s {
	case NotFound:
		return "not-found"
	case FoundNoValue:
		return "found-no-value"
	case Found:
		return "found"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

type node[K comparable, V any] struct {
	key      K
	value    V
	hasValue bool
	children []*node[K, V]
}

func (n *node[K, V]) child(key K) *node[K, V] {
	for _, c := range n.children {
		if c.key == key {
			return c
		}
	}
	return nil
}

// Map is a mutable trie from key sequences to values.
// The zero value is not usable, create one with New.
type Map[K comparable, V any] struct {
	root *node[K, V]
	size int
}

// New creates an empty trie.
func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{root: &node[K, V]{}}
}

// Insert stores value at the path denoted by key, creating missing nodes on
// the way. An existing value is overwritten. Inserting an empty key is a no-op.
func (m *Map[K, V]) Insert(key []K, value V) {
	if len(key) == 0 {
		tracer().Debugf("ignoring insert of empty key")
		return
	}
	n := m.root
	for _, k := range key {
		next := n.child(k)
		if next == nil {
			next = &node[K, V]{key: k}
			n.children = append(n.children, next)
		}
		n = next
	}
	if !n.hasValue {
		m.size++
	}
	n.value, n.hasValue = value, true
}

// Find returns the value stored for key. An empty key is never found.
func (m *Map[K, V]) Find(key []K) (V, bool) {
	v, status := m.Lookup(key)
	return v, status == Found
}

// Lookup returns the value stored for key together with a status which
// tells apart missing paths and paths without a value.
func (m *Map[K, V]) Lookup(key []K) (value V, status Status) {
	if len(key) == 0 {
		return value, NotFound
	}
	n := m.root
	for _, k := range key {
		if n = n.child(k); n == nil {
			return value, NotFound
		}
	}
	if !n.hasValue {
		return value, FoundNoValue
	}
	return n.value, Found
}

// Len returns the number of values stored.
func (m *Map[K, V]) Len() int {
	return m.size
}

// Walk calls fn for every stored value in depth-first insertion order, until
// fn returns false. The key slice passed to fn is only valid during the call.
func (m *Map[K, V]) Walk(fn func(key []K, value V) bool) {
	path := make([]K, 0, 16)
	var walk func(n *node[K, V]) bool
	walk = func(n *node[K, V]) bool {
		for _, c := range n.children {
			path = append(path, c.key)
			if c.hasValue && !fn(path, c.value) {
				return false
			}
			if !walk(c) {
				return false
			}
			path = path[:len(path)-1]
		}
		return true
	}
	walk(m.root)
}
