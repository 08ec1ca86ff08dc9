package statictree

import (
	"fmt"
	"io"
)

// Entry is a format-agnostic (key sequence, value) pair.
type Entry[K comparable, V any] struct {
	Key   []K
	Value V
}

// EntryReader yields entries one-by-one.
// It should return io.EOF when the stream is exhausted.
// Returned key slices may be reused by subsequent calls.
type EntryReader[K comparable, V any] interface {
	Next() (key []K, value V, err error)
}

// LoadEntries compiles entries from a streaming, format-agnostic source.
//
// File format parsing is intentionally outside the base package. Use adapters
// like package entries to parse concrete formats and feed this API.
func LoadEntries[K comparable, V any](name string, reader EntryReader[K, V], opts ...Option) (*Tree[K, V], error) {
	opts = append([]Option{WithName(name)}, opts...)
	planner := NewPlanner[K, V](opts...)
	skipped := 0
	for {
		key, value, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("statictree: loading %s: %w", name, err)
		}
		if len(key) == 0 {
			skipped++
			continue // simply skip entries without a key
		}
		planner.Add(key, value)
	}
	tracer().Infof("%s: loaded %d entries, skipped %d without key", name, planner.Len(), skipped)
	return planner.Compile()
}

// LoadEntryList compiles entries from an in-memory list.
func LoadEntryList[K comparable, V any](name string, list []Entry[K, V], opts ...Option) (*Tree[K, V], error) {
	return LoadEntries[K, V](name, &sliceReader[K, V]{entries: list}, opts...)
}

type sliceReader[K comparable, V any] struct {
	entries []Entry[K, V]
	index   int
}

func (r *sliceReader[K, V]) Next() (key []K, value V, err error) {
	if r.index >= len(r.entries) {
		return nil, value, io.EOF
	}
	e := r.entries[r.index]
	r.index++
	return e.Key, e.Value, nil
}
