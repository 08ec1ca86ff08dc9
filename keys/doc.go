/*
Package keys maps string key sequences to integer key sequences before they
are handed to a statictree.Planner.

A compiled tree trusts key equality: two tokens mapped to the same integer are
the same token as far as the tree is concerned. Mappers therefore have to be
free of collisions within one tree. Hasher uses 64-bit xxhash values and
rejects colliding tokens at insert time; Interner hands out dense sequential
IDs and cannot collide.
*/
package keys

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'statictree.keys'
func tracer() tracing.Trace {
	return tracing.Select("statictree.keys")
}

var (
	// ErrCollision is returned when two distinct tokens map to the same key.
	ErrCollision = errors.New("keys: key collision")
	// ErrExhausted is returned when a mapper has no more keys to hand out.
	ErrExhausted = errors.New("keys: key space exhausted")
)

// Mapper maps key sequences of string tokens to integer key sequences.
type Mapper interface {
	// Map maps path for insertion, registering tokens not seen before.
	Map(path []string) ([]uint64, error)
	// Resolve maps path for a query. It never registers tokens and reports
	// false if any token cannot be part of a mapped path.
	Resolve(path []string) ([]uint64, bool)
}
