package keys

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Hasher maps tokens to their 64-bit xxhash digest. It remembers the token of
// every digest handed out, to detect collisions.
type Hasher struct {
	seen map[uint64]string
	hash func(string) uint64
}

// NewHasher creates a hashing mapper.
func NewHasher() *Hasher {
	return &Hasher{seen: make(map[uint64]string), hash: Hash}
}

// Hash returns the digest of a single token.
func Hash(token string) uint64 {
	return xxhash.Sum64String(token)
}

// Map hashes every token of path. It returns an error wrapping ErrCollision
// if a token's digest is already taken by a different token, either seen
// earlier or within path itself; in this case no token of path is registered.
func (h *Hasher) Map(path []string) ([]uint64, error) {
	keys := make([]uint64, len(path))
	fresh := make(map[uint64]string, len(path))
	for i, token := range path {
		k := h.hash(token)
		other, ok := h.seen[k]
		if !ok {
			other, ok = fresh[k]
		}
		if ok && other != token {
			tracer().Errorf("tokens %q and %q share hash %#x", other, token, k)
			return nil, fmt.Errorf("%w: %q and %q hash to %#x", ErrCollision, other, token, k)
		}
		if !ok {
			fresh[k] = token
		}
		keys[i] = k
	}
	for k, token := range fresh {
		h.seen[k] = token
	}
	return keys, nil
}

// Resolve hashes every token of path. Tokens whose digest belongs to a
// different token are rejected, so a query cannot alias a stored token.
func (h *Hasher) Resolve(path []string) ([]uint64, bool) {
	keys := make([]uint64, len(path))
	for i, token := range path {
		k := h.hash(token)
		if other, ok := h.seen[k]; ok && other != token {
			return nil, false
		}
		keys[i] = k
	}
	return keys, true
}

// Len returns the number of distinct tokens seen.
func (h *Hasher) Len() int {
	return len(h.seen)
}
