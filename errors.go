package statictree

import (
	"errors"

	"github.com/npillmayer/statictree/arena"
)

var (
	// ErrEmptyKey is the panic value for lookups with an empty key sequence.
	// Batch lookups return it wrapped instead.
	ErrEmptyKey = errors.New("statictree: empty key sequence")
	// ErrCompiled is the panic value for using a planner after Compile.
	ErrCompiled = errors.New("statictree: planner has already been compiled")
	// ErrCorrupt is returned by Verify if a tree's layout is inconsistent.
	ErrCorrupt = errors.New("statictree: corrupt tree layout")
	// ErrAllocationFailed is returned by Compile if the arena cannot be allocated.
	ErrAllocationFailed = arena.ErrAllocationFailed
)
