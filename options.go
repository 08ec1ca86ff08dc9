package statictree

import (
	"fmt"

	"github.com/npillmayer/statictree/arena"
)

// Ordering selects how siblings are arranged in the compiled tree.
type Ordering int

const (
	// ByWeight places children with more entries in their subtree first.
	ByWeight Ordering = iota
	// ByFanout places children with more direct children first.
	ByFanout
	// InsertionOrder keeps children in the order they were first inserted.
	InsertionOrder
)

func (o Ordering) String() string {
	switch o {
	case ByWeight:
		return "by-weight"
	case ByFanout:
		return "by-fanout"
	case InsertionOrder:
		return "insertion-order"
	}
	return fmt.Sprintf("Ordering(%d)", int(o))
}

// Option configures a Planner and the trees it compiles.
type Option func(*options)

type options struct {
	name     string
	ordering Ordering
	backing  arena.Backing
}

func defaultOptions() options {
	return options{
		name:     "tree",
		ordering: ByWeight,
		backing:  arena.Heap,
	}
}

// WithName sets an identifier for the compiled tree, used for tracing.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithOrdering selects the sibling ordering. The default is ByWeight.
func WithOrdering(ordering Ordering) Option {
	return func(o *options) {
		o.ordering = ordering
	}
}

// WithBacking selects the memory backing of the compiled tree's arena.
func WithBacking(b arena.Backing) Option {
	return func(o *options) {
		o.backing = b
	}
}

// WithOffHeap places the compiled tree outside of the Go heap. Trees compiled
// with this option should be closed when they are no longer needed.
func WithOffHeap() Option {
	return WithBacking(arena.OffHeap)
}
