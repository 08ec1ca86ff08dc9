package keys

import (
	"github.com/npillmayer/statictree"
)

// Planner collects entries keyed by string paths, maps them with a Mapper and
// compiles them into a Tree keyed by the mapped integers.
type Planner[V any] struct {
	mapper  Mapper
	planner *statictree.Planner[uint64, V]
}

// NewPlanner creates a planner using mapper for its keys.
func NewPlanner[V any](mapper Mapper, opts ...statictree.Option) *Planner[V] {
	return &Planner[V]{
		mapper:  mapper,
		planner: statictree.NewPlanner[uint64, V](opts...),
	}
}

// Add maps path and stores value for it. Mapping errors, in particular
// collisions, are returned and leave the planner unchanged.
func (p *Planner[V]) Add(path []string, value V) error {
	keys, err := p.mapper.Map(path)
	if err != nil {
		return err
	}
	p.planner.Add(keys, value)
	return nil
}

// Len returns the number of distinct entries added so far.
func (p *Planner[V]) Len() int {
	return p.planner.Len()
}

// Compile compiles the collected entries. The planner is consumed.
func (p *Planner[V]) Compile() (*Tree[V], error) {
	tree, err := p.planner.Compile()
	if err != nil {
		return nil, err
	}
	tracer().Debugf("compiled mapped tree %s", tree.Name())
	return &Tree[V]{mapper: p.mapper, tree: tree}, nil
}

// Tree is a compiled tree queried by string paths.
type Tree[V any] struct {
	mapper Mapper
	tree   *statictree.Tree[uint64, V]
}

// Find returns the value stored for path. Find panics if path is empty.
func (t *Tree[V]) Find(path []string) (V, bool) {
	v, status := t.Lookup(path)
	return v, status == statictree.Found
}

// Lookup returns the value stored for path and the lookup status.
// Lookup panics if path is empty.
func (t *Tree[V]) Lookup(path []string) (value V, status statictree.Status) {
	if len(path) == 0 {
		panic(statictree.ErrEmptyKey)
	}
	keys, ok := t.mapper.Resolve(path)
	if !ok {
		return value, statictree.NotFound
	}
	return t.tree.Lookup(keys)
}

// Compiled returns the underlying integer-keyed tree.
func (t *Tree[V]) Compiled() *statictree.Tree[uint64, V] {
	return t.tree
}

// Close releases the underlying tree.
func (t *Tree[V]) Close() error {
	return t.tree.Close()
}
