package statictree

import (
	"fmt"

	"github.com/npillmayer/statictree/arena"
)

// Planner collects entries and compiles them into a Tree. A planner is
// used by a single goroutine and is consumed by Compile: afterwards Add and
// Compile panic.
type Planner[K comparable, V any] struct {
	root     *countedNode[K, V]
	entries  int
	opts     options
	consumed bool
}

// NewPlanner returns an empty planner.
func NewPlanner[K comparable, V any](opts ...Option) *Planner[K, V] {
	p := &Planner[K, V]{opts: defaultOptions()}
	for _, opt := range opts {
		opt(&p.opts)
	}
	var rootKey K
	p.root = newCountedNode[K, V](rootKey)
	return p
}

// Add stores value at the path denoted by key, replacing an earlier value for
// the same path. An empty key is ignored. Add returns the planner for chaining.
func (p *Planner[K, V]) Add(key []K, value V) *Planner[K, V] {
	p.mustBeOpen()
	if len(key) == 0 {
		tracer().Debugf("%s: ignoring entry with empty key", p.opts.name)
		return p
	}
	if p.root.insert(key, value) {
		p.entries++
	}
	return p
}

// Len returns the number of distinct entries added so far.
func (p *Planner[K, V]) Len() int {
	return p.entries
}

// NodeCount returns the number of nodes of the planned trie, including the
// synthetic root.
func (p *Planner[K, V]) NodeCount() int {
	p.mustBeOpen()
	count := 0
	queue := []*countedNode[K, V]{p.root}
	for q := 0; q < len(queue); q++ {
		count++
		queue = append(queue, queue[q].children...)
	}
	return count
}

// ArenaSize returns the exact size in bytes of the compiled tree's arena.
func (p *Planner[K, V]) ArenaSize() int {
	return p.NodeCount() * RecordBytes
}

func (p *Planner[K, V]) mustBeOpen() {
	if p.consumed {
		panic(ErrCompiled)
	}
}

// Compile flattens the planned trie into an arena and returns the read-only
// tree. The planner is consumed, even if compilation fails.
func (p *Planner[K, V]) Compile() (*Tree[K, V], error) {
	nodes := p.NodeCount()
	p.consumed = true
	if nodes > arena.MaxSize/RecordBytes {
		return nil, fmt.Errorf("statictree: cannot compile %s with %d nodes: %w",
			p.opts.name, nodes, ErrAllocationFailed)
	}
	size := nodes * RecordBytes
	mem, err := arena.New(size, codec.Align(), arena.WithBacking(p.opts.backing))
	if err != nil {
		return nil, fmt.Errorf("statictree: cannot compile %s: %w", p.opts.name, err)
	}
	p.root.sort(p.opts.ordering)
	c := &compiler[K, V]{
		mem:     mem,
		symbols: make(map[K]uint32),
		values:  newValueStore[V](p.entries),
	}
	end := c.layout(p.root)
	assert(end == size, fmt.Sprintf("statictree: layout ended at %d, arena has %d bytes", end, size))
	tree := &Tree[K, V]{
		name:    p.opts.name,
		view:    mem.Freeze(),
		symbols: c.symbols,
		values:  c.values,
	}
	p.root = nil
	stats := tree.Stats()
	tracer().Infof("compiled %s: records=%d values=%d symbols=%d bytes=%d fanout=%d depth=%d backing=%s",
		stats.Name, stats.Records, stats.Values, stats.Symbols, stats.Bytes,
		stats.MaxFanout, stats.MaxDepth, stats.Backing)
	return tree, nil
}

// compiler holds the state of a single layout pass.
type compiler[K comparable, V any] struct {
	mem     *arena.Arena
	symbols map[K]uint32
	values  *valueStore[V]
}

// layout writes every node below root into the arena and returns the final
// allocation cursor. Each record is written exactly once, by the parent
// reserving the children block; the node itself later patches in its own
// children offset. The cursor only grows, so sibling blocks cannot overlap.
func (c *compiler[K, V]) layout(root *countedNode[K, V]) int {
	cursor := RecordBytes
	childrenOffset := int32(noOffset)
	if len(root.children) > 0 {
		childrenOffset = RecordBytes
	}
	arena.Write(c.mem, codec, 0, record{
		value:          noValue,
		childCount:     int32(len(root.children)),
		childrenOffset: childrenOffset,
	})
	root.offset = 0
	root.childrenOffset = int32(cursor)
	cursor = c.reserve(root, cursor)
	root.visited = true

	stack := []*countedNode[K, V]{root}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !node.visited {
			node.childrenOffset = int32(cursor)
			if len(node.children) > 0 {
				arena.Update(c.mem, codec, int(node.offset), func(r *record) {
					r.childrenOffset = node.childrenOffset
				})
			}
			cursor = c.reserve(node, cursor)
			node.visited = true
		}
		child, i := node.nextChild()
		if child == nil {
			continue // subtree of node is complete
		}
		child.offset = node.childrenOffset + i*RecordBytes
		stack = append(stack, node, child)
	}
	return cursor
}

// reserve writes the records of the children of node as a contiguous block
// starting at cursor and returns the cursor behind the block. Children
// offsets are left unresolved.
func (c *compiler[K, V]) reserve(node *countedNode[K, V], cursor int) int {
	for _, child := range node.children {
		slot := int32(noValue)
		if child.hasValue {
			slot = c.values.put(child.value)
		}
		arena.Write(c.mem, codec, cursor, record{
			key:            c.symbol(child.key),
			value:          slot,
			childCount:     int32(len(child.children)),
			childrenOffset: noOffset,
		})
		cursor += RecordBytes
	}
	return cursor
}

// symbol returns the dense symbol for key, assigning the next free one if
// key is new. Symbol 0 is reserved for the synthetic root.
func (c *compiler[K, V]) symbol(key K) uint32 {
	if sym, ok := c.symbols[key]; ok {
		return sym
	}
	sym := uint32(len(c.symbols) + 1)
	c.symbols[key] = sym
	return sym
}
