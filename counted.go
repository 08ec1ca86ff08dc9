package statictree

import "sort"

// countedNode is a build node of the planner's trie. Besides key and value it
// counts the insertions passing through it and carries bookkeeping for the
// compiler.
type countedNode[K comparable, V any] struct {
	key      K
	value    V
	hasValue bool
	weight   int32 // number of inserts which descended through this node
	children []*countedNode[K, V]

	// set by the compiler
	visited        bool  // children block has been reserved
	offset         int32 // offset of this node's record
	childrenOffset int32 // offset of the first record of the children block
	built          int32 // number of children handed out by nextChild
}

func newCountedNode[K comparable, V any](key K) *countedNode[K, V] {
	return &countedNode[K, V]{
		key:            key,
		offset:         noOffset,
		childrenOffset: noOffset,
	}
}

// insert stores value at the path denoted by key, below n. It reports
// whether a new value has been created (rather than overwritten).
func (n *countedNode[K, V]) insert(key []K, value V) bool {
	for _, k := range key {
		n.weight++
		next := n.child(k)
		if next == nil {
			next = newCountedNode[K, V](k)
			n.children = append(n.children, next)
		}
		n = next
	}
	created := !n.hasValue
	n.value, n.hasValue = value, true
	return created
}

func (n *countedNode[K, V]) child(key K) *countedNode[K, V] {
	for _, c := range n.children {
		if c.key == key {
			return c
		}
	}
	return nil
}

func (n *countedNode[K, V]) find(key []K) *countedNode[K, V] {
	for _, k := range key {
		if n = n.child(k); n == nil {
			return nil
		}
	}
	return n
}

// sort arranges the children of every node in the subtree of n according to
// ordering. Sorting is stable, so ties keep their insertion order.
func (n *countedNode[K, V]) sort(ordering Ordering) {
	less := ordering.comparator()
	if less == nil {
		return
	}
	stack := []*countedNode[K, V]{n}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		children := node.children
		sort.SliceStable(children, func(i, j int) bool {
			return less(children[i].weight, len(children[i].children),
				children[j].weight, len(children[j].children))
		})
		stack = append(stack, children...)
	}
}

// nextChild returns the next child not yet handed out, together with its
// index in the children list. It returns nil if all children are consumed.
// The children list itself is left untouched.
func (n *countedNode[K, V]) nextChild() (*countedNode[K, V], int32) {
	if int(n.built) >= len(n.children) {
		return nil, noOffset
	}
	i := n.built
	n.built++
	return n.children[i], i
}

// comparator returns a less-function over (weight, fanout) pairs, or nil if
// the ordering leaves children unsorted. Both orderings are descending.
func (o Ordering) comparator() func(w1 int32, f1 int, w2 int32, f2 int) bool {
	switch o {
	case ByWeight:
		return func(w1 int32, _ int, w2 int32, _ int) bool { return w1 > w2 }
	case ByFanout:
		return func(_ int32, f1 int, _ int32, f2 int) bool { return f1 > f2 }
	}
	return nil
}
