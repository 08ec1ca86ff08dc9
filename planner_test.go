package statictree

import (
	"testing"

	tassert "github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/npillmayer/statictree/arena"
)

func scenarioPlanner(opts ...Option) *Planner[string, int] {
	return NewPlanner[string, int](opts...).
		Add([]string{"a", "b", "c"}, 1).
		Add([]string{"a", "b", "d"}, 2).
		Add([]string{"e", "f"}, 3)
}

func rawRecord[K comparable, V any](tree *Tree[K, V], off int) record {
	return arena.Read(tree.view, codec, off)
}

// The layout of the scenario is fully determined: first-level children follow
// the root, every other block is reserved when its parent is expanded in
// depth-first order.
func TestCompileLayout(t *testing.T) {
	tree, err := scenarioPlanner().Compile()
	require.NoError(t, err)
	sym := func(k string) uint32 {
		s, ok := tree.symbols[k]
		require.True(t, ok, "no symbol for %q", k)
		return s
	}
	want := []struct {
		off int
		rec record
	}{
		{0, record{key: 0, value: noValue, childCount: 2, childrenOffset: 16}},
		{16, record{key: sym("a"), value: noValue, childCount: 1, childrenOffset: 48}},
		{32, record{key: sym("e"), value: noValue, childCount: 1, childrenOffset: 96}},
		{48, record{key: sym("b"), value: noValue, childCount: 2, childrenOffset: 64}},
		{64, record{key: sym("c"), value: 0, childCount: 0, childrenOffset: noOffset}},
		{80, record{key: sym("d"), value: 1, childCount: 0, childrenOffset: noOffset}},
		{96, record{key: sym("f"), value: 2, childCount: 0, childrenOffset: noOffset}},
	}
	require.Equal(t, len(want)*RecordBytes, tree.Size())
	for _, w := range want {
		tassert.Equal(t, w.rec, rawRecord(tree, w.off), "record at offset %d", w.off)
	}
	tassert.Equal(t, []int{1, 2, 3}, tree.values.values)
}

func TestArenaSizeIsExact(t *testing.T) {
	p := scenarioPlanner()
	tassert.Equal(t, 7, p.NodeCount())
	size := p.ArenaSize()
	tassert.Equal(t, 7*RecordBytes, size)
	tree, err := p.Compile()
	require.NoError(t, err)
	tassert.Equal(t, size, tree.Size())
	tassert.Equal(t, 7, tree.Stats().Records)
}

func TestRepeatedInsertKeepsLayout(t *testing.T) {
	p := scenarioPlanner().Add([]string{"a", "b", "c"}, 10).Add([]string{"a", "b", "c"}, 11)
	tassert.Equal(t, 3, p.Len())
	tassert.Equal(t, 7, p.NodeCount())
	tree, err := p.Compile()
	require.NoError(t, err)
	v, ok := tree.Find([]string{"a", "b", "c"})
	require.True(t, ok)
	tassert.Equal(t, 11, v)
	tassert.Equal(t, int32(2), rawRecord(tree, 0).childCount)
	tassert.Equal(t, int32(2), rawRecord(tree, 48).childCount)
	tassert.Equal(t, 3, tree.Len())
}

func TestCompileEmptyPlanner(t *testing.T) {
	p := NewPlanner[string, int]().Add(nil, 1).Add([]string{}, 2)
	tassert.Equal(t, 0, p.Len())
	tree, err := p.Compile()
	require.NoError(t, err)
	tassert.Equal(t, RecordBytes, tree.Size())
	tassert.Equal(t, record{value: noValue, childrenOffset: noOffset}, rawRecord(tree, 0))
	_, status := tree.Lookup([]string{"a"})
	tassert.Equal(t, NotFound, status)
	require.NoError(t, tree.Verify())
}

func TestPlannerIsConsumedByCompile(t *testing.T) {
	p := scenarioPlanner()
	_, err := p.Compile()
	require.NoError(t, err)
	tassert.PanicsWithValue(t, ErrCompiled, func() { p.Add([]string{"x"}, 1) })
	tassert.PanicsWithValue(t, ErrCompiled, func() { _, _ = p.Compile() })
	tassert.PanicsWithValue(t, ErrCompiled, func() { p.NodeCount() })
}

func TestCompileOffHeap(t *testing.T) {
	tree, err := scenarioPlanner(WithOffHeap(), WithName("offheap")).Compile()
	require.NoError(t, err)
	defer func() { require.NoError(t, tree.Close()) }()
	tassert.Equal(t, "offheap", tree.Name())
	v, ok := tree.Find([]string{"e", "f"})
	require.True(t, ok)
	tassert.Equal(t, 3, v)
	require.NoError(t, tree.Verify())
}

func TestAssertPanicsOnViolation(t *testing.T) {
	tassert.NotPanics(t, func() { assert(true, "holds") })
	tassert.PanicsWithValue(t, "broken", func() { assert(false, "broken") })
}
