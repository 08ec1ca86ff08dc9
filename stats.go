package statictree

import (
	"github.com/npillmayer/statictree/arena"
)

// Stats reports shape and memory metrics of a compiled tree.
type Stats struct {
	Name      string
	Records   int // number of node records, including the synthetic root
	Values    int // number of records carrying a value
	Symbols   int // number of distinct key tokens
	Bytes     int // size of the arena
	Inner     int // number of records with children
	MaxFanout int // largest sibling block
	MaxDepth  int // longest key sequence
	Backing   string
}

// AvgFanout returns the mean number of children of records which have any.
func (s Stats) AvgFanout() float64 {
	if s.Inner == 0 {
		return 0
	}
	return float64(s.Records-1) / float64(s.Inner)
}

// Stats walks the tree breadth-first and collects its metrics.
func (t *Tree[K, V]) Stats() Stats {
	stats := Stats{
		Name:    t.name,
		Symbols: len(t.symbols),
		Bytes:   t.view.Len(),
		Backing: t.view.Backing().String(),
	}
	type item struct {
		r     record
		depth int
	}
	queue := []item{{r: arena.Read(t.view, codec, 0)}}
	for q := 0; q < len(queue); q++ {
		it := queue[q]
		stats.Records++
		if it.r.value != noValue {
			stats.Values++
		}
		stats.MaxDepth = max(stats.MaxDepth, it.depth)
		stats.MaxFanout = max(stats.MaxFanout, int(it.r.childCount))
		if !it.r.hasChildren() {
			continue
		}
		stats.Inner++
		off := int(it.r.childrenOffset)
		for j := int32(0); j < it.r.childCount; j++ {
			queue = append(queue, item{r: arena.Read(t.view, codec, off), depth: it.depth + 1})
			off += RecordBytes
		}
	}
	return stats
}
