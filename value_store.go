package statictree

import "fmt"

const noValue = -1

// valueStore keeps the values of a compiled tree, indexed by the value slot of
// their record. Values are held outside of the arena so that the arena stays
// free of Go pointers.
type valueStore[V any] struct {
	values []V
}

func newValueStore[V any](capacity int) *valueStore[V] {
	return &valueStore[V]{
		values: make([]V, 0, capacity),
	}
}

// put appends v and returns its slot.
func (s *valueStore[V]) put(v V) int32 {
	s.values = append(s.values, v)
	return int32(len(s.values) - 1)
}

// get returns the value at slot. Slot noValue yields false.
func (s *valueStore[V]) get(slot int32) (v V, ok bool) {
	if slot == noValue {
		return v, false
	}
	if slot < 0 || int(slot) >= len(s.values) {
		panic(fmt.Sprintf("statictree: value slot %d out of range [0, %d)", slot, len(s.values)))
	}
	return s.values[slot], true
}

func (s *valueStore[V]) len() int {
	return len(s.values)
}
