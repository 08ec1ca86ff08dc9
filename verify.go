package statictree

import (
	"fmt"

	"github.com/npillmayer/statictree/arena"
)

// Verify checks the layout of the tree's arena: every children block lies
// within the arena and is aligned, no record is claimed by more than one
// block or overlaps the root, every record is reached exactly once and no
// bytes are left unused. Errors wrap ErrCorrupt.
//
// A tree produced by Compile always verifies; Verify exists for diagnostics.
func (t *Tree[K, V]) Verify() error {
	size := t.view.Len()
	if size == 0 || size%RecordBytes != 0 {
		return fmt.Errorf("%w: arena size %d is not a positive multiple of %d", ErrCorrupt, size, RecordBytes)
	}
	total := size / RecordBytes
	claimed := make([]bool, total)
	claimed[0] = true // the root record
	reached := 1
	stack := []int{0}
	for len(stack) > 0 {
		off := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		r := arena.Read(t.view, codec, off)
		if err := t.checkRecord(off, r); err != nil {
			return err
		}
		if !r.hasChildren() {
			continue
		}
		base := int(r.childrenOffset)
		count := int(r.childCount)
		if base%RecordBytes != 0 || base < 0 || base+count*RecordBytes > size {
			return fmt.Errorf("%w: record at %d: children block [%d, %d) outside arena of %d bytes",
				ErrCorrupt, off, base, base+count*RecordBytes, size)
		}
		for j := 0; j < count; j++ {
			idx := base/RecordBytes + j
			if claimed[idx] {
				return fmt.Errorf("%w: record at %d: child slot %d already claimed",
					ErrCorrupt, off, idx*RecordBytes)
			}
			claimed[idx] = true
			reached++
			stack = append(stack, idx*RecordBytes)
		}
	}
	if reached != total {
		return fmt.Errorf("%w: %d of %d records reachable", ErrCorrupt, reached, total)
	}
	return nil
}

func (t *Tree[K, V]) checkRecord(off int, r record) error {
	if r.childCount < 0 {
		return fmt.Errorf("%w: record at %d: negative child count %d", ErrCorrupt, off, r.childCount)
	}
	if r.hasChildren() != (r.childCount > 0) {
		return fmt.Errorf("%w: record at %d: child count %d with children offset %d",
			ErrCorrupt, off, r.childCount, r.childrenOffset)
	}
	if r.value != noValue && (r.value < 0 || int(r.value) >= t.values.len()) {
		return fmt.Errorf("%w: record at %d: value slot %d out of range", ErrCorrupt, off, r.value)
	}
	if off != 0 && (r.key == 0 || int(r.key) > len(t.symbols)) {
		return fmt.Errorf("%w: record at %d: key symbol %d out of range", ErrCorrupt, off, r.key)
	}
	return nil
}
