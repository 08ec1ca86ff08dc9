package arena

import (
	"errors"
	"fmt"
	"math"
)

// MaxSize is the largest arena that can be allocated. Offsets into an arena
// are stored as 32-bit signed integers by the structures built on top of it.
const MaxSize = math.MaxInt32

var (
	// ErrAllocationFailed is returned when memory for an arena cannot be obtained.
	ErrAllocationFailed = errors.New("arena: allocation failed")
	// ErrFrozen is the panic value for writes to an arena after Freeze.
	ErrFrozen = errors.New("arena: arena has been frozen")
	// ErrReleased is the panic value for access to released memory.
	ErrReleased = errors.New("arena: memory has been released")
)

func outOfBounds(off, size, length int) string {
	return fmt.Sprintf("arena: access [%d, %d) out of bounds for arena of %d bytes", off, off+size, length)
}

func misaligned(off, align int) string {
	return fmt.Sprintf("arena: offset %d is not aligned to %d", off, align)
}
