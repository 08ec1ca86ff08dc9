package arena

import (
	"fmt"
	"unsafe"
)

// Backing selects where the memory of an arena comes from.
type Backing int

const (
	// Heap allocates the arena as a Go byte slice.
	Heap Backing = iota
	// OffHeap maps anonymous memory outside of the Go heap. Platforms without
	// mmap fall back to Heap.
	OffHeap
)

func (b Backing) String() string {
	switch b {
	case Heap:
		return "heap"
	case OffHeap:
		return "off-heap"
	}
	return fmt.Sprintf("Backing(%d)", int(b))
}

// Option configures an arena.
type Option func(*config)

type config struct {
	backing Backing
}

// WithBacking selects the memory backing of an arena.
func WithBacking(b Backing) Option {
	return func(c *config) {
		c.backing = b
	}
}

// Arena is a fixed-size memory region under construction. It is owned by a
// single writer until Freeze hands the memory over to a View.
type Arena struct {
	buf     []byte
	align   int
	backing Backing
	release func([]byte) error
	frozen  bool
}

// New allocates an arena of exactly size bytes with its base address aligned
// to align, which has to be a power of two.
func New(size, align int, opts ...Option) (*Arena, error) {
	cfg := config{backing: Heap}
	for _, opt := range opts {
		opt(&cfg)
	}
	if align <= 0 || align&(align-1) != 0 {
		return nil, fmt.Errorf("%w: alignment %d is not a power of two", ErrAllocationFailed, align)
	}
	if size < 0 || size > MaxSize {
		return nil, fmt.Errorf("%w: size %d not in [0, %d]", ErrAllocationFailed, size, MaxSize)
	}
	a := &Arena{align: align, backing: cfg.backing}
	var err error
	switch cfg.backing {
	case OffHeap:
		a.buf, a.release, a.backing, err = allocOffHeap(size, align)
		if err != nil {
			tracer().Errorf("cannot map %d bytes off-heap: %v", size, err)
			return nil, fmt.Errorf("%w: %v", ErrAllocationFailed, err)
		}
	default:
		a.buf = allocHeap(size, align)
		a.backing = Heap
	}
	tracer().Debugf("allocated %s arena of %d bytes, alignment %d", a.backing, size, align)
	return a, nil
}

// allocHeap returns a zeroed slice of length size whose first byte is
// aligned to align.
func allocHeap(size, align int) []byte {
	if size == 0 {
		return []byte{}
	}
	buf := make([]byte, size+align-1)
	addr := uintptr(unsafe.Pointer(&buf[0])) //nolint:gosec // address is only inspected for alignment
	shift := int((uintptr(align) - addr&uintptr(align-1)) & uintptr(align-1))
	return buf[shift : shift+size : shift+size]
}

// Len returns the size of the arena in bytes.
func (a *Arena) Len() int {
	return len(a.buf)
}

// Alignment returns the base alignment the arena was allocated with.
func (a *Arena) Alignment() int {
	return a.align
}

// Backing returns the memory backing actually in use.
func (a *Arena) Backing() Backing {
	return a.backing
}

func (a *Arena) writable() []byte {
	if a.frozen {
		panic(ErrFrozen)
	}
	if a.buf == nil {
		panic(ErrReleased)
	}
	return a.buf
}

// Write encodes v into the arena at offset off.
func Write[T any](a *Arena, c Codec[T], off int, v T) {
	c.Encode(window(a.writable(), off, c.Size(), c.Align()), v)
}

// Load decodes the record at offset off from an arena under construction.
func Load[T any](a *Arena, c Codec[T], off int) T {
	return c.Decode(window(a.writable(), off, c.Size(), c.Align()))
}

// Update decodes the record at offset off, lets fn modify it and writes it
// back in place.
func Update[T any](a *Arena, c Codec[T], off int, fn func(*T)) {
	w := window(a.writable(), off, c.Size(), c.Align())
	v := c.Decode(w)
	fn(&v)
	c.Encode(w, v)
}

// Freeze publishes the arena's memory as a read-only View. The Arena must not
// be used afterwards; every further access panics.
func (a *Arena) Freeze() *View {
	v := &View{
		buf:     a.writable(),
		release: a.release,
		backing: a.backing,
	}
	a.buf, a.release, a.frozen = nil, nil, true
	return v
}

// Release gives back the memory of an arena which has not been frozen.
// Releasing a frozen arena is a no-op, as its memory is owned by the View.
func (a *Arena) Release() error {
	if a.frozen || a.buf == nil {
		return nil
	}
	buf, release := a.buf, a.release
	a.buf, a.release = nil, nil
	if release != nil {
		return release(buf)
	}
	return nil
}
