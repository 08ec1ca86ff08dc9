package arena

import "sync/atomic"

// View is the read-only, published form of an arena. It only returns decoded
// copies of records, so holders of a View cannot modify the memory. A View may
// be shared by any number of goroutines.
type View struct {
	buf     []byte
	release func([]byte) error
	backing Backing
	closed  atomic.Bool
}

// Read decodes the record at offset off.
func Read[T any](v *View, c Codec[T], off int) T {
	if v.closed.Load() {
		panic(ErrReleased)
	}
	return c.Decode(window(v.buf, off, c.Size(), c.Align()))
}

// Len returns the size of the viewed memory in bytes.
func (v *View) Len() int {
	return len(v.buf)
}

// Backing returns the memory backing of the view.
func (v *View) Backing() Backing {
	return v.backing
}

// Close releases the memory. It is idempotent. Close must not race with
// readers; reading after Close panics.
func (v *View) Close() error {
	if v.closed.Swap(true) {
		return nil
	}
	if v.release != nil {
		return v.release(v.buf)
	}
	return nil
}
