package arena

import (
	"encoding/binary"
	"sync"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pair struct {
	a, b uint32
}

type pairCodec struct{}

func (pairCodec) Size() int  { return 8 }
func (pairCodec) Align() int { return 4 }

func (pairCodec) Encode(dst []byte, v pair) {
	binary.LittleEndian.PutUint32(dst[0:4], v.a)
	binary.LittleEndian.PutUint32(dst[4:8], v.b)
}

func (pairCodec) Decode(src []byte) pair {
	return pair{
		a: binary.LittleEndian.Uint32(src[0:4]),
		b: binary.LittleEndian.Uint32(src[4:8]),
	}
}

func TestAllocate(t *testing.T) {
	a, err := New(64, 1)
	require.NoError(t, err)
	assert.Equal(t, 64, a.Len())
	assert.Equal(t, Heap, a.Backing())
	require.NoError(t, a.Release())
	require.NoError(t, a.Release()) // second release is a no-op
}

func TestAllocateRejectsBadRequests(t *testing.T) {
	_, err := New(16, 3)
	require.ErrorIs(t, err, ErrAllocationFailed)
	_, err = New(-1, 4)
	require.ErrorIs(t, err, ErrAllocationFailed)
	_, err = New(MaxSize+1, 4)
	require.ErrorIs(t, err, ErrAllocationFailed)
}

func TestHeapBaseIsAligned(t *testing.T) {
	for _, align := range []int{1, 2, 4, 8, 16, 64} {
		a, err := New(40, align)
		require.NoError(t, err)
		addr := uintptr(unsafe.Pointer(&a.buf[0]))
		assert.Zero(t, addr%uintptr(align), "alignment %d", align)
		assert.Equal(t, 40, a.Len())
	}
}

func TestWriteFreezeRead(t *testing.T) {
	c := pairCodec{}
	a, err := New(4*c.Size(), c.Align())
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		Write(a, c, i*c.Size(), pair{a: uint32(i), b: uint32(i * 10)})
	}
	Update(a, c, 8, func(p *pair) { p.b = 99 })
	assert.Equal(t, pair{a: 1, b: 99}, Load[pair](a, c, 8))

	v := a.Freeze()
	assert.Equal(t, 32, v.Len())
	assert.Equal(t, pair{a: 0, b: 0}, Read[pair](v, c, 0))
	assert.Equal(t, pair{a: 1, b: 99}, Read[pair](v, c, 8))
	assert.Equal(t, pair{a: 3, b: 30}, Read[pair](v, c, 24))
	require.NoError(t, v.Close())
	require.NoError(t, v.Close())
}

func TestWriteAfterFreezePanics(t *testing.T) {
	c := pairCodec{}
	a, err := New(16, 4)
	require.NoError(t, err)
	_ = a.Freeze()
	assert.PanicsWithValue(t, ErrFrozen, func() {
		Write(a, c, 0, pair{})
	})
	require.NoError(t, a.Release())
}

func TestOutOfBoundsAndMisalignedAccessPanics(t *testing.T) {
	c := pairCodec{}
	a, err := New(16, 4)
	require.NoError(t, err)
	assert.Panics(t, func() { Write(a, c, 12, pair{}) })
	assert.Panics(t, func() { Write(a, c, -4, pair{}) })
	assert.Panics(t, func() { Write(a, c, 2, pair{}) })
	v := a.Freeze()
	assert.Panics(t, func() { Read[pair](v, c, 16) })
	require.NoError(t, v.Close())
	assert.PanicsWithValue(t, ErrReleased, func() { Read[pair](v, c, 0) })
}

func TestOffHeapArena(t *testing.T) {
	c := pairCodec{}
	a, err := New(4096, c.Align(), WithBacking(OffHeap))
	require.NoError(t, err)
	assert.Equal(t, 4096, a.Len())
	for off := 0; off < a.Len(); off += c.Size() {
		Write(a, c, off, pair{a: uint32(off), b: 1})
	}
	v := a.Freeze()
	var wg sync.WaitGroup
	for g := 0; g < 4; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for off := 0; off < v.Len(); off += c.Size() {
				if got := Read[pair](v, c, off); got.a != uint32(off) {
					t.Errorf("offset %d: got %d", off, got.a)
					return
				}
			}
		}()
	}
	wg.Wait()
	require.NoError(t, v.Close())
}

func TestZeroSizedArena(t *testing.T) {
	a, err := New(0, 4, WithBacking(OffHeap))
	require.NoError(t, err)
	assert.Equal(t, 0, a.Len())
	v := a.Freeze()
	assert.Panics(t, func() { Read[pair](v, pairCodec{}, 0) })
	require.NoError(t, v.Close())
}
