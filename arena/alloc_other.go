//go:build !unix

package arena

func allocOffHeap(size, align int) ([]byte, func([]byte) error, Backing, error) {
	tracer().Infof("off-heap arenas are not supported on this platform, using heap")
	return allocHeap(size, align), nil, Heap, nil
}
