//go:build unix

package arena

import (
	"fmt"

	"golang.org/x/sys/unix"
)

func allocOffHeap(size, align int) ([]byte, func([]byte) error, Backing, error) {
	if size == 0 {
		return allocHeap(0, align), nil, Heap, nil
	}
	if page := unix.Getpagesize(); align > page {
		return nil, nil, OffHeap, fmt.Errorf("alignment %d exceeds page size %d", align, page)
	}
	prot := unix.PROT_READ | unix.PROT_WRITE
	flags := unix.MAP_ANON | unix.MAP_PRIVATE
	data, err := unix.Mmap(-1, 0, size, prot, flags)
	if err != nil {
		return nil, nil, OffHeap, err
	}
	return data, unix.Munmap, OffHeap, nil
}
