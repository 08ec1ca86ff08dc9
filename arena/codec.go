package arena

// Codec describes the fixed binary layout of a record type T.
//
// Size and Align must be constant for a codec. Encode receives a window of
// exactly Size bytes, as does Decode.
type Codec[T any] interface {
	Size() int
	Align() int
	Encode(dst []byte, v T)
	Decode(src []byte) T
}

// window returns buf[off:off+size] after checking bounds and alignment.
func window(buf []byte, off, size, align int) []byte {
	if off < 0 || size < 0 || off > len(buf)-size {
		panic(outOfBounds(off, size, len(buf)))
	}
	if align > 1 && off&(align-1) != 0 {
		panic(misaligned(off, align))
	}
	return buf[off : off+size : off+size]
}
