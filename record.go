package statictree

import (
	"encoding/binary"

	"github.com/npillmayer/statictree/arena"
)

// RecordBytes is the fixed byte width of a compiled node record.
//
// Layout (little endian, 4-byte aligned):
//   - key             uint32  dense key symbol; 0 for the synthetic root
//   - value           int32   slot in the value table, or -1
//   - child_count     int32   number of direct children
//   - children_offset int32   byte offset of the first child record, or -1
const RecordBytes = 16

const noOffset = -1

type record struct {
	key            uint32
	value          int32
	childCount     int32
	childrenOffset int32
}

func (r record) hasChildren() bool {
	return r.childrenOffset != noOffset
}

type recordCodec struct{}

var codec arena.Codec[record] = recordCodec{}

func (recordCodec) Size() int  { return RecordBytes }
func (recordCodec) Align() int { return 4 }

func (recordCodec) Encode(dst []byte, r record) {
	binary.LittleEndian.PutUint32(dst[0:4], r.key)
	binary.LittleEndian.PutUint32(dst[4:8], uint32(r.value))
	binary.LittleEndian.PutUint32(dst[8:12], uint32(r.childCount))
	binary.LittleEndian.PutUint32(dst[12:16], uint32(r.childrenOffset))
}

func (recordCodec) Decode(src []byte) record {
	return record{
		key:            binary.LittleEndian.Uint32(src[0:4]),
		value:          int32(binary.LittleEndian.Uint32(src[4:8])),
		childCount:     int32(binary.LittleEndian.Uint32(src[8:12])),
		childrenOffset: int32(binary.LittleEndian.Uint32(src[12:16])),
	}
}
