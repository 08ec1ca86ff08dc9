/*
Package arena provides a fixed-size, byte-addressable memory region for
flattened data structures.

An arena lives through two phases. While it is being filled, it is held as an
*Arena by exactly one builder, which may write records at arbitrary aligned
offsets. Freeze publishes the memory as a *View and invalidates the Arena;
a View only hands out decoded copies of records and therefore cannot be used
to mutate the region. Views are safe for concurrent readers.

Records are described by a Codec, which fixes the binary layout, size and
alignment of a Go type. Offsets handed to Read, Write and Update must be
aligned to the codec's alignment and lie completely within the region;
anything else is a programming error and panics.

Memory is either taken from the Go heap (the default) or mapped anonymously
outside of the Go heap (OffHeap). Off-heap memory has to be given back with
View.Close or Arena.Release.

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package arena

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'statictree.arena'
func tracer() tracing.Trace {
	return tracing.Select("statictree.arena")
}
