package alloc

// ArenaAllocator is a fixed-block-size allocator: it carves a slab of
// blockCount blocks of blockSize bytes each out of one backing allocation,
// and services Alloc requests that fit within a block from a freelist
// instead of going back to the Go runtime. Requests larger than blockSize
// fall back to a plain make, exactly as an embedder would expect from the
// "custom block-allocator" spec.md §1 calls out as a host collaborator
// specified only by interface.
//
// ArenaAllocator is not safe for concurrent use, matching the
// single-threaded interpreter it is meant to back.
type ArenaAllocator struct {
	blockSize int
	slab      []byte
	free      [][]byte
	oversized int // count of requests that fell back to make, for diagnostics
}

// NewArenaAllocator allocates a slab of blockCount blocks of blockSize
// bytes each.
func NewArenaAllocator(blockCount, blockSize int) *ArenaAllocator {
	if blockCount < 1 {
		blockCount = 1
	}
	if blockSize < 1 {
		blockSize = 1
	}
	a := &ArenaAllocator{blockSize: blockSize, slab: make([]byte, blockCount*blockSize)}
	a.free = make([][]byte, 0, blockCount)
	for i := 0; i < blockCount; i++ {
		a.free = append(a.free, a.slab[i*blockSize:(i+1)*blockSize:(i+1)*blockSize])
	}
	return a
}

// Alloc returns a slice of length n. If n fits in a block and the freelist
// is non-empty, a slab block is reused; otherwise a fresh slice is made.
func (a *ArenaAllocator) Alloc(n int) []byte {
	if n <= a.blockSize && len(a.free) > 0 {
		b := a.free[len(a.free)-1][:n]
		a.free = a.free[:len(a.free)-1]
		for i := range b {
			b[i] = 0
		}
		return b
	}
	a.oversized++
	return make([]byte, n)
}

// Free returns b to the freelist if it is one of the arena's own blocks
// (identified by a capacity of blockSize and a start address at a block
// boundary of the slab); slices that came from the make fallback are left
// for the garbage collector.
func (a *ArenaAllocator) Free(b []byte) {
	if cap(b) != a.blockSize {
		return
	}
	p := &b[:1][0]
	for off := 0; off < len(a.slab); off += a.blockSize {
		if p == &a.slab[off] {
			a.free = append(a.free, b[:0:a.blockSize])
			return
		}
	}
}

// Stats reports the number of free blocks remaining and how many requests
// have overflowed the slab.
func (a *ArenaAllocator) Stats() (free, oversized int) {
	return len(a.free), a.oversized
}
