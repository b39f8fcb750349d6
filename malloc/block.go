package malloc

import "unsafe"

// memblock one contiguous buffer of memory, obtained from OS,
// exclusively owned by an arena and released exactly once.
// Invariant: 0 <= offset <= size.
type memblock struct {
	buf    []byte         // OS mapped buffer, outside the Go heap
	base   unsafe.Pointer // &buf[0], cached
	size   int64          // len(buf)
	offset int64          // bytes consumed so far
}

func newmemblock(size int64) *memblock {
	buf := osmalloc(size)
	return &memblock{buf: buf, base: unsafe.Pointer(&buf[0]), size: size}
}

// alloc bump `size` aligned bytes out of this block, with padding if
// the current offset does not satisfy `align`. Returns nil if the
// padded request does not fit, the block is left untouched.
func (block *memblock) alloc(size, align int64) unsafe.Pointer {
	curr := uintptr(block.base) + uintptr(block.offset)
	// round up to the next aligned address, align is a power of 2.
	aligned := (curr + uintptr(align-1)) &^ uintptr(align-1)
	padding := int64(aligned - curr)
	if newoff := block.offset + padding + size; newoff <= block.size {
		block.offset = newoff
		return unsafe.Pointer(aligned)
	}
	return nil
}
