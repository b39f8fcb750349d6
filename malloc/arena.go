// Functions and methods are not thread safe.

package malloc

import "fmt"
import "unsafe"

import "github.com/bnclabs/marena/lib"
import s "github.com/bnclabs/gosettings"
import humanize "github.com/dustin/go-humanize"

// Arena defines a monotonic bump-pointer allocator over a growing
// sequence of memory blocks. Arena is a single-owner resource, use it
// via pointer and never copy it. Arenas can be created with following
// parameters:
//
//   blocksize : size of the initial block and minimum size of every
//               growth block, in bytes.
type Arena struct {
	blocks    []*memblock
	curblock  int       // index into blocks, active block being bumped
	finlatest *finchunk // registry head, newest chunk first

	// configuration
	blocksize int64 // minimum size for a new memory block
	capacity  int64 // sum of all block sizes obtained from OS
	setts     s.Settings
	logprefix string

	// statistics
	n_allocs     int64
	n_finalizers int64
	h_allocsz    *lib.HistogramInt64
	av_reclaim   *lib.AverageInt64
}

// NewArena create a new memory arena with one initial block. Panics
// with ErrorOutofMemory if OS fails to map the block.
func NewArena(name string, setts s.Settings) *Arena {
	setts = make(s.Settings).Mixin(Defaultsettings(), setts)
	arena := &Arena{
		blocks:     make([]*memblock, 0, 8),
		setts:      setts,
		logprefix:  fmt.Sprintf("ARENA [%v]", name),
		h_allocsz:  lib.NewhistorgramInt64(32, 4096, 32),
		av_reclaim: &lib.AverageInt64{},
	}
	arena.readsettings(setts)
	if arena.blocksize <= 0 {
		panicerr("%v invalid blocksize %v", arena.logprefix, arena.blocksize)
	} else if arena.blocksize > Maxblocksize {
		fmsg := "%v blocksize %v exceeds %v"
		panicerr(fmsg, arena.logprefix, arena.blocksize, Maxblocksize)
	}
	arena.addblock(arena.blocksize)
	arena.logarenasettings()
	return arena
}

func (arena *Arena) readsettings(setts s.Settings) {
	arena.blocksize = setts.Int64("blocksize")
}

//---- operations

// Alloc implement api.Mallocer{} interface. Allocate `size` bytes
// aligned to `align`, a power of 2, from the active block. Grows the
// arena by one block when the active block cannot satisfy the
// request. Returned memory remains valid until the next Clear or
// Release.
func (arena *Arena) Alloc(size, align int64) unsafe.Pointer {
	if arena.blocks == nil {
		panicerr("%v arena released", arena.logprefix)
	} else if size <= 0 {
		return nil
	}
	validalign(align) // debug builds only

	arena.n_allocs++
	arena.h_allocsz.Add(size)

	// fast path, offset is already aligned and request fits.
	block := arena.blocks[arena.curblock]
	if endoff := block.offset + size; endoff <= block.size {
		ptr := unsafe.Pointer(uintptr(block.base) + uintptr(block.offset))
		if uintptr(ptr)&uintptr(align-1) == 0 {
			block.offset = endoff
			return ptr
		}
	}
	// padded path, bump past the alignment padding.
	if ptr := block.alloc(size, align); ptr != nil {
		return ptr
	}
	// grow and retry, guaranteed to fit in the new block.
	arena.addblock(maxint64(size+align-1, arena.blocksize))
	return arena.blocks[arena.curblock].alloc(size, align)
}

// Allocbytes implement api.Mallocer{} interface. Allocate `n` bytes
// of 64-bit aligned memory as a byte-slice, nil if `n` is zero or
// negative.
func (arena *Arena) Allocbytes(n int64) []byte {
	if n <= 0 {
		return nil
	}
	return unsafe.Slice((*byte)(arena.Alloc(n, Alignment)), n)
}

// Clear implement api.Mallocer{} interface. Run every pending
// finalizer, in the reverse order of construction, and reset block
// offsets to zero. Blocks are retained for reuse, capacity does not
// shrink.
func (arena *Arena) Clear() {
	if arena.blocks == nil {
		panicerr("%v arena released", arena.logprefix)
	}
	for chunk := arena.finlatest; chunk != nil; chunk = chunk.prev {
		for i := chunk.n - 1; i >= 0; i-- {
			chunk.nodes[i].fn(chunk.nodes[i].obj)
		}
	}
	arena.finlatest = nil

	reclaimed := int64(0)
	for _, block := range arena.blocks {
		reclaimed += block.offset
		block.offset = 0
		poisonblock(block.buf) // debug builds only
	}
	arena.curblock = 0
	arena.av_reclaim.Add(reclaimed)
}

// Release implement api.Mallocer{} interface. Clear the arena and
// give every block back to the OS. Arena is unusable after this
// call, further operations panic.
func (arena *Arena) Release() {
	arena.Clear()
	for _, block := range arena.blocks {
		osfree(block.buf)
	}
	debugf("%v released %v blocks\n", arena.logprefix, len(arena.blocks))
	arena.blocks, arena.finlatest = nil, nil
	arena.capacity, arena.curblock = 0, 0
}

//---- statistics and maintenance

// Info implement api.Mallocer{} interface.
func (arena *Arena) Info() (capacity, allocated, overhead int64) {
	capacity = arena.capacity
	for _, block := range arena.blocks {
		allocated += block.offset
	}
	self := int64(unsafe.Sizeof(*arena))
	slicesz := int64(cap(arena.blocks)) * int64(unsafe.Sizeof(&memblock{}))
	overhead = self + slicesz
	return
}

// Blocksize implement api.Mallocer{} interface.
func (arena *Arena) Blocksize() int64 {
	return arena.blocksize
}

// Numblocks implement api.Mallocer{} interface.
func (arena *Arena) Numblocks() int64 {
	return int64(len(arena.blocks))
}

// Utilization return allocated bytes as a percentage of arena
// capacity.
func (arena *Arena) Utilization() float64 {
	capacity, allocated, _ := arena.Info()
	if capacity == 0 {
		return 0
	}
	return (float64(allocated) / float64(capacity)) * 100
}

// Stats return a map of data-structure statistics and memory
// accounting.
func (arena *Arena) Stats() map[string]interface{} {
	capacity, allocated, overhead := arena.Info()
	stats := map[string]interface{}{
		"blocksize":    arena.blocksize,
		"numblocks":    arena.Numblocks(),
		"capacity":     capacity,
		"allocated":    allocated,
		"overhead":     overhead,
		"n_allocs":     arena.n_allocs,
		"n_finalizers": arena.n_finalizers,
	}
	for k, v := range arena.h_allocsz.Fullstats() {
		stats["allocsize."+k] = v
	}
	for k, v := range arena.av_reclaim.Stats() {
		stats["reclaimed."+k] = v
	}
	return stats
}

// Validate arena invariants, panics on failure. Meant for tests and
// for applications that want a sanity check at lifecycle boundaries.
func (arena *Arena) Validate() {
	if arena.blocks == nil {
		panicerr("%v arena released", arena.logprefix)
	}
	capacity := int64(0)
	for i, block := range arena.blocks {
		if block.offset < 0 || block.offset > block.size {
			fmsg := "%v block %v offset %v outside [0, %v]"
			panicerr(fmsg, arena.logprefix, i, block.offset, block.size)
		}
		capacity += block.size
	}
	if capacity != arena.capacity {
		fmsg := "%v capacity mismatch %v != %v"
		panicerr(fmsg, arena.logprefix, capacity, arena.capacity)
	}
	if arena.curblock >= len(arena.blocks) {
		panicerr("%v invalid active block %v", arena.logprefix, arena.curblock)
	}
}

//---- local functions

// addblock grow the arena with a new block of `size` bytes and make
// it the active block. Growth is append-only, blocks are never
// resized, moved or compacted.
func (arena *Arena) addblock(size int64) {
	arena.blocks = append(arena.blocks, newmemblock(size))
	arena.curblock = len(arena.blocks) - 1
	arena.capacity += size
}

func (arena *Arena) logarenasettings() {
	blocksize := humanize.Bytes(uint64(arena.blocksize))
	fmsg := "%v new arena with blocksize %v\n"
	infof(fmsg, arena.logprefix, blocksize)
}
