package api

import "unsafe"

// Mallocer interface for custom memory management. Mallocer
// implementations with monotonic semantics never support freeing
// individual chunks, memory is reclaimed in bulk via Clear or
// Release.
type Mallocer interface {
	// Alloc allocate a chunk of `size` bytes aligned to `align`,
	// where `align` shall be a power of 2. Returned chunk remains
	// valid until the next Clear or Release.
	Alloc(size, align int64) unsafe.Pointer

	// Allocbytes allocate `n` bytes of memory as a byte-slice,
	// 64-bit aligned. Requests of zero or negative length return
	// nil without consuming memory.
	Allocbytes(n int64) []byte

	// Clear run pending finalizers and reset the mallocer for
	// reuse. Memory already obtained from the OS is retained.
	Clear()

	// Release mallocer and all its resources back to the OS.
	Release()

	// Info of memory accounting for this mallocer. `capacity` is
	// the sum of all block sizes obtained from OS, `allocated` the
	// bytes consumed out of capacity, `overhead` the cost of
	// book-keeping.
	Info() (capacity, allocated, overhead int64)

	// Blocksize minimum size of a freshly created memory block.
	Blocksize() int64

	// Numblocks number of memory blocks obtained from OS so far.
	Numblocks() int64
}

// Finalizer interface to be implemented by objects constructed inside
// a Mallocer that need teardown logic, similar to destructors. The
// mallocer shall invoke Finalize exactly once for every constructed
// object, in the reverse order of construction, during Clear or
// Release.
type Finalizer interface {
	// Finalize the object. The object's memory remains valid for
	// the duration of the call and invalid there after.
	Finalize()
}
