package malloc

import "unsafe"

// finnode a type-erased finalizer function paired with the object it
// tears down.
type finnode struct {
	fn  func(unsafe.Pointer)
	obj unsafe.Pointer
}

// finchunk a batch of finalizer registrations, chained backwards to
// the chunk registered before it. Chunks are carved out of the
// arena's own blocks, they are never freed individually and expire
// with the block memory they live in.
type finchunk struct {
	nodes [Finchunksize]finnode
	n     int64
	prev  *finchunk
}

// register a finalizer for obj. A fresh chunk is carved from the
// arena when the registry is empty or the current chunk is full.
func (arena *Arena) register(obj unsafe.Pointer, fn func(unsafe.Pointer)) {
	latest := arena.finlatest
	if latest == nil || latest.n == Finchunksize {
		var zero finchunk
		size := int64(unsafe.Sizeof(zero))
		align := int64(unsafe.Alignof(zero))
		chunk := (*finchunk)(arena.Alloc(size, align))
		// blocks are recycled across Clear, scrub stale bytes.
		*chunk = finchunk{prev: latest}
		arena.finlatest, latest = chunk, chunk
	}
	latest.nodes[latest.n] = finnode{fn: fn, obj: obj}
	latest.n++
	arena.n_finalizers++
}
