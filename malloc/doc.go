// Package malloc supplies custom memory management with monotonic,
// bump-pointer semantics, with a limited scope:
//
//   - Types and Functions exported by this package are not thread safe.
//   - Work best when many objects share a single lifetime, like a
//     request, a frame or a parse pass.
//   - Memory is obtained from OS in large blocks and handed out to the
//     application by bumping an offset within the active block, making
//     allocation O(1).
//   - Individual chunks are never freed. The entire arena is reclaimed
//     in bulk, either with Clear, which retains blocks for reuse, or
//     with Release, which gives blocks back to the OS.
//   - Memory chunks allocated by this package satisfy the caller
//     supplied alignment, which shall be a power of 2.
//
// Arena grows automatically. When the active block cannot satisfy a
// request a new block, of at least the configured "blocksize", is
// obtained from OS and made active. Blocks already handed out are
// never resized or moved, pointers returned by earlier allocations
// remain valid across growth.
//
// Objects constructed via New, or NewWith, whose pointer type
// implements api.Finalizer are registered for teardown. Clear and
// Release invoke every registered Finalize in the reverse order of
// construction, mirroring declaration order teardown semantics.
//
// Block buffers live outside the Go heap, the garbage collector does
// not scan them. Objects placed in arena memory shall not be the only
// reference to values living on the Go heap.
package malloc
