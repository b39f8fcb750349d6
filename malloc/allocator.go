package malloc

import "math"
import "unsafe"

// Allocator binds a generic container's storage requests to one
// Arena instance. Allocator is a non-owning view, it shall not
// outlive its arena. Two allocators are interchangeable if and only
// if they reference the same arena.
type Allocator[T any] struct {
	arena *Arena
}

// NewAllocator create an allocator drawing memory for items of type
// T from `arena`.
func NewAllocator[T any](arena *Arena) Allocator[T] {
	if arena == nil {
		panicerr("allocator needs a backing arena")
	}
	return Allocator[T]{arena: arena}
}

// Allocate memory for `n` items of T from the backing arena, aligned
// to T's natural alignment, nil if `n` is zero or negative. Panics
// with ErrorAllocOverflow if the byte size of the request overflows,
// requests are never silently truncated.
func (al Allocator[T]) Allocate(n int64) []T {
	if n <= 0 {
		return nil
	}
	var zero T
	if size := int64(unsafe.Sizeof(zero)); size > 0 && n > math.MaxInt64/size {
		panic(ErrorAllocOverflow)
	}
	return NewSlice[T](al.arena, n)
}

// Deallocate is deliberately a no-op. The arena's lifetime model is
// free-everything-together, containers resizing their storage leak
// the old buffer within the arena until the next Clear, which is
// expected and bounded by the arena's lifetime.
func (al Allocator[T]) Deallocate(items []T, n int64) {
}

// Equal report whether both allocators draw from the same arena
// instance. Identity, not structural equality, two arenas with
// identical settings still compare unequal.
func (al Allocator[T]) Equal(other Allocator[T]) bool {
	return al.arena == other.arena
}

// Arena return the backing arena.
func (al Allocator[T]) Arena() *Arena {
	return al.arena
}

// Rebind construct an allocator for item type U drawing from the
// same arena as `al`. Lets one arena back a container's value type
// and its internal node type at once.
func Rebind[U, T any](al Allocator[T]) Allocator[U] {
	return Allocator[U]{arena: al.arena}
}
