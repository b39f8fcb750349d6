package malloc

import "unsafe"

import "github.com/bnclabs/marena/api"

// New construct a zero valued T inside arena memory, aligned to T's
// natural alignment. If *T implements api.Finalizer the object is
// registered for teardown, Finalize will run on the next Clear or
// Release. The returned pointer is valid until then.
func New[T any](arena *Arena) *T {
	var zero T
	size, align := int64(unsafe.Sizeof(zero)), int64(unsafe.Alignof(zero))
	if size == 0 { // zero sized types still get a distinct address
		size, align = 1, 1
	}
	ptr := arena.Alloc(size, align)
	obj := (*T)(ptr)
	*obj = zero
	if _, ok := any(obj).(api.Finalizer); ok {
		arena.register(ptr, finalize[T])
	}
	return obj
}

// NewWith construct a T inside arena memory with an initial value,
// the equivalent of construction with arguments. Finalizer
// registration follows New.
func NewWith[T any](arena *Arena, value T) *T {
	obj := New[T](arena)
	*obj = value
	return obj
}

// NewSlice construct a slice of `n` zero valued T items inside arena
// memory, nil if `n` is zero or negative. Items are not registered
// for teardown, finalizing them is the caller's concern.
func NewSlice[T any](arena *Arena, n int64) []T {
	if n <= 0 {
		return nil
	}
	var zero T
	size, align := int64(unsafe.Sizeof(zero)), int64(unsafe.Alignof(zero))
	if size == 0 {
		return make([]T, n)
	}
	ptr := arena.Alloc(size*n, align)
	items := unsafe.Slice((*T)(ptr), int(n))
	for i := range items {
		items[i] = zero
	}
	return items
}

// finalize sheds the concrete type of a registered object. One
// instantiation per T, a plain function pointer with no closure
// state and no per-object vtable, safe to store inside registry
// chunks living in arena memory.
func finalize[T any](ptr unsafe.Pointer) {
	any((*T)(ptr)).(api.Finalizer).Finalize()
}
