// Package marena implement a monotonic, bump-pointer memory arena for
// algorithms and request scoped workloads where many objects share a
// single lifetime.
//
// api:
//
// Interface specification to access the arena. Generic containers
// shall program against api.Mallocer and api.Finalizer instead of
// importing the malloc package.
//
// lib:
//
// Convinience functions that can be used by other packages. Package
// shall not import packages other than golang's standard packages.
//
// malloc:
//
// Custom memory management with monotonic semantics, memory is handed
// out in O(1) from large blocks and reclaimed only in bulk via Clear
// or Release.
package marena
