// Package registry provides the lazy, compute-once store of named collections.
//
// Each name is bound once to a Loader. The first Get for that name runs the
// loader and keeps its result for the lifetime of the Registry; every later
// Get returns the same value without touching the loader again, even if the
// files behind it changed. Nothing is ever evicted or invalidated.
//
// # Concurrency
//
// Concurrent first access to one name is collapsed into a single loader call
// with golang.org/x/sync/singleflight: the first caller computes, the others
// block and share its result. A loader that fails is not memoized, so the next
// Get runs it again and reports whatever the underlying read reports.
//
// Loaders may call Get for other names (enums depend on rawEnums, widgets on
// interfaces). The dependency graph must stay acyclic; a loader that asks for
// its own name deadlocks.
package registry
