// Package alloc provides the pluggable allocator interface spec.md §5
// describes as a host collaborator of the core interpreter, and a fixed
// arena implementation of it. An interp.Interp records the Allocator it is
// constructed with, but the evaluator does not call it: tokens, words and
// results are ordinary Go strings allocated by the Go runtime.
package alloc

// Allocator hands out and reclaims byte buffers. Alloc(n) must return a
// slice of length n; Free releases a slice previously returned by Alloc on
// the same Allocator. Implementations must be safe to use from a single
// goroutine at a time, matching spec.md §5's single-threaded interpreter.
type Allocator interface {
	Alloc(n int) []byte
	Free([]byte)
}

// GoAllocator is the default Allocator: a thin pass-through to Go's own
// garbage collector. Free is a no-op, since the GC reclaims unreachable
// slices on its own; this mirrors how an embedder who does not care about
// custom memory management would wire up pickle.c's allocator_t with
// calloc/free.
type GoAllocator struct{}

func (GoAllocator) Alloc(n int) []byte { return make([]byte, n) }
func (GoAllocator) Free([]byte)        {}

// Default is the zero-value Allocator new interpreters use unless told
// otherwise.
var Default Allocator = GoAllocator{}
