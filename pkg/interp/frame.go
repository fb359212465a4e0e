package interp

import "tcl9.dev/pickle/pkg/interp/vars"

// Frame is a call frame: a scope holding variable bindings, linked to its
// parent. The top-level frame's parent is nil and lives for the life of the
// Interp (spec.md §3).
type Frame struct {
	vars   []*vars.Cell // in definition order: new cells are appended
	parent *Frame
}

func newFrame(parent *Frame) *Frame {
	return &Frame{parent: parent}
}

// lookup finds the cell named name in this frame only (no parent climbing);
// spec.md's variable lookup is local-frame-only, with cross-frame access
// happening exclusively through link cells created by upvar.
func (f *Frame) lookup(name string) *vars.Cell {
	for _, v := range f.vars {
		if v.Name == name {
			return v
		}
	}
	return nil
}

// getOrCreate returns the cell named name in this frame, creating an empty
// direct-value cell if absent.
func (f *Frame) getOrCreate(name string) *vars.Cell {
	if v := f.lookup(name); v != nil {
		return v
	}
	v := vars.NewValue(name, "")
	f.vars = append(f.vars, v)
	return v
}

// unset removes name from this frame only. Reports whether it was present.
func (f *Frame) unset(name string) bool {
	for i, v := range f.vars {
		if v.Name == name {
			f.vars = append(f.vars[:i], f.vars[i+1:]...)
			return true
		}
	}
	return false
}

// ancestor climbs n parents, stopping early (returning the top-level frame)
// if n exceeds the depth of the chain.
func (f *Frame) ancestor(n int) *Frame {
	cur := f
	for ; n > 0 && cur.parent != nil; n-- {
		cur = cur.parent
	}
	return cur
}

// depth returns the number of frames from f up to (and including) the root.
func (f *Frame) depth() int {
	n := 1
	for cur := f; cur.parent != nil; cur = cur.parent {
		n++
	}
	return n
}
