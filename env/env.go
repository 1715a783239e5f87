// Package env implements Orion's lexical scope chain: a frame of variable
// bindings linked to its enclosing frame, grounded in the teacher's
// scope.Scope but trimmed to the bindings Orion actually needs (no
// const/let tracking, and no per-binding type tag: spec.md §3 narrows a
// value only at the typed declaration itself, never on a later untyped
// reassignment, so a frame has nothing to remember past the coercion).
package env

import "orionlang/orion/object"

// Frame is one lexical scope: a function body, a block, or the program's
// top level. Its Parent pointer forms the scope chain that LookUp and
// Assign walk outward through.
type Frame struct {
	vars   map[string]object.Value
	Parent *Frame
}

// New creates a Frame nested inside parent. parent == nil creates the
// global frame.
func New(parent *Frame) *Frame {
	return &Frame{
		vars:   make(map[string]object.Value),
		Parent: parent,
	}
}

// LookUp searches this frame and every enclosing frame, innermost first.
func (f *Frame) LookUp(name string) (object.Value, bool) {
	if v, ok := f.vars[name]; ok {
		return v, true
	}
	if f.Parent != nil {
		return f.Parent.LookUp(name)
	}
	return nil, false
}

// Declare creates or replaces a binding in THIS frame only. This implements
// the "typed declaration" half of spec.md §4.3: a typed declaration always
// binds in the current scope, shadowing any outer variable of the same
// name.
func (f *Frame) Declare(name string, v object.Value) {
	f.vars[name] = v
}

// Assign implements the untyped "assign-if-exists-else-define-in-current-
// scope" rule (spec.md §4.3): it walks outward looking for an existing
// binding and updates it in place; if none exists anywhere in the chain, it
// defines a new untyped binding in the CURRENT (innermost) frame.
func (f *Frame) Assign(name string, v object.Value) {
	if frame := f.findOwner(name); frame != nil {
		frame.vars[name] = v
		return
	}
	f.vars[name] = v
}

// findOwner returns the nearest frame in the chain (starting at f) that
// already has a binding for name, or nil if none does.
func (f *Frame) findOwner(name string) *Frame {
	if _, ok := f.vars[name]; ok {
		return f
	}
	if f.Parent != nil {
		return f.Parent.findOwner(name)
	}
	return nil
}
