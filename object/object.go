// Package object defines Orion's runtime value universe: exactly the five
// kinds named in spec.md §3 (Int, Float, String, Bool, Null). There are no
// arrays, maps, structs, or first-class functions — the closed set is the
// point, not an oversight.
package object

import "fmt"

// Type identifies the kind of a Value, used for type errors and the
// evaluator's promotion/coercion rules.
type Type string

const (
	IntType    Type = "int"
	FloatType  Type = "float"
	StringType Type = "string"
	BoolType   Type = "bool"
	NullType   Type = "null"
)

// Value is any Orion runtime value. ToString renders the value the way
// "out" and string concatenation do; Inspect adds the type, used by the
// REPL to echo results.
type Value interface {
	Type() Type
	ToString() string
	Inspect() string
}

// Int is a 64-bit signed integer.
type Int int64

func (i Int) Type() Type      { return IntType }
func (i Int) ToString() string { return fmt.Sprintf("%d", int64(i)) }
func (i Int) Inspect() string  { return fmt.Sprintf("int(%d)", int64(i)) }

// Float is a 64-bit floating-point number.
type Float float64

func (f Float) Type() Type      { return FloatType }
func (f Float) ToString() string { return fmt.Sprintf("%g", float64(f)) }
func (f Float) Inspect() string  { return fmt.Sprintf("float(%g)", float64(f)) }

// String is a text value.
type String string

func (s String) Type() Type      { return StringType }
func (s String) ToString() string { return string(s) }
func (s String) Inspect() string  { return fmt.Sprintf("string(%q)", string(s)) }

// Bool is a boolean value.
type Bool bool

func (b Bool) Type() Type      { return BoolType }
func (b Bool) ToString() string { return fmt.Sprintf("%t", bool(b)) }
func (b Bool) Inspect() string  { return fmt.Sprintf("bool(%t)", bool(b)) }

// Null is Orion's single absent-value sentinel: the result of a bare
// "return", of a call to a function that falls off the end of its body
// without returning, and the initial value of nothing else (spec.md §3 —
// there is no separate "uninitialized" state).
type Null struct{}

func (Null) Type() Type      { return NullType }
func (Null) ToString() string { return "null" }
func (Null) Inspect() string  { return "null" }

// NullValue is the single shared Null instance.
var NullValue = Null{}

// Truthy implements spec.md's truthiness rule: false, 0, 0.0, "", and null
// are falsy; every other value is truthy.
func Truthy(v Value) bool {
	switch x := v.(type) {
	case Bool:
		return bool(x)
	case Int:
		return x != 0
	case Float:
		return x != 0
	case String:
		return x != ""
	case Null:
		return false
	default:
		return true
	}
}

// Equal implements Orion's "==": numeric values compare by promoted value
// regardless of Int/Float tag, strings and bools compare by Go equality,
// Null equals only Null, and values of unrelated types are never equal.
func Equal(a, b Value) bool {
	if an, aok := asNumber(a); aok {
		if bn, bok := asNumber(b); bok {
			return an == bn
		}
		return false
	}
	switch x := a.(type) {
	case String:
		y, ok := b.(String)
		return ok && x == y
	case Bool:
		y, ok := b.(Bool)
		return ok && x == y
	case Null:
		_, ok := b.(Null)
		return ok
	default:
		return false
	}
}

func asNumber(v Value) (float64, bool) {
	switch x := v.(type) {
	case Int:
		return float64(x), true
	case Float:
		return float64(x), true
	}
	return 0, false
}
