package eval

import (
	"math"
	"strconv"
	"strings"

	"orionlang/orion/object"
	"orionlang/orion/orionerr"
	"orionlang/orion/parser"
)

// applyBinary implements every binary operator except "and"/"or" (handled
// in VisitBinary for their short-circuit evaluation order).
func applyBinary(op string, l, r object.Value, pos parser.Position) (object.Value, *orionerr.Error) {
	switch op {
	case "+":
		if isString(l) || isString(r) {
			return object.String(l.ToString() + r.ToString()), nil
		}
		return arith(op, l, r, pos)
	case "-", "*", "/", "%":
		return arith(op, l, r, pos)
	case "==":
		return object.Bool(object.Equal(l, r)), nil
	case "!=":
		return object.Bool(!object.Equal(l, r)), nil
	case "<", ">", "<=", ">=":
		return compare(op, l, r, pos)
	}
	return nil, orionerr.New(orionerr.Runtime, orionerr.TypeError, pos.Line, pos.Column, "unknown operator %q", op)
}

func isString(v object.Value) bool {
	_, ok := v.(object.String)
	return ok
}

func asFloat(v object.Value) (float64, bool) {
	switch x := v.(type) {
	case object.Int:
		return float64(x), true
	case object.Float:
		return float64(x), true
	}
	return 0, false
}

// arith implements +, -, *, /, % over numeric operands. Two Int operands
// keep the Int type (/ truncates toward zero, matching Go's native integer
// division); any Float operand promotes the whole expression to Float
// (spec.md §4.3 numeric promotion rule).
func arith(op string, l, r object.Value, pos parser.Position) (object.Value, *orionerr.Error) {
	lf, lok := asFloat(l)
	rf, rok := asFloat(r)
	if !lok || !rok {
		return nil, orionerr.New(orionerr.Runtime, orionerr.TypeError, pos.Line, pos.Column,
			"operator %q requires numbers, got %s and %s", op, l.Type(), r.Type())
	}
	li, lIsInt := l.(object.Int)
	ri, rIsInt := r.(object.Int)
	bothInt := lIsInt && rIsInt

	switch op {
	case "+":
		if bothInt {
			return li + ri, nil
		}
		return object.Float(lf + rf), nil
	case "-":
		if bothInt {
			return li - ri, nil
		}
		return object.Float(lf - rf), nil
	case "*":
		if bothInt {
			return li * ri, nil
		}
		return object.Float(lf * rf), nil
	case "/":
		if rf == 0 {
			return nil, orionerr.New(orionerr.Runtime, orionerr.DivisionByZero, pos.Line, pos.Column, "division by zero")
		}
		if bothInt {
			return object.Int(int64(li) / int64(ri)), nil
		}
		return object.Float(lf / rf), nil
	case "%":
		if rf == 0 {
			return nil, orionerr.New(orionerr.Runtime, orionerr.DivisionByZero, pos.Line, pos.Column, "division by zero")
		}
		if bothInt {
			return object.Int(int64(li) % int64(ri)), nil
		}
		return object.Float(math.Mod(lf, rf)), nil
	}
	return nil, orionerr.New(orionerr.Runtime, orionerr.TypeError, pos.Line, pos.Column, "unknown operator %q", op)
}

// compare implements <, >, <=, >=: numeric operands compare by promoted
// value, string operands compare lexicographically, and any other pairing
// is a TypeError (spec.md §4.3 — ordering is defined only within a kind).
func compare(op string, l, r object.Value, pos parser.Position) (object.Value, *orionerr.Error) {
	if lf, lok := asFloat(l); lok {
		if rf, rok := asFloat(r); rok {
			return object.Bool(numCompare(op, lf, rf)), nil
		}
	}
	if ls, lok := l.(object.String); lok {
		if rs, rok := r.(object.String); rok {
			return object.Bool(strCompare(op, string(ls), string(rs))), nil
		}
	}
	return nil, orionerr.New(orionerr.Runtime, orionerr.TypeError, pos.Line, pos.Column,
		"operator %q requires two numbers or two strings, got %s and %s", op, l.Type(), r.Type())
}

func numCompare(op string, l, r float64) bool {
	switch op {
	case "<":
		return l < r
	case ">":
		return l > r
	case "<=":
		return l <= r
	case ">=":
		return l >= r
	}
	return false
}

func strCompare(op string, l, r string) bool {
	switch op {
	case "<":
		return l < r
	case ">":
		return l > r
	case "<=":
		return l <= r
	case ">=":
		return l >= r
	}
	return false
}

// coerceToTag narrows a value to the declared type of a typed declaration
// or typed parameter (spec.md §4.3). The string and bool tags accept every
// value; the int and float tags reject malformed numeric strings and null
// with a ConversionError.
func coerceToTag(tag parser.TypeTag, v object.Value) (object.Value, *orionerr.Error) {
	switch tag {
	case parser.IntTag:
		return toInt(v)
	case parser.FloatTag:
		return toFloat(v)
	case parser.StringTag:
		return object.String(v.ToString()), nil
	case parser.BoolTag:
		return object.Bool(object.Truthy(v)), nil
	}
	return v, nil
}

func toInt(v object.Value) (object.Value, *orionerr.Error) {
	switch x := v.(type) {
	case object.Int:
		return x, nil
	case object.Float:
		return object.Int(int64(x)), nil
	case object.Bool:
		if x {
			return object.Int(1), nil
		}
		return object.Int(0), nil
	case object.String:
		n, err := strconv.ParseInt(strings.TrimSpace(string(x)), 10, 64)
		if err != nil {
			return nil, orionerr.NewUnpositioned(orionerr.ConversionError, "cannot convert %q to int", string(x))
		}
		return object.Int(n), nil
	}
	return nil, orionerr.NewUnpositioned(orionerr.ConversionError, "cannot convert %s to int", v.Type())
}

func toFloat(v object.Value) (object.Value, *orionerr.Error) {
	switch x := v.(type) {
	case object.Float:
		return x, nil
	case object.Int:
		return object.Float(x), nil
	case object.Bool:
		if x {
			return object.Float(1), nil
		}
		return object.Float(0), nil
	case object.String:
		f, err := strconv.ParseFloat(strings.TrimSpace(string(x)), 64)
		if err != nil {
			return nil, orionerr.NewUnpositioned(orionerr.ConversionError, "cannot convert %q to float", string(x))
		}
		return object.Float(f), nil
	}
	return nil, orionerr.NewUnpositioned(orionerr.ConversionError, "cannot convert %s to float", v.Type())
}

// reposition re-stamps an unpositioned runtime error (one built with
// orionerr.NewUnpositioned) with the source position of the expression
// that triggered it.
func reposition(err *orionerr.Error, pos parser.Position) *orionerr.Error {
	if err == nil || err.HasPosition {
		return err
	}
	return orionerr.New(err.Stage, err.Reason, pos.Line, pos.Column, "%s", err.Msg)
}
