// Package runtime defines the Value tagged union and the scoped,
// alias-capable Environment the evaluator executes against.
package runtime

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies the dynamic type of a Value.
type Kind int

const (
	Null Kind = iota
	IntegerKind
	RealKind
	StringKind
	ArrayKind
)

// Value is the tagged-union runtime value for the language: Integer, Real,
// String, Array (ordered slice of Value), or the Null sentinel used only
// for uninitialized array slots.
type Value struct {
	Kind Kind
	I    int64
	R    float64
	S    string
	A    []Value
}

func NewInteger(i int64) Value  { return Value{Kind: IntegerKind, I: i} }
func NewReal(r float64) Value   { return Value{Kind: RealKind, R: r} }
func NewString(s string) Value  { return Value{Kind: StringKind, S: s} }
func NewArray(a []Value) Value  { return Value{Kind: ArrayKind, A: a} }
func NewNull() Value            { return Value{Kind: Null} }
func NewBool(b bool) Value {
	if b {
		return NewInteger(1)
	}
	return NewInteger(0)
}

// IsNumeric reports whether v is an Integer or Real.
func (v Value) IsNumeric() bool {
	return v.Kind == IntegerKind || v.Kind == RealKind
}

// AsFloat returns v's numeric value widened to float64. Only valid when
// IsNumeric is true.
func (v Value) AsFloat() float64 {
	if v.Kind == IntegerKind {
		return float64(v.I)
	}
	return v.R
}

// Truthy implements the language's falsy/truthy rule: false, 0, empty
// string, and Null are false; everything else is true.
func (v Value) Truthy() bool {
	switch v.Kind {
	case Null:
		return false
	case IntegerKind:
		return v.I != 0
	case RealKind:
		return v.R != 0
	case StringKind:
		return v.S != ""
	case ArrayKind:
		return true
	default:
		return false
	}
}

// String renders v at full precision. Display lines use it for every
// value except non-integer Reals, which the evaluator rounds to 2
// decimal places.
func (v Value) String() string {
	switch v.Kind {
	case Null:
		return ""
	case IntegerKind:
		return strconv.FormatInt(v.I, 10)
	case RealKind:
		return strconv.FormatFloat(v.R, 'f', -1, 64)
	case StringKind:
		return v.S
	case ArrayKind:
		parts := make([]string, len(v.A))
		for i, e := range v.A {
			parts[i] = e.String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	default:
		return fmt.Sprintf("<%v>", v.Kind)
	}
}

// TypeName returns the language-level type name of v ("Integer", "Real",
// "String", "Array", or "Null").
func (v Value) TypeName() string {
	switch v.Kind {
	case IntegerKind:
		return "Integer"
	case RealKind:
		return "Real"
	case StringKind:
		return "String"
	case ArrayKind:
		return "Array"
	default:
		return "Null"
	}
}
