// Package compare provides the closed set of comparison operators usable by comparison-capable checks.
//
// Operators are tokens rather than arbitrary functions, so the allowed set stays validated and enumerable.
package compare

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

var (
	// ErrUnknownOperator is returned when an operator token is not one of the allowed set.
	ErrUnknownOperator = errors.New("unknown comparison operator")
	// ErrNotComparable is returned when two values can't be ordered relative to each other.
	ErrNotComparable = errors.New("values are not comparable")
)

// Operator is one of a fixed set of relational operator tokens.
//
// Eq and Ne compare by value, using deep equality for composite types.
// Lt, Le, Gt, and Ge order numeric values and strings.
// Is and IsNot compare identity: reference kinds (pointer, map, slice, channel, function) are identical when they share the same referent,
// while other kinds degrade to strict sameness of type and value.
// Two equal-valued but distinct slices are equal under Eq, but not identical under Is.
// Zero-length slices carry no backing array to compare, so Is never reports them identical.
type Operator string

const (
	Eq    Operator = "eq"
	Ne    Operator = "ne"
	Lt    Operator = "lt"
	Le    Operator = "le"
	Gt    Operator = "gt"
	Ge    Operator = "ge"
	Is    Operator = "is"
	IsNot Operator = "is_not"
)

// Operators returns the full set of allowed operator tokens.
func Operators() []Operator {
	return []Operator{Eq, Ne, Lt, Le, Gt, Ge, Is, IsNot}
}

// Validate returns [ErrUnknownOperator] if op is not one of the tokens returned by [Operators].
func (op Operator) Validate() error {
	switch op {
	case Eq, Ne, Lt, Le, Gt, Ge, Is, IsNot:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownOperator, string(op))
	}
}

// Apply evaluates "a op b" and returns the result.
// The operator is validated before either value is inspected.
// Ordering operators return [ErrNotComparable] when the operands can't be ordered.
func (op Operator) Apply(a, b any) (bool, error) {
	if err := op.Validate(); err != nil {
		return false, err
	}
	switch op {
	case Eq:
		return reflect.DeepEqual(a, b), nil
	case Ne:
		return !reflect.DeepEqual(a, b), nil
	case Is:
		return same(a, b), nil
	case IsNot:
		return !same(a, b), nil
	}
	ord, err := order(a, b)
	if err != nil {
		return false, err
	}
	switch op {
	case Lt:
		return ord < 0, nil
	case Le:
		return ord <= 0, nil
	case Gt:
		return ord > 0, nil
	default:
		return ord >= 0, nil
	}
}

func same(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	av, bv := reflect.ValueOf(a), reflect.ValueOf(b)
	if av.Kind() != bv.Kind() {
		return false
	}
	switch av.Kind() {
	case reflect.Slice:
		// Zero-length slices can share the runtime's zero-size allocation, so identity requires a non-empty backing array.
		return av.Len() > 0 && av.Len() == bv.Len() && av.Pointer() == bv.Pointer()
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return av.Pointer() == bv.Pointer()
	default:
		if av.Type() != bv.Type() || !av.Comparable() {
			return false
		}
		return av.Equal(bv)
	}
}

func order(a, b any) (int, error) {
	av, bv := reflect.ValueOf(a), reflect.ValueOf(b)
	if av.Kind() == reflect.String && bv.Kind() == reflect.String {
		return strings.Compare(av.String(), bv.String()), nil
	}
	af, aok := numeric(av)
	bf, bok := numeric(bv)
	if !aok || !bok {
		return 0, fmt.Errorf("%w: %T and %T", ErrNotComparable, a, b)
	}
	switch {
	case af < bf:
		return -1, nil
	case af > bf:
		return 1, nil
	default:
		return 0, nil
	}
}

func numeric(val reflect.Value) (float64, bool) {
	switch val.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(val.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(val.Uint()), true
	case reflect.Float32, reflect.Float64:
		return val.Float(), true
	default:
		return 0, false
	}
}
