package check

import (
	"fmt"
	"io/fs"
	"os"
	"reflect"
	"strings"

	"github.com/saylorsolutions/checkx/compare"
	"github.com/saylorsolutions/checkx/mathx"
)

// If checks that a condition is true.
// The default failure class is [ErrCheckFailed].
//
//	if err := check.If(strings.Contains(name, " "), check.Msg("no space")); err != nil {
//		return err
//	}
func If(condition bool, opts ...Option) error {
	if !Enabled() {
		return nil
	}
	return dispatch(condition, newSettings(Failure(ErrCheckFailed), opts))
}

// IfNot checks that a condition is not true.
// It exists so the call can read naturally when the negative form sounds better, like IfNot(speed > limit).
func IfNot(condition bool, opts ...Option) error {
	if !Enabled() {
		return nil
	}
	return dispatch(!condition, newSettings(Failure(ErrCheckFailed), opts))
}

// InLimits checks that x is within the inclusive range [lower, upper].
// Pass [Exclusive] to make both bounds strict.
// The default failure class is [ErrOutOfLimits].
func InLimits(x, lower, upper float64, opts ...Option) error {
	if !Enabled() {
		return nil
	}
	s := newSettings(Failure(ErrOutOfLimits), opts)
	var ok bool
	if s.exclusive {
		ok = lower < x && x < upper
	} else {
		ok = lower <= x && x <= upper
	}
	return dispatch(ok, s)
}

// Length checks the length of val against expected, using the operator set with [Using] (equality by default).
// Strings, slices, arrays, maps, and channels have a length; anything else is a usage error ([ErrNoLength]) unless [CountScalars] is passed,
// which treats numeric and boolean values as having a length of 1.
// The default failure class is [ErrBadLength].
func Length(val any, expected int, opts ...Option) error {
	if !Enabled() {
		return nil
	}
	s := newSettings(Failure(ErrBadLength), opts)
	length, err := lengthOf(val, s.countScalars)
	if err != nil {
		return err
	}
	ok, err := s.op.Apply(length, expected)
	if err != nil {
		return err
	}
	return dispatch(ok, s)
}

func lengthOf(val any, countScalars bool) (int, error) {
	if val == nil {
		return 0, fmt.Errorf("%w: <nil>", ErrNoLength)
	}
	rv := reflect.ValueOf(val)
	switch rv.Kind() {
	case reflect.String, reflect.Slice, reflect.Array, reflect.Map, reflect.Chan:
		return rv.Len(), nil
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		if countScalars {
			return 1, nil
		}
	}
	return 0, fmt.Errorf("%w: %T", ErrNoLength, val)
}

// Type checks that val holds a value assignable to T.
// A nil value holds no type and never passes.
// The default failure class is [ErrWrongType].
//
//	err := check.Type[io.Reader](val, check.Msg("not a reader"))
func Type[T any](val any, opts ...Option) error {
	if !Enabled() {
		return nil
	}
	_, ok := val.(T)
	return dispatch(ok, newSettings(Failure(ErrWrongType), opts))
}

// IsClose checks that two floats are close in value, per [mathx.Close].
// Tolerances are set with [RelTol] (default [mathx.DefaultRelTol]) and [AbsTol] (default 0).
// The default failure class is [ErrNotClose].
func IsClose(x, y float64, opts ...Option) error {
	if !Enabled() {
		return nil
	}
	s := newSettings(Failure(ErrNotClose), opts)
	return dispatch(mathx.Close(x, y, s.relTol, s.absTol), s)
}

// Comparison checks that "a op b" holds, using one of the operators in the compare package.
// An operator outside the allowed set, or operands that can't be compared, are usage errors returned as-is before any dispatch.
// The default failure class is [ErrFailedComparison].
func Comparison(a any, op compare.Operator, b any, opts ...Option) error {
	if !Enabled() {
		return nil
	}
	s := newSettings(Failure(ErrFailedComparison), opts)
	ok, err := op.Apply(a, b)
	if err != nil {
		return err
	}
	return dispatch(ok, s)
}

// PathsExist checks that every given path exists in the filesystem.
// The default failure class is [fs.ErrNotExist], and the default message names the missing paths.
func PathsExist(paths []string, opts ...Option) error {
	if !Enabled() {
		return nil
	}
	s := newSettings(Failure(fs.ErrNotExist), opts)
	missing := FindMissingPaths(paths...)
	if len(missing) > 0 && !s.msgSet {
		s.msg = "missing " + strings.Join(missing, ", ")
		s.msgSet = true
	}
	return dispatch(len(missing) == 0, s)
}

// PathExists checks that a single path exists in the filesystem.
func PathExists(path string, opts ...Option) error {
	return PathsExist([]string{path}, opts...)
}

// FindMissingPaths returns the subset of paths that don't exist, in the original order.
// This is the predicate behind [PathsExist], exposed for callers who want the full list of missing paths rather than a failure.
func FindMissingPaths(paths ...string) []string {
	var missing []string
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			missing = append(missing, path)
		}
	}
	return missing
}
