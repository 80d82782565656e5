package check

import (
	"fmt"
	"reflect"
)

// Criterion is a single validation applied to a named argument value by [Argument].
type Criterion func(name string, value any) error

// Argument validates one named function argument against every given criterion, in order.
// The first failing criterion determines the returned error.
// Unlike the other checks in this package, each criterion carries a fixed failure class and message format,
// trading flexibility for a uniform, predictable message across a codebase.
//
//	func frob(x any) error {
//		if err := check.Argument("x", x, check.TypeOf[string](), check.OneOf("fast", "slow")); err != nil {
//			return err
//		}
//		...
//	}
//
// Calling Argument with no criteria is a usage error ([ErrNoCriteria]).
func Argument(name string, value any, criteria ...Criterion) error {
	if !Enabled() {
		return nil
	}
	if len(criteria) == 0 {
		return ErrNoCriteria
	}
	if len(name) == 0 {
		name = "argument"
	}
	for _, criterion := range criteria {
		if criterion == nil {
			return fmt.Errorf("%w: nil criterion", ErrNilPredicate)
		}
		if err := criterion(name, value); err != nil {
			return err
		}
	}
	return nil
}

// TypeOf creates a [Criterion] requiring the argument value to be assignable to T.
// Failures use [ErrArgumentType] and name the argument and the valid type.
func TypeOf[T any]() Criterion {
	return func(name string, value any) error {
		if _, ok := value.(T); ok {
			return nil
		}
		return fmt.Errorf("%w: incorrect type of %s; valid type(s): %s", ErrArgumentType, name, reflect.TypeFor[T]())
	}
}

// OneOf creates a [Criterion] requiring the argument value to be one of the given choices, compared by deep equality.
// Failures use [ErrArgumentValue] and name the argument, its value, and the valid choices.
func OneOf(choices ...any) Criterion {
	return func(name string, value any) error {
		for _, choice := range choices {
			if reflect.DeepEqual(value, choice) {
				return nil
			}
		}
		return fmt.Errorf("%w: %s's value, %v, is not among valid values: %v", ErrArgumentValue, name, value, choices)
	}
}

// Satisfies creates a [Criterion] requiring an arbitrary condition, precomputed by the caller, to be true.
// Failures use [ErrArgumentCondition] and name the argument.
func Satisfies(condition bool) Criterion {
	return func(name string, _ any) error {
		if condition {
			return nil
		}
		return fmt.Errorf("%w: condition violated for argument %s", ErrArgumentCondition, name)
	}
}

// LengthOf creates a [Criterion] requiring the argument value to have exactly the expected length.
// Numeric and boolean values count as length 1.
// Failures use [ErrArgumentLength] and name the argument and the expected length.
func LengthOf(expected int) Criterion {
	return func(name string, value any) error {
		length, err := lengthOf(value, true)
		if err != nil {
			return err
		}
		if length == expected {
			return nil
		}
		return fmt.Errorf("%w: unexpected length of %s (should be %d)", ErrArgumentLength, name, expected)
	}
}
