//go:build !nocheck

package assert

import (
	"fmt"
	"runtime"

	"github.com/saylorsolutions/checkx/check"
	"github.com/saylorsolutions/checkx/compare"
)

func getCallerDetails() string {
	// Skips getCallerDetails, failed, and the exported alias to land on the user's call site.
	_, file, line, ok := runtime.Caller(3)
	if !ok {
		return "unknown"
	}
	return fmt.Sprintf("'%s#%d'", file, line)
}

func failed(err error) {
	if err != nil {
		panic(fmt.Errorf("%w at %s", err, getCallerDetails()))
	}
}

// If panics if the condition is not true. See [check.If].
func If(condition bool, opts ...check.Option) {
	failed(check.If(condition, opts...))
}

// IfNot panics if the condition is true. See [check.IfNot].
func IfNot(condition bool, opts ...check.Option) {
	failed(check.IfNot(condition, opts...))
}

// InLimits panics if x is outside the range [lower, upper]. See [check.InLimits].
func InLimits(x, lower, upper float64, opts ...check.Option) {
	failed(check.InLimits(x, lower, upper, opts...))
}

// Length panics if the length of val doesn't compare as expected. See [check.Length].
func Length(val any, expected int, opts ...check.Option) {
	failed(check.Length(val, expected, opts...))
}

// Type panics if val doesn't hold a value assignable to T. See [check.Type].
func Type[T any](val any, opts ...check.Option) {
	failed(check.Type[T](val, opts...))
}

// IsClose panics if x and y aren't close in value. See [check.IsClose].
func IsClose(x, y float64, opts ...check.Option) {
	failed(check.IsClose(x, y, opts...))
}

// Comparison panics if "a op b" doesn't hold. See [check.Comparison].
func Comparison(a any, op compare.Operator, b any, opts ...check.Option) {
	failed(check.Comparison(a, op, b, opts...))
}

// Paths panics if any of the given paths doesn't exist. See [check.PathsExist].
func Paths(paths []string, opts ...check.Option) {
	failed(check.PathsExist(paths, opts...))
}
