//go:build nocheck

package assert

import (
	"github.com/saylorsolutions/checkx/check"
	"github.com/saylorsolutions/checkx/compare"
)

func If(condition bool, opts ...check.Option) {
	// No op
}

func IfNot(condition bool, opts ...check.Option) {
	// No op
}

func InLimits(x, lower, upper float64, opts ...check.Option) {
	// No op
}

func Length(val any, expected int, opts ...check.Option) {
	// No op
}

func Type[T any](val any, opts ...check.Option) {
	// No op
}

func IsClose(x, y float64, opts ...check.Option) {
	// No op
}

func Comparison(a any, op compare.Operator, b any, opts ...check.Option) {
	// No op
}

func Paths(paths []string, opts ...check.Option) {
	// No op
}
