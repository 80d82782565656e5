package check

import (
	"fmt"

	"github.com/saylorsolutions/checkx/compare"
	"github.com/saylorsolutions/checkx/mathx"
)

type settings struct {
	handler      Handler
	msg          string
	msgSet       bool
	exclusive    bool
	op           compare.Operator
	countScalars bool
	relTol       float64
	absTol       float64
}

// Option customizes a single check call.
// Options that don't apply to the check they're passed to are ignored.
type Option func(*settings)

func newSettings(defaultHandler Handler, opts []Option) settings {
	s := settings{
		handler: defaultHandler,
		op:      compare.Eq,
		relTol:  mathx.DefaultRelTol,
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// Use replaces the check's default failure handler.
func Use(h Handler) Option {
	return func(s *settings) {
		s.handler = h
	}
}

// Msg sets the message attached to the failure.
// An explicit message always wins over handler defaults, and an explicit empty message attaches no text at all.
func Msg(msg string) Option {
	return func(s *settings) {
		s.msg = msg
		s.msgSet = true
	}
}

// Msgf sets a formatted message attached to the failure.
func Msgf(format string, args ...any) Option {
	return Msg(fmt.Sprintf(format, args...))
}

// Exclusive makes [InLimits] treat its bounds as strict (lower < x < upper).
func Exclusive() Option {
	return func(s *settings) {
		s.exclusive = true
	}
}

// Using sets the operator used by [Length] to compare the measured length with the expected one.
// The default is [compare.Eq].
func Using(op compare.Operator) Option {
	return func(s *settings) {
		s.op = op
	}
}

// CountScalars makes [Length] treat numeric and boolean values as having a length of 1 instead of failing with [ErrNoLength].
func CountScalars() Option {
	return func(s *settings) {
		s.countScalars = true
	}
}

// RelTol sets the relative tolerance used by [IsClose]. The default is [mathx.DefaultRelTol].
func RelTol(tol float64) Option {
	return func(s *settings) {
		s.relTol = tol
	}
}

// AbsTol sets the absolute tolerance used by [IsClose]. The default is 0.
func AbsTol(tol float64) Option {
	return func(s *settings) {
		s.absTol = tol
	}
}

// resolve turns a condition outcome into a failure value.
// The returned warned flag tells the caller that the failure should be emitted as a warning rather than returned.
// Usage errors are reported as plain failures even under a warning-style handler.
func resolve(ok bool, s settings) (failure error, warned bool) {
	if ok {
		return nil, false
	}
	h := s.handler
	if h.err == nil {
		return ErrInvalidHandler, false
	}
	return resolveFailure(h, s.msg, s.msgSet), h.warn
}

// dispatch is the single raise-or-warn decision point behind every check in this package.
func dispatch(ok bool, s settings) error {
	failure, warned := resolve(ok, s)
	if warned {
		emitWarning(failure)
		return nil
	}
	return failure
}
