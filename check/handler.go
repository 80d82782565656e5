package check

import (
	"errors"
	"fmt"
	"io/fs"
)

// Failure classes used as defaults by the checks in this package.
// Each check names its own default, and all of them can be replaced per call with [Use].
var (
	ErrCheckFailed      = errors.New("check failed")
	ErrOutOfLimits      = errors.New("number out of limits")
	ErrBadLength        = errors.New("violated length check")
	ErrWrongType        = errors.New("incorrect type")
	ErrNotClose         = errors.New("numbers are not close enough")
	ErrFailedComparison = errors.New("comparison is not true")
)

// Failure classes used by [Argument]. These are fixed per criterion and not replaceable.
var (
	ErrArgumentType      = errors.New("invalid argument type")
	ErrArgumentValue     = errors.New("invalid argument value")
	ErrArgumentCondition = errors.New("argument condition violated")
	ErrArgumentLength    = errors.New("invalid argument length")
)

// Usage errors, reported when the library itself is called incorrectly.
// These are never converted to warnings, regardless of the handler in use.
var (
	ErrInvalidHandler = errors.New("handler must wrap a non-nil failure error")
	ErrNoLength       = errors.New("value has no length")
	ErrNilPredicate   = errors.New("check predicate must not be nil")
	ErrNoChecks       = errors.New("at least one check must be provided")
	ErrNoCriteria     = errors.New("at least one criterion must be provided")
)

// wellKnown holds the failure classes that don't get a default message attached.
// Their own error text already says what went wrong.
var wellKnown = map[error]bool{
	ErrCheckFailed:      true,
	ErrOutOfLimits:      true,
	ErrBadLength:        true,
	ErrWrongType:        true,
	ErrNotClose:         true,
	ErrFailedComparison: true,
	fs.ErrNotExist:      true,
}

// Handler selects the failure class used when a check fails, and whether failing is an error or a warning.
// The zero value is not usable; create handlers with [Failure] or [Warning].
type Handler struct {
	err  error
	warn bool
	desc string
}

// Failure creates an error-style [Handler]: a failed check returns a failure wrapping err.
func Failure(err error) Handler {
	return Handler{err: err}
}

// Warning creates a warning-style [Handler]: a failed check emits a warning wrapping err and returns nil.
func Warning(err error) Handler {
	return Handler{err: err, warn: true}
}

// Described attaches a static description to the Handler, used as the default message when the caller doesn't supply one.
// Descriptions only apply to custom failure classes; the well-known classes in this package never get a default message.
func (h Handler) Described(desc string) Handler {
	h.desc = desc
	return h
}

// Err returns the failure class wrapped by this Handler.
func (h Handler) Err() error {
	return h.err
}

// IsWarning reports whether this Handler emits warnings instead of returning failures.
func (h Handler) IsWarning() bool {
	return h.warn
}

// resolveFailure builds the failure value for a failed check.
// An explicit message always wins, even when empty.
// Without one, custom failure classes fall back to the handler's description, and well-known classes stay bare.
func resolveFailure(h Handler, msg string, msgSet bool) error {
	switch {
	case msgSet && len(msg) > 0:
		return fmt.Errorf("%w: %s", h.err, msg)
	case msgSet:
		// An explicit empty message attaches no text, leaving the bare failure class.
		return h.err
	case wellKnown[h.err]:
		return h.err
	case len(h.desc) > 0:
		return fmt.Errorf("%w: %s", h.err, h.desc)
	default:
		return h.err
	}
}
