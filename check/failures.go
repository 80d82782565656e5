package check

import (
	"fmt"
	"strings"
)

// Failures collects check failures and can join them with the specified join string.
// This is a little bit more convenient than maintaining a slice and using [errors.Join].
//
// A Failures is itself an error, so it can be returned directly and compared with [errors.Is] or [errors.As].
//
// Note that a Failures is not concurrency safe.
type Failures struct {
	errs    []error
	joinStr string
}

// CollectFailures creates a new [Failures], optionally with a join string that differs from the default of "\n".
func CollectFailures(joinString ...string) *Failures {
	joinStr := "\n"
	if len(joinString) > 0 {
		joinStr = joinString[0]
	}
	return &Failures{
		joinStr: joinStr,
	}
}

// Add adds a new, potentially nil failure. Nil errors will not be included.
func (f *Failures) Add(err error) *Failures {
	if err != nil {
		f.errs = append(f.errs, err)
	}
	return f
}

// Addf allows creating a failure string using [fmt.Errorf], which means that the "%w" format string may be used.
func (f *Failures) Addf(msg string, args ...any) *Failures {
	return f.Add(fmt.Errorf(msg, args...))
}

// Result will return nil if no failures have been added.
// Otherwise, it will return itself.
//
// This is provided because returning an empty Failures is still returning a non-nil error.
func (f *Failures) Result() error {
	if len(f.errs) > 0 {
		return f
	}
	return nil
}

// Error satisfies the error interface.
func (f *Failures) Error() string {
	var buf strings.Builder
	for i, err := range f.errs {
		if i > 0 {
			buf.WriteString(f.joinStr)
		}
		buf.WriteString(err.Error())
	}
	return buf.String()
}

// Unwrap allows using [errors.Is] and [errors.As] to identify any failure in the collection.
func (f *Failures) Unwrap() []error {
	return f.errs
}
