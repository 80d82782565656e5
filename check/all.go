package check

// Check describes one condition to be evaluated as part of a group.
// Create them with [That] or [ThatFunc] and run them with [All], [Collect], or [Joined].
type Check struct {
	pred     func() bool
	settings settings
}

// That describes a check over a precomputed condition.
// The same [Option] values accepted by [If] customize the handler and message.
func That(condition bool, opts ...Option) Check {
	return Check{
		pred:     func() bool { return condition },
		settings: newSettings(Failure(ErrCheckFailed), opts),
	}
}

// ThatFunc describes a check whose condition is computed when the group runs.
// A predicate that panics propagates immediately and aborts evaluation of the remaining checks in the group.
func ThatFunc(pred func() bool, opts ...Option) Check {
	return Check{
		pred:     pred,
		settings: newSettings(Failure(ErrCheckFailed), opts),
	}
}

func (c Check) dispatch() error {
	if c.pred == nil {
		return ErrNilPredicate
	}
	return dispatch(c.pred(), c.settings)
}

// All evaluates every check, then returns the first failure.
// Later checks are not skipped by earlier failures, so every condition gets evaluated exactly once.
// Failed checks with warning-style handlers emit their warnings and don't count as failures.
// Calling All with no checks is a usage error ([ErrNoChecks]).
func All(checks ...Check) error {
	if !Enabled() {
		return nil
	}
	if len(checks) == 0 {
		return ErrNoChecks
	}
	failures := CollectFailures()
	for _, c := range checks {
		failures.Add(c.dispatch())
	}
	if errs := failures.Unwrap(); len(errs) > 0 {
		return errs[0]
	}
	return nil
}

// Collect evaluates every check and returns all failures in the original check order, or nil when everything passed.
// This is the value-based alternative to [All] for callers who want the full set of failures rather than only the first.
// Failed checks with warning-style handlers contribute their resolved warning to the result instead of emitting it.
// Collect with no checks returns nil: no checks, no failures.
func Collect(checks ...Check) []error {
	if !Enabled() {
		return nil
	}
	failures := CollectFailures()
	for _, c := range checks {
		if c.pred == nil {
			failures.Add(ErrNilPredicate)
			continue
		}
		failure, _ := resolve(c.pred(), c.settings)
		failures.Add(failure)
	}
	return failures.Unwrap()
}

// Joined evaluates every check like [All], but joins all failures into a single error value instead of returning only the first.
func Joined(checks ...Check) error {
	if !Enabled() {
		return nil
	}
	if len(checks) == 0 {
		return ErrNoChecks
	}
	failures := CollectFailures()
	for _, c := range checks {
		failures.Add(c.dispatch())
	}
	return failures.Result()
}
