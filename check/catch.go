package check

// Catch invokes a check and returns the resulting failure or warning as a value, for callers who prefer value-based handling of both.
// If the check fails with an error-style handler, that failure is returned.
// Otherwise, if warnings were emitted during the call, the last one is returned instead of reaching the warning sink.
// A clean check returns nil.
//
//	failure := check.Catch(func() error {
//		return check.If(cond, check.Use(check.Warning(errRisky)))
//	})
//
// Catch swaps the warning sink for the duration of the call, so it shares [CaptureWarnings]' concurrency caveat.
func Catch(fn func() error) error {
	var failure error
	warnings := CaptureWarnings(func() {
		failure = fn()
	})
	if failure != nil {
		return failure
	}
	if len(warnings) > 0 {
		return warnings[len(warnings)-1]
	}
	return nil
}
