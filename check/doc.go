/*
Package check provides condition checks that replace ad-hoc if-then-fail blocks with single, self-documenting calls.

Every check evaluates a condition and returns nil when it holds.
When it doesn't, the check's failure handler decides what happens: an error-style handler makes the check return a failure value for the caller to propagate, while a warning-style handler emits a warning and lets the check return nil.
Handlers and messages can be customized per call:

	err := check.If(strings.Contains(name, " "), check.Use(check.Failure(errBadName)), check.Msg("no space"))

There are a few patterns supported beyond single checks:
  - Running a group of checks together with [All], [Collect], or [Joined], reporting on every failure rather than only the first.
  - Validating a named function argument against several criteria at once with [Argument].
  - Capturing failures and warnings as values with [Catch] and [CaptureWarnings].

All checks become no-ops when the CHECKX_RUN environment variable is set to "0".
The variable is re-read on every call, so [Disable] and [Enable] can toggle checking within a running process.
*/
package check
