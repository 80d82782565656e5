/*
Package checkx provides condition-checking helpers meant to replace ad-hoc if-then-return-error blocks with single, self-documenting calls.
A check either returns nil silently, or reports failure with a caller-chosen failure handler and message.

Most of the functionality lives in the check package, with assertion-style aliases for test code in the assert package.
The compare package holds the closed set of comparison operators usable by comparison-capable checks.

All checks can be disabled at runtime by setting the CHECKX_RUN environment variable to "0", which turns every check into a no-op.
*/
package checkx
