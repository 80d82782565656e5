/*
Package assert provides assertion-style aliases for the checks in the check package, intended for test code.

Each function runs the same check with the same options, but panics with the resolved failure (annotated with caller file and line) instead of returning it, which reads like a traditional assertion statement.
Warning-style handlers still emit warnings and never panic.

To remove assertions entirely, build with the 'nocheck' flag.
For temporary changes, check.Disable and check.Enable apply here too, since these aliases go through the same dispatch.
*/
package assert
