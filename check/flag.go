package check

import (
	"os"

	"github.com/saylorsolutions/checkx/env"
)

// RunEnvVar is the environment variable controlling whether checks run.
// When its value is "0", every check in this package becomes a no-op that returns nil without evaluating anything.
// Any other value, including unset, means checks run normally.
const RunEnvVar = "CHECKX_RUN"

// Enabled reports whether checks are currently enabled.
// The environment variable is re-read on every check call rather than cached, so the setting can be toggled within a running process.
func Enabled() bool {
	return env.Val(RunEnvVar, "1") != "0"
}

// Disable will disable check evaluation for the current process by setting [RunEnvVar].
// Note that this is a process-wide setting, and disabling checks makes failing conditions silently unobservable in other goroutines too.
func Disable() {
	_ = os.Setenv(RunEnvVar, "0")
}

// Enable can be used to re-enable check evaluation if Disable was called previously.
func Enable() {
	_ = os.Setenv(RunEnvVar, "1")
}
