package check

import (
	"log/slog"
	"sync/atomic"
)

type warnFunc func(failure error)

var warnSink atomic.Value

func defaultWarnSink(failure error) {
	slog.Warn("check warning", "warning", failure)
}

func currentWarnSink() func(error) {
	if sink, ok := warnSink.Load().(warnFunc); ok && sink != nil {
		return sink
	}
	return defaultWarnSink
}

func emitWarning(failure error) {
	currentWarnSink()(failure)
}

// OnWarning replaces the process-wide warning sink and returns the previous one.
// Warning-style handlers deliver their resolved failure here instead of returning it.
// The default sink logs the warning with [slog.Warn].
// Passing nil restores the default sink.
func OnWarning(sink func(failure error)) (previous func(failure error)) {
	previous = currentWarnSink()
	warnSink.Store(warnFunc(sink))
	return previous
}

// CaptureWarnings runs fn and returns every warning emitted during it, in order.
// The previous sink is restored before returning, and captured warnings are not forwarded to it.
//
// Note that CaptureWarnings swaps the process-wide sink, so it is not safe to use concurrently with other warning-emitting checks.
func CaptureWarnings(fn func()) []error {
	var captured []error
	previous := OnWarning(func(failure error) {
		captured = append(captured, failure)
	})
	defer OnWarning(previous)
	fn()
	return captured
}
