package check_test

import (
	"errors"
	"testing"

	"github.com/saylorsolutions/checkx/check"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOnWarning(t *testing.T) {
	var (
		errRisky = errors.New("risky condition")
		received []error
	)
	previous := check.OnWarning(func(failure error) {
		received = append(received, failure)
	})
	defer check.OnWarning(previous)

	assert.NoError(t, check.If(false, check.Use(check.Warning(errRisky))))
	require.Len(t, received, 1)
	assert.ErrorIs(t, received[0], errRisky)
}

func TestCaptureWarnings(t *testing.T) {
	var errRisky = errors.New("risky condition")

	var outer []error
	restore := check.OnWarning(func(failure error) {
		outer = append(outer, failure)
	})
	defer check.OnWarning(restore)

	warnings := check.CaptureWarnings(func() {
		_ = check.If(false, check.Use(check.Warning(errRisky)), check.Msg("first"))
		_ = check.If(false, check.Use(check.Warning(errRisky)), check.Msg("second"))
	})
	require.Len(t, warnings, 2)
	assert.Contains(t, warnings[0].Error(), "first")
	assert.Contains(t, warnings[1].Error(), "second")
	assert.Empty(t, outer, "captured warnings must not reach the previous sink")

	// The previous sink is restored once capturing ends.
	_ = check.If(false, check.Use(check.Warning(errRisky)))
	assert.Len(t, outer, 1)
}

func TestCaptureWarnings_Clean(t *testing.T) {
	warnings := check.CaptureWarnings(func() {
		_ = check.If(true, check.Use(check.Warning(assert.AnError)))
	})
	assert.Empty(t, warnings)
}
