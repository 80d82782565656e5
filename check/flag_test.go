package check_test

import (
	"testing"

	"github.com/saylorsolutions/checkx/check"
	"github.com/stretchr/testify/assert"
)

func TestEnabled(t *testing.T) {
	tests := []struct {
		name     string
		unset    bool
		value    string
		expected bool
	}{
		{
			name:     "Unset",
			unset:    true,
			expected: true,
		},
		{
			name:     "Empty",
			value:    "",
			expected: true,
		},
		{
			name:     "Enabled",
			value:    "1",
			expected: true,
		},
		{
			name:     "Other value",
			value:    "off",
			expected: true,
		},
		{
			name:     "Disabled",
			value:    "0",
			expected: false,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if !tc.unset {
				t.Setenv(check.RunEnvVar, tc.value)
			}
			assert.Equal(t, tc.expected, check.Enabled())
		})
	}
}

func TestDisable(t *testing.T) {
	t.Setenv(check.RunEnvVar, "1")
	check.Disable()
	assert.False(t, check.Enabled())

	// Every check degrades to a no-op, even with a failing condition.
	assert.NoError(t, check.If(false))
	assert.NoError(t, check.IfNot(true))
	assert.NoError(t, check.Type[string](5))
	assert.NoError(t, check.Length(struct{}{}, 1))
	assert.NoError(t, check.InLimits(5, 1, 3))
	assert.NoError(t, check.PathExists("/does/not/exist/at/all"))
	assert.NoError(t, check.All(check.That(false)))
	assert.Nil(t, check.Collect(check.That(false)))
	assert.NoError(t, check.Argument("x", 5, check.TypeOf[string]()))

	var evaluated bool
	assert.NoError(t, check.All(check.ThatFunc(func() bool {
		evaluated = true
		return false
	})))
	assert.False(t, evaluated, "disabled checks must skip predicate evaluation entirely")

	// Re-enabling within the same process restores normal behavior.
	check.Enable()
	assert.True(t, check.Enabled())
	assert.Error(t, check.If(false))
}
