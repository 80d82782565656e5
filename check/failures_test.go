package check

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFailures_Unwrap(t *testing.T) {
	var (
		ErrA = errors.New("A")
		ErrB = errors.New("B")
		err  = CollectFailures().Add(ErrA).Add(ErrB).Result()
		as   = new(Failures)
	)

	require.NotNil(t, err)
	assert.ErrorIs(t, err, ErrA)
	assert.ErrorIs(t, err, ErrB)
	assert.ErrorAs(t, err, &as)
}

func TestFailures_Error(t *testing.T) {
	var (
		ErrA = errors.New("A")
		ErrB = errors.New("B")
		err  = CollectFailures(" ").Add(ErrA).Add(ErrB).Addf("C").Result()
	)
	require.NotNil(t, err)
	assert.Equal(t, "A B C", err.Error())
}

func TestFailures_Empty(t *testing.T) {
	assert.NoError(t, CollectFailures().Add(nil).Result())
}
