package check_test

import (
	"testing"

	"github.com/saylorsolutions/checkx/check"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgument_TypeOf(t *testing.T) {
	err := check.Argument("x", 5, check.TypeOf[string]())
	require.Error(t, err)
	assert.ErrorIs(t, err, check.ErrArgumentType)
	assert.Contains(t, err.Error(), "incorrect type of x")
	assert.Contains(t, err.Error(), "string")

	assert.NoError(t, check.Argument("x", "text", check.TypeOf[string]()))
	assert.NoError(t, check.Argument("err", assert.AnError, check.TypeOf[error]()))
}

func TestArgument_OneOf(t *testing.T) {
	choices := check.OneOf("first choice", "second choice")
	assert.NoError(t, check.Argument("x", "first choice", choices))

	err := check.Argument("x", "no choice", choices)
	require.Error(t, err)
	assert.ErrorIs(t, err, check.ErrArgumentValue)
	assert.Contains(t, err.Error(), "x's value, no choice, is not among valid values")
}

func TestArgument_Satisfies(t *testing.T) {
	x := 2.0
	assert.NoError(t, check.Argument("x", x, check.Satisfies(x > 1)))

	err := check.Argument("x", x, check.Satisfies(x > 3))
	require.Error(t, err)
	assert.ErrorIs(t, err, check.ErrArgumentCondition)
	assert.Contains(t, err.Error(), "argument x")
}

func TestArgument_LengthOf(t *testing.T) {
	assert.NoError(t, check.Argument("x", []int{1, 2, 3}, check.LengthOf(3)))
	assert.NoError(t, check.Argument("x", 5, check.LengthOf(1)), "scalars count as length 1")

	err := check.Argument("x", []int{1, 2, 3}, check.LengthOf(2))
	require.Error(t, err)
	assert.ErrorIs(t, err, check.ErrArgumentLength)
	assert.Contains(t, err.Error(), "unexpected length of x (should be 2)")

	assert.ErrorIs(t, check.Argument("x", struct{}{}, check.LengthOf(1)), check.ErrNoLength)
}

func TestArgument_MultipleCriteria(t *testing.T) {
	// The first failing criterion determines the error.
	err := check.Argument("x", []int{1, 2, 3}, check.TypeOf[[]string](), check.LengthOf(2))
	require.Error(t, err)
	assert.ErrorIs(t, err, check.ErrArgumentType)

	err = check.Argument("x", []int{1, 2, 3}, check.TypeOf[[]int](), check.LengthOf(2))
	require.Error(t, err)
	assert.ErrorIs(t, err, check.ErrArgumentLength)

	assert.NoError(t, check.Argument("x", []int{1, 2, 3}, check.TypeOf[[]int](), check.LengthOf(3), check.Satisfies(true)))
}

func TestArgument_UsageErrors(t *testing.T) {
	assert.ErrorIs(t, check.Argument("x", 5), check.ErrNoCriteria)
	assert.ErrorIs(t, check.Argument("x", 5, nil), check.ErrNilPredicate)
}

func TestArgument_DefaultName(t *testing.T) {
	err := check.Argument("", 5, check.TypeOf[string]())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "incorrect type of argument")
}
