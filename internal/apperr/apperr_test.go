package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestIsMatchesOnCode(t *testing.T) {
	err := ErrInvalidSplit.WithMessage("split must total 100%%").WithField("splits", "sum is 99")
	wrapped := fmt.Errorf("add expense: %w", err)

	assert.True(t, errors.Is(wrapped, ErrInvalidSplit))
	assert.False(t, errors.Is(wrapped, ErrInvalidAmount))
	assert.Equal(t, KindValidation, KindOf(wrapped))
	assert.Equal(t, "sum is 99", FieldsOf(wrapped)["splits"])
	assert.Equal(t, "split must total 100%", err.Error())
	assert.Nil(t, ErrInvalidSplit.Fields, "sentinel must not be mutated")
}

func TestKindOfUnclassified(t *testing.T) {
	assert.Equal(t, KindInternal, KindOf(errors.New("boom")))
	assert.Nil(t, FieldsOf(errors.New("boom")))
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("disk full")
	err := ErrInvariantViolation.Wrap(cause)

	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, ErrInvariantViolation)
	assert.Equal(t, "invariant_violation", KindOf(err).String())
}

func TestOverSettlement(t *testing.T) {
	err := OverSettlement(decimal.NewFromInt(30))

	assert.ErrorIs(t, err, ErrOverSettlement)
	assert.Equal(t, "30.00", err.Fields["max"])
	assert.Equal(t, "maximum settlement allowed is 30.00", err.Error())
}
