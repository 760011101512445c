package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldError_IsValidation(t *testing.T) {
	err := NewFieldError("co2Tons", "must be positive")

	assert.ErrorIs(t, err, ErrValidation)
	assert.NotErrorIs(t, err, ErrPrecondition)
	assert.Equal(t, "co2Tons: must be positive", err.Error())
}

func TestFieldError_AsThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("submit booking: %w", NewFieldError("location", "required"))

	var fe *FieldError
	require.True(t, errors.As(wrapped, &fe))
	assert.Equal(t, "location", fe.Field)
	assert.Equal(t, "required", fe.Message)
	assert.ErrorIs(t, wrapped, ErrValidation)
}

func TestSentinels_AreDistinct(t *testing.T) {
	all := []error{ErrValidation, ErrPrecondition, ErrGeneration, ErrMint, ErrStorage}
	for i, a := range all {
		for j, b := range all {
			if i == j {
				continue
			}
			assert.NotErrorIs(t, a, b)
		}
	}
}

func TestUserError_MatchesKindAndCause(t *testing.T) {
	cause := errors.New("quota exceeded")
	err := NewUserError(ErrGeneration, "Failed to generate NFT content.", cause)

	assert.ErrorIs(t, err, ErrGeneration)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrMint)
	assert.Equal(t, "Failed to generate NFT content.", err.Error())
}

func TestUserError_NilCause(t *testing.T) {
	err := NewUserError(ErrPrecondition, "Please connect your wallet first.", nil)

	assert.ErrorIs(t, err, ErrPrecondition)
	assert.Equal(t, "Please connect your wallet first.", err.Error())
}

func TestMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "user error", err: fmt.Errorf("mint: %w", NewUserError(ErrMint, "Try again.", nil)), want: "Try again."},
		{name: "field error", err: NewFieldError("location", "Location is required."), want: "Location is required."},
		{name: "plain", err: errors.New("disk full"), want: "disk full"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Message(tt.err))
		})
	}
}
