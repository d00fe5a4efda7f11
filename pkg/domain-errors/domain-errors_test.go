package domainerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMessageFallsBackToCode(t *testing.T) {
	err := New(CodeShape, "")
	assert.Equal(t, "shape_error", err.Error())

	err = New(CodeShape, "code must be 16 characters")
	assert.Equal(t, "code must be 16 characters", err.Error())
}

func TestWrapPreservesOriginalCode(t *testing.T) {
	inner := New(CodeChecksumMismatch, "expected Z, found K")
	wrapped := Wrap(inner, CodeInternal, "decode failed")

	assert.True(t, HasCode(wrapped, CodeChecksumMismatch), "wrapping must not mask the original domain code")
	assert.False(t, HasCode(wrapped, CodeInternal))
}

func TestWrapNonDomainError(t *testing.T) {
	inner := fmt.Errorf("connection refused")
	wrapped := Wrap(inner, CodeUnavailable, "place store unreachable")

	require.True(t, HasCode(wrapped, CodeUnavailable))
	assert.True(t, errors.Is(wrapped, inner), "wrapped error must stay in the chain")
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, CodeInvalidDay, CodeOf(New(CodeInvalidDay, "day 35")))
	assert.Equal(t, CodeInternal, CodeOf(errors.New("plain")))
}

func TestIsDecodeFailure(t *testing.T) {
	for _, code := range []Code{CodeShape, CodeChecksumMismatch, CodeInvalidMonth, CodeInvalidDay, CodeUnknownPlace} {
		assert.True(t, IsDecodeFailure(code), string(code))
	}
	for _, code := range []Code{CodeNotFound, CodeInternal, CodeBadRequest, CodeUnavailable} {
		assert.False(t, IsDecodeFailure(code), string(code))
	}
}
