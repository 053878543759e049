package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name:     "without wrapped error",
			appErr:   New("PAY_001", "Insufficient funds", ProgramCodeInsufficientFunds),
			expected: "[PAY_001] Insufficient funds",
		},
		{
			name:     "with wrapped error",
			appErr:   Wrap("SYS_001", "Storage error", ProgramCodeInternal, fmt.Errorf("connection refused")),
			expected: "[SYS_001] Storage error: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.appErr.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	inner := fmt.Errorf("inner error")
	appErr := Wrap("SYS_001", "wrapped", ProgramCodeInternal, inner)

	assert.True(t, errors.Is(appErr, inner))
}

func TestAppError_IsNilUnwrap(t *testing.T) {
	appErr := New("PAY_001", "test", ProgramCodeInsufficientFunds)
	assert.Nil(t, appErr.Unwrap())
}

func TestCodeOf(t *testing.T) {
	wrapped := fmt.Errorf("settle: %w", ErrInsufficientFunds())

	assert.Equal(t, "PAY_001", CodeOf(wrapped))
	assert.Equal(t, "", CodeOf(fmt.Errorf("plain")))
	assert.Equal(t, "", CodeOf(nil))
	assert.True(t, Is(wrapped, "PAY_001"))
	assert.False(t, Is(wrapped, "DEC_001"))
	assert.False(t, Is(nil, "PAY_001"))
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		code string
	}{
		{"Truncated", ErrTruncated("fee"), "DEC_001"},
		{"UnknownTag", ErrUnknownTag(7), "DEC_002"},
		{"MalformedField", ErrMalformedField("address", errors.New("bad utf-8")), "DEC_003"},
		{"TrailingBytes", ErrTrailingBytes(3), "DEC_004"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, ProgramCodeDecode, tt.err.ProgramCode)
		})
	}
}

func TestFormatErrors(t *testing.T) {
	inner := errors.New("unexpected EOF")
	txErr := ErrInvalidTransaction(inner)
	assert.Equal(t, "FMT_001", txErr.Code)
	assert.Equal(t, ProgramCodeFormat, txErr.ProgramCode)
	assert.True(t, errors.Is(txErr, inner))

	trailing := ErrTransactionTrailingBytes(2)
	assert.Equal(t, "FMT_002", trailing.Code)
	assert.Contains(t, trailing.Message, "2")
}

func TestSettlementErrors(t *testing.T) {
	tests := []struct {
		name        string
		err         *AppError
		code        string
		programCode uint32
	}{
		{"InsufficientFunds", ErrInsufficientFunds(), "PAY_001", ProgramCodeInsufficientFunds},
		{"Overflow", ErrOverflow("required payment"), "ARI_001", ProgramCodeArithmetic},
		{"Underflow", ErrUnderflow("new balance"), "ARI_002", ProgramCodeArithmetic},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.programCode, tt.err.ProgramCode)
		})
	}
}

func TestEntrypointAndHostErrors(t *testing.T) {
	assert.Equal(t, "ENT_001", ErrReentrantInvocation().Code)
	assert.Equal(t, "ENT_002", ErrNoProgram().Code)

	notFound := ErrSlotNotFound("ab:0")
	assert.Equal(t, "HOST_001", notFound.Code)
	assert.Contains(t, notFound.Message, "ab:0")
	assert.Equal(t, "HOST_002", ErrDuplicateSlot("ab:0").Code)
}

func TestSystemErrors(t *testing.T) {
	inner := fmt.Errorf("pg: connection closed")
	internal := InternalError(inner)
	assert.Equal(t, "SYS_001", internal.Code)
	assert.Equal(t, ProgramCodeInternal, internal.ProgramCode)
	assert.True(t, errors.Is(internal, inner))

	storage := ErrStorage(inner)
	assert.Equal(t, "SYS_002", storage.Code)
	assert.True(t, errors.Is(storage, inner))
}
