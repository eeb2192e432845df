package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStructuredError_Error(t *testing.T) {
	// Test error without cause
	err := New(ErrorTypeValidation, "compact", "selection too short")
	expected := "[validation] compact: selection too short"
	assert.Equal(t, expected, err.Error())

	// Test error with cause
	cause := errors.New("expected 'IDENT', found 'func'")
	err = Wrap(cause, ErrorTypeGeneration, "format", "generated source does not parse")
	assert.Contains(t, err.Error(), "[generation] format: generated source does not parse")
	assert.Contains(t, err.Error(), "expected 'IDENT'")
	assert.Equal(t, cause, err.Unwrap())
}

func TestStructuredError_WithContext(t *testing.T) {
	err := New(ErrorTypeValidation, "compact", "unsupported type")
	err = err.WithContext("type", "decimal128").WithContext("rows", 42)

	assert.Equal(t, "decimal128", err.Context["type"])
	assert.Equal(t, 42, err.Context["rows"])
}

func TestErrorConstructors(t *testing.T) {
	assert.Equal(t, ErrorTypeValidation, NewValidationError("op", "msg").Type)
	assert.Equal(t, ErrorTypeConfiguration, NewConfigurationError("op", "msg").Type)
}

func TestErrorWrapping(t *testing.T) {
	originalErr := errors.New("original error")

	wrapped := WrapConfigurationError(originalErr, "load", "bad environment")
	assert.Equal(t, ErrorTypeConfiguration, wrapped.Type)
	assert.Equal(t, "load", wrapped.Operation)
	assert.Equal(t, "bad environment", wrapped.Message)
	assert.Equal(t, originalErr, wrapped.Unwrap())

	assert.Equal(t, ErrorTypeGeneration, WrapGenerationError(originalErr, "op", "msg").Type)

	// Wrap returns nil for nil error
	assert.Nil(t, Wrap(nil, ErrorTypeGeneration, "op", "msg"))
}

func TestIsType(t *testing.T) {
	inner := NewValidationError("options", "empty package name")
	outer := WrapGenerationError(inner, "generate", "invalid options")

	assert.True(t, IsType(outer, ErrorTypeGeneration))
	assert.True(t, IsType(outer, ErrorTypeValidation))
	assert.False(t, IsType(outer, ErrorTypeConfiguration))

	// Through a plain fmt wrapper
	assert.True(t, IsType(fmt.Errorf("genfilter: %w", inner), ErrorTypeValidation))

	assert.False(t, IsType(errors.New("plain"), ErrorTypeValidation))
	assert.False(t, IsType(nil, ErrorTypeValidation))
}

func TestErrorTypeString(t *testing.T) {
	assert.Equal(t, "validation", string(ErrorTypeValidation))
	assert.Equal(t, "configuration", string(ErrorTypeConfiguration))
	assert.Equal(t, "generation", string(ErrorTypeGeneration))
}

func TestStackTraceCapture(t *testing.T) {
	err := New(ErrorTypeValidation, "test", "message")
	// Should have captured some stack frames
	assert.Greater(t, len(err.Stack), 0)
}
