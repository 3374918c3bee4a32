package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeNotFound, "resource not found")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if err.Code != ErrCodeNotFound {
		t.Errorf("expected code %s, got %s", ErrCodeNotFound, err.Code)
	}
	if err.Message != "resource not found" {
		t.Errorf("expected message 'resource not found', got %s", err.Message)
	}
	if err.Cause != nil {
		t.Errorf("expected nil cause, got %v", err.Cause)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeInternal, "operation failed", cause)

	if err.Code != ErrCodeInternal {
		t.Errorf("expected code %s, got %s", ErrCodeInternal, err.Code)
	}
	if !errors.Is(err, cause) {
		t.Errorf("expected cause to be wrapped")
	}
}

func TestWrapWithContext(t *testing.T) {
	cause := errors.New("bad input")
	ctx := map[string]any{
		"field": "limit",
		"value": -1,
	}

	err := WrapWithContext(ErrCodeInvalidRequest, "query rejected", cause, ctx)

	if err.Code != ErrCodeInvalidRequest {
		t.Errorf("expected code %s, got %s", ErrCodeInvalidRequest, err.Code)
	}
	if err.Context == nil {
		t.Fatal("expected context to be set")
	}
	if err.Context["field"] != "limit" {
		t.Errorf("expected field to be limit")
	}
}

func TestError(t *testing.T) {
	tests := []struct {
		name     string
		err      *StructuredError
		expected string
	}{
		{
			name:     "error without cause",
			err:      New(ErrCodeNotFound, "not found"),
			expected: "[NOT_FOUND] not found",
		},
		{
			name:     "error with cause",
			err:      Wrap(ErrCodeInternal, "failed", errors.New("root cause")),
			expected: "[INTERNAL] failed: root cause",
		},
		{
			name:     "invalid argument",
			err:      NewInvalidArgument(CategoryNegativeNumber, "limit", "must not be negative"),
			expected: "[INVALID_ARGUMENT] limit: must not be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Error()
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := Wrap(ErrCodeInternal, "wrapped", cause)

	unwrapped := err.Unwrap()
	if !errors.Is(unwrapped, cause) {
		t.Errorf("expected unwrapped error to be original cause")
	}

	if !errors.Is(err, cause) {
		t.Errorf("errors.Is should work with Unwrap")
	}
}

func TestInvalidArgumentAccessors(t *testing.T) {
	err := NewInvalidArgument(CategoryInvalidStatus, "paymentStatus", "unknown status").
		With("token", "DECLINE")

	if !IsInvalidArgument(err) {
		t.Fatal("expected invalid argument")
	}
	if got := CategoryOf(err); got != CategoryInvalidStatus {
		t.Errorf("expected category %s, got %s", CategoryInvalidStatus, got)
	}
	if got := FieldOf(err); got != "paymentStatus" {
		t.Errorf("expected field paymentStatus, got %s", got)
	}
	if err.Context["token"] != "DECLINE" {
		t.Errorf("expected token context, got %v", err.Context["token"])
	}

	wrapped := fmt.Errorf("building filter: %w", err)
	if !IsInvalidArgument(wrapped) {
		t.Error("expected wrapped error to remain an invalid argument")
	}
	if CategoryOf(wrapped) != CategoryInvalidStatus {
		t.Error("expected category to survive wrapping")
	}
}

func TestInvalidArgumentAccessors_OtherErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "nil", err: nil},
		{name: "plain error", err: errors.New("boom")},
		{name: "other code", err: New(ErrCodeInternal, "boom")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if IsInvalidArgument(tt.err) {
				t.Error("expected not an invalid argument")
			}
			if CategoryOf(tt.err) != "" {
				t.Errorf("expected empty category, got %q", CategoryOf(tt.err))
			}
			if FieldOf(tt.err) != "" {
				t.Errorf("expected empty field, got %q", FieldOf(tt.err))
			}
		})
	}
}

func TestErrorCodes(t *testing.T) {
	codes := []ErrorCode{
		ErrCodeNotFound,
		ErrCodeInternal,
		ErrCodeInvalidRequest,
		ErrCodeInvalidArgument,
	}

	for _, code := range codes {
		if string(code) == "" {
			t.Errorf("error code should not be empty: %v", code)
		}
	}
}
