// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a structured error classification.
type ErrorCode string

const (
	// ErrCodeNotFound indicates a requested resource was not found.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
	// ErrCodeTimeout indicates an operation exceeded its time limit.
	ErrCodeTimeout ErrorCode = "TIMEOUT"
	// ErrCodeInternal indicates an internal system error.
	ErrCodeInternal ErrorCode = "INTERNAL"
	// ErrCodeInvalidRequest indicates malformed or invalid input.
	ErrCodeInvalidRequest ErrorCode = "INVALID_REQUEST"
	// ErrCodeInvalidArgument indicates a single caller-supplied argument was rejected.
	ErrCodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"
)

// Category tags an invalid argument with the rule it broke.
type Category string

const (
	CategoryMissingValue     Category = "missing_value"
	CategoryMissingKey       Category = "missing_key"
	CategoryMissingDate      Category = "missing_date"
	CategoryInvalidDate      Category = "invalid_date"
	CategoryNegativeNumber   Category = "negative_number"
	CategoryInvalidNumber    Category = "invalid_number"
	CategoryInvalidStatus    Category = "invalid_status"
	CategoryMultipleStatuses Category = "multiple_statuses"
	CategoryInvalidWhitelist Category = "invalid_whitelist"
	CategoryUnscopedUpdate   Category = "unscoped_update"
	CategoryMissingStatus    Category = "missing_status"
	CategoryReservedKey      Category = "reserved_key"
)

// Context keys used by NewInvalidArgument.
const (
	ContextKeyCategory = "category"
	ContextKeyField    = "field"
)

// StructuredError provides structured error information for better observability.
// It includes an error code for programmatic handling, a human-readable message,
// the underlying cause, and optional context for debugging.
type StructuredError struct {
	Code    ErrorCode
	Message string
	Cause   error
	Context map[string]any
}

// Error implements the error interface.
func (e *StructuredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is and errors.As support.
func (e *StructuredError) Unwrap() error {
	return e.Cause
}

// New creates a new StructuredError with the given code and message.
func New(code ErrorCode, message string) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
	}
}

// NewWithContext creates a new StructuredError with context information.
func NewWithContext(code ErrorCode, message string, context map[string]any) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
		Context: context,
	}
}

// Wrap wraps an existing error with additional context.
func Wrap(code ErrorCode, message string, cause error) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WrapWithContext wraps an error with additional context information.
func WrapWithContext(code ErrorCode, message string, cause error, context map[string]any) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
		Cause:   cause,
		Context: context,
	}
}

// NewInvalidArgument creates an ErrCodeInvalidArgument error for the named field.
func NewInvalidArgument(category Category, field, message string) *StructuredError {
	return &StructuredError{
		Code:    ErrCodeInvalidArgument,
		Message: fmt.Sprintf("%s: %s", field, message),
		Context: map[string]any{
			ContextKeyCategory: category,
			ContextKeyField:    field,
		},
	}
}

// With adds a context entry and returns the receiver for chaining.
func (e *StructuredError) With(key string, value any) *StructuredError {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

// IsInvalidArgument reports whether err, or any error it wraps, is an
// ErrCodeInvalidArgument StructuredError.
func IsInvalidArgument(err error) bool {
	var se *StructuredError
	return errors.As(err, &se) && se.Code == ErrCodeInvalidArgument
}

// CategoryOf returns the category of an invalid argument error, or "" if err
// carries none.
func CategoryOf(err error) Category {
	var se *StructuredError
	if !errors.As(err, &se) {
		return ""
	}
	c, _ := se.Context[ContextKeyCategory].(Category)
	return c
}

// FieldOf returns the offending field name of an invalid argument error.
func FieldOf(err error) string {
	var se *StructuredError
	if !errors.As(err, &se) {
		return ""
	}
	f, _ := se.Context[ContextKeyField].(string)
	return f
}
