// Package errors provides structured errors with stable codes for the
// error taxonomy skillhook exposes: configuration errors (the rules
// document itself is broken), rule parse errors (one rule's pattern
// fails to compile), and event errors (a malformed host payload).
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Configuration errors: the rules document is missing, unreadable,
	// or its top-level shape is invalid. These surface to the caller.
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Rule errors: one rule's pattern failed to compile. Isolated to
	// that rule; the rest of the document still evaluates.
	ErrRulePattern ErrorCode = "RULE_PATTERN"
	ErrRuleGlob    ErrorCode = "RULE_GLOB"

	// Event errors: the host payload is missing required fields.
	ErrEventInvalid ErrorCode = "EVENT_INVALID"

	// Skill document errors
	ErrSkillNotFound ErrorCode = "SKILL_NOT_FOUND"
	ErrSkillParse    ErrorCode = "SKILL_PARSE"

	// FileSystem errors
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrFileAccess   ErrorCode = "FILE_ACCESS"
	ErrFileWrite    ErrorCode = "FILE_WRITE"
)

// SkillhookError represents a structured error with code and details
type SkillhookError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *SkillhookError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *SkillhookError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *SkillhookError) Is(target error) bool {
	var targetErr *SkillhookError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new SkillhookError with the given code and message
func New(code ErrorCode, message string) *SkillhookError {
	return &SkillhookError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new SkillhookError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *SkillhookError {
	return &SkillhookError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a SkillhookError
func Wrap(err error, code ErrorCode, message string) *SkillhookError {
	if err == nil {
		return nil
	}
	return &SkillhookError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *SkillhookError {
	if err == nil {
		return nil
	}
	return &SkillhookError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *SkillhookError) WithDetail(key string, value interface{}) *SkillhookError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var shErr *SkillhookError
	if errors.As(err, &shErr) {
		return shErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if
// the error is not a SkillhookError
func GetErrorCode(err error) ErrorCode {
	var shErr *SkillhookError
	if errors.As(err, &shErr) {
		return shErr.Code
	}
	return ErrUnknown
}
