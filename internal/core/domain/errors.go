package domain

import (
	"errors"
	"fmt"
)

// DomainError represents a domain error with a structured error code.
//
// Codes have the form HB-<AREA>-<NNNN>; the trailing number mirrors the
// HTTP status the error maps to when surfaced over the local API.
type DomainError struct {
	Code    string // Error code (e.g., "HB-FS-4040")
	Message string // Human-readable message
	Details string // Optional additional details
	Cause   error  // Underlying error (if any)
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for errors.Unwrap() support.
func (e *DomainError) Unwrap() error {
	return e.Cause
}

// Is matches any DomainError carrying the same code.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewDomainError creates a new DomainError with the given code and message.
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// WithDetails returns a copy of the error with additional details.
func (e *DomainError) WithDetails(details string) *DomainError {
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Details: details,
		Cause:   e.Cause,
	}
}

// WithCause returns a copy of the error wrapping the given cause.
func (e *DomainError) WithCause(cause error) *DomainError {
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
		Cause:   cause,
	}
}

// Wrap wraps cause and uses its text as the details, so the OS or
// decoder message reaches the caller verbatim.
func (e *DomainError) Wrap(cause error) *DomainError {
	if cause == nil {
		return e
	}
	return e.WithCause(cause).WithDetails(cause.Error())
}

// IsDomainError checks if an error is a DomainError with the given code.
// If code is empty, it only checks if the error is a DomainError.
func IsDomainError(err error, code string) bool {
	var de *DomainError
	if errors.As(err, &de) {
		if code == "" {
			return true
		}
		return de.Code == code
	}
	return false
}

// GetErrorCode extracts the error code from an error if it's a DomainError.
func GetErrorCode(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}

// ============================================================================
// Document Errors (DOC)
// ============================================================================

var (
	// ErrFormat indicates the file content is not a JSON data file.
	ErrFormat = NewDomainError("HB-DOC-4150", "not a recognized data file")

	// ErrParse indicates the JSON is malformed or violates the document schema.
	ErrParse = NewDomainError("HB-DOC-4220", "failed to parse document")

	// ErrSerialize indicates the in-memory document could not be encoded.
	ErrSerialize = NewDomainError("HB-DOC-5000", "failed to serialize document")

	// ErrValidation indicates a document violates a model invariant.
	ErrValidation = NewDomainError("HB-DOC-4001", "document validation failed")
)

// ============================================================================
// Filesystem Errors (FS)
// ============================================================================

var (
	// ErrNotFound indicates the referenced file is absent.
	ErrNotFound = NewDomainError("HB-FS-4040", "file does not exist")

	// ErrInvalidPath indicates a path is not absolute or its parent is missing.
	ErrInvalidPath = NewDomainError("HB-FS-4000", "invalid path")
)

// ============================================================================
// System Errors (SYS)
// ============================================================================

var (
	// ErrIO indicates a read, write or metadata failure reported by the OS.
	ErrIO = NewDomainError("HB-SYS-5001", "i/o failure")

	// ErrInternal indicates an unexpected failure.
	ErrInternal = NewDomainError("HB-SYS-5000", "internal error")

	// ErrBadRequest indicates a malformed request.
	ErrBadRequest = NewDomainError("HB-SYS-4000", "bad request")
)
