// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package apperr defines the centralized error handling framework for the importer.

It provides a rich error type that carries enough context (source file, row,
entry title, metadata field) for an operator to remediate a failed record by
hand after a run.

Architecture:

  - AppError: A struct containing a machine-readable Code and a readable message.
  - Context: Where the failure happened (file/line for input, title/field for writes).
  - Classification: Codes map to the error kinds an import run distinguishes.

Row-level errors are collected into the run report; they never abort a run.
*/
package apperr

import (
	"errors"
	"fmt"
	"strings"
)

// # Error Codes

const (
	CodeMalformedRow   = "MALFORMED_ROW"
	CodeAmbiguousTitle = "AMBIGUOUS_TITLE_LOOKUP"
	CodeTaxonomyMiss   = "TAXONOMY_LOOKUP_MISS"
	CodeStoreWrite     = "STORE_WRITE_FAILURE"
	CodeNotFound       = "NOT_FOUND"
	CodeConflict       = "CONFLICT"
	CodeValidation     = "VALIDATION_ERROR"
	CodeInternal       = "INTERNAL_ERROR"
	CodeRunLocked      = "RUN_LOCKED"
)

// AppError is the canonical error type of the importer.
type AppError struct {
	// Code is a machine-readable error identifier (e.g. "MALFORMED_ROW").
	Code string `json:"code"`
	// Message is a human-readable description.
	Message string `json:"error"`
	// Source is the input file the failing row came from, if any.
	Source string `json:"source,omitempty"`
	// Line is the 1-based CSV record number, if any.
	Line int `json:"line,omitempty"`
	// Title is the entry title the failure relates to, if any.
	Title string `json:"title,omitempty"`
	// Field is the metadata key being written, if any.
	Field string `json:"field,omitempty"`
	// Cause is the underlying error.
	Cause error `json:"-"`
	// Details holds per-field validation errors for VALIDATION_ERROR.
	Details []FieldError `json:"details,omitempty"`
}

// FieldError represents a single field-level validation failure.
type FieldError struct {
	// Field is the name of the field that failed validation.
	Field string `json:"field"`
	// Message is the human-readable description of the failure.
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *AppError) Error() string {
	var builder strings.Builder
	builder.WriteString(e.Message)

	if e.Source != "" {
		fmt.Fprintf(&builder, " (%s:%d)", e.Source, e.Line)
	}
	if e.Title != "" {
		fmt.Fprintf(&builder, " [title=%q", e.Title)
		if e.Field != "" {
			fmt.Fprintf(&builder, " field=%q", e.Field)
		}
		builder.WriteByte(']')
	}
	if e.Cause != nil {
		builder.WriteString(": ")
		builder.WriteString(e.Cause.Error())
	}

	return builder.String()
}

// Unwrap allows [errors.Is] and [errors.As] to traverse the cause chain.
func (e *AppError) Unwrap() error { return e.Cause }

// # Input Errors

// MalformedRow reports a CSV row that cannot be mapped, either because it is
// shorter than the schema requires or because the reader rejected it.
func MalformedRow(source string, line int, cause error) *AppError {
	return &AppError{
		Code:    CodeMalformedRow,
		Message: "malformed row",
		Source:  source,
		Line:    line,
		Cause:   cause,
	}
}

// ValidationError creates a validation [AppError] with optional per-field details.
func ValidationError(msg string, details ...FieldError) *AppError {
	return &AppError{
		Code:    CodeValidation,
		Message: msg,
		Details: details,
	}
}

// # Store Errors

// AmbiguousTitle reports that more than one stored entry carries title.
func AmbiguousTitle(title string, matches int) *AppError {
	return &AppError{
		Code:    CodeAmbiguousTitle,
		Message: fmt.Sprintf("%d entries share the title, using the first", matches),
		Title:   title,
	}
}

// TaxonomyMiss reports a value with no matching term in namespace.
func TaxonomyMiss(namespace, value string) *AppError {
	return &AppError{
		Code:    CodeTaxonomyMiss,
		Message: fmt.Sprintf("no %s term named %q", namespace, value),
		Field:   namespace,
	}
}

// StoreWrite wraps a failed insert with the entry title and field it was writing.
func StoreWrite(title, field string, cause error) *AppError {
	return &AppError{
		Code:    CodeStoreWrite,
		Message: "store write failed",
		Title:   title,
		Field:   field,
		Cause:   cause,
	}
}

// NotFound creates a not-found [AppError] for a named resource.
//
// Example:
//
//	apperr.NotFound("Entry") // Returns "Entry not found"
func NotFound(resource string) *AppError {
	return &AppError{
		Code:    CodeNotFound,
		Message: resource + " not found",
	}
}

// Conflict creates an [AppError] for unique-constraint violations.
func Conflict(msg string, cause error) *AppError {
	return &AppError{
		Code:    CodeConflict,
		Message: msg,
		Cause:   cause,
	}
}

// RunLocked reports that another import run holds the single-writer lock.
func RunLocked(holder string) *AppError {
	return &AppError{
		Code:    CodeRunLocked,
		Message: "another import run holds the lock (" + holder + ")",
	}
}

// Internal wraps an unexpected error.
func Internal(cause error) *AppError {
	return &AppError{
		Code:    CodeInternal,
		Message: "unexpected error",
		Cause:   cause,
	}
}

// # Helpers

// IsAppError reports whether err (or any error in its chain) is an [*AppError].
func IsAppError(err error) bool {
	var ae *AppError
	return errors.As(err, &ae)
}

// As extracts the [*AppError] from err's chain. It returns nil if not found.
func As(err error) *AppError {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae
	}
	return nil
}

// HasCode reports whether err carries an [*AppError] with the given code.
func HasCode(err error, code string) bool {
	ae := As(err)
	return ae != nil && ae.Code == code
}
