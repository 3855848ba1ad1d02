// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"errors"

	"github.com/taibuivan/scrolls/internal/platform/apperr"
)

type cliError struct {
	code int
	err  error
}

func (e *cliError) Error() string {
	return e.err.Error()
}

func (e *cliError) Unwrap() error {
	return e.err
}

const (
	exitOK      = 0
	exitGeneric = 1
	exitPartial = 2
	exitUsage   = 3
	exitDB      = 4
)

func withCode(code int, err error) error {
	if err == nil {
		return nil
	}
	return &cliError{code: code, err: err}
}

func exitCode(err error) int {
	if err == nil {
		return exitOK
	}
	var ce *cliError
	if errors.As(err, &ce) {
		return ce.code
	}
	return exitGeneric
}

// classify picks the exit code of an error returned by an import phase.
func classify(err error) error {
	switch {
	case err == nil:
		return nil
	case apperr.HasCode(err, apperr.CodeValidation):
		return withCode(exitUsage, err)
	case apperr.HasCode(err, apperr.CodeRunLocked):
		return withCode(exitGeneric, err)
	default:
		return withCode(exitDB, err)
	}
}
