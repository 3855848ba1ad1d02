// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package apperr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/scrolls/internal/platform/apperr"
)

/*
TestAppError_Message verifies that the rendered message carries the remediation context.
*/
func TestAppError_Message(t *testing.T) {
	cause := errors.New("duplicate key")

	err := apperr.StoreWrite("Paris, MS 12", "date_start", cause)
	assert.Equal(t, `store write failed [title="Paris, MS 12" field="date_start"]: duplicate key`, err.Error())

	row := apperr.MalformedRow("data/a.csv", 3, errors.New("row has 4 columns, need 29"))
	assert.Equal(t, "malformed row (data/a.csv:3): row has 4 columns, need 29", row.Error())
}

/*
TestAppError_Chain verifies errors.Is/As traversal through wrapped AppErrors.
*/
func TestAppError_Chain(t *testing.T) {
	cause := errors.New("connection reset")
	wrapped := fmt.Errorf("meta phase: %w", apperr.StoreWrite("X", "f", cause))

	require.True(t, apperr.IsAppError(wrapped))
	assert.ErrorIs(t, wrapped, cause)
	assert.True(t, apperr.HasCode(wrapped, apperr.CodeStoreWrite))
	assert.False(t, apperr.HasCode(wrapped, apperr.CodeMalformedRow))
	assert.Nil(t, apperr.As(cause))
}
