// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package content_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/scrolls/internal/core/content"
	"github.com/taibuivan/scrolls/internal/platform/constants"
)

/*
TestNewEntry verifies the fixed attributes stamped on imported entries.
*/
func TestNewEntry(t *testing.T) {
	at := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	entry := content.NewEntry("Paris, MS 12", "paris-ms-12", constants.TypeScroll, at)

	assert.Equal(t, "Paris, MS 12", entry.Title)
	assert.Equal(t, "paris-ms-12", entry.Slug)
	assert.Equal(t, constants.TypeScroll, entry.Type)
	assert.Equal(t, constants.StatusPublish, entry.Status)
	assert.Equal(t, constants.AuthorID, entry.AuthorID)
	assert.True(t, at.Equal(entry.Timestamp))
}
