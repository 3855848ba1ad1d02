// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package content writes entries, their metadata and their taxonomy links to
the content store, and clears previously imported entries on reset.
*/
package content

import (
	"time"

	"github.com/taibuivan/scrolls/internal/platform/constants"
)

// Entry is one content entity: a manuscript fragment or a holding repository.
type Entry struct {
	Title    string
	Slug     string
	Type     string
	Status   string
	AuthorID int64
	// Timestamp fills the created and modified columns, local and GMT alike.
	Timestamp time.Time
}

// NewEntry returns a published entry owned by the importer's fixed author.
func NewEntry(title, slug, entryType string, at time.Time) Entry {
	return Entry{
		Title:     title,
		Slug:      slug,
		Type:      entryType,
		Status:    constants.StatusPublish,
		AuthorID:  constants.AuthorID,
		Timestamp: at,
	}
}

// DeleteResult counts the rows a reset removed.
type DeleteResult struct {
	Entries       int64 `json:"entries"`
	Meta          int64 `json:"meta"`
	Relationships int64 `json:"relationships"`
}
