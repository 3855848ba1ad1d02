// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package content

import "context"

type Repository interface {
	// InsertEntry stores entry and returns its id.
	InsertEntry(context context.Context, entry Entry) (int64, error)
	// FindIDsByTitle returns the ids of entries titled exactly title, ordered
	// by id. An empty entryType matches every type.
	FindIDsByTitle(context context.Context, title, entryType string) ([]int64, error)
	AddMeta(context context.Context, entryID int64, key, value string) error
	// AddTermRelationship links an entry to a term of namespace. Linking
	// twice is a no-op.
	AddTermRelationship(context context.Context, entryID, termID int64, namespace string) error

	// DeleteManaged removes entries of the given types, auto-drafts, and
	// their metadata and links.
	DeleteManaged(context context.Context, types []string) (DeleteResult, error)
	// ResetSequence makes baseline the next issued entry id.
	ResetSequence(context context.Context, baseline int64) error
}
