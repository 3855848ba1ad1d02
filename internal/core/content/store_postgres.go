// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package content

import (
	"context"
	"fmt"
	"time"

	"github.com/taibuivan/scrolls/internal/platform/constants"
	"github.com/taibuivan/scrolls/internal/platform/database/schema"
	"github.com/taibuivan/scrolls/internal/platform/dberr"
	"github.com/taibuivan/scrolls/internal/platform/postgres"
)

type PostgresRepository struct {
	db postgres.Querier
}

func NewPostgresRepository(db postgres.Querier) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) InsertEntry(context context.Context, entry Entry) (int64, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, '', $2, $3, $4, $5, $6, $6, $6, $6)
		RETURNING %s
	`,
		schema.ContentEntry.Table,
		schema.ContentEntry.AuthorID, schema.ContentEntry.Content, schema.ContentEntry.Title,
		schema.ContentEntry.Status, schema.ContentEntry.Type, schema.ContentEntry.Slug,
		schema.ContentEntry.CreatedAt, schema.ContentEntry.CreatedAtGMT,
		schema.ContentEntry.ModifiedAt, schema.ContentEntry.ModifiedAtGMT,
		schema.ContentEntry.ID,
	)

	// Second precision, as the CMS displays it.
	at := entry.Timestamp.Truncate(time.Second)

	var id int64
	err := repository.db.QueryRow(context, query,
		entry.AuthorID, entry.Title, entry.Status, entry.Type, entry.Slug, at,
	).Scan(&id)
	if err != nil {
		return 0, dberr.Wrap(err, "insert_entry")
	}

	return id, nil
}

func (repository *PostgresRepository) FindIDsByTitle(context context.Context, title, entryType string) ([]int64, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s
		WHERE %s = $1 AND ($2::text = '' OR %s = $2::text)
		ORDER BY %s ASC
	`,
		schema.ContentEntry.ID, schema.ContentEntry.Table,
		schema.ContentEntry.Title, schema.ContentEntry.Type,
		schema.ContentEntry.ID,
	)

	rows, err := repository.db.Query(context, query, title, entryType)
	if err != nil {
		return nil, dberr.Wrap(err, "find_entry_ids")
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, dberr.Wrap(err, "scan_entry_id")
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "find_entry_ids")
	}
	return ids, nil
}

func (repository *PostgresRepository) AddMeta(context context.Context, entryID int64, key, value string) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s) VALUES ($1, $2, $3)`,
		schema.ContentEntryMeta.Table,
		schema.ContentEntryMeta.EntryID, schema.ContentEntryMeta.Key, schema.ContentEntryMeta.Value,
	)

	if _, err := repository.db.Exec(context, query, entryID, key, value); err != nil {
		return dberr.Wrap(err, "insert_entry_meta")
	}
	return nil
}

func (repository *PostgresRepository) AddTermRelationship(context context.Context, entryID, termID int64, namespace string) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		SELECT $1, tt.%s, 0
		FROM %s tt
		WHERE tt.%s = $2 AND tt.%s = $3
		ON CONFLICT DO NOTHING
	`,
		schema.ContentTermRelationship.Table,
		schema.ContentTermRelationship.ObjectID, schema.ContentTermRelationship.TermTaxonomyID,
		schema.ContentTermRelationship.TermOrder,
		schema.ContentTermTaxonomy.ID,
		schema.ContentTermTaxonomy.Table,
		schema.ContentTermTaxonomy.TermID, schema.ContentTermTaxonomy.Taxonomy,
	)

	if _, err := repository.db.Exec(context, query, entryID, termID, namespace); err != nil {
		return dberr.Wrap(err, "insert_term_relationship")
	}
	return nil
}

func (repository *PostgresRepository) DeleteManaged(context context.Context, types []string) (DeleteResult, error) {
	managed := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = ANY($1)`,
		schema.ContentEntry.ID, schema.ContentEntry.Table, schema.ContentEntry.Type)

	metaQuery := fmt.Sprintf(`DELETE FROM %s WHERE %s IN (%s)`,
		schema.ContentEntryMeta.Table, schema.ContentEntryMeta.EntryID, managed)
	relationshipQuery := fmt.Sprintf(`DELETE FROM %s WHERE %s IN (%s)`,
		schema.ContentTermRelationship.Table, schema.ContentTermRelationship.ObjectID, managed)
	entryQuery := fmt.Sprintf(`DELETE FROM %s WHERE %s = ANY($1) OR %s = $2`,
		schema.ContentEntry.Table, schema.ContentEntry.Type, schema.ContentEntry.Status)

	var result DeleteResult

	tag, err := repository.db.Exec(context, metaQuery, types)
	if err != nil {
		return result, dberr.Wrap(err, "delete_entry_meta")
	}
	result.Meta = tag.RowsAffected()

	tag, err = repository.db.Exec(context, relationshipQuery, types)
	if err != nil {
		return result, dberr.Wrap(err, "delete_term_relationships")
	}
	result.Relationships = tag.RowsAffected()

	tag, err = repository.db.Exec(context, entryQuery, types, constants.StatusAutoDraft)
	if err != nil {
		return result, dberr.Wrap(err, "delete_entries")
	}
	result.Entries = tag.RowsAffected()

	return result, nil
}

func (repository *PostgresRepository) ResetSequence(context context.Context, baseline int64) error {
	query := fmt.Sprintf(`SELECT setval(pg_get_serial_sequence('%s', '%s'), $1, false)`,
		schema.ContentEntry.Table, schema.ContentEntry.ID)

	if _, err := repository.db.Exec(context, query, baseline); err != nil {
		return dberr.Wrap(err, "reset_entry_sequence")
	}
	return nil
}
