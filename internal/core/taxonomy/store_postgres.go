// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package taxonomy

import (
	"context"
	"fmt"

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

func (repository *PostgresRepository) FindTerms(context context.Context, namespace string, names []string) ([]Term, error) {
	if len(names) == 0 {
		return nil, nil
	}

	// One shape for any number of names.
	query := fmt.Sprintf(`
		SELECT DISTINCT t.%s, t.%s
		FROM %s t
		JOIN %s tt ON tt.%s = t.%s
		WHERE tt.%s = $1 AND t.%s = ANY($2)
		ORDER BY t.%s ASC
	`,
		schema.ContentTerm.ID, schema.ContentTerm.Name,
		schema.ContentTerm.Table, schema.ContentTermTaxonomy.Table,
		schema.ContentTermTaxonomy.TermID, schema.ContentTerm.ID,
		schema.ContentTermTaxonomy.Taxonomy, schema.ContentTerm.Name,
		schema.ContentTerm.ID,
	)

	rows, err := repository.db.Query(context, query, namespace, names)
	if err != nil {
		return nil, dberr.Wrap(err, "find_terms")
	}
	defer rows.Close()

	terms := make([]Term, 0, len(names))
	for rows.Next() {
		var term Term
		if err := rows.Scan(&term.ID, &term.Name); err != nil {
			return nil, dberr.Wrap(err, "scan_term")
		}
		terms = append(terms, term)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "find_terms")
	}
	return terms, nil
}

func (repository *PostgresRepository) ListTermNames(context context.Context, namespace string) ([]string, error) {
	query := fmt.Sprintf(`
		SELECT t.%s
		FROM %s t
		JOIN %s tt ON tt.%s = t.%s
		WHERE tt.%s = $1
		ORDER BY t.%s ASC
	`,
		schema.ContentTerm.Name,
		schema.ContentTerm.Table, schema.ContentTermTaxonomy.Table,
		schema.ContentTermTaxonomy.TermID, schema.ContentTerm.ID,
		schema.ContentTermTaxonomy.Taxonomy, schema.ContentTerm.Name,
	)

	rows, err := repository.db.Query(context, query, namespace)
	if err != nil {
		return nil, dberr.Wrap(err, "list_term_names")
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, dberr.Wrap(err, "scan_term_name")
		}
		names = append(names, name)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_term_names")
	}
	return names, nil
}
