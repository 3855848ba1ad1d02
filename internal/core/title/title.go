// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package title composes the unique, human-readable title of each imported
record and derives its URL slug.

Titles are unique within a run, not across runs: the [Set] of issued titles
starts empty every time the importer starts.
*/
package title

import (
	"strconv"
	"strings"

	"github.com/taibuivan/scrolls/internal/core/record"
	"github.com/taibuivan/scrolls/pkg/slug"
)

// Separator joins the non-empty title fields.
const Separator = ", "

// Set is the run-scoped collection of titles issued so far.
//
// # Concurrency
//
// Set is not safe for concurrent use; titles are issued in row order.
type Set struct {
	issued map[string]struct{}
}

// NewSet returns an empty title set.
func NewSet() *Set {
	return &Set{issued: make(map[string]struct{})}
}

// Contains reports whether title was already issued.
func (s *Set) Contains(title string) bool {
	_, ok := s.issued[title]
	return ok
}

// Len returns the number of issued titles.
func (s *Set) Len() int { return len(s.issued) }

// Claim issues base, or the first "base n" (n = 1, 2, ...) not issued yet.
func (s *Set) Claim(base string) string {
	candidate := base
	for n := 1; s.Contains(candidate); n++ {
		candidate = base + " " + strconv.Itoa(n)
	}
	s.issued[candidate] = struct{}{}
	return candidate
}

// Compose joins the trimmed, non-empty title fields of rec in rule order.
func Compose(rec *record.Record, rule record.TitleRule) string {
	parts := make([]string, 0, len(rule.Fields))
	for _, field := range rule.Fields {
		if value := strings.TrimSpace(rec.Text(field)); value != "" {
			parts = append(parts, value)
		}
	}
	return strings.Join(parts, Separator)
}

// Generate assigns rec its unique title and slug and returns the title.
//
// An empty primary field is replaced with the rule's placeholder first, and
// the placeholder is kept on the record so it is stored as metadata too.
// A whitespace-only primary field is not empty; Compose then leaves it out.
// A record that already has a title keeps it.
func Generate(rec *record.Record, rule record.TitleRule, set *Set) (string, error) {
	if rec.Has(record.FieldTitle) {
		return rec.Title(), nil
	}

	if rec.Text(rule.Primary) == "" {
		placeholder := rule.Placeholder
		if placeholder == "" {
			placeholder = record.DefaultPlaceholder
		}
		rec.Set(rule.Primary, record.Text(placeholder))
	}

	issued := set.Claim(Compose(rec, rule))
	if err := rec.Identify(issued, slug.From(issued)); err != nil {
		return "", err
	}
	return issued, nil
}
