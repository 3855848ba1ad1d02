// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package taxonomy resolves free-text and coded field values against the
controlled vocabularies (terms) already present in the content store.

Terms are reference data: the importer only reads them. A value with no
matching term resolves to an empty id list, which is stored as an empty
metadata value and counted as a miss in the run report.
*/
package taxonomy

import "github.com/taibuivan/scrolls/internal/platform/constants"

// Term is one vocabulary entry within a namespace.
type Term struct {
	ID   int64
	Name string
}

// synonyms maps source shorthands onto canonical term names. Matching is
// exact and case-sensitive.
var synonyms = map[string]string{
	"ca": "Circa",
	"H":  "Horizontal",
	"h":  "Horizontal",
	"V":  "Vertical",
	"v":  "Vertical",
}

// Normalize rewrites a scalar value into the term name it stands for.
// An empty quality means the date is exact.
func Normalize(namespace, value string) string {
	if canonical, ok := synonyms[value]; ok {
		return canonical
	}
	if value == "" && namespace == constants.TaxonomyQuality {
		return "Exact"
	}
	return value
}
