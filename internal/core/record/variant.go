// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package record

import (
	"fmt"
	"strings"

	"github.com/taibuivan/scrolls/internal/platform/validate"
)

// DefaultPlaceholder is used when a row has no value in its title's primary field.
const DefaultPlaceholder = "No shelfmark"

// JoinedSeparator splits multi-valued source cells before they are re-joined
// with [JoinedBreak].
const (
	JoinedSeparator = ";"
	JoinedBreak     = "<br/>"
)

// Column maps one positional CSV column onto a named field.
type Column struct {
	Field string `yaml:"field" validate:"required"`
	Index int    `yaml:"index" validate:"gte=0"`
	// Joined fields have ";" separators rewritten as line breaks.
	Joined bool `yaml:"joined"`
}

// TitleRule describes how the human-readable title is composed.
type TitleRule struct {
	// Fields are concatenated in order, skipping empty ones.
	Fields []string `yaml:"fields" validate:"required,min=1,dive,required"`
	// Primary receives Placeholder when the row leaves it empty.
	Primary     string `yaml:"primary" validate:"required"`
	Placeholder string `yaml:"placeholder"`
}

// ListRule gathers several columns into one list-valued field, dropping
// empty members.
type ListRule struct {
	Field   string   `yaml:"field" validate:"required"`
	Sources []string `yaml:"sources" validate:"required,min=1,dive,required"`
}

// TaxonomyRule replaces a field's raw value with matching term ids.
type TaxonomyRule struct {
	Field     string `yaml:"field" validate:"required"`
	Namespace string `yaml:"namespace" validate:"required"`
	// Relate also links the entry to the resolved terms.
	Relate bool `yaml:"relate"`
}

// RepositoryRule names the fields describing the holding institution and the
// field that receives the reference to it.
type RepositoryRule struct {
	Name   string `yaml:"name" validate:"required"`
	City   string `yaml:"city"`
	Nation string `yaml:"nation"`
	Target string `yaml:"target" validate:"required"`
}

// Variant is one source CSV layout together with its derived-field rules.
type Variant struct {
	Name        string          `yaml:"name" validate:"required"`
	ColumnCount int             `yaml:"column_count" validate:"gt=0"`
	Columns     []Column        `yaml:"columns" validate:"required,min=1,dive"`
	Title       TitleRule       `yaml:"title"`
	Lists       []ListRule      `yaml:"lists" validate:"omitempty,dive"`
	Taxonomies  []TaxonomyRule  `yaml:"taxonomies" validate:"omitempty,dive"`
	Repository  *RepositoryRule `yaml:"repository" validate:"omitempty"`
	// MirrorTitle also stores the title as meta_title.
	MirrorTitle bool `yaml:"mirror_title"`

	minColumns int
}

// Validate checks the variant once, before any row is read. Structural rules
// come from the struct tags; cross-field rules are checked here.
func (v *Variant) Validate() error {
	check := validate.New("variant " + v.Name).Struct(v)
	if check.HasErrors() {
		return check.Err()
	}

	if v.Title.Placeholder == "" {
		v.Title.Placeholder = DefaultPlaceholder
	}

	columns := make(map[string]bool, len(v.Columns))
	indexes := make(map[int]string, len(v.Columns))
	v.minColumns = 0

	for i, column := range v.Columns {
		path := fmt.Sprintf("columns[%d]", i)
		check.Custom(path+".field", reserved(column.Field), "Reserved field name").
			Custom(path+".field", columns[column.Field], "Duplicate field").
			Custom(path+".index", column.Index >= v.ColumnCount, "Must be below column_count")
		if other, ok := indexes[column.Index]; ok {
			check.Custom(path+".index", true, "Already mapped to "+other)
		}

		columns[column.Field] = true
		indexes[column.Index] = column.Field
		v.minColumns = max(v.minColumns, column.Index+1)
	}

	for i, field := range v.Title.Fields {
		check.Custom(fmt.Sprintf("title.fields[%d]", i), !columns[field], "Unknown field "+field)
	}
	check.Custom("title.primary", !columns[v.Title.Primary], "Unknown field "+v.Title.Primary)

	derived := make(map[string]bool, len(v.Lists))
	for i, list := range v.Lists {
		path := fmt.Sprintf("lists[%d]", i)
		check.Custom(path+".field", reserved(list.Field) || columns[list.Field], "Field already defined")
		for j, source := range list.Sources {
			check.Custom(fmt.Sprintf("%s.sources[%d]", path, j), !columns[source], "Unknown field "+source)
		}
		derived[list.Field] = true
	}

	for i, rule := range v.Taxonomies {
		known := columns[rule.Field] || derived[rule.Field]
		check.Custom(fmt.Sprintf("taxonomies[%d].field", i), !known, "Unknown field "+rule.Field)
	}

	if rule := v.Repository; rule != nil {
		for _, ref := range [][2]string{{"name", rule.Name}, {"city", rule.City}, {"nation", rule.Nation}} {
			key, field := ref[0], ref[1]
			check.Custom("repository."+key, field != "" && !columns[field], "Unknown field "+field)
		}
		check.Custom("repository.target", reserved(rule.Target), "Reserved field name")
	}

	return check.Err()
}

// MinColumns is the shortest row the variant can map.
func (v *Variant) MinColumns() int { return v.minColumns }

// Taxonomy returns the taxonomy rule applying to field, if any.
func (v *Variant) Taxonomy(field string) (TaxonomyRule, bool) {
	for _, rule := range v.Taxonomies {
		if rule.Field == field {
			return rule, true
		}
	}
	return TaxonomyRule{}, false
}

// Relates reports whether field is linked to its resolved terms.
func (v *Variant) Relates(field string) bool {
	rule, ok := v.Taxonomy(field)
	return ok && rule.Relate
}

func reserved(field string) bool {
	return field == FieldTitle || field == FieldSlug
}

// joinCell rewrites a multi-valued cell, e.g. a bibliography, with line breaks.
func joinCell(value string) string {
	return strings.ReplaceAll(value, JoinedSeparator, JoinedBreak)
}
