// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package record

import "github.com/taibuivan/scrolls/internal/platform/constants"

// Built-in variant names.
const (
	VariantCatalogue = "catalogue"
	VariantInventory = "inventory"
)

// Field names shared by the built-in variants.
const (
	FieldRepository = "repository"
	FieldShelfmark  = "shelfmark"
	FieldLanguages  = "languages"
)

// Catalogue is the full 29-column manuscript catalogue export.
//
// Column 6 is blank in every known export and stays unmapped.
func Catalogue() *Variant {
	return &Variant{
		Name:        VariantCatalogue,
		ColumnCount: 29,
		Columns: []Column{
			{Field: "_scrolls_id", Index: 0},
			{Field: "type", Index: 1},
			{Field: FieldRepository, Index: 2},
			{Field: "repository_city", Index: 3},
			{Field: "repository_nation", Index: 4},
			{Field: "repository_name_and_city", Index: 5},
			{Field: "lib_lat", Index: 7},
			{Field: "lib_lon", Index: 8},
			{Field: FieldShelfmark, Index: 9},
			{Field: "date_start", Index: 10},
			{Field: "date_end", Index: 11},
			{Field: "date_quality", Index: 12},
			{Field: "provenance", Index: 13},
			{Field: "prov_lat", Index: 14},
			{Field: "prov_lon", Index: 15},
			{Field: "length", Index: 16},
			{Field: "width", Index: 17},
			{Field: "number_of_pieces", Index: 18},
			{Field: "orientation", Index: 19},
			{Field: "completed", Index: 20},
			{Field: "language_1", Index: 21},
			{Field: "language_2", Index: 22},
			{Field: "contents", Index: 23},
			{Field: "description", Index: 24},
			{Field: "bibliography", Index: 25, Joined: true},
			{Field: "editor_initals", Index: 26},
			{Field: "online_images", Index: 27},
			{Field: "online_bibliography_record", Index: 28},
		},
		Title: TitleRule{
			Fields:      []string{"repository_city", FieldShelfmark},
			Primary:     FieldShelfmark,
			Placeholder: DefaultPlaceholder,
		},
		Lists: []ListRule{
			{Field: FieldLanguages, Sources: []string{"language_1", "language_2"}},
		},
		Taxonomies: standardTaxonomies(),
		Repository: &RepositoryRule{
			Name:   FieldRepository,
			City:   "repository_city",
			Nation: "repository_nation",
			Target: FieldRepository,
		},
		MirrorTitle: true,
	}
}

// Inventory is the shorter 17-column shelf inventory export.
func Inventory() *Variant {
	return &Variant{
		Name:        VariantInventory,
		ColumnCount: 17,
		Columns: []Column{
			{Field: "_scrolls_id", Index: 0},
			{Field: FieldShelfmark, Index: 1},
			{Field: FieldRepository, Index: 2},
			{Field: "repository_city", Index: 3},
			{Field: "repository_nation", Index: 4},
			{Field: "type", Index: 5},
			{Field: "date_start", Index: 6},
			{Field: "date_end", Index: 7},
			{Field: "date_quality", Index: 8},
			{Field: "orientation", Index: 9},
			{Field: "length", Index: 10},
			{Field: "width", Index: 11},
			{Field: "language_1", Index: 12},
			{Field: "language_2", Index: 13},
			{Field: "contents", Index: 14},
			{Field: "bibliography", Index: 15, Joined: true},
			{Field: "online_images", Index: 16},
		},
		Title: TitleRule{
			Fields:      []string{FieldShelfmark, FieldRepository},
			Primary:     FieldShelfmark,
			Placeholder: DefaultPlaceholder,
		},
		Lists: []ListRule{
			{Field: FieldLanguages, Sources: []string{"language_1", "language_2"}},
		},
		Taxonomies: standardTaxonomies(),
		Repository: &RepositoryRule{
			Name:   FieldRepository,
			City:   "repository_city",
			Nation: "repository_nation",
			Target: FieldRepository,
		},
	}
}

func standardTaxonomies() []TaxonomyRule {
	return []TaxonomyRule{
		{Field: "date_quality", Namespace: constants.TaxonomyQuality},
		{Field: "orientation", Namespace: constants.TaxonomyOrientation, Relate: true},
		{Field: "type", Namespace: constants.TaxonomyType, Relate: true},
		{Field: FieldLanguages, Namespace: constants.TaxonomyLanguage, Relate: true},
	}
}
