// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package library resolves the institution holding a manuscript to a
"repository" entry in the content store, creating it on first sight.

Repositories are identified by title. Anonymous holders ("Unknown ...",
"Private collection") are told apart by appending their city to the title.

The find-then-create sequence is not atomic. It is correct only while a
single importer writes to the store, which the run lock enforces.
*/
package library

import "strings"

// Holder describes a holding institution as it appears in a source row.
type Holder struct {
	Name   string
	City   string
	Nation string
}

// countries maps the nation codes found in source rows to country term
// names. "NY" and "SP" are recurring data-entry variants.
var countries = map[string]string{
	"BE":      "Belgium",
	"US":      "United States",
	"GB":      "Great Britain",
	"DE":      "Germany",
	"FR":      "France",
	"IT":      "Italy",
	"NL":      "Netherlands",
	"UK":      "United Kingdom",
	"Unknown": "Unknown",
	"AT":      "Austria",
	"SP":      "Spain",
	"CH":      "Switzerland",
	"NZ":      "New Zealand",
	"DK":      "Denmark",
	"NY":      "United States",
	"ES":      "Spain",
	"PL":      "Poland",
	"RU":      "Russia",
}

// CountryName returns the country term name for code, or "" when unknown.
func CountryName(code string) string {
	return countries[code]
}

// Title returns the repository entry title for a holder.
func Title(name, city string) string {
	lower := strings.ToLower(name)
	if strings.Contains(lower, "unknown") || strings.Contains(lower, "private") {
		return name + " - " + city
	}
	return name
}
