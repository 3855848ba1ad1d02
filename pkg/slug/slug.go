// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package slug generates ASCII post slugs from arbitrary Unicode titles.
//
// # Usage
//
// Slugs are the URL names of imported entries (e.g. "paris-ms-12"). The rules
// mirror the way the target CMS derives post names, so a title always maps to
// the slug the CMS itself would have produced.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/mozillazg/go-unidecode"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// whitespace matches any run of Unicode whitespace.
	whitespace = regexp.MustCompile(`\s+`)
	// multiHyphen collapses multiple consecutive hyphens into one.
	multiHyphen = regexp.MustCompile(`-{2,}`)

	// dropped removes the punctuation the CMS strips from post names.
	dropped = strings.NewReplacer(":", "", "(", "", ")", "", ",", "")
)

// approximations covers Latin letters that carry no combining mark under NFD
// and therefore survive accent removal. They take precedence over unidecode.
var approximations = map[rune]string{
	'ß': "ss", 'ẞ': "SS",
	'æ': "ae", 'Æ': "AE",
	'œ': "oe", 'Œ': "OE",
	'ø': "o", 'Ø': "O",
	'ł': "l", 'Ł': "L",
	'đ': "d", 'Đ': "D",
	'ð': "d", 'Ð': "D",
	'þ': "th", 'Þ': "TH",
	'ı': "i",
	'ſ': "s",
	'‘': "'", '’': "'",
	'“': "\"", '”': "\"",
	'–': "-", '—': "-",
}

// From converts an arbitrary Unicode title into a post slug.
//
// # Transformation Pipeline
//
// 1. Transliterates to ASCII (NFD, combining marks removed, known letters approximated).
// 2. Replaces every whitespace run with a single hyphen and lowercases.
// 3. Removes ':', '(', ')' and ',' and turns '.' into '-'.
// 4. Collapses repeated hyphens.
//
// From is pure and idempotent on its own output.
func From(title string) string {
	result := Transliterate(title)

	result = whitespace.ReplaceAllString(result, "-")
	result = strings.ToLower(result)

	result = dropped.Replace(result)
	result = strings.ReplaceAll(result, ".", "-")

	return multiHyphen.ReplaceAllString(result, "-")
}

// Transliterate returns the closest plain-ASCII rendering of s.
//
// Accents are stripped first and Latin letters without a decomposition use the
// approximation table. Every other rune (Cyrillic, Greek, CJK, ...) is
// romanized with unidecode. Runes unidecode cannot render are dropped.
func Transliterate(s string) string {
	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn), norm.NFC)
	decomposed, _, _ := transform.String(t, s)

	var builder strings.Builder
	builder.Grow(len(decomposed))

	for _, r := range decomposed {
		if r <= unicode.MaxASCII {
			builder.WriteRune(r)
			continue
		}
		if replacement, ok := approximations[r]; ok {
			builder.WriteString(replacement)
			continue
		}
		if unicode.IsSpace(r) {
			builder.WriteByte(' ')
			continue
		}
		builder.WriteString(unidecode.Unidecode(string(r)))
	}

	return builder.String()
}

// isMn reports whether r is a Unicode non-spacing mark (e.g., accents).
func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}
