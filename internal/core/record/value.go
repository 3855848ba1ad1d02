// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package record

import (
	"strconv"

	"github.com/taibuivan/scrolls/pkg/phpserial"
)

// Kind distinguishes the shapes a field value can take.
type Kind uint8

const (
	// KindText is a plain (possibly numeric) string copied from the row.
	KindText Kind = iota
	// KindList is an ordered list of strings, e.g. two language codes.
	KindList
	// KindTerms is a set of resolved taxonomy term ids, possibly empty.
	KindTerms
	// KindReference points at another entry, e.g. the holding repository.
	KindReference
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindList:
		return "list"
	case KindTerms:
		return "terms"
	case KindReference:
		return "reference"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Value is a single field value of a [Record].
type Value struct {
	Kind  Kind
	Text  string
	Items []string
	IDs   []int64
}

// Text creates a plain string value.
func Text(s string) Value {
	return Value{Kind: KindText, Text: s}
}

// List creates a list value.
func List(items []string) Value {
	return Value{Kind: KindList, Items: items}
}

// Terms creates a resolved taxonomy value. An empty ids slice means "no match".
func Terms(ids []int64) Value {
	return Value{Kind: KindTerms, IDs: ids}
}

// Reference creates a reference to the entry with the given id.
func Reference(id int64) Value {
	return Value{Kind: KindReference, IDs: []int64{id}}
}

// IsEmpty reports whether the value carries nothing to store or link.
func (v Value) IsEmpty() bool {
	switch v.Kind {
	case KindList:
		return len(v.Items) == 0
	case KindTerms, KindReference:
		return len(v.IDs) == 0
	default:
		return v.Text == ""
	}
}

// Serialize renders the value the way the CMS stores it as metadata.
//
//   - text: verbatim
//   - list: serialized array of strings
//   - terms: "" for no match, the bare id for one match, a serialized array otherwise
//   - reference: serialized single-element array, e.g. a:1:{i:0;i:42;}
func (v Value) Serialize() string {
	switch v.Kind {
	case KindList:
		return phpserial.Strings(v.Items)
	case KindTerms:
		switch len(v.IDs) {
		case 0:
			return ""
		case 1:
			return strconv.FormatInt(v.IDs[0], 10)
		default:
			return phpserial.Ints(v.IDs)
		}
	case KindReference:
		if len(v.IDs) == 0 {
			return ""
		}
		return phpserial.Ints(v.IDs)
	default:
		return v.Text
	}
}
