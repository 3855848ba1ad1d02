// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package record defines the canonical shape of one imported manuscript row and
the schema variants that map raw CSV rows onto it.

A [Record] is an ordered set of named [Value]s. It is built once per row by
[Variant.Map] and then enriched in place: the title generator assigns its
title and slug, and the resolvers replace raw values with taxonomy terms or
references. Field order is preserved so metadata is written in column order.
*/
package record

import "errors"

// Reserved field names. They are assigned once through [Record.Identify] and
// never written as metadata.
const (
	FieldTitle = "title"
	FieldSlug  = "slug"
)

// ErrIdentityAssigned is returned when a record's title and slug are assigned twice.
var ErrIdentityAssigned = errors.New("record: title and slug are already assigned")

// Field is one named value of a record.
type Field struct {
	Name  string
	Value Value
}

// Record is the canonical, mutable form of one CSV row.
type Record struct {
	// Source is the input file the row was read from.
	Source string
	// Line is the row's line number within Source.
	Line int
	// ContentID is the store id of the entry, known after the write phase.
	ContentID int64

	fields []Field
	index  map[string]int
}

// New creates an empty record for the row at source:line.
func New(source string, line int) *Record {
	return &Record{
		Source: source,
		Line:   line,
		index:  make(map[string]int),
	}
}

// Set stores value under name, keeping the field's original position when it
// already exists. Title and slug cannot be set this way; use [Record.Identify].
func (r *Record) Set(name string, value Value) {
	if name == FieldTitle || name == FieldSlug {
		panic("record: " + name + " must be assigned through Identify")
	}
	r.put(name, value)
}

// Identify assigns the record's title and slug. It fails if they are already set.
func (r *Record) Identify(title, slug string) error {
	if _, ok := r.index[FieldTitle]; ok {
		return ErrIdentityAssigned
	}
	r.put(FieldTitle, Text(title))
	r.put(FieldSlug, Text(slug))
	return nil
}

func (r *Record) put(name string, value Value) {
	if i, ok := r.index[name]; ok {
		r.fields[i].Value = value
		return
	}
	r.index[name] = len(r.fields)
	r.fields = append(r.fields, Field{Name: name, Value: value})
}

// Get returns the value stored under name.
func (r *Record) Get(name string) (Value, bool) {
	i, ok := r.index[name]
	if !ok {
		return Value{}, false
	}
	return r.fields[i].Value, true
}

// Has reports whether the record carries a field called name.
func (r *Record) Has(name string) bool {
	_, ok := r.index[name]
	return ok
}

// Text returns the text of a text field, or "" when absent or not text.
func (r *Record) Text(name string) string {
	value, ok := r.Get(name)
	if !ok || value.Kind != KindText {
		return ""
	}
	return value.Text
}

// Title returns the assigned title, or "" before identification.
func (r *Record) Title() string { return r.Text(FieldTitle) }

// Slug returns the assigned slug, or "" before identification.
func (r *Record) Slug() string { return r.Text(FieldSlug) }

// MetaFields returns every field except title and slug, in order.
func (r *Record) MetaFields() []Field {
	out := make([]Field, 0, len(r.fields))
	for _, field := range r.fields {
		if field.Name == FieldTitle || field.Name == FieldSlug {
			continue
		}
		out = append(out, field)
	}
	return out
}
