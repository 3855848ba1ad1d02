// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package record

import (
	"fmt"

	"github.com/taibuivan/scrolls/internal/platform/apperr"
	"github.com/taibuivan/scrolls/pkg/slice"
)

// Map converts a raw CSV row into a Record.
//
// Every mapped column becomes a text field, in column order; joined columns
// have their separators rewritten. List rules then gather their source
// columns into one list field. A row shorter than the highest mapped index
// fails with a MALFORMED_ROW error and produces no record.
func (v *Variant) Map(source string, line int, row []string) (*Record, error) {
	if len(row) < v.minColumns {
		cause := fmt.Errorf("row has %d columns, variant %s needs at least %d", len(row), v.Name, v.minColumns)
		return nil, apperr.MalformedRow(source, line, cause)
	}

	rec := New(source, line)
	for _, column := range v.Columns {
		value := row[column.Index]
		if column.Joined {
			value = joinCell(value)
		}
		rec.Set(column.Field, Text(value))
	}

	for _, list := range v.Lists {
		items := slice.Filter(slice.Map(list.Sources, rec.Text), nonEmpty)
		rec.Set(list.Field, List(items))
	}

	return rec, nil
}

func nonEmpty(s string) bool { return s != "" }
