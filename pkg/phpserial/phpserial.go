// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package phpserial encodes list values in PHP's serialize() format.

The target CMS stores multi-valued metadata (relationship fields, taxonomy
fields, language lists) as serialized PHP arrays, e.g. a:1:{i:0;i:42;}.
Only the two shapes the importer writes are supported: lists of integers and
lists of strings, both as zero-indexed arrays.
*/
package phpserial

import (
	"strconv"
	"strings"
)

// Ints serializes ids as a zero-indexed PHP array of integers.
func Ints(ids []int64) string {
	var builder strings.Builder
	writeHeader(&builder, len(ids))

	for i, id := range ids {
		writeIndex(&builder, i)
		builder.WriteString("i:")
		builder.WriteString(strconv.FormatInt(id, 10))
		builder.WriteByte(';')
	}

	builder.WriteByte('}')
	return builder.String()
}

// Strings serializes values as a zero-indexed PHP array of strings.
// String lengths are byte lengths, as PHP expects.
func Strings(values []string) string {
	var builder strings.Builder
	writeHeader(&builder, len(values))

	for i, value := range values {
		writeIndex(&builder, i)
		builder.WriteString("s:")
		builder.WriteString(strconv.Itoa(len(value)))
		builder.WriteString(`:"`)
		builder.WriteString(value)
		builder.WriteString(`";`)
	}

	builder.WriteByte('}')
	return builder.String()
}

func writeHeader(builder *strings.Builder, n int) {
	builder.WriteString("a:")
	builder.WriteString(strconv.Itoa(n))
	builder.WriteString(":{")
}

func writeIndex(builder *strings.Builder, i int) {
	builder.WriteString("i:")
	builder.WriteString(strconv.Itoa(i))
	builder.WriteByte(';')
}
