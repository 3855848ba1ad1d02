// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package importer

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/taibuivan/scrolls/internal/platform/apperr"
)

// csvExt is matched case-sensitively; "*.CSV" files are ignored.
const csvExt = ".csv"

// CollectFiles returns the input files of a run. A file path is used as is;
// a directory is walked recursively for *.csv files in lexical order.
func CollectFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("input: %w", err)
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	var files []string
	err = filepath.WalkDir(path, func(current string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.Type().IsRegular() && filepath.Ext(current) == csvExt {
			files = append(files, current)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("input: %w", err)
	}

	if len(files) == 0 {
		return nil, apperr.ValidationError("input: no .csv files under " + path)
	}
	return files, nil
}

// rowReader reads header-less CSV rows of any width.
type rowReader struct {
	csv *csv.Reader
}

func newRowReader(src io.Reader) *rowReader {
	reader := csv.NewReader(stripUTF8BOM(bufio.NewReader(src)))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	return &rowReader{csv: reader}
}

// Next returns the next row and the line it starts on. A malformed row
// yields a *csv.ParseError; reading can continue after it.
func (reader *rowReader) Next() ([]string, int, error) {
	row, err := reader.csv.Read()
	if err != nil {
		return nil, 0, err
	}
	line, _ := reader.csv.FieldPos(0)
	return row, line, nil
}

func stripUTF8BOM(r *bufio.Reader) *bufio.Reader {
	b, err := r.Peek(3)
	if err == nil && len(b) == 3 && b[0] == 0xEF && b[1] == 0xBB && b[2] == 0xBF {
		_, _ = r.Discard(3)
	}
	return r
}
