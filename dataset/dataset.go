// Copyright 2022 Molecula Corp. (DBA FeatureBase).
// SPDX-License-Identifier: Apache-2.0

// Package dataset holds tabular data read from delimited files and the
// operations the ingestion step performs on it.
package dataset

import (
	"encoding/csv"
	"io"
	"os"

	"github.com/pkg/errors"
)

// ErrNoColumns is returned when a source has no header row to parse.
var ErrNoColumns = errors.New("no columns to parse from file")

// Dataset is a table of string cells with named columns. Every row has
// exactly len(Header) cells. Cells keep the text they were read with, so
// writing a Dataset back out does not reformat values.
type Dataset struct {
	Header []string
	Rows   [][]string
}

// Len returns the number of rows, not counting the header.
func (d *Dataset) Len() int {
	return len(d.Rows)
}

// Subset returns a Dataset holding the rows at idx, in that order. Rows are
// shared with d, not copied.
func (d *Dataset) Subset(idx []int) *Dataset {
	rows := make([][]string, len(idx))
	for i, j := range idx {
		rows[i] = d.Rows[j]
	}
	return &Dataset{Header: d.Header, Rows: rows}
}

// ReadCSV reads a comma separated table whose first record is the header.
func ReadCSV(r io.Reader) (*Dataset, error) {
	reader := csv.NewReader(r)
	// every record must have as many fields as the header
	reader.FieldsPerRecord = 0

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrNoColumns
	} else if err != nil {
		return nil, errors.Wrap(err, "reading header")
	}

	d := &Dataset{Header: header}
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, errors.Wrapf(err, "reading row %d", len(d.Rows)+1)
		}
		d.Rows = append(d.Rows, row)
	}
	return d, nil
}

// ReadFile reads the named CSV file with ReadCSV.
func ReadFile(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening file")
	}
	defer f.Close()

	d, err := ReadCSV(f)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing '%s'", path)
	}
	return d, nil
}

// WriteCSV writes the header followed by every row to w.
func (d *Dataset) WriteCSV(w io.Writer) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(d.Header); err != nil {
		return errors.Wrap(err, "writing header")
	}
	if err := writer.WriteAll(d.Rows); err != nil {
		return errors.Wrap(err, "writing rows")
	}
	return nil
}
