// Copyright 2026 The BACS File Automation Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

// Package dataset reads an uploaded CSV into a column-named tabular form.
// Parsing of individual values (amounts, dates) happens downstream.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jedbites/bacs-file-automation/pkg/bacs"
)

// Dataset is a parsed upload: the header's column names and one
// column-keyed map per data row.
type Dataset struct {
	Columns []string
	Rows    []map[string]string
}

// Decode reads CSV from r. The first line is the header, names and values
// are whitespace-trimmed, and every row must carry the header's field count.
func Decode(r io.Reader) (*Dataset, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, errors.New("empty dataset")
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %v", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	ds := &Dataset{Columns: header}
	for line := 2; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading line %d: %v", line, err)
		}
		record := make(map[string]string, len(header))
		for i := range row {
			if i < len(header) {
				record[header[i]] = strings.TrimSpace(row[i])
			}
		}
		ds.Rows = append(ds.Rows, record)
	}
	return ds, nil
}

// PaymentRows maps every row onto a typed payment instruction. Columns
// beyond the required set are ignored.
func (ds *Dataset) PaymentRows() []bacs.PaymentRow {
	out := make([]bacs.PaymentRow, 0, len(ds.Rows))
	for _, row := range ds.Rows {
		out = append(out, bacs.PaymentRow{
			BeneficiaryName:     row["beneficiary_name"],
			BeneficiarySortCode: row["beneficiary_sort_code"],
			BeneficiaryAccount:  row["beneficiary_account"],
			Amount:              row["amount"],
			PaymentReference:    row["payment_reference"],
			ProcessingDate:      row["processing_date"],
		})
	}
	return out
}
