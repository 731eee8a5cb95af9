// Copyright 2026 The BACS File Automation Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package bacs

import (
	"bytes"
	"encoding/csv"
	"io"
	"time"

	"github.com/shopspring/decimal"
)

// File is a fully built batch file. Records holds the header block, one
// PAY record per input row (input order preserved), the CONTRA record and
// the trailer block. A File is never mutated after BuildFile returns.
type File struct {
	Records []Record

	// Skipped lists rows whose amounts were zeroed under ZeroBadAmounts.
	// Empty under RejectBadAmounts.
	Skipped []SkippedRow
}

// SkippedRow identifies an input row whose amount could not be parsed.
type SkippedRow struct {
	Row    int // zero-based index into the input rows
	Amount string
}

// BuildFile constructs the ordered record sequence for one batch. The
// result always holds len(rows)+8 records: four headers, the PAY records
// in input order, one CONTRA, three trailers.
//
// issueDate is stamped into the header block; callers pass time.Now()
// outside of tests.
//
// Under Options.AmountPolicy == RejectBadAmounts (the default) the first
// unparsable amount aborts the build and no file is returned.
func BuildFile(params BatchParams, rows []PaymentRow, issueDate time.Time, opts Options) (*File, error) {
	file := &File{
		Records: make([]Record, 0, len(rows)+8),
	}
	file.Records = append(file.Records, buildHeaderBlock(params, opts.institutionTag(), issueDate)...)

	total := decimal.Zero
	for i := range rows {
		amount, err := parseAmount(rows[i].Amount)
		if err != nil {
			if opts.amountPolicy() == RejectBadAmounts {
				return nil, &AmountError{Row: i, Value: rows[i].Amount, Err: err}
			}
			file.Skipped = append(file.Skipped, SkippedRow{Row: i, Amount: rows[i].Amount})
			amount = decimal.Zero
		}
		total = total.Add(amount)
		file.Records = append(file.Records, buildPaymentRecord(rows[i], formatAmount(amount)))
	}

	file.Records = append(file.Records, buildContraRecord(params, total))
	file.Records = append(file.Records, buildTrailerBlock()...)

	return file, nil
}

// Write serializes the file as comma-delimited text, one record per line.
// Fields are quoted only when they contain the delimiter, a quote or a
// line break. No byte-order mark or extra trailer is written.
func (f *File) Write(w io.Writer) error {
	writer := csv.NewWriter(w)
	for i := range f.Records {
		if err := writer.Write(f.Records[i].Fields()); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// Bytes renders the file into memory. See Write.
func (f *File) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
