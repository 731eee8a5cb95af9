// Copyright 2026 The BACS File Automation Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package bacs

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// AmountPolicy decides what happens when a row's amount cannot be parsed.
type AmountPolicy string

const (
	// RejectBadAmounts fails the whole batch, naming the offending row.
	// No partial file is produced.
	RejectBadAmounts AmountPolicy = "reject"

	// ZeroBadAmounts emits the PAY record with "0.00", excludes the row
	// from the CONTRA total, and reports the row in File.Skipped.
	ZeroBadAmounts AmountPolicy = "zero"
)

// Validate rejects policies other than the two defined ones. An empty
// policy is allowed and means RejectBadAmounts.
func (p AmountPolicy) Validate() error {
	switch p {
	case "", RejectBadAmounts, ZeroBadAmounts:
		return nil
	}
	return fmt.Errorf("unknown amount policy: %s", p)
}

// AmountError is returned under RejectBadAmounts when a row carries an
// amount that can't be parsed as a decimal number.
type AmountError struct {
	Row   int // zero-based index into the input rows
	Value string
	Err   error
}

func (e *AmountError) Error() string {
	return fmt.Sprintf("row %d: invalid amount %q: %v", e.Row, e.Value, e.Err)
}

func (e *AmountError) Unwrap() error {
	return e.Err
}

func parseAmount(raw string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.TrimSpace(raw))
}

// formatAmount renders d with exactly two decimal places.
// StringFixed rounds half away from zero, so 1.005 becomes "1.01".
func formatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}
