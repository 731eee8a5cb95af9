// Copyright 2026 The BACS File Automation Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package bacs

import (
	"fmt"
	"strings"
)

// RequiredColumns are the dataset columns every upload must carry.
// Names are matched exactly (case-sensitive). Extra columns are ignored.
var RequiredColumns = []string{
	"beneficiary_name",
	"beneficiary_sort_code",
	"beneficiary_account",
	"amount",
	"payment_reference",
	"processing_date",
}

// MissingColumnsError reports the required columns absent from a dataset.
type MissingColumnsError struct {
	Missing []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("missing required columns: %s", strings.Join(e.Missing, ", "))
}

// ValidateColumns checks that every required column is present. The check
// runs once over the dataset's column set, before any record is built.
func ValidateColumns(columns []string) error {
	present := make(map[string]bool, len(columns))
	for i := range columns {
		present[columns[i]] = true
	}

	var missing []string
	for _, name := range RequiredColumns {
		if !present[name] {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return &MissingColumnsError{Missing: missing}
	}
	return nil
}
