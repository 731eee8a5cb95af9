// Copyright 2026 The BACS File Automation Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package bacs

import (
	"encoding/csv"
	"fmt"
	"io"
)

// ReadFile parses serialized batch output back into its ordered record
// sequence. Every line must carry exactly RecordWidth fields with a known
// record tag first.
func ReadFile(r io.Reader) (*File, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = RecordWidth

	var file File
	for line := 1; ; line++ {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %v", line, err)
		}
		tag := RecordType(fields[0])
		if !knownRecordType(tag) {
			return nil, fmt.Errorf("line %d: unknown record type %q", line, fields[0])
		}
		file.Records = append(file.Records, NewRecord(tag, fields[1:]...))
	}
	return &file, nil
}

func knownRecordType(tag RecordType) bool {
	switch tag {
	case VOL, HDR1, HDR2, UHL1, PAY, CONTRA, EOF1, EOF2, UTL1:
		return true
	}
	return false
}
