// Copyright 2026 The BACS File Automation Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

// Package bacs builds fixed-record batch files loosely following the
// Standard 18 BACS interchange layout. A file is an ordered sequence of
// typed records: a four record header block, one PAY record per payment
// instruction, a balancing CONTRA record, and a three record trailer block.
//
// The construction is a pure function of its inputs. Callers pass the
// issue date explicitly so repeated invocations with identical inputs
// produce byte-identical output.
package bacs

// RecordType is the tag carried in the first field of every record.
type RecordType string

const (
	VOL    RecordType = "VOL"
	HDR1   RecordType = "HDR1"
	HDR2   RecordType = "HDR2"
	UHL1   RecordType = "UHL1"
	PAY    RecordType = "PAY"
	CONTRA RecordType = "CONTRA"
	EOF1   RecordType = "EOF1"
	EOF2   RecordType = "EOF2"
	UTL1   RecordType = "UTL1"
)

// RecordWidth is the fixed number of fields in every record, counting the type tag.
// Unused trailing positions are empty strings so each serialized line has a uniform width.
const RecordWidth = 8

// Record is one line of the output file.
type Record struct {
	fields [RecordWidth]string
}

// NewRecord returns a Record tagged with tag. Fields beyond the tag are
// placed in order and the remainder padded with empty strings. Extra
// fields past the fixed width are dropped.
func NewRecord(tag RecordType, fields ...string) Record {
	var r Record
	r.fields[0] = string(tag)
	for i := 0; i < len(fields) && i < RecordWidth-1; i++ {
		r.fields[i+1] = fields[i]
	}
	return r
}

// Type returns the record's tag.
func (r Record) Type() RecordType {
	return RecordType(r.fields[0])
}

// Field returns the i'th field, or an empty string when i is out of range.
func (r Record) Field(i int) string {
	if i < 0 || i >= RecordWidth {
		return ""
	}
	return r.fields[i]
}

// Fields returns a copy of all eight fields in order.
func (r Record) Fields() []string {
	out := make([]string, RecordWidth)
	copy(out, r.fields[:])
	return out
}
