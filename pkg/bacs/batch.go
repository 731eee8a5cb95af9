// Copyright 2026 The BACS File Automation Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package bacs

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// DefaultInstitutionTag is stamped into the VOL and HDR1 records when
// Options doesn't name another institution.
const DefaultInstitutionTag = "HSBC"

// volumeSerial is a fixed serial carried in the VOL record.
const volumeSerial = "001"

// issueDateFormat is the ISO calendar date written into header records.
const issueDateFormat = "2006-01-02"

// BatchParams carries the batch-level identity for one file. All values
// are used verbatim, no format validation is applied.
type BatchParams struct {
	DebtorName     string
	DebtorAccount  string
	BatchID        string
	ContraSortCode string
}

// PaymentRow is one payment instruction from the input dataset. Amount
// and ProcessingDate hold the raw uploaded text, parsing happens during
// file construction.
type PaymentRow struct {
	BeneficiaryName     string
	BeneficiarySortCode string
	BeneficiaryAccount  string
	Amount              string
	PaymentReference    string
	ProcessingDate      string
}

// Options adjusts file construction.
type Options struct {
	// InstitutionTag overrides DefaultInstitutionTag in header records.
	InstitutionTag string

	// AmountPolicy defaults to RejectBadAmounts.
	AmountPolicy AmountPolicy
}

func (o Options) institutionTag() string {
	if o.InstitutionTag == "" {
		return DefaultInstitutionTag
	}
	return o.InstitutionTag
}

func (o Options) amountPolicy() AmountPolicy {
	if o.AmountPolicy == "" {
		return RejectBadAmounts
	}
	return o.AmountPolicy
}

// buildHeaderBlock returns the VOL, HDR1, HDR2 and UHL1 records, in that
// order. Construction is parameter-only, no row data is involved.
func buildHeaderBlock(params BatchParams, tag string, issueDate time.Time) []Record {
	date := issueDate.Format(issueDateFormat)
	return []Record{
		NewRecord(VOL, volumeSerial, tag, date),
		NewRecord(HDR1, params.DebtorName, params.DebtorAccount, tag, date),
		NewRecord(HDR2, fmt.Sprintf("Payment Batch %s", params.BatchID), params.BatchID),
		NewRecord(UHL1, params.DebtorName, params.DebtorAccount),
	}
}

func buildPaymentRecord(row PaymentRow, amount string) Record {
	return NewRecord(PAY,
		row.BeneficiaryName,
		row.BeneficiarySortCode,
		row.BeneficiaryAccount,
		amount,
		row.PaymentReference,
		row.ProcessingDate,
	)
}

// buildContraRecord returns the balancing entry against the originating
// account. The total is the sum of every PAY record's amount.
func buildContraRecord(params BatchParams, total decimal.Decimal) Record {
	return NewRecord(CONTRA,
		params.DebtorName,
		params.ContraSortCode,
		params.DebtorAccount,
		formatAmount(total),
	)
}

// buildTrailerBlock returns the EOF1, EOF2 and UTL1 records, in that
// order. EOF2's "Checksum" is a placeholder label, nothing is computed.
func buildTrailerBlock() []Record {
	return []Record{
		NewRecord(EOF1, "End of File"),
		NewRecord(EOF2, "Checksum"),
		NewRecord(UTL1, "Processing Complete"),
	}
}
