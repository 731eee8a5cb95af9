// Copyright 2026 The BACS File Automation Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package bacs

import (
	"strings"
	"testing"
)

func TestAmount__format(t *testing.T) {
	cases := []struct {
		in       string
		expected string
	}{
		{"150.5", "150.50"},
		{"0", "0.00"},
		{"10", "10.00"},
		{"99.999", "100.00"},
		{"1.005", "1.01"}, // rounds half away from zero
		{"-2.5", "-2.50"},
		{" 12.34 ", "12.34"},
	}
	for i := range cases {
		amount, err := parseAmount(cases[i].in)
		if err != nil {
			t.Fatalf("%q: %v", cases[i].in, err)
		}
		if v := formatAmount(amount); v != cases[i].expected {
			t.Errorf("%q: got %q, expected %q", cases[i].in, v, cases[i].expected)
		}
	}
}

func TestAmount__parseFailure(t *testing.T) {
	if _, err := parseAmount("twelve pounds"); err == nil {
		t.Error("expected error")
	}
	if _, err := parseAmount(""); err == nil {
		t.Error("expected error")
	}
}

func TestAmountPolicy__validate(t *testing.T) {
	for _, policy := range []AmountPolicy{"", RejectBadAmounts, ZeroBadAmounts} {
		if err := policy.Validate(); err != nil {
			t.Errorf("%q: %v", policy, err)
		}
	}
	if err := AmountPolicy("carry-over").Validate(); err == nil {
		t.Error("expected error")
	}
}

func TestAmountError(t *testing.T) {
	_, err := parseAmount("abc")
	wrapped := &AmountError{Row: 3, Value: "abc", Err: err}

	if !strings.Contains(wrapped.Error(), `row 3: invalid amount "abc"`) {
		t.Errorf("got %q", wrapped.Error())
	}
	if wrapped.Unwrap() == nil {
		t.Error("expected wrapped error")
	}
}
