package service

import (
	"errors"
	"testing"

	"github.com/saroz96/skyforgee-new-sub011/internal/domain/entity"
	"github.com/saroz96/skyforgee-new-sub011/pkg/apperror"
)

func TestFormatBillNumber(t *testing.T) {
	tests := []struct {
		prefix string
		value  int64
		want   string
	}{
		{"PYMT", 1, "PYMT0000001"},
		{"SALE", 42, "SALE0000042"},
		{"JRNL", 9999999, "JRNL9999999"},
		{"RCPT", 12345678, "RCPT12345678"},
	}

	for _, tt := range tests {
		if got := FormatBillNumber(tt.prefix, tt.value); got != tt.want {
			t.Errorf("FormatBillNumber(%q, %d) = %q, want %q", tt.prefix, tt.value, got, tt.want)
		}
	}
}

func TestValidateBillPrefixes(t *testing.T) {
	if err := ValidateBillPrefixes(entity.DefaultBillPrefixes()); err != nil {
		t.Fatalf("default prefixes should validate, got %v", err)
	}

	tests := []struct {
		name      string
		prefixes  entity.BillPrefixes
		wantField string
	}{
		{
			name:      "unknown voucher type",
			prefixes:  entity.BillPrefixes{"invoice": "INVC"},
			wantField: "invoice",
		},
		{
			name:      "lowercase prefix",
			prefixes:  entity.BillPrefixes{"payment": "pymt"},
			wantField: "payment",
		},
		{
			name:      "too short prefix",
			prefixes:  entity.BillPrefixes{"sales": "SAL"},
			wantField: "sales",
		},
		{
			name:      "too long prefix",
			prefixes:  entity.BillPrefixes{"sales": "SALES"},
			wantField: "sales",
		},
		{
			name:      "digits in prefix",
			prefixes:  entity.BillPrefixes{"receipt": "RC01"},
			wantField: "receipt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBillPrefixes(tt.prefixes)
			if err == nil {
				t.Fatal("ValidateBillPrefixes() expected error, got nil")
			}
			var appErr *apperror.AppError
			if !errors.As(err, &appErr) {
				t.Fatalf("expected *apperror.AppError, got %T", err)
			}
			if len(appErr.Errors) != 1 || appErr.Errors[0].Field != tt.wantField {
				t.Errorf("field errors = %+v, want one error on %q", appErr.Errors, tt.wantField)
			}
		})
	}
}

func TestValidateBillPrefixesCollectsAllFailures(t *testing.T) {
	err := ValidateBillPrefixes(entity.BillPrefixes{
		"payment": "pay",
		"bogus":   "XXXX",
	})
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *apperror.AppError, got %T", err)
	}
	if len(appErr.Errors) != 2 {
		t.Errorf("expected both prefixes reported, got %+v", appErr.Errors)
	}
}
