package service

import (
	"testing"

	"github.com/saroz96/skyforgee-new-sub011/internal/domain/enum"
	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestComputeVoucherTotals(t *testing.T) {
	tests := []struct {
		name  string
		input VoucherTotalsInput
		want  VoucherTotals
	}{
		{
			name: "vatable lines without discount",
			input: VoucherTotalsInput{
				Lines: []VoucherLine{
					{Vatable: true, Amount: dec("100")},
					{Vatable: true, Amount: dec("200")},
				},
				VatMode: enum.VatModeVatable,
				VatRate: dec("13"),
			},
			want: VoucherTotals{
				SubTotal:         dec("300"),
				DiscountAmount:   dec("0"),
				TaxableAmount:    dec("300"),
				NonTaxableAmount: dec("0"),
				VatAmount:        dec("39"),
				RoundOffAmount:   dec("0"),
				TotalAmount:      dec("339"),
			},
		},
		{
			name: "discount apportioned across mixed buckets",
			input: VoucherTotalsInput{
				Lines: []VoucherLine{
					{Vatable: true, Amount: dec("100")},
					{Vatable: false, Amount: dec("50")},
				},
				VatMode:            enum.VatModeAll,
				DiscountPercentage: dec("10"),
				VatRate:            dec("13"),
			},
			want: VoucherTotals{
				SubTotal:         dec("150"),
				DiscountAmount:   dec("15"),
				TaxableAmount:    dec("90"),
				NonTaxableAmount: dec("45"),
				VatAmount:        dec("11.70"),
				RoundOffAmount:   dec("0"),
				TotalAmount:      dec("146.70"),
			},
		},
		{
			name: "auto round off snaps total to whole number",
			input: VoucherTotalsInput{
				Lines: []VoucherLine{
					{Vatable: true, Amount: dec("100")},
					{Vatable: false, Amount: dec("50")},
				},
				VatMode:            enum.VatModeAll,
				DiscountPercentage: dec("10"),
				VatRate:            dec("13"),
				AutoRoundOff:       true,
			},
			want: VoucherTotals{
				SubTotal:         dec("150"),
				DiscountAmount:   dec("15"),
				TaxableAmount:    dec("90"),
				NonTaxableAmount: dec("45"),
				VatAmount:        dec("11.70"),
				RoundOffAmount:   dec("0.30"),
				TotalAmount:      dec("147"),
			},
		},
		{
			name: "auto round off rounds down",
			input: VoucherTotalsInput{
				Lines: []VoucherLine{
					{Vatable: true, Amount: dec("97.50")},
				},
				VatMode:      enum.VatModeVatable,
				VatRate:      dec("13"),
				AutoRoundOff: true,
			},
			// 97.50 + 12.68 VAT = 110.18, rounds to 110
			want: VoucherTotals{
				SubTotal:         dec("97.50"),
				DiscountAmount:   dec("0"),
				TaxableAmount:    dec("97.50"),
				NonTaxableAmount: dec("0"),
				VatAmount:        dec("12.68"),
				RoundOffAmount:   dec("-0.18"),
				TotalAmount:      dec("110"),
			},
		},
		{
			name: "manual round off added verbatim",
			input: VoucherTotalsInput{
				Lines: []VoucherLine{
					{Vatable: false, Amount: dec("99.60")},
				},
				VatMode:        enum.VatModeExempt,
				VatRate:        dec("13"),
				ManualRoundOff: decPtr("0.40"),
			},
			want: VoucherTotals{
				SubTotal:         dec("99.60"),
				DiscountAmount:   dec("0"),
				TaxableAmount:    dec("0"),
				NonTaxableAmount: dec("99.60"),
				VatAmount:        dec("0"),
				RoundOffAmount:   dec("0.40"),
				TotalAmount:      dec("100"),
			},
		},
		{
			name: "full discount leaves zero total",
			input: VoucherTotalsInput{
				Lines: []VoucherLine{
					{Vatable: true, Amount: dec("250")},
				},
				VatMode:            enum.VatModeVatable,
				DiscountPercentage: dec("100"),
				VatRate:            dec("13"),
			},
			want: VoucherTotals{
				SubTotal:         dec("250"),
				DiscountAmount:   dec("250"),
				TaxableAmount:    dec("0"),
				NonTaxableAmount: dec("0"),
				VatAmount:        dec("0"),
				RoundOffAmount:   dec("0"),
				TotalAmount:      dec("0"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeVoucherTotals(&tt.input)
			if err != nil {
				t.Fatalf("ComputeVoucherTotals() error = %v", err)
			}
			assertDecimal(t, "SubTotal", got.SubTotal, tt.want.SubTotal)
			assertDecimal(t, "DiscountAmount", got.DiscountAmount, tt.want.DiscountAmount)
			assertDecimal(t, "TaxableAmount", got.TaxableAmount, tt.want.TaxableAmount)
			assertDecimal(t, "NonTaxableAmount", got.NonTaxableAmount, tt.want.NonTaxableAmount)
			assertDecimal(t, "VatAmount", got.VatAmount, tt.want.VatAmount)
			assertDecimal(t, "RoundOffAmount", got.RoundOffAmount, tt.want.RoundOffAmount)
			assertDecimal(t, "TotalAmount", got.TotalAmount, tt.want.TotalAmount)

			// The header identity must hold for every computed breakdown.
			sum := got.TaxableAmount.Add(got.NonTaxableAmount).Add(got.VatAmount).Add(got.RoundOffAmount)
			if !sum.Equal(got.TotalAmount) {
				t.Errorf("breakdown does not sum to total: %s != %s", sum, got.TotalAmount)
			}
		})
	}
}

func TestComputeVoucherTotalsRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		input VoucherTotalsInput
	}{
		{
			name: "no lines",
			input: VoucherTotalsInput{
				VatMode: enum.VatModeVatable,
				VatRate: dec("13"),
			},
		},
		{
			name: "negative discount",
			input: VoucherTotalsInput{
				Lines:              []VoucherLine{{Vatable: true, Amount: dec("100")}},
				VatMode:            enum.VatModeVatable,
				DiscountPercentage: dec("-1"),
				VatRate:            dec("13"),
			},
		},
		{
			name: "discount above hundred",
			input: VoucherTotalsInput{
				Lines:              []VoucherLine{{Vatable: true, Amount: dec("100")}},
				VatMode:            enum.VatModeVatable,
				DiscountPercentage: dec("100.01"),
				VatRate:            dec("13"),
			},
		},
		{
			name: "negative line amount",
			input: VoucherTotalsInput{
				Lines:   []VoucherLine{{Vatable: true, Amount: dec("-5")}},
				VatMode: enum.VatModeVatable,
				VatRate: dec("13"),
			},
		},
		{
			name: "both round off modes",
			input: VoucherTotalsInput{
				Lines:          []VoucherLine{{Vatable: true, Amount: dec("100")}},
				VatMode:        enum.VatModeVatable,
				VatRate:        dec("13"),
				AutoRoundOff:   true,
				ManualRoundOff: decPtr("0.10"),
			},
		},
		{
			name: "unrecognized vat mode",
			input: VoucherTotalsInput{
				Lines: []VoucherLine{
					{Vatable: true, Amount: dec("100")},
					{Vatable: false, Amount: dec("50")},
				},
				VatMode: enum.VatMode(7),
				VatRate: dec("13"),
			},
		},
		{
			name: "exempt voucher with vatable line",
			input: VoucherTotalsInput{
				Lines:   []VoucherLine{{Vatable: true, Amount: dec("100")}},
				VatMode: enum.VatModeExempt,
				VatRate: dec("13"),
			},
		},
		{
			name: "vatable voucher with exempt line",
			input: VoucherTotalsInput{
				Lines:   []VoucherLine{{Vatable: false, Amount: dec("100")}},
				VatMode: enum.VatModeVatable,
				VatRate: dec("13"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ComputeVoucherTotals(&tt.input); err == nil {
				t.Fatal("ComputeVoucherTotals() expected error, got nil")
			}
		})
	}
}

func TestComputeVoucherTotalsAllowsZeroManualRoundOffWithAuto(t *testing.T) {
	input := VoucherTotalsInput{
		Lines:          []VoucherLine{{Vatable: true, Amount: dec("100")}},
		VatMode:        enum.VatModeVatable,
		VatRate:        dec("13"),
		AutoRoundOff:   true,
		ManualRoundOff: decPtr("0"),
	}
	if _, err := ComputeVoucherTotals(&input); err != nil {
		t.Fatalf("ComputeVoucherTotals() error = %v", err)
	}
}

func assertDecimal(t *testing.T, field string, got, want decimal.Decimal) {
	t.Helper()
	if !got.Equal(want) {
		t.Errorf("%s = %s, want %s", field, got, want)
	}
}
