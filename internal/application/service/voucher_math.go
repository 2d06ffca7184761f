package service

import (
	"github.com/saroz96/skyforgee-new-sub011/internal/domain/enum"
	"github.com/saroz96/skyforgee-new-sub011/pkg/apperror"
	"github.com/shopspring/decimal"
)

// VoucherLine is one monetary line of a voucher as seen by the totals
// computation: its amount and whether it attracts VAT.
type VoucherLine struct {
	Vatable bool
	Amount  decimal.Decimal
}

// VoucherTotalsInput carries everything the totals computation needs.
// ManualRoundOff is a caller-supplied delta and is mutually exclusive with
// AutoRoundOff.
type VoucherTotalsInput struct {
	Lines              []VoucherLine
	VatMode            enum.VatMode
	DiscountPercentage decimal.Decimal
	VatRate            decimal.Decimal
	AutoRoundOff       bool
	ManualRoundOff     *decimal.Decimal
}

// VoucherTotals is the monetary breakdown stored on every voucher header.
// TaxableAmount and NonTaxableAmount are post-discount; the identity
// TotalAmount == TaxableAmount + NonTaxableAmount + VatAmount + RoundOffAmount
// always holds.
type VoucherTotals struct {
	SubTotal         decimal.Decimal
	DiscountAmount   decimal.Decimal
	TaxableAmount    decimal.Decimal
	NonTaxableAmount decimal.Decimal
	VatAmount        decimal.Decimal
	RoundOffAmount   decimal.Decimal
	TotalAmount      decimal.Decimal
}

var oneHundred = decimal.NewFromInt(100)

// ComputeVoucherTotals computes the monetary breakdown of a voucher.
//
// The discount percentage is applied to the taxable and non-taxable buckets
// separately, so each bucket carries its proportional share. VAT applies to
// the discounted taxable bucket only. Auto round-off snaps the grand total to
// the nearest whole number; a manual round-off delta is added verbatim.
func ComputeVoucherTotals(in *VoucherTotalsInput) (*VoucherTotals, error) {
	if len(in.Lines) == 0 {
		return nil, apperror.NewBadRequestError("Voucher must have at least one line")
	}
	if !in.VatMode.IsValid() {
		return nil, apperror.NewBadRequestError("Invalid VAT mode")
	}
	if in.DiscountPercentage.IsNegative() || in.DiscountPercentage.GreaterThan(oneHundred) {
		return nil, apperror.NewBadRequestError("Discount percentage must be between 0 and 100")
	}
	if in.AutoRoundOff && in.ManualRoundOff != nil && !in.ManualRoundOff.IsZero() {
		return nil, apperror.NewBadRequestError("Manual round-off cannot be combined with automatic round-off")
	}
	if err := checkVatConsistency(in.VatMode, in.Lines); err != nil {
		return nil, err
	}

	taxableGross := decimal.Zero
	nonTaxableGross := decimal.Zero
	for _, line := range in.Lines {
		if line.Amount.IsNegative() {
			return nil, apperror.NewBadRequestError("Line amounts cannot be negative")
		}
		if line.Vatable {
			taxableGross = taxableGross.Add(line.Amount)
		} else {
			nonTaxableGross = nonTaxableGross.Add(line.Amount)
		}
	}

	subTotal := taxableGross.Add(nonTaxableGross)
	discountFactor := in.DiscountPercentage.Div(oneHundred)

	taxableDiscount := taxableGross.Mul(discountFactor).Round(2)
	nonTaxableDiscount := nonTaxableGross.Mul(discountFactor).Round(2)

	taxable := taxableGross.Sub(taxableDiscount)
	nonTaxable := nonTaxableGross.Sub(nonTaxableDiscount)
	vat := taxable.Mul(in.VatRate.Div(oneHundred)).Round(2)

	total := taxable.Add(nonTaxable).Add(vat)

	roundOff := decimal.Zero
	if in.AutoRoundOff {
		roundOff = total.Round(0).Sub(total)
	} else if in.ManualRoundOff != nil {
		roundOff = in.ManualRoundOff.Round(2)
	}
	total = total.Add(roundOff)

	return &VoucherTotals{
		SubTotal:         subTotal.Round(2),
		DiscountAmount:   taxableDiscount.Add(nonTaxableDiscount),
		TaxableAmount:    taxable,
		NonTaxableAmount: nonTaxable,
		VatAmount:        vat,
		RoundOffAmount:   roundOff,
		TotalAmount:      total,
	}, nil
}

// checkVatConsistency enforces the voucher-level VAT mode against its lines:
// an exempt voucher cannot carry vatable lines, a vatable voucher cannot
// carry exempt lines, and the mixed mode accepts both.
func checkVatConsistency(mode enum.VatMode, lines []VoucherLine) error {
	if mode == enum.VatModeAll {
		return nil
	}
	for _, line := range lines {
		if mode == enum.VatModeExempt && line.Vatable {
			return apperror.NewBadRequestError("VAT-exempt voucher cannot contain vatable items")
		}
		if mode == enum.VatModeVatable && !line.Vatable {
			return apperror.NewBadRequestError("Vatable voucher cannot contain VAT-exempt items")
		}
	}
	return nil
}
