package enum

// VoucherType identifies a voucher family for bill numbering and ledger
// tagging. The string values are stable keys: they appear in fiscal-year
// prefix configuration, bill counters and ledger entries.
type VoucherType string

const (
	VoucherTypeSales           VoucherType = "sales"
	VoucherTypeSalesQuotation  VoucherType = "salesQuotation"
	VoucherTypeSalesReturn     VoucherType = "salesReturn"
	VoucherTypePurchase        VoucherType = "purchase"
	VoucherTypePurchaseReturn  VoucherType = "purchaseReturn"
	VoucherTypePayment         VoucherType = "payment"
	VoucherTypeReceipt         VoucherType = "receipt"
	VoucherTypeStockAdjustment VoucherType = "stockAdjustment"
	VoucherTypeDebitNote       VoucherType = "debitNote"
	VoucherTypeCreditNote      VoucherType = "creditNote"
	VoucherTypeJournalVoucher  VoucherType = "journalVoucher"
)

// AllVoucherTypes lists every voucher type that participates in bill numbering.
func AllVoucherTypes() []VoucherType {
	return []VoucherType{
		VoucherTypeSales,
		VoucherTypeSalesQuotation,
		VoucherTypeSalesReturn,
		VoucherTypePurchase,
		VoucherTypePurchaseReturn,
		VoucherTypePayment,
		VoucherTypeReceipt,
		VoucherTypeStockAdjustment,
		VoucherTypeDebitNote,
		VoucherTypeCreditNote,
		VoucherTypeJournalVoucher,
	}
}

// IsValid reports whether the voucher type is one of the recognized families.
func (v VoucherType) IsValid() bool {
	for _, t := range AllVoucherTypes() {
		if v == t {
			return true
		}
	}
	return false
}

func (v VoucherType) String() string {
	return string(v)
}
