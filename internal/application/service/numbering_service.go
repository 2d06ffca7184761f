package service

import (
	"context"
	"fmt"
	"regexp"

	"github.com/saroz96/skyforgee-new-sub011/internal/domain/entity"
	"github.com/saroz96/skyforgee-new-sub011/internal/domain/enum"
	"github.com/saroz96/skyforgee-new-sub011/internal/domain/repository"
	"github.com/saroz96/skyforgee-new-sub011/pkg/apperror"
)

// billPrefixPattern is the shape every bill number prefix must have: exactly
// four uppercase letters.
var billPrefixPattern = regexp.MustCompile(`^[A-Z]{4}$`)

// NumberingService issues sequential bill numbers per company, fiscal year
// and voucher type.
type NumberingService struct {
	counterRepo repository.BillCounterRepository
}

// NewNumberingService creates a new numbering service
func NewNumberingService(counterRepo repository.BillCounterRepository) *NumberingService {
	return &NumberingService{counterRepo: counterRepo}
}

// NextBillNumber validates the fiscal year's prefix for the voucher type and
// then increments the counter, returning the formatted bill number, e.g.
// PYMT0000001. The prefix is checked before the increment so a misconfigured
// fiscal year never burns a sequence value. Must be called inside the posting
// transaction.
func (s *NumberingService) NextBillNumber(ctx context.Context, fy *entity.FiscalYear, voucherType enum.VoucherType) (string, error) {
	prefix, ok := fy.BillPrefixes.Prefix(voucherType)
	if !ok {
		return "", apperror.NewNumberingError(fmt.Sprintf("No bill prefix configured for voucher type %q", voucherType))
	}
	if !billPrefixPattern.MatchString(prefix) {
		return "", apperror.NewNumberingError(fmt.Sprintf("Bill prefix %q for voucher type %q must be exactly four uppercase letters", prefix, voucherType))
	}

	value, err := s.counterRepo.Increment(ctx, fy.CompanyID, fy.ID, voucherType)
	if err != nil {
		return "", err
	}

	return FormatBillNumber(prefix, value), nil
}

// FormatBillNumber renders a prefix and sequence value as a bill number with
// a seven-digit zero-padded sequence.
func FormatBillNumber(prefix string, value int64) string {
	return fmt.Sprintf("%s%07d", prefix, value)
}

// ValidateBillPrefixes rejects prefix maps containing unknown voucher types
// or malformed prefixes. Used when a fiscal year is created or its prefixes
// edited.
func ValidateBillPrefixes(prefixes entity.BillPrefixes) error {
	var fieldErrors []apperror.FieldError
	for key, prefix := range prefixes {
		if !enum.VoucherType(key).IsValid() {
			fieldErrors = append(fieldErrors, apperror.FieldError{
				Field:   key,
				Message: "unknown voucher type",
			})
			continue
		}
		if !billPrefixPattern.MatchString(prefix) {
			fieldErrors = append(fieldErrors, apperror.FieldError{
				Field:   key,
				Message: "prefix must be exactly four uppercase letters",
			})
		}
	}
	if len(fieldErrors) > 0 {
		return apperror.NewValidationError(fieldErrors)
	}
	return nil
}
