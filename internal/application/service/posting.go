package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/saroz96/skyforgee-new-sub011/internal/domain/entity"
	"github.com/saroz96/skyforgee-new-sub011/internal/domain/repository"
	infraRepo "github.com/saroz96/skyforgee-new-sub011/internal/infrastructure/repository"
	"github.com/saroz96/skyforgee-new-sub011/pkg/apperror"
	"github.com/shopspring/decimal"
)

// companyFromContext extracts the tenant scope set by the company middleware.
func companyFromContext(ctx context.Context) (uuid.UUID, error) {
	companyID, ok := infraRepo.GetCompanyID(ctx)
	if !ok {
		return uuid.Nil, apperror.NewBadRequestError("Company context required")
	}
	return companyID, nil
}

// activeFiscalYear resolves the company's active fiscal year. A company with
// no fiscal year at all gets the dedicated configuration error; a company
// whose years are all closed gets a distinct message. Posting never guesses
// a period.
func activeFiscalYear(ctx context.Context, fyRepo repository.FiscalYearRepository, companyID uuid.UUID) (*entity.FiscalYear, error) {
	fy, err := fyRepo.GetActive(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if fy != nil {
		return fy, nil
	}

	any, err := fyRepo.HasAny(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if !any {
		return nil, apperror.ErrNoFiscalYear
	}
	return nil, apperror.NewBadRequestError("No active fiscal year for this company")
}

// companyVatRate reads the company's configured VAT percentage. A company
// with VAT disabled rates everything at zero.
func companyVatRate(ctx context.Context, companyRepo repository.CompanyRepository, companyID uuid.UUID) (decimal.Decimal, error) {
	company, err := companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return decimal.Zero, err
	}
	if company == nil {
		return decimal.Zero, apperror.NewNotFoundError("Company")
	}
	if !company.Settings.VatEnabled {
		return decimal.Zero, nil
	}
	return decimal.NewFromFloat(company.Settings.VatRate), nil
}

// userAutoRoundOff reads the posting user's auto round-off preference,
// defaulting to off when the user has no settings row yet.
func userAutoRoundOff(ctx context.Context, settingsRepo repository.SettingsRepository, userID, companyID uuid.UUID) (bool, error) {
	settings, err := settingsRepo.GetByUserAndCompany(ctx, userID, companyID)
	if err != nil {
		return false, err
	}
	if settings == nil {
		return false, nil
	}
	return settings.AutoRoundOff, nil
}
