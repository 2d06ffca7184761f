package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/saroz96/skyforgee-new-sub011/internal/domain/entity"
	"github.com/saroz96/skyforgee-new-sub011/internal/domain/enum"
	"github.com/saroz96/skyforgee-new-sub011/internal/domain/repository"
	"github.com/saroz96/skyforgee-new-sub011/pkg/apperror"
)

// SettingsService handles per-user posting preferences
type SettingsService struct {
	settingsRepo repository.SettingsRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo repository.SettingsRepository) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo}
}

// GetSettings returns the user's settings for the current company, creating
// the default row on first access.
func (s *SettingsService) GetSettings(ctx context.Context, userID uuid.UUID) (*entity.UserSettings, error) {
	companyID, err := companyFromContext(ctx)
	if err != nil {
		return nil, err
	}

	settings, err := s.settingsRepo.GetByUserAndCompany(ctx, userID, companyID)
	if err != nil {
		return nil, err
	}
	if settings != nil {
		return settings, nil
	}

	settings = &entity.UserSettings{
		UserID:         userID,
		CompanyID:      companyID,
		AutoRoundOff:   false,
		DefaultVatMode: enum.VatModeVatable,
		Language:       "en",
		DateFormat:     "YYYY-MM-DD",
	}
	if err := s.settingsRepo.Create(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// UpdateSettingsInput represents the update settings input
type UpdateSettingsInput struct {
	AutoRoundOff   *bool
	DefaultVatMode *enum.VatMode
	Language       *string
	DateFormat     *string
}

// UpdateSettings updates the user's posting preferences for the current company
func (s *SettingsService) UpdateSettings(ctx context.Context, userID uuid.UUID, input *UpdateSettingsInput) (*entity.UserSettings, error) {
	settings, err := s.GetSettings(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.AutoRoundOff != nil {
		settings.AutoRoundOff = *input.AutoRoundOff
	}
	if input.DefaultVatMode != nil {
		if !input.DefaultVatMode.IsValid() {
			return nil, apperror.NewBadRequestError("Invalid VAT mode")
		}
		settings.DefaultVatMode = *input.DefaultVatMode
	}
	if input.Language != nil {
		settings.Language = *input.Language
	}
	if input.DateFormat != nil {
		settings.DateFormat = *input.DateFormat
	}

	if err := s.settingsRepo.Update(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}
