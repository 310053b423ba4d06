package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator"
	"github.com/google/uuid"
	"github.com/joaovmb/team-manager/models"
	"github.com/joaovmb/team-manager/repositories"
)

type SettingsService interface {
	Get(ctx context.Context, userID uuid.UUID) (*models.Settings, error)
	Update(ctx context.Context, userID uuid.UUID, input UpdateSettingsInput) (*models.Settings, error)
}

type UpdateSettingsInput struct {
	NotificationsEmail           bool   `json:"notifications_email"`
	NotificationsWhatsApp        bool   `json:"notifications_whatsapp"`
	NotificationsPaymentReminder bool   `json:"notifications_payment_reminder"`
	NotificationsOverdue         bool   `json:"notifications_overdue"`
	Theme                        string `json:"theme" validate:"required"`
	Language                     string `json:"language" validate:"required"`
	CompactMode                  bool   `json:"compact_mode"`
}

type settingsService struct {
	settingsRepo repositories.SettingsRepository
	validate     *validator.Validate
}

func NewSettingsService(settingsRepo repositories.SettingsRepository) SettingsService {
	return &settingsService{
		settingsRepo: settingsRepo,
		validate:     validator.New(),
	}
}

// Get returns the account's singleton settings, creating defaults when an
// older account predates automatic creation at signup.
func (s *settingsService) Get(ctx context.Context, userID uuid.UUID) (*models.Settings, error) {
	settings, err := s.settingsRepo.GetByUserID(ctx, userID)
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, repositories.ErrSettingsNotFound) {
		return nil, err
	}

	settings = models.DefaultSettings(userID)
	if err := s.settingsRepo.Create(ctx, settings); err != nil {
		return nil, fmt.Errorf("failed to create settings: %w", err)
	}
	return settings, nil
}

func (s *settingsService) Update(ctx context.Context, userID uuid.UUID, input UpdateSettingsInput) (*models.Settings, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}
	theme := models.Theme(input.Theme)
	if !theme.Valid() {
		return nil, fmt.Errorf("%w: unknown theme %q", ErrValidationFailed, input.Theme)
	}

	settings, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	settings.NotificationsEmail = input.NotificationsEmail
	settings.NotificationsWhatsApp = input.NotificationsWhatsApp
	settings.NotificationsPaymentReminder = input.NotificationsPaymentReminder
	settings.NotificationsOverdue = input.NotificationsOverdue
	settings.Theme = theme
	settings.Language = input.Language
	settings.CompactMode = input.CompactMode

	if err := s.settingsRepo.Update(ctx, settings); err != nil {
		return nil, fmt.Errorf("failed to update settings: %w", err)
	}
	return settings, nil
}
