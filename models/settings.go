package models

import (
	"time"

	"github.com/google/uuid"
)

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}

// Settings is the singleton per-account preference record, created
// automatically at signup.
type Settings struct {
	ID                           uuid.UUID `json:"id"`
	UserID                       uuid.UUID `json:"user_id"`
	NotificationsEmail           bool      `json:"notifications_email"`
	NotificationsWhatsApp        bool      `json:"notifications_whatsapp"`
	NotificationsPaymentReminder bool      `json:"notifications_payment_reminder"`
	NotificationsOverdue         bool      `json:"notifications_overdue"`
	Theme                        Theme     `json:"theme"`
	Language                     string    `json:"language"`
	CompactMode                  bool      `json:"compact_mode"`
	CreatedAt                    time.Time `json:"created_at"`
	UpdatedAt                    time.Time `json:"updated_at"`
}

func DefaultSettings(userID uuid.UUID) *Settings {
	return &Settings{
		UserID:                       userID,
		NotificationsEmail:           true,
		NotificationsWhatsApp:        true,
		NotificationsPaymentReminder: true,
		NotificationsOverdue:         true,
		Theme:                        ThemeDark,
		Language:                     "pt-BR",
		CompactMode:                  false,
	}
}
