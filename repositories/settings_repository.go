package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/joaovmb/team-manager/models"
)

var ErrSettingsNotFound = errors.New("settings not found")

type SettingsRepository interface {
	Create(ctx context.Context, settings *models.Settings) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Settings, error)
	Update(ctx context.Context, settings *models.Settings) error
}

type postgresSettingsRepository struct {
	db *sql.DB
}

func NewPostgresSettingsRepository(db *sql.DB) SettingsRepository {
	return &postgresSettingsRepository{db: db}
}

func (r *postgresSettingsRepository) Create(ctx context.Context, settings *models.Settings) error {
	query := `
		INSERT INTO settings (user_id, notifications_email, notifications_whatsapp,
			notifications_payment_reminder, notifications_overdue, theme, language, compact_mode)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at`

	return r.db.QueryRowContext(ctx, query,
		settings.UserID,
		settings.NotificationsEmail,
		settings.NotificationsWhatsApp,
		settings.NotificationsPaymentReminder,
		settings.NotificationsOverdue,
		settings.Theme,
		settings.Language,
		settings.CompactMode,
	).Scan(&settings.ID, &settings.CreatedAt, &settings.UpdatedAt)
}

func (r *postgresSettingsRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Settings, error) {
	query := `
		SELECT id, user_id, notifications_email, notifications_whatsapp, notifications_payment_reminder,
			notifications_overdue, theme, language, compact_mode, created_at, updated_at
		FROM settings
		WHERE user_id = $1`

	settings := &models.Settings{}
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&settings.ID,
		&settings.UserID,
		&settings.NotificationsEmail,
		&settings.NotificationsWhatsApp,
		&settings.NotificationsPaymentReminder,
		&settings.NotificationsOverdue,
		&settings.Theme,
		&settings.Language,
		&settings.CompactMode,
		&settings.CreatedAt,
		&settings.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSettingsNotFound
		}
		return nil, err
	}
	return settings, nil
}

func (r *postgresSettingsRepository) Update(ctx context.Context, settings *models.Settings) error {
	query := `
		UPDATE settings SET
			notifications_email = $1,
			notifications_whatsapp = $2,
			notifications_payment_reminder = $3,
			notifications_overdue = $4,
			theme = $5,
			language = $6,
			compact_mode = $7,
			updated_at = now()
		WHERE user_id = $8
		RETURNING updated_at`

	err := r.db.QueryRowContext(ctx, query,
		settings.NotificationsEmail,
		settings.NotificationsWhatsApp,
		settings.NotificationsPaymentReminder,
		settings.NotificationsOverdue,
		settings.Theme,
		settings.Language,
		settings.CompactMode,
		settings.UserID,
	).Scan(&settings.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrSettingsNotFound
		}
		return err
	}
	return nil
}
