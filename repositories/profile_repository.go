package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/joaovmb/team-manager/models"
)

var ErrProfileNotFound = errors.New("profile not found")

type ProfileRepository interface {
	Create(ctx context.Context, profile *models.Profile) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Profile, error)
	Update(ctx context.Context, profile *models.Profile) error
}

type postgresProfileRepository struct {
	db *sql.DB
}

func NewPostgresProfileRepository(db *sql.DB) ProfileRepository {
	return &postgresProfileRepository{db: db}
}

func (r *postgresProfileRepository) Create(ctx context.Context, profile *models.Profile) error {
	query := `
		INSERT INTO profiles (user_id, display_name, avatar_url, team_name, monthly_fee, due_day, timezone)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at`

	return r.db.QueryRowContext(ctx, query,
		profile.UserID,
		profile.DisplayName,
		profile.AvatarURL,
		profile.TeamName,
		profile.MonthlyFee,
		profile.DueDay,
		profile.Timezone,
	).Scan(&profile.ID, &profile.CreatedAt, &profile.UpdatedAt)
}

func (r *postgresProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	query := `
		SELECT id, user_id, display_name, avatar_url, team_name, monthly_fee, due_day, timezone, created_at, updated_at
		FROM profiles
		WHERE user_id = $1`

	profile := &models.Profile{}
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&profile.ID,
		&profile.UserID,
		&profile.DisplayName,
		&profile.AvatarURL,
		&profile.TeamName,
		&profile.MonthlyFee,
		&profile.DueDay,
		&profile.Timezone,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return profile, nil
}

func (r *postgresProfileRepository) Update(ctx context.Context, profile *models.Profile) error {
	query := `
		UPDATE profiles SET
			display_name = $1,
			avatar_url = $2,
			team_name = $3,
			monthly_fee = $4,
			due_day = $5,
			timezone = $6,
			updated_at = now()
		WHERE user_id = $7
		RETURNING updated_at`

	err := r.db.QueryRowContext(ctx, query,
		profile.DisplayName,
		profile.AvatarURL,
		profile.TeamName,
		profile.MonthlyFee,
		profile.DueDay,
		profile.Timezone,
		profile.UserID,
	).Scan(&profile.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrProfileNotFound
		}
		return err
	}
	return nil
}
