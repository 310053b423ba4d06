package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/joaovmb/team-manager/models"
)

var ErrPlayerNotFound = errors.New("player not found")

type PlayerRepository interface {
	Create(ctx context.Context, player *models.Player) error
	GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Player, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.Player, error)
	Update(ctx context.Context, player *models.Player) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type postgresPlayerRepository struct {
	db *sql.DB
}

func NewPostgresPlayerRepository(db *sql.DB) PlayerRepository {
	return &postgresPlayerRepository{db: db}
}

const playerColumns = `id, user_id, name, phone, email, position, status, payment_status,
	monthly_fee, last_payment_date, due_date, notes, created_at, updated_at`

func (r *postgresPlayerRepository) Create(ctx context.Context, player *models.Player) error {
	query := `
		INSERT INTO players (user_id, name, phone, email, position, status, payment_status,
			monthly_fee, last_payment_date, due_date, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at`

	return r.db.QueryRowContext(ctx, query,
		player.UserID,
		player.Name,
		player.Phone,
		player.Email,
		player.Position,
		player.Status,
		player.PaymentStatus,
		player.MonthlyFee,
		player.LastPaymentDate,
		player.DueDate,
		player.Notes,
	).Scan(&player.ID, &player.CreatedAt, &player.UpdatedAt)
}

func (r *postgresPlayerRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Player, error) {
	query := `SELECT ` + playerColumns + ` FROM players WHERE id = $1 AND user_id = $2`

	row := r.db.QueryRowContext(ctx, query, id, userID)
	player, err := scanPlayer(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}
	return player, nil
}

// ListByUserID returns the full roster for one account, ordered by name the
// way the players screen shows it.
func (r *postgresPlayerRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.Player, error) {
	query := `SELECT ` + playerColumns + ` FROM players WHERE user_id = $1 ORDER BY name ASC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	players := make([]models.Player, 0)
	for rows.Next() {
		player, err := scanPlayer(rows)
		if err != nil {
			return nil, err
		}
		players = append(players, *player)
	}
	return players, rows.Err()
}

func (r *postgresPlayerRepository) Update(ctx context.Context, player *models.Player) error {
	query := `
		UPDATE players SET
			name = $1,
			phone = $2,
			email = $3,
			position = $4,
			status = $5,
			payment_status = $6,
			monthly_fee = $7,
			last_payment_date = $8,
			due_date = $9,
			notes = $10,
			updated_at = now()
		WHERE id = $11 AND user_id = $12
		RETURNING updated_at`

	err := r.db.QueryRowContext(ctx, query,
		player.Name,
		player.Phone,
		player.Email,
		player.Position,
		player.Status,
		player.PaymentStatus,
		player.MonthlyFee,
		player.LastPaymentDate,
		player.DueDate,
		player.Notes,
		player.ID,
		player.UserID,
	).Scan(&player.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrPlayerNotFound
		}
		return err
	}
	return nil
}

// Delete removes the roster entry only. Transactions referencing the player
// keep their player_id; the reference simply dangles afterwards.
func (r *postgresPlayerRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	query := `DELETE FROM players WHERE id = $1 AND user_id = $2`
	result, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrPlayerNotFound)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPlayer(row rowScanner) (*models.Player, error) {
	player := &models.Player{}
	err := row.Scan(
		&player.ID,
		&player.UserID,
		&player.Name,
		&player.Phone,
		&player.Email,
		&player.Position,
		&player.Status,
		&player.PaymentStatus,
		&player.MonthlyFee,
		&player.LastPaymentDate,
		&player.DueDate,
		&player.Notes,
		&player.CreatedAt,
		&player.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return player, nil
}
