package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/joaovmb/team-manager/models"
)

var ErrTransactionNotFound = errors.New("transaction not found")

type TransactionRepository interface {
	Create(ctx context.Context, transaction *models.Transaction) error
	GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Transaction, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.Transaction, error)
	Update(ctx context.Context, transaction *models.Transaction) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type postgresTransactionRepository struct {
	db *sql.DB
}

func NewPostgresTransactionRepository(db *sql.DB) TransactionRepository {
	return &postgresTransactionRepository{db: db}
}

const transactionColumns = `id, user_id, player_id, type, category, description, amount,
	date, payment_method, created_at, updated_at`

func (r *postgresTransactionRepository) Create(ctx context.Context, transaction *models.Transaction) error {
	// player_id carries no foreign key: deleting a player leaves the
	// reference dangling and the financial history intact.
	query := `
		INSERT INTO transactions (user_id, player_id, type, category, description, amount, date, payment_method)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at`

	return r.db.QueryRowContext(ctx, query,
		transaction.UserID,
		transaction.PlayerID,
		transaction.Type,
		transaction.Category,
		transaction.Description,
		transaction.Amount,
		transaction.Date,
		transaction.PaymentMethod,
	).Scan(&transaction.ID, &transaction.CreatedAt, &transaction.UpdatedAt)
}

func (r *postgresTransactionRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1 AND user_id = $2`

	row := r.db.QueryRowContext(ctx, query, id, userID)
	transaction, err := scanTransaction(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTransactionNotFound
		}
		return nil, err
	}
	return transaction, nil
}

// ListByUserID returns all transactions for one account, newest first. The
// dashboard's recent-activity feed relies on this ordering.
func (r *postgresTransactionRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE user_id = $1 ORDER BY date DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	transactions := make([]models.Transaction, 0)
	for rows.Next() {
		transaction, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, *transaction)
	}
	return transactions, rows.Err()
}

func (r *postgresTransactionRepository) Update(ctx context.Context, transaction *models.Transaction) error {
	query := `
		UPDATE transactions SET
			player_id = $1,
			type = $2,
			category = $3,
			description = $4,
			amount = $5,
			date = $6,
			payment_method = $7,
			updated_at = now()
		WHERE id = $8 AND user_id = $9
		RETURNING updated_at`

	err := r.db.QueryRowContext(ctx, query,
		transaction.PlayerID,
		transaction.Type,
		transaction.Category,
		transaction.Description,
		transaction.Amount,
		transaction.Date,
		transaction.PaymentMethod,
		transaction.ID,
		transaction.UserID,
	).Scan(&transaction.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrTransactionNotFound
		}
		return err
	}
	return nil
}

func (r *postgresTransactionRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	query := `DELETE FROM transactions WHERE id = $1 AND user_id = $2`
	result, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrTransactionNotFound)
}

func scanTransaction(row rowScanner) (*models.Transaction, error) {
	transaction := &models.Transaction{}
	var playerID uuid.NullUUID
	err := row.Scan(
		&transaction.ID,
		&transaction.UserID,
		&playerID,
		&transaction.Type,
		&transaction.Category,
		&transaction.Description,
		&transaction.Amount,
		&transaction.Date,
		&transaction.PaymentMethod,
		&transaction.CreatedAt,
		&transaction.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if playerID.Valid {
		transaction.PlayerID = &playerID.UUID
	}
	return transaction, nil
}
