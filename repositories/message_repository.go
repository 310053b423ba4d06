package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/joaovmb/team-manager/models"
	"github.com/lib/pq"
)

var ErrMessageNotFound = errors.New("message not found")

// MessageRepository stores the write-once history of outbound batches.
// There is no Update: a batch record is only ever created or deleted.
type MessageRepository interface {
	Create(ctx context.Context, message *models.Message) error
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.Message, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type postgresMessageRepository struct {
	db *sql.DB
}

func NewPostgresMessageRepository(db *sql.DB) MessageRepository {
	return &postgresMessageRepository{db: db}
}

func (r *postgresMessageRepository) Create(ctx context.Context, message *models.Message) error {
	query := `
		INSERT INTO messages (user_id, player_ids, template_name, content, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, sent_at`

	ids := make([]string, len(message.PlayerIDs))
	for i, id := range message.PlayerIDs {
		ids[i] = id.String()
	}

	return r.db.QueryRowContext(ctx, query,
		message.UserID,
		pq.Array(ids),
		message.TemplateName,
		message.Content,
		message.Status,
	).Scan(&message.ID, &message.SentAt)
}

func (r *postgresMessageRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.Message, error) {
	query := `
		SELECT id, user_id, player_ids, template_name, content, sent_at, status
		FROM messages
		WHERE user_id = $1
		ORDER BY sent_at DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := make([]models.Message, 0)
	for rows.Next() {
		var message models.Message
		var rawIDs []string
		err := rows.Scan(
			&message.ID,
			&message.UserID,
			pq.Array(&rawIDs),
			&message.TemplateName,
			&message.Content,
			&message.SentAt,
			&message.Status,
		)
		if err != nil {
			return nil, err
		}
		message.PlayerIDs = make([]uuid.UUID, 0, len(rawIDs))
		for _, raw := range rawIDs {
			id, parseErr := uuid.Parse(raw)
			if parseErr != nil {
				continue
			}
			message.PlayerIDs = append(message.PlayerIDs, id)
		}
		messages = append(messages, message)
	}
	return messages, rows.Err()
}

func (r *postgresMessageRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	query := `DELETE FROM messages WHERE id = $1 AND user_id = $2`
	result, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrMessageNotFound)
}
