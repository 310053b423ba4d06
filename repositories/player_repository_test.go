package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/joaovmb/team-manager/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPlayerRepoMock(t *testing.T) (PlayerRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewPostgresPlayerRepository(db), mock
}

func TestPlayerRepository_Create(t *testing.T) {
	repo, mock := newPlayerRepoMock(t)

	userID := uuid.New()
	id := uuid.New()
	now := time.Now()
	phone := "11987654321"
	player := &models.Player{
		UserID:        userID,
		Name:          "Carlos",
		Phone:         &phone,
		Status:        models.PlayerActive,
		PaymentStatus: models.PaymentPending,
		MonthlyFee:    200,
	}

	mock.ExpectQuery(`INSERT INTO players`).
		WithArgs(userID, "Carlos", &phone, nil, nil,
			models.PlayerActive, models.PaymentPending, 200.0, nil, nil, nil).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow(id.String(), now, now))

	require.NoError(t, repo.Create(context.Background(), player))
	assert.Equal(t, id, player.ID)
	assert.Equal(t, now, player.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPlayerRepository_GetByID(t *testing.T) {
	userID := uuid.New()
	id := uuid.New()

	t.Run("scans nullable columns", func(t *testing.T) {
		repo, mock := newPlayerRepoMock(t)
		now := time.Now()

		mock.ExpectQuery(`SELECT (.+) FROM players WHERE id = \$1 AND user_id = \$2`).
			WithArgs(id, userID).
			WillReturnRows(sqlmock.NewRows([]string{
				"id", "user_id", "name", "phone", "email", "position", "status",
				"payment_status", "monthly_fee", "last_payment_date", "due_date",
				"notes", "created_at", "updated_at",
			}).AddRow(id.String(), userID.String(), "Carlos", nil, nil, "Goleiro",
				"active", "pending", 200.0, nil, nil, nil, now, now))

		player, err := repo.GetByID(context.Background(), userID, id)
		require.NoError(t, err)
		assert.Equal(t, "Carlos", player.Name)
		assert.Nil(t, player.Phone)
		require.NotNil(t, player.Position)
		assert.Equal(t, "Goleiro", *player.Position)
		assert.Equal(t, models.PlayerActive, player.Status)
	})

	t.Run("missing row maps to ErrPlayerNotFound", func(t *testing.T) {
		repo, mock := newPlayerRepoMock(t)

		mock.ExpectQuery(`SELECT (.+) FROM players WHERE id = \$1 AND user_id = \$2`).
			WithArgs(id, userID).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.GetByID(context.Background(), userID, id)
		assert.ErrorIs(t, err, ErrPlayerNotFound)
	})
}

func TestPlayerRepository_ListByUserID(t *testing.T) {
	repo, mock := newPlayerRepoMock(t)
	userID := uuid.New()
	now := time.Now()

	rows := sqlmock.NewRows([]string{
		"id", "user_id", "name", "phone", "email", "position", "status",
		"payment_status", "monthly_fee", "last_payment_date", "due_date",
		"notes", "created_at", "updated_at",
	}).
		AddRow(uuid.NewString(), userID.String(), "Ana", nil, nil, nil, "active", "paid", 200.0, nil, nil, nil, now, now).
		AddRow(uuid.NewString(), userID.String(), "Bruno", nil, nil, nil, "inactive", "late", 150.0, nil, nil, nil, now, now)

	mock.ExpectQuery(`SELECT (.+) FROM players WHERE user_id = \$1 ORDER BY name ASC`).
		WithArgs(userID).
		WillReturnRows(rows)

	players, err := repo.ListByUserID(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, players, 2)
	assert.Equal(t, "Ana", players[0].Name)
	assert.Equal(t, models.PaymentLate, players[1].PaymentStatus)
}

func TestPlayerRepository_Delete(t *testing.T) {
	userID := uuid.New()
	id := uuid.New()

	t.Run("removes the row", func(t *testing.T) {
		repo, mock := newPlayerRepoMock(t)
		mock.ExpectExec(`DELETE FROM players WHERE id = \$1 AND user_id = \$2`).
			WithArgs(id, userID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(context.Background(), userID, id))
	})

	t.Run("zero rows affected maps to ErrPlayerNotFound", func(t *testing.T) {
		repo, mock := newPlayerRepoMock(t)
		mock.ExpectExec(`DELETE FROM players WHERE id = \$1 AND user_id = \$2`).
			WithArgs(id, userID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Delete(context.Background(), userID, id), ErrPlayerNotFound)
	})
}
