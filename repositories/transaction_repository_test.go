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

func newTransactionRepoMock(t *testing.T) (TransactionRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewPostgresTransactionRepository(db), mock
}

func TestTransactionRepository_Create(t *testing.T) {
	repo, mock := newTransactionRepoMock(t)

	userID := uuid.New()
	id := uuid.New()
	date := time.Now()
	transaction := &models.Transaction{
		UserID:        userID,
		Type:          models.TransactionIncome,
		Category:      "mensalidade",
		Description:   "Mensalidade Março",
		Amount:        200,
		Date:          date,
		PaymentMethod: models.MethodPix,
	}

	mock.ExpectQuery(`INSERT INTO transactions`).
		WithArgs(userID, nil, models.TransactionIncome, "mensalidade",
			"Mensalidade Março", 200.0, date, models.MethodPix).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow(id.String(), date, date))

	require.NoError(t, repo.Create(context.Background(), transaction))
	assert.Equal(t, id, transaction.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepository_GetByID(t *testing.T) {
	userID := uuid.New()
	id := uuid.New()

	t.Run("null player_id scans to a nil reference", func(t *testing.T) {
		repo, mock := newTransactionRepoMock(t)
		date := time.Now()

		mock.ExpectQuery(`SELECT (.+) FROM transactions WHERE id = \$1 AND user_id = \$2`).
			WithArgs(id, userID).
			WillReturnRows(sqlmock.NewRows([]string{
				"id", "user_id", "player_id", "type", "category", "description",
				"amount", "date", "payment_method", "created_at", "updated_at",
			}).AddRow(id.String(), userID.String(), nil, "expense", "campo",
				"Aluguel", 350.5, date, "cash", date, date))

		transaction, err := repo.GetByID(context.Background(), userID, id)
		require.NoError(t, err)
		assert.Nil(t, transaction.PlayerID)
		assert.Equal(t, models.TransactionExpense, transaction.Type)
		assert.Equal(t, 350.5, transaction.Amount)
	})

	t.Run("set player_id scans to a concrete reference", func(t *testing.T) {
		repo, mock := newTransactionRepoMock(t)
		playerID := uuid.New()
		date := time.Now()

		mock.ExpectQuery(`SELECT (.+) FROM transactions WHERE id = \$1 AND user_id = \$2`).
			WithArgs(id, userID).
			WillReturnRows(sqlmock.NewRows([]string{
				"id", "user_id", "player_id", "type", "category", "description",
				"amount", "date", "payment_method", "created_at", "updated_at",
			}).AddRow(id.String(), userID.String(), playerID.String(), "income",
				"mensalidade", "", 200.0, date, "pix", date, date))

		transaction, err := repo.GetByID(context.Background(), userID, id)
		require.NoError(t, err)
		require.NotNil(t, transaction.PlayerID)
		assert.Equal(t, playerID, *transaction.PlayerID)
	})

	t.Run("missing row maps to ErrTransactionNotFound", func(t *testing.T) {
		repo, mock := newTransactionRepoMock(t)
		mock.ExpectQuery(`SELECT (.+) FROM transactions WHERE id = \$1 AND user_id = \$2`).
			WithArgs(id, userID).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.GetByID(context.Background(), userID, id)
		assert.ErrorIs(t, err, ErrTransactionNotFound)
	})
}

func TestTransactionRepository_Update(t *testing.T) {
	repo, mock := newTransactionRepoMock(t)

	transaction := &models.Transaction{
		ID:            uuid.New(),
		UserID:        uuid.New(),
		Type:          models.TransactionIncome,
		Amount:        100,
		Date:          time.Now(),
		PaymentMethod: models.MethodCash,
	}

	mock.ExpectQuery(`UPDATE transactions SET`).
		WithArgs(nil, models.TransactionIncome, "", "", 100.0, transaction.Date,
			models.MethodCash, transaction.ID, transaction.UserID).
		WillReturnRows(sqlmock.NewRows([]string{"updated_at"}))

	err := repo.Update(context.Background(), transaction)
	assert.ErrorIs(t, err, ErrTransactionNotFound)
}

func TestTransactionRepository_Delete(t *testing.T) {
	repo, mock := newTransactionRepoMock(t)
	userID := uuid.New()
	id := uuid.New()

	mock.ExpectExec(`DELETE FROM transactions WHERE id = \$1 AND user_id = \$2`).
		WithArgs(id, userID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Delete(context.Background(), userID, id))
	require.NoError(t, mock.ExpectationsWereMet())
}
