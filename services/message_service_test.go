package services

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/joaovmb/team-manager/messaging"
	"github.com/joaovmb/team-manager/models"
	"github.com/joaovmb/team-manager/realtime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMessageRepo struct {
	created []*models.Message
}

func (f *fakeMessageRepo) Create(_ context.Context, message *models.Message) error {
	message.ID = uuid.New()
	message.SentAt = time.Now()
	f.created = append(f.created, message)
	return nil
}

func (f *fakeMessageRepo) ListByUserID(context.Context, uuid.UUID) ([]models.Message, error) {
	return nil, nil
}

func (f *fakeMessageRepo) Delete(context.Context, uuid.UUID, uuid.UUID) error {
	return nil
}

type fakePlayerRepo struct {
	players []models.Player
}

func (f *fakePlayerRepo) Create(context.Context, *models.Player) error { return nil }
func (f *fakePlayerRepo) GetByID(context.Context, uuid.UUID, uuid.UUID) (*models.Player, error) {
	return nil, nil
}
func (f *fakePlayerRepo) ListByUserID(context.Context, uuid.UUID) ([]models.Player, error) {
	return f.players, nil
}
func (f *fakePlayerRepo) Update(context.Context, *models.Player) error       { return nil }
func (f *fakePlayerRepo) Delete(context.Context, uuid.UUID, uuid.UUID) error { return nil }

func testHub() *realtime.Hub {
	return realtime.NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestMessageService_SendBatch(t *testing.T) {
	userID := uuid.New()
	phone := "(11) 98765-4321"
	due := time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)
	carlos := models.Player{ID: uuid.New(), UserID: userID, Name: "Carlos", Phone: &phone, MonthlyFee: 150, DueDate: &due}
	ana := models.Player{ID: uuid.New(), UserID: userID, Name: "Ana"}

	newService := func(messageRepo *fakeMessageRepo, players ...models.Player) MessageService {
		return NewMessageService(messageRepo, &fakePlayerRepo{players: players}, testHub(), "")
	}

	t.Run("custom message renders per player and records one row", func(t *testing.T) {
		repo := &fakeMessageRepo{}
		svc := newService(repo, carlos, ana)

		result, err := svc.SendBatch(context.Background(), userID, SendBatchInput{
			PlayerIDs:     []uuid.UUID{carlos.ID, ana.ID},
			CustomMessage: "Oi {NOME}, pague R$ {VALOR}",
		})
		require.NoError(t, err)
		require.Len(t, result.Links, 2)

		assert.Equal(t, "Carlos", result.Links[0].PlayerName)
		assert.Contains(t, result.Links[0].URL, "https://wa.me/5511987654321?text=")
		assert.Contains(t, result.Links[0].URL, "Carlos")
		assert.Contains(t, result.Links[1].URL, messaging.DefaultAmount, "zero fee uses the default amount")

		require.Len(t, repo.created, 1)
		recorded := repo.created[0]
		assert.Equal(t, "Oi {NOME}, pague R$ {VALOR}", recorded.Content, "history keeps the source text")
		assert.Equal(t, messaging.CustomTemplateName, recorded.TemplateName)
		assert.Equal(t, models.MessageSent, recorded.Status)
		assert.Equal(t, result.Message.ID, recorded.ID)
	})

	t.Run("template name wins over custom text", func(t *testing.T) {
		repo := &fakeMessageRepo{}
		svc := newService(repo, carlos)

		result, err := svc.SendBatch(context.Background(), userID, SendBatchInput{
			PlayerIDs:     []uuid.UUID{carlos.ID},
			TemplateName:  "Cobrança Pendente",
			CustomMessage: "ignored",
		})
		require.NoError(t, err)

		template, _ := messaging.TemplateByName("Cobrança Pendente")
		assert.Equal(t, template.Message, result.Message.Content)
		assert.Equal(t, "Cobrança Pendente", result.Message.TemplateName)
	})

	t.Run("unknown template", func(t *testing.T) {
		svc := newService(&fakeMessageRepo{}, carlos)
		_, err := svc.SendBatch(context.Background(), userID, SendBatchInput{
			PlayerIDs:    []uuid.UUID{carlos.ID},
			TemplateName: "Nope",
		})
		assert.ErrorIs(t, err, ErrTemplateNotFound)
	})

	t.Run("blank custom message", func(t *testing.T) {
		svc := newService(&fakeMessageRepo{}, carlos)
		_, err := svc.SendBatch(context.Background(), userID, SendBatchInput{
			PlayerIDs:     []uuid.UUID{carlos.ID},
			CustomMessage: "   ",
		})
		assert.ErrorIs(t, err, ErrMessageEmpty)
	})

	t.Run("no recipients", func(t *testing.T) {
		svc := newService(&fakeMessageRepo{}, carlos)
		_, err := svc.SendBatch(context.Background(), userID, SendBatchInput{CustomMessage: "oi"})
		assert.ErrorIs(t, err, ErrNoRecipients)
	})

	t.Run("unknown player ids are skipped, not errors", func(t *testing.T) {
		repo := &fakeMessageRepo{}
		svc := newService(repo, carlos)

		result, err := svc.SendBatch(context.Background(), userID, SendBatchInput{
			PlayerIDs:     []uuid.UUID{carlos.ID, uuid.New()},
			CustomMessage: "oi {NOME}",
		})
		require.NoError(t, err)
		assert.Len(t, result.Links, 1)
		assert.Len(t, result.Message.PlayerIDs, 2, "history keeps the full selection")
	})
}
