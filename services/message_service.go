package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joaovmb/team-manager/messaging"
	"github.com/joaovmb/team-manager/models"
	"github.com/joaovmb/team-manager/realtime"
	"github.com/joaovmb/team-manager/repositories"
)

type MessageService interface {
	List(ctx context.Context, userID uuid.UUID) ([]models.Message, error)
	SendBatch(ctx context.Context, userID uuid.UUID, input SendBatchInput) (*BatchResult, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// SendBatchInput selects either a catalogue template (by name) or a custom
// text, never both; TemplateName wins when set.
type SendBatchInput struct {
	PlayerIDs     []uuid.UUID `json:"player_ids"`
	TemplateName  string      `json:"template_name"`
	CustomMessage string      `json:"custom_message"`
}

// OutboundLink is one ready-to-open WhatsApp deep link. Opening it is the
// caller's job; the server neither batches nor confirms delivery.
type OutboundLink struct {
	PlayerID   uuid.UUID `json:"player_id"`
	PlayerName string    `json:"player_name"`
	URL        string    `json:"url"`
}

type BatchResult struct {
	Message *models.Message `json:"message"`
	Links   []OutboundLink  `json:"links"`
}

type messageService struct {
	messageRepo repositories.MessageRepository
	playerRepo  repositories.PlayerRepository
	hub         *realtime.Hub
	countryCode string
	now         func() time.Time
}

func NewMessageService(
	messageRepo repositories.MessageRepository,
	playerRepo repositories.PlayerRepository,
	hub *realtime.Hub,
	countryCode string,
) MessageService {
	if countryCode == "" {
		countryCode = messaging.DefaultCountryCode
	}
	return &messageService{
		messageRepo: messageRepo,
		playerRepo:  playerRepo,
		hub:         hub,
		countryCode: countryCode,
		now:         time.Now,
	}
}

func (s *messageService) List(ctx context.Context, userID uuid.UUID) ([]models.Message, error) {
	return s.messageRepo.ListByUserID(ctx, userID)
}

// SendBatch renders the chosen text once per selected player and returns
// one deep link each. A single history row records the batch afterwards:
// the *source* text (not per-recipient renderings) and an unconditional
// "sent" status, since link opening happens outside the server.
func (s *messageService) SendBatch(ctx context.Context, userID uuid.UUID, input SendBatchInput) (*BatchResult, error) {
	if len(input.PlayerIDs) == 0 {
		return nil, ErrNoRecipients
	}

	templateName := messaging.CustomTemplateName
	source := input.CustomMessage
	if input.TemplateName != "" {
		template, ok := messaging.TemplateByName(input.TemplateName)
		if !ok {
			return nil, ErrTemplateNotFound
		}
		templateName = template.Name
		source = template.Message
	}
	if strings.TrimSpace(source) == "" {
		return nil, ErrMessageEmpty
	}

	players, err := s.playerRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	byID := make(map[uuid.UUID]models.Player, len(players))
	for _, p := range players {
		byID[p.ID] = p
	}

	now := s.now()
	links := make([]OutboundLink, 0, len(input.PlayerIDs))
	for _, id := range input.PlayerIDs {
		player, ok := byID[id]
		if !ok {
			continue
		}
		phone := ""
		if player.Phone != nil {
			phone = *player.Phone
		}
		rendered := messaging.Render(source, player, now)
		links = append(links, OutboundLink{
			PlayerID:   player.ID,
			PlayerName: player.Name,
			URL:        messaging.WhatsAppLink(s.countryCode, phone, rendered),
		})
	}

	message := &models.Message{
		UserID:       userID,
		PlayerIDs:    input.PlayerIDs,
		TemplateName: templateName,
		Content:      source,
		Status:       models.MessageSent,
	}
	if err := s.messageRepo.Create(ctx, message); err != nil {
		return nil, fmt.Errorf("failed to record message batch: %w", err)
	}

	s.hub.Publish(userID, realtime.Event{Collection: "messages", Action: realtime.ActionCreated, ID: message.ID})
	return &BatchResult{Message: message, Links: links}, nil
}

func (s *messageService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if err := s.messageRepo.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, repositories.ErrMessageNotFound) {
			return ErrMessageNotFound
		}
		return fmt.Errorf("failed to delete message: %w", err)
	}

	s.hub.Publish(userID, realtime.Event{Collection: "messages", Action: realtime.ActionDeleted, ID: id})
	return nil
}
