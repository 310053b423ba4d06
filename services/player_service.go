package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator"
	"github.com/google/uuid"
	"github.com/joaovmb/team-manager/models"
	"github.com/joaovmb/team-manager/realtime"
	"github.com/joaovmb/team-manager/repositories"
)

type PlayerService interface {
	List(ctx context.Context, userID uuid.UUID) ([]models.Player, error)
	Get(ctx context.Context, userID, id uuid.UUID) (*models.Player, error)
	Create(ctx context.Context, userID uuid.UUID, input CreatePlayerInput) (*models.Player, error)
	Update(ctx context.Context, userID, id uuid.UUID, input UpdatePlayerInput) (*models.Player, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// CreatePlayerInput and UpdatePlayerInput are intentionally separate typed
// records, one per form, instead of a shared partial-update bag.
type CreatePlayerInput struct {
	Name            string     `json:"name" validate:"required"`
	Phone           *string    `json:"phone"`
	Email           *string    `json:"email" validate:"omitempty,email"`
	Position        *string    `json:"position"`
	Status          string     `json:"status"`
	PaymentStatus   string     `json:"payment_status"`
	MonthlyFee      float64    `json:"monthly_fee" validate:"gte=0"`
	LastPaymentDate *time.Time `json:"last_payment_date"`
	DueDate         *time.Time `json:"due_date"`
	Notes           *string    `json:"notes"`
}

type UpdatePlayerInput struct {
	Name            string     `json:"name" validate:"required"`
	Phone           *string    `json:"phone"`
	Email           *string    `json:"email" validate:"omitempty,email"`
	Position        *string    `json:"position"`
	Status          string     `json:"status" validate:"required"`
	PaymentStatus   string     `json:"payment_status" validate:"required"`
	MonthlyFee      float64    `json:"monthly_fee" validate:"gte=0"`
	LastPaymentDate *time.Time `json:"last_payment_date"`
	DueDate         *time.Time `json:"due_date"`
	Notes           *string    `json:"notes"`
}

type playerService struct {
	playerRepo repositories.PlayerRepository
	hub        *realtime.Hub
	validate   *validator.Validate
}

func NewPlayerService(playerRepo repositories.PlayerRepository, hub *realtime.Hub) PlayerService {
	return &playerService{
		playerRepo: playerRepo,
		hub:        hub,
		validate:   validator.New(),
	}
}

func (s *playerService) List(ctx context.Context, userID uuid.UUID) ([]models.Player, error) {
	return s.playerRepo.ListByUserID(ctx, userID)
}

func (s *playerService) Get(ctx context.Context, userID, id uuid.UUID) (*models.Player, error) {
	player, err := s.playerRepo.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}
	return player, nil
}

func (s *playerService) Create(ctx context.Context, userID uuid.UUID, input CreatePlayerInput) (*models.Player, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}

	status := models.PlayerStatus(input.Status)
	if input.Status == "" {
		status = models.PlayerActive
	}
	paymentStatus := models.PaymentStatus(input.PaymentStatus)
	if input.PaymentStatus == "" {
		paymentStatus = models.PaymentPending
	}
	if !status.Valid() || !paymentStatus.Valid() {
		return nil, fmt.Errorf("%w: unknown player status", ErrValidationFailed)
	}

	player := &models.Player{
		UserID:          userID,
		Name:            input.Name,
		Phone:           input.Phone,
		Email:           input.Email,
		Position:        input.Position,
		Status:          status,
		PaymentStatus:   paymentStatus,
		MonthlyFee:      input.MonthlyFee,
		LastPaymentDate: input.LastPaymentDate,
		DueDate:         input.DueDate,
		Notes:           input.Notes,
	}
	if err := s.playerRepo.Create(ctx, player); err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}

	s.hub.Publish(userID, realtime.Event{Collection: "players", Action: realtime.ActionCreated, ID: player.ID})
	return player, nil
}

func (s *playerService) Update(ctx context.Context, userID, id uuid.UUID, input UpdatePlayerInput) (*models.Player, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}
	status := models.PlayerStatus(input.Status)
	paymentStatus := models.PaymentStatus(input.PaymentStatus)
	if !status.Valid() || !paymentStatus.Valid() {
		return nil, fmt.Errorf("%w: unknown player status", ErrValidationFailed)
	}

	player := &models.Player{
		ID:              id,
		UserID:          userID,
		Name:            input.Name,
		Phone:           input.Phone,
		Email:           input.Email,
		Position:        input.Position,
		Status:          status,
		PaymentStatus:   paymentStatus,
		MonthlyFee:      input.MonthlyFee,
		LastPaymentDate: input.LastPaymentDate,
		DueDate:         input.DueDate,
		Notes:           input.Notes,
	}
	if err := s.playerRepo.Update(ctx, player); err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to update player: %w", err)
	}

	s.hub.Publish(userID, realtime.Event{Collection: "players", Action: realtime.ActionUpdated, ID: id})
	return player, nil
}

// Delete removes only the roster entry. Transactions and message history
// referencing the player are kept as-is.
func (s *playerService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if err := s.playerRepo.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return ErrPlayerNotFound
		}
		return fmt.Errorf("failed to delete player: %w", err)
	}

	s.hub.Publish(userID, realtime.Event{Collection: "players", Action: realtime.ActionDeleted, ID: id})
	return nil
}
