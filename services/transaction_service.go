package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/go-playground/validator"
	"github.com/google/uuid"
	"github.com/joaovmb/team-manager/models"
	"github.com/joaovmb/team-manager/realtime"
	"github.com/joaovmb/team-manager/reports"
	"github.com/joaovmb/team-manager/repositories"
)

type TransactionService interface {
	List(ctx context.Context, userID uuid.UUID) ([]models.Transaction, error)
	Create(ctx context.Context, userID uuid.UUID, input TransactionInput) (*models.Transaction, error)
	Update(ctx context.Context, userID, id uuid.UUID, input TransactionInput) (*models.Transaction, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
	ExportCSV(ctx context.Context, userID uuid.UUID, typ models.TransactionType, month time.Month, w io.Writer) error
}

// TransactionInput backs both the add and the edit form; both present the
// full record.
type TransactionInput struct {
	PlayerID      *uuid.UUID `json:"player_id"`
	Type          string     `json:"type" validate:"required"`
	Category      string     `json:"category" validate:"required"`
	Description   string     `json:"description" validate:"required"`
	Amount        float64    `json:"amount" validate:"gt=0"`
	Date          time.Time  `json:"date" validate:"required"`
	PaymentMethod string     `json:"payment_method" validate:"required"`
}

type transactionService struct {
	transactionRepo repositories.TransactionRepository
	hub             *realtime.Hub
	validate        *validator.Validate
}

func NewTransactionService(transactionRepo repositories.TransactionRepository, hub *realtime.Hub) TransactionService {
	return &transactionService{
		transactionRepo: transactionRepo,
		hub:             hub,
		validate:        validator.New(),
	}
}

func (s *transactionService) List(ctx context.Context, userID uuid.UUID) ([]models.Transaction, error) {
	return s.transactionRepo.ListByUserID(ctx, userID)
}

func (s *transactionService) Create(ctx context.Context, userID uuid.UUID, input TransactionInput) (*models.Transaction, error) {
	transaction, err := s.buildTransaction(userID, input)
	if err != nil {
		return nil, err
	}
	if err := s.transactionRepo.Create(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	s.hub.Publish(userID, realtime.Event{Collection: "transactions", Action: realtime.ActionCreated, ID: transaction.ID})
	return transaction, nil
}

func (s *transactionService) Update(ctx context.Context, userID, id uuid.UUID, input TransactionInput) (*models.Transaction, error) {
	transaction, err := s.buildTransaction(userID, input)
	if err != nil {
		return nil, err
	}
	transaction.ID = id
	if err := s.transactionRepo.Update(ctx, transaction); err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	s.hub.Publish(userID, realtime.Event{Collection: "transactions", Action: realtime.ActionUpdated, ID: id})
	return transaction, nil
}

func (s *transactionService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if err := s.transactionRepo.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return ErrTransactionNotFound
		}
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	s.hub.Publish(userID, realtime.Event{Collection: "transactions", Action: realtime.ActionDeleted, ID: id})
	return nil
}

// ExportCSV streams the account's transactions, optionally narrowed by type
// and calendar month, in the finance screen's CSV format.
func (s *transactionService) ExportCSV(ctx context.Context, userID uuid.UUID, typ models.TransactionType, month time.Month, w io.Writer) error {
	if typ != "" && !typ.Valid() {
		return fmt.Errorf("%w: unknown transaction type %q", ErrValidationFailed, typ)
	}
	transactions, err := s.transactionRepo.ListByUserID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to list transactions: %w", err)
	}
	return reports.WriteCSV(w, reports.Filter(transactions, typ, month))
}

func (s *transactionService) buildTransaction(userID uuid.UUID, input TransactionInput) (*models.Transaction, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}
	typ := models.TransactionType(input.Type)
	method := models.PaymentMethod(input.PaymentMethod)
	if !typ.Valid() {
		return nil, fmt.Errorf("%w: unknown transaction type %q", ErrValidationFailed, input.Type)
	}
	if !method.Valid() {
		return nil, fmt.Errorf("%w: unknown payment method %q", ErrValidationFailed, input.PaymentMethod)
	}

	return &models.Transaction{
		UserID:        userID,
		PlayerID:      input.PlayerID,
		Type:          typ,
		Category:      input.Category,
		Description:   input.Description,
		Amount:        input.Amount,
		Date:          input.Date,
		PaymentMethod: method,
	}, nil
}
