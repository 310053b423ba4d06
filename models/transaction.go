package models

import (
	"time"

	"github.com/google/uuid"
)

type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

func (t TransactionType) Valid() bool {
	return t == TransactionIncome || t == TransactionExpense
}

type PaymentMethod string

const (
	MethodCash     PaymentMethod = "cash"
	MethodPix      PaymentMethod = "pix"
	MethodCard     PaymentMethod = "card"
	MethodTransfer PaymentMethod = "transfer"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case MethodCash, MethodPix, MethodCard, MethodTransfer:
		return true
	}
	return false
}

// Transaction has a lifecycle independent from Player: PlayerID is a weak
// reference and is left dangling when the player is deleted.
type Transaction struct {
	ID            uuid.UUID       `json:"id"`
	UserID        uuid.UUID       `json:"user_id"`
	PlayerID      *uuid.UUID      `json:"player_id,omitempty"`
	Type          TransactionType `json:"type"`
	Category      string          `json:"category"`
	Description   string          `json:"description"`
	Amount        float64         `json:"amount"`
	Date          time.Time       `json:"date"`
	PaymentMethod PaymentMethod   `json:"payment_method"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
