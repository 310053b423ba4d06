package models

import (
	"time"

	"github.com/google/uuid"
)

type PlayerStatus string

const (
	PlayerActive    PlayerStatus = "active"
	PlayerInactive  PlayerStatus = "inactive"
	PlayerSuspended PlayerStatus = "suspended"
)

func (s PlayerStatus) Valid() bool {
	switch s {
	case PlayerActive, PlayerInactive, PlayerSuspended:
		return true
	}
	return false
}

type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "paid"
	PaymentPending PaymentStatus = "pending"
	PaymentLate    PaymentStatus = "late"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPaid, PaymentPending, PaymentLate:
		return true
	}
	return false
}

// Player is one roster entry. status and payment_status are independent
// axes: an inactive player can still be marked paid.
type Player struct {
	ID              uuid.UUID     `json:"id"`
	UserID          uuid.UUID     `json:"user_id"`
	Name            string        `json:"name"`
	Phone           *string       `json:"phone,omitempty"`
	Email           *string       `json:"email,omitempty"`
	Position        *string       `json:"position,omitempty"`
	Status          PlayerStatus  `json:"status"`
	PaymentStatus   PaymentStatus `json:"payment_status"`
	MonthlyFee      float64       `json:"monthly_fee"`
	LastPaymentDate *time.Time    `json:"last_payment_date,omitempty"`
	DueDate         *time.Time    `json:"due_date,omitempty"`
	Notes           *string       `json:"notes,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}
