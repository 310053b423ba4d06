package models

import (
	"time"

	"github.com/google/uuid"
)

type MessageStatus string

const (
	MessageSent    MessageStatus = "sent"
	MessageError   MessageStatus = "error"
	MessagePending MessageStatus = "pending"
)

// Message is a write-once history record of one outbound batch. Content
// holds the source text of the batch, not the per-recipient renderings.
type Message struct {
	ID           uuid.UUID     `json:"id"`
	UserID       uuid.UUID     `json:"user_id"`
	PlayerIDs    []uuid.UUID   `json:"player_ids"`
	TemplateName string        `json:"template_name"`
	Content      string        `json:"content"`
	SentAt       time.Time     `json:"sent_at"`
	Status       MessageStatus `json:"status"`
}
