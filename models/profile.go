package models

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the singleton per-account record, created automatically at
// signup. MonthlyFee is the default fee proposed for new players.
type Profile struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	DisplayName *string   `json:"display_name,omitempty"`
	AvatarURL   *string   `json:"avatar_url,omitempty"`
	TeamName    string    `json:"team_name"`
	MonthlyFee  float64   `json:"monthly_fee"`
	DueDay      int       `json:"due_day"`
	Timezone    string    `json:"timezone"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

const (
	DefaultMonthlyFee = 200
	DefaultDueDay     = 15
	DefaultTimezone   = "America/Sao_Paulo"
	DefaultTeamName   = "Meu Time"
)
