package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RecordCreate represents the data needed to persist a new calculation
// record. Total is computed by the domain, not supplied by callers.
type RecordCreate struct {
	ID     uuid.UUID       `json:"id"`
	UserID uuid.UUID       `json:"user_id"`
	Name   string          `json:"name,omitempty"`
	Amount decimal.Decimal `json:"amount"`
	Price  decimal.Decimal `json:"price"`
	Total  decimal.Decimal `json:"total"`
}

// RecordUpdate represents the fields of a record a user may change.
type RecordUpdate struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,max=100"`
	Favorite *bool   `json:"favorite,omitempty"`
}

// RecordRead represents a read-optimized view of a calculation record.
type RecordRead struct {
	ID        uuid.UUID       `json:"id"`
	UserID    uuid.UUID       `json:"user_id"`
	Name      string          `json:"name,omitempty"`
	Amount    decimal.Decimal `json:"amount"`
	Price     decimal.Decimal `json:"price"`
	Total     decimal.Decimal `json:"total"`
	Favorite  bool            `json:"favorite"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
