package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// QuoteRead represents one persisted price observation. Observations are
// append-only; there are no update or delete DTOs.
type QuoteRead struct {
	ID         uuid.UUID       `json:"id"`
	Asset      string          `json:"asset"`
	Fiat       string          `json:"fiat"`
	TradeType  string          `json:"trade_type"`
	Price      decimal.Decimal `json:"price"`
	ObservedAt time.Time       `json:"observed_at"`
}
