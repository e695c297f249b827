package quote

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Quote represents one observed price in the append-only quote log. Rows
// are only ever inserted; there are no update or delete paths, and
// retention is an external concern.
type Quote struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Asset      string          `gorm:"size:16;not null;index:idx_quotes_key,priority:1"`
	Fiat       string          `gorm:"size:16;not null;index:idx_quotes_key,priority:2"`
	TradeType  string          `gorm:"size:8;not null;index:idx_quotes_key,priority:3"`
	Price      decimal.Decimal `gorm:"type:numeric(30,10);not null"`
	ObservedAt time.Time       `gorm:"not null;index:idx_quotes_key,priority:4,sort:desc"`

	CreatedAt time.Time
}

func (Quote) TableName() string { return "quotes" }
