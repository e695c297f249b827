package record

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Record represents a saved calculation in the database. Deletion is soft:
// rows stay behind the deleted flag and are filtered out of every read.
type Record struct {
	ID       uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name     string          `gorm:"size:100"`
	Amount   decimal.Decimal `gorm:"type:numeric(30,10);not null"`
	Price    decimal.Decimal `gorm:"type:numeric(30,10);not null"`
	Total    decimal.Decimal `gorm:"type:numeric(30,10);not null"`
	Favorite bool            `gorm:"not null;default:false"`
	Deleted  bool            `gorm:"not null;default:false;index"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
