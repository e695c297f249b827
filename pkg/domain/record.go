package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Record is one saved calculation: an amount converted at a quoted price.
// The total is always computed here, in decimal, rather than accepted from
// the client.
type Record struct {
	ID       uuid.UUID
	UserID   uuid.UUID
	Name     string
	Amount   decimal.Decimal
	Price    decimal.Decimal
	Total    decimal.Decimal
	Favorite bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

var (
	ErrRecordAmountNotPositive = errors.New("record amount must be positive")
	ErrRecordPriceNegative     = errors.New("record price must not be negative")
)

// NewRecord validates the inputs and computes the total. A zero price is
// accepted: it is the upstream no-liquidity sentinel and yields a zero
// total.
func NewRecord(
	userID uuid.UUID,
	name string,
	amount, price decimal.Decimal,
) (*Record, error) {
	if !amount.IsPositive() {
		return nil, ErrRecordAmountNotPositive
	}
	if price.IsNegative() {
		return nil, ErrRecordPriceNegative
	}
	return &Record{
		ID:     uuid.New(),
		UserID: userID,
		Name:   name,
		Amount: amount,
		Price:  price,
		Total:  amount.Mul(price),
	}, nil
}
