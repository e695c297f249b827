package quote

import (
	"time"

	"github.com/shopspring/decimal"
)

// PriceResponse is the body of both price endpoints. The price serializes
// as a decimal string; a "0" price means no liquidity, not a valid quote.
type PriceResponse struct {
	Price     decimal.Decimal `json:"price"`
	UpdatedAt time.Time       `json:"updatedAt"`
}
