package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TradeDirection is the direction the end user is trading. SELL means the
// user sells the asset, so the best quote is the highest price a
// counterparty advertises.
type TradeDirection string

const (
	DirectionBuy  TradeDirection = "BUY"
	DirectionSell TradeDirection = "SELL"
)

// ParseTradeDirection accepts BUY or SELL, case-insensitively.
func ParseTradeDirection(s string) (TradeDirection, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(DirectionBuy):
		return DirectionBuy, nil
	case string(DirectionSell):
		return DirectionSell, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidTradeDirection, s)
	}
}

// QuoteKey identifies a quoted market: one crypto asset against one fiat
// currency in one trade direction. Immutable; used as the lookup and
// grouping key everywhere.
type QuoteKey struct {
	Asset     string
	Fiat      string
	Direction TradeDirection
}

func NewQuoteKey(asset, fiat string, direction TradeDirection) QuoteKey {
	return QuoteKey{
		Asset:     strings.ToUpper(strings.TrimSpace(asset)),
		Fiat:      strings.ToUpper(strings.TrimSpace(fiat)),
		Direction: direction,
	}
}

func (k QuoteKey) String() string {
	return fmt.Sprintf("%s/%s %s", k.Asset, k.Fiat, k.Direction)
}

// Quote is one observed best price for a key at a point in time. A zero
// price is the no-liquidity sentinel, not a valid quote.
type Quote struct {
	Key        QuoteKey
	Price      decimal.Decimal
	ObservedAt time.Time
}
