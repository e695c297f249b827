package domain_test

import (
	"testing"

	"github.com/c2ccalc/c2ccalc/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTradeDirection(t *testing.T) {
	tests := []struct {
		in   string
		want domain.TradeDirection
	}{
		{"BUY", domain.DirectionBuy},
		{"buy", domain.DirectionBuy},
		{" Sell ", domain.DirectionSell},
		{"SELL", domain.DirectionSell},
	}
	for _, tt := range tests {
		got, err := domain.ParseTradeDirection(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestParseTradeDirectionRejectsUnknown(t *testing.T) {
	for _, in := range []string{"", "HOLD", "SEL"} {
		_, err := domain.ParseTradeDirection(in)
		assert.ErrorIs(t, err, domain.ErrInvalidTradeDirection, in)
	}
}

func TestNewQuoteKeyNormalizes(t *testing.T) {
	key := domain.NewQuoteKey(" usdt ", "cny", domain.DirectionSell)
	assert.Equal(t, "USDT", key.Asset)
	assert.Equal(t, "CNY", key.Fiat)
	assert.Equal(t, "USDT/CNY SELL", key.String())
}
