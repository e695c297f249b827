// Package provider defines the upstream contracts consumed by the quote
// cache engine. Implementations live under infra/provider.
package provider

import (
	"context"

	"github.com/c2ccalc/c2ccalc/pkg/domain"
	"github.com/shopspring/decimal"
)

// AdFetcher performs one network call to the upstream advertisement search
// endpoint and reduces the returned page to a single best price.
//
// A zero result with a nil error means the page was empty after filtering:
// no liquidity, not a valid quote. Failed calls, timeouts, and malformed or
// non-success envelopes are errors wrapping domain.ErrUpstreamUnavailable.
// Implementations do not retry; retry policy belongs to the caller.
type AdFetcher interface {
	FetchBestPrice(ctx context.Context, key domain.QuoteKey) (decimal.Decimal, error)
}
