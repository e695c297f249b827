package quote

import (
	"context"
	"time"

	"github.com/c2ccalc/c2ccalc/pkg/domain"
	"github.com/c2ccalc/c2ccalc/pkg/dto"
	"github.com/shopspring/decimal"
)

// Repository is the durable append-only log of observed quotes. Entries
// are never updated or deleted; only the most recent one per key matters
// to readers.
//
// Implementations must surface storage failures as errors wrapping
// domain.ErrQuoteStorageUnavailable so the engine can keep them distinct
// from upstream failures.
type Repository interface {
	// FindFreshest returns the most recent observation for the key with
	// ObservedAt >= now - notOlderThan, or nil if no such entry exists.
	FindFreshest(ctx context.Context, key domain.QuoteKey, notOlderThan time.Duration) (*dto.QuoteRead, error)

	// FindLatest returns the most recent observation for the key
	// regardless of age, or nil if the key has never been observed.
	FindLatest(ctx context.Context, key domain.QuoteKey) (*dto.QuoteRead, error)

	// Append durably stores a new observation and returns it. It must not
	// overwrite or delete prior entries, and must be atomic per call.
	Append(ctx context.Context, key domain.QuoteKey, price decimal.Decimal, observedAt time.Time) (*dto.QuoteRead, error)
}
