// Package quote implements the cache-and-fallback policy for upstream
// prices: serve a fresh-enough stored quote, otherwise fetch and persist a
// new one, and degrade to the most recent stored quote of any age when the
// upstream is down.
package quote

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/c2ccalc/c2ccalc/pkg/config"
	"github.com/c2ccalc/c2ccalc/pkg/domain"
	"github.com/c2ccalc/c2ccalc/pkg/dto"
	"github.com/c2ccalc/c2ccalc/pkg/provider"
	quoterepo "github.com/c2ccalc/c2ccalc/pkg/repository/quote"
	"github.com/shopspring/decimal"
)

// Engine orchestrates the quote store and the upstream fetcher. It is
// stateless between calls; all state lives in the store. Concurrent calls
// for the same key may race to fetch, which is tolerated: upstream calls
// are idempotent and cheap relative to the freshness window.
type Engine struct {
	store   quoterepo.Repository
	fetcher provider.AdFetcher
	cfg     *config.QuoteCache
	logger  *slog.Logger
	now     func() time.Time
}

func NewEngine(
	store quoterepo.Repository,
	fetcher provider.AdFetcher,
	cfg *config.QuoteCache,
	logger *slog.Logger,
) *Engine {
	return &Engine{
		store:   store,
		fetcher: fetcher,
		cfg:     cfg,
		logger:  logger,
		now:     time.Now,
	}
}

// GetPrice returns a quote for the key, preferring a stored observation
// younger than the freshness window. On a miss it fetches, persists, and
// returns a fresh observation. If the fetch fails it falls back to the most
// recent stored observation regardless of age; with no history at all it
// returns domain.ErrNoQuoteAvailable.
//
// Store errors are always fatal to the call: a cache that cannot be read
// or written is a harder failure than a flaky upstream.
func (e *Engine) GetPrice(
	ctx context.Context,
	key domain.QuoteKey,
) (*dto.QuoteRead, error) {
	log := e.logger.With("context", "GetPrice", "key", key.String())

	cached, err := e.store.FindFreshest(ctx, key, e.cfg.FreshnessWindow)
	if err != nil {
		return nil, err
	}
	if cached != nil {
		log.Debug("serving cached quote",
			"price", cached.Price,
			"observed_at", cached.ObservedAt,
		)
		return cached, nil
	}

	log.Info("no fresh quote cached, fetching from upstream")
	price, fetchErr := e.fetch(ctx, key)
	if fetchErr == nil {
		return e.store.Append(ctx, key, price, e.now().UTC())
	}

	latest, err := e.store.FindLatest(ctx, key)
	if err != nil {
		return nil, err
	}
	if latest != nil {
		// Degraded mode: the record is returned as stored, ObservedAt
		// included, so callers can see how old it is.
		log.Warn("upstream fetch failed, serving stale quote",
			"error", fetchErr,
			"price", latest.Price,
			"observed_at", latest.ObservedAt,
			"age", e.now().Sub(latest.ObservedAt),
		)
		return latest, nil
	}

	log.Error("upstream fetch failed and no quote history exists", "error", fetchErr)
	return nil, fmt.Errorf("%w for %s: %w", domain.ErrNoQuoteAvailable, key, fetchErr)
}

// ForceRefresh bypasses the freshness check: it always fetches, persists on
// success, and propagates the fetch error unmodified on failure. There is
// no stale fallback here; a caller who asked for fresh data must see the
// failure.
func (e *Engine) ForceRefresh(
	ctx context.Context,
	key domain.QuoteKey,
) (*dto.QuoteRead, error) {
	log := e.logger.With("context", "ForceRefresh", "key", key.String())
	log.Info("force refreshing quote")

	price, err := e.fetch(ctx, key)
	if err != nil {
		log.Error("force refresh failed", "error", err)
		return nil, err
	}
	return e.store.Append(ctx, key, price, e.now().UTC())
}

func (e *Engine) fetch(ctx context.Context, key domain.QuoteKey) (decimal.Decimal, error) {
	ctx, cancel := context.WithTimeout(ctx, e.cfg.FetchTimeout)
	defer cancel()
	return e.fetcher.FetchBestPrice(ctx, key)
}
