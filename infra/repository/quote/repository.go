package quote

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/c2ccalc/c2ccalc/pkg/domain"
	"github.com/c2ccalc/c2ccalc/pkg/dto"
	quoterepo "github.com/c2ccalc/c2ccalc/pkg/repository/quote"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

func New(db *gorm.DB) quoterepo.Repository {
	return &repository{db: db}
}

func (r *repository) FindFreshest(
	ctx context.Context,
	key domain.QuoteKey,
	notOlderThan time.Duration,
) (*dto.QuoteRead, error) {
	cutoff := time.Now().Add(-notOlderThan)

	var quote Quote
	err := r.db.WithContext(ctx).
		Where(
			"asset = ? AND fiat = ? AND trade_type = ? AND observed_at >= ?",
			key.Asset, key.Fiat, string(key.Direction), cutoff,
		).
		Order("observed_at DESC").
		First(&quote).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, storageErr(err)
	}
	return mapModelToDTO(&quote), nil
}

func (r *repository) FindLatest(
	ctx context.Context,
	key domain.QuoteKey,
) (*dto.QuoteRead, error) {
	var quote Quote
	err := r.db.WithContext(ctx).
		Where(
			"asset = ? AND fiat = ? AND trade_type = ?",
			key.Asset, key.Fiat, string(key.Direction),
		).
		Order("observed_at DESC").
		First(&quote).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, storageErr(err)
	}
	return mapModelToDTO(&quote), nil
}

func (r *repository) Append(
	ctx context.Context,
	key domain.QuoteKey,
	price decimal.Decimal,
	observedAt time.Time,
) (*dto.QuoteRead, error) {
	quote := &Quote{
		ID:         uuid.New(),
		Asset:      key.Asset,
		Fiat:       key.Fiat,
		TradeType:  string(key.Direction),
		Price:      price,
		ObservedAt: observedAt,
	}
	if err := r.db.WithContext(ctx).Create(quote).Error; err != nil {
		return nil, storageErr(err)
	}
	return mapModelToDTO(quote), nil
}

func storageErr(err error) error {
	return fmt.Errorf("%w: %v", domain.ErrQuoteStorageUnavailable, err)
}

func mapModelToDTO(quote *Quote) *dto.QuoteRead {
	return &dto.QuoteRead{
		ID:         quote.ID,
		Asset:      quote.Asset,
		Fiat:       quote.Fiat,
		TradeType:  quote.TradeType,
		Price:      quote.Price,
		ObservedAt: quote.ObservedAt,
	}
}

var _ quoterepo.Repository = (*repository)(nil)
