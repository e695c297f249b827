// Package record provides business logic for calculation records: create,
// list, rename, favorite toggling, and soft deletion, always scoped to the
// owning user.
package record

import (
	"context"
	"log/slog"

	"github.com/c2ccalc/c2ccalc/pkg/domain"
	"github.com/c2ccalc/c2ccalc/pkg/dto"
	"github.com/c2ccalc/c2ccalc/pkg/repository"
	recordrepo "github.com/c2ccalc/c2ccalc/pkg/repository/record"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

func New(
	uow repository.UnitOfWork,
	logger *slog.Logger,
) *Service {
	return &Service{uow: uow, logger: logger}
}

// CreateRecord persists a new calculation for the user. The total is
// computed by the domain in decimal; client-supplied totals are ignored.
func (s *Service) CreateRecord(
	ctx context.Context,
	userID uuid.UUID,
	name string,
	amount, price decimal.Decimal,
) (r *dto.RecordRead, err error) {
	log := s.logger.With("context", "CreateRecord", "user_id", userID)
	var record *domain.Record
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.RecordRepository()
		if err != nil {
			return err
		}
		record, err = domain.NewRecord(userID, name, amount, price)
		if err != nil {
			return err
		}
		return repo.Create(ctx, &dto.RecordCreate{
			ID:     record.ID,
			UserID: record.UserID,
			Name:   record.Name,
			Amount: record.Amount,
			Price:  record.Price,
			Total:  record.Total,
		})
	})
	if err != nil {
		log.Warn("record creation failed", "error", err)
		return nil, err
	}
	log.Info("record created", "record_id", record.ID, "total", record.Total)
	return &dto.RecordRead{
		ID:     record.ID,
		UserID: record.UserID,
		Name:   record.Name,
		Amount: record.Amount,
		Price:  record.Price,
		Total:  record.Total,
	}, nil
}

// ListRecords returns the user's records, newest first.
func (s *Service) ListRecords(
	ctx context.Context,
	userID uuid.UUID,
	favoritesOnly bool,
) (records []*dto.RecordRead, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.RecordRepository()
		if err != nil {
			return err
		}
		records, err = repo.ListByUser(ctx, userID, recordrepo.ListFilter{
			FavoritesOnly: favoritesOnly,
		})
		return err
	})
	if err != nil {
		records = nil
	}
	return
}

// ToggleFavorite flips the favorite flag of the user's record. Acting on a
// missing record or another user's record returns ErrRecordNotFound; the
// two cases are indistinguishable on purpose.
func (s *Service) ToggleFavorite(
	ctx context.Context,
	userID, recordID uuid.UUID,
) (r *dto.RecordRead, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.RecordRepository()
		if err != nil {
			return err
		}
		record, err := s.getOwned(ctx, repo, userID, recordID)
		if err != nil {
			return err
		}
		favorite := !record.Favorite
		if err := repo.Update(ctx, recordID, &dto.RecordUpdate{Favorite: &favorite}); err != nil {
			return err
		}
		record.Favorite = favorite
		r = record
		return nil
	})
	if err != nil {
		r = nil
	}
	return
}

// RenameRecord changes the record's name.
func (s *Service) RenameRecord(
	ctx context.Context,
	userID, recordID uuid.UUID,
	name string,
) (r *dto.RecordRead, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.RecordRepository()
		if err != nil {
			return err
		}
		record, err := s.getOwned(ctx, repo, userID, recordID)
		if err != nil {
			return err
		}
		if err := repo.Update(ctx, recordID, &dto.RecordUpdate{Name: &name}); err != nil {
			return err
		}
		record.Name = name
		r = record
		return nil
	})
	if err != nil {
		r = nil
	}
	return
}

// DeleteRecord soft-deletes the user's record.
func (s *Service) DeleteRecord(
	ctx context.Context,
	userID, recordID uuid.UUID,
) error {
	return s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.RecordRepository()
		if err != nil {
			return err
		}
		if _, err := s.getOwned(ctx, repo, userID, recordID); err != nil {
			return err
		}
		return repo.SoftDelete(ctx, recordID)
	})
}

// ClearRecords soft-deletes all of the user's records.
func (s *Service) ClearRecords(
	ctx context.Context,
	userID uuid.UUID,
) error {
	log := s.logger.With("context", "ClearRecords", "user_id", userID)
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.RecordRepository()
		if err != nil {
			return err
		}
		return repo.SoftDeleteAllByUser(ctx, userID)
	})
	if err != nil {
		return err
	}
	log.Info("records cleared")
	return nil
}

func (s *Service) getOwned(
	ctx context.Context,
	repo recordrepo.Repository,
	userID, recordID uuid.UUID,
) (*dto.RecordRead, error) {
	record, err := repo.Get(ctx, recordID)
	if err != nil {
		return nil, err
	}
	if record == nil || record.UserID != userID {
		return nil, domain.ErrRecordNotFound
	}
	return record, nil
}
