package record

import (
	"context"
	"errors"

	"github.com/c2ccalc/c2ccalc/pkg/dto"
	recordrepo "github.com/c2ccalc/c2ccalc/pkg/repository/record"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

func New(db *gorm.DB) recordrepo.Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, create *dto.RecordCreate) error {
	record := &Record{
		ID:     create.ID,
		UserID: create.UserID,
		Name:   create.Name,
		Amount: create.Amount,
		Price:  create.Price,
		Total:  create.Total,
	}
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *repository) Get(ctx context.Context, id uuid.UUID) (*dto.RecordRead, error) {
	var record Record
	err := r.db.WithContext(ctx).
		Where("id = ? AND deleted = ?", id, false).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return mapModelToDTO(&record), nil
}

func (r *repository) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
	filter recordrepo.ListFilter,
) ([]*dto.RecordRead, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ? AND deleted = ?", userID, false)
	if filter.FavoritesOnly {
		query = query.Where("favorite = ?", true)
	}

	var records []Record
	if err := query.Order("created_at DESC").Find(&records).Error; err != nil {
		return nil, err
	}

	result := make([]*dto.RecordRead, 0, len(records))
	for i := range records {
		result = append(result, mapModelToDTO(&records[i]))
	}
	return result, nil
}

func (r *repository) Update(
	ctx context.Context,
	id uuid.UUID,
	update *dto.RecordUpdate,
) error {
	updates := make(map[string]interface{})
	if update.Name != nil {
		updates["name"] = *update.Name
	}
	if update.Favorite != nil {
		updates["favorite"] = *update.Favorite
	}
	if len(updates) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Model(&Record{}).
		Where("id = ? AND deleted = ?", id, false).
		Updates(updates).Error
}

func (r *repository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&Record{}).
		Where("id = ?", id).
		Update("deleted", true).Error
}

func (r *repository) SoftDeleteAllByUser(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&Record{}).
		Where("user_id = ? AND deleted = ?", userID, false).
		Update("deleted", true).Error
}

func mapModelToDTO(record *Record) *dto.RecordRead {
	return &dto.RecordRead{
		ID:        record.ID,
		UserID:    record.UserID,
		Name:      record.Name,
		Amount:    record.Amount,
		Price:     record.Price,
		Total:     record.Total,
		Favorite:  record.Favorite,
		CreatedAt: record.CreatedAt,
		UpdatedAt: record.UpdatedAt,
	}
}

var _ recordrepo.Repository = (*repository)(nil)
