package record

import (
	"context"

	"github.com/c2ccalc/c2ccalc/pkg/dto"
	"github.com/google/uuid"
)

// ListFilter narrows ListByUser results.
type ListFilter struct {
	FavoritesOnly bool
}

// Repository defines the interface for calculation record data access.
// Deletion is always soft: rows are flagged, never removed.
type Repository interface {
	// Create inserts a new record from a DTO.
	Create(ctx context.Context, create *dto.RecordCreate) error

	// Get retrieves a record by its ID, or nil if it does not exist or
	// has been soft-deleted.
	Get(ctx context.Context, id uuid.UUID) (*dto.RecordRead, error)

	// ListByUser retrieves the user's non-deleted records, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID, filter ListFilter) ([]*dto.RecordRead, error)

	// Update changes the record's name and/or favorite flag.
	Update(ctx context.Context, id uuid.UUID, update *dto.RecordUpdate) error

	// SoftDelete flags a record as deleted.
	SoftDelete(ctx context.Context, id uuid.UUID) error

	// SoftDeleteAllByUser flags all of the user's records as deleted.
	SoftDeleteAllByUser(ctx context.Context, userID uuid.UUID) error
}
