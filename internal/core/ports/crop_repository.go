package ports

import (
	"context"

	"github.com/agrovia/farm-management/internal/core/domain"
)

// CropRepository defines persistence operations for crops.
type CropRepository interface {
	Create(ctx context.Context, crop *domain.Crop) (*domain.Crop, error)
	FindByID(ctx context.Context, id string) (*domain.Crop, error)
	ListByFarm(ctx context.Context, farmID string) ([]*domain.Crop, error)
	Update(ctx context.Context, crop *domain.Crop) (*domain.Crop, error)
	Delete(ctx context.Context, id string) error
	// DeleteByFarm removes every crop belonging to a farm. Used when the
	// parent farm is deleted.
	DeleteByFarm(ctx context.Context, farmID string) error
	Count(ctx context.Context) (int64, error)
}
