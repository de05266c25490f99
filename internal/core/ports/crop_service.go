package ports

import (
	"context"
	"time"

	"github.com/agrovia/farm-management/internal/core/domain"
)

// CropInput carries the payload for creating or updating a crop.
type CropInput struct {
	Name         string
	AreaHa       float64
	YieldTons    float64
	PlantingDate time.Time
	HarvestDate  time.Time
	Stage        string
}

// CropService defines use-case operations for crops. Access is derived from
// the parent farm's ownership.
type CropService interface {
	CreateCrop(ctx context.Context, session domain.Session, farmID string, input CropInput) (*domain.Crop, error)
	ListCrops(ctx context.Context, session domain.Session, farmID string) ([]*domain.Crop, error)
	UpdateCrop(ctx context.Context, session domain.Session, cropID string, input CropInput) (*domain.Crop, error)
	DeleteCrop(ctx context.Context, session domain.Session, cropID string) error
}
