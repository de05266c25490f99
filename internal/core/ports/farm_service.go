package ports

import (
	"context"

	"github.com/agrovia/farm-management/internal/core/domain"
)

// CreateFarmInput carries the payload for registering a farm.
type CreateFarmInput struct {
	Name     string
	Location string
	SizeHa   float64
}

// UpdateFarmInput carries a farm update. Empty/zero fields are left unchanged.
type UpdateFarmInput struct {
	FarmID   string
	Name     string
	Location string
	SizeHa   float64
}

// FarmService defines use-case operations for farms. Every operation takes
// the requesting session so ownership can be enforced server-side.
type FarmService interface {
	CreateFarm(ctx context.Context, session domain.Session, input CreateFarmInput) (*domain.Farm, error)
	GetFarm(ctx context.Context, session domain.Session, farmID string) (*domain.Farm, error)
	ListFarms(ctx context.Context, session domain.Session) ([]*domain.Farm, error)
	UpdateFarm(ctx context.Context, session domain.Session, input UpdateFarmInput) (*domain.Farm, error)
	DeleteFarm(ctx context.Context, session domain.Session, farmID string) error
}
