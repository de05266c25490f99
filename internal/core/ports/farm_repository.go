package ports

import (
	"context"

	"github.com/agrovia/farm-management/internal/core/domain"
)

// FarmRepository defines persistence operations for farms.
type FarmRepository interface {
	Create(ctx context.Context, farm *domain.Farm) (*domain.Farm, error)
	FindByID(ctx context.Context, id string) (*domain.Farm, error)
	// List returns farms, scoped to ownerID when non-empty (client role);
	// empty ownerID returns every farm (admin role).
	List(ctx context.Context, ownerID string) ([]*domain.Farm, error)
	Update(ctx context.Context, farm *domain.Farm) (*domain.Farm, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}
