package ports

import (
	"context"

	"github.com/agrovia/farm-management/internal/core/domain"
)

// FarmHealthRepository defines persistence operations for farm health
// records. A farm has at most one health document.
type FarmHealthRepository interface {
	Upsert(ctx context.Context, health *domain.FarmHealth) (*domain.FarmHealth, error)
	FindByFarm(ctx context.Context, farmID string) (*domain.FarmHealth, error)
	DeleteByFarm(ctx context.Context, farmID string) error
}
