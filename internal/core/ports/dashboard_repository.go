package ports

import (
	"context"

	"github.com/agrovia/farm-management/internal/core/domain"
)

// DashboardRepository defines persistence operations for farm dashboards.
// A farm has at most one dashboard document.
type DashboardRepository interface {
	// Upsert creates the dashboard for the farm or replaces its content.
	Upsert(ctx context.Context, dashboard *domain.Dashboard) (*domain.Dashboard, error)
	FindByFarm(ctx context.Context, farmID string) (*domain.Dashboard, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Dashboard, error)
	DeleteByFarm(ctx context.Context, farmID string) error
}
