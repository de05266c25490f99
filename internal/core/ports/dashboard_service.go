package ports

import (
	"context"

	"github.com/agrovia/farm-management/internal/core/domain"
)

// DashboardInput carries the writable portion of a farm dashboard.
type DashboardInput struct {
	Charts        domain.ChartData
	Weather       domain.WeatherSnapshot
	Soil          domain.SoilStatus
	UpcomingTasks []string
	ImageURL      string
}

// AdminOverview is the aggregate view behind the admin dashboard root.
type AdminOverview struct {
	Users  int64 `json:"users"`
	Farms  int64 `json:"farms"`
	Crops  int64 `json:"crops"`
	Events int64 `json:"events"`
}

// ClientOverview is the view behind the client dashboard root: the client's
// farms together with their dashboards.
type ClientOverview struct {
	Farms      []*domain.Farm      `json:"farms"`
	Dashboards []*domain.Dashboard `json:"dashboards"`
}

// DashboardService serves per-farm dashboards and the role dashboard roots.
type DashboardService interface {
	GetFarmDashboard(ctx context.Context, session domain.Session, farmID string) (*domain.Dashboard, error)
	PutFarmDashboard(ctx context.Context, session domain.Session, farmID string, input DashboardInput) (*domain.Dashboard, error)
	AdminOverview(ctx context.Context) (*AdminOverview, error)
	ClientOverview(ctx context.Context, session domain.Session) (*ClientOverview, error)
}
