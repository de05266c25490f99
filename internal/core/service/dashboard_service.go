package service

import (
	"context"
	"time"

	"github.com/agrovia/farm-management/internal/core/domain"
	"github.com/agrovia/farm-management/internal/core/ports"
)

// DashboardService serves per-farm dashboards and the role dashboard roots.
type DashboardService struct {
	dashboards ports.DashboardRepository
	farms      ports.FarmRepository
	users      ports.UserRepository
	crops      ports.CropRepository
	events     ports.CalendarRepository
}

func NewDashboardService(
	dashboards ports.DashboardRepository,
	farms ports.FarmRepository,
	users ports.UserRepository,
	crops ports.CropRepository,
	events ports.CalendarRepository,
) *DashboardService {
	return &DashboardService{dashboards: dashboards, farms: farms, users: users, crops: crops, events: events}
}

func (s *DashboardService) GetFarmDashboard(ctx context.Context, session domain.Session, farmID string) (*domain.Dashboard, error) {
	farm, err := s.farms.FindByID(ctx, farmID)
	if err != nil {
		return nil, err
	}
	if !canAccess(session, farm) {
		return nil, domain.ErrForbidden
	}
	return s.dashboards.FindByFarm(ctx, farmID)
}

func (s *DashboardService) PutFarmDashboard(ctx context.Context, session domain.Session, farmID string, input ports.DashboardInput) (*domain.Dashboard, error) {
	farm, err := s.farms.FindByID(ctx, farmID)
	if err != nil {
		return nil, err
	}
	if !canAccess(session, farm) {
		return nil, domain.ErrForbidden
	}

	now := time.Now().UTC()
	dashboard := &domain.Dashboard{
		OwnerID:       farm.OwnerID,
		FarmID:        farmID,
		Charts:        input.Charts,
		Weather:       input.Weather,
		Soil:          input.Soil,
		UpcomingTasks: input.UpcomingTasks,
		ImageURL:      input.ImageURL,
		UpdatedAt:     now,
	}
	return s.dashboards.Upsert(ctx, dashboard)
}

// AdminOverview aggregates the counters shown on the admin dashboard root.
func (s *DashboardService) AdminOverview(ctx context.Context) (*ports.AdminOverview, error) {
	users, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}
	farms, err := s.farms.Count(ctx)
	if err != nil {
		return nil, err
	}
	crops, err := s.crops.Count(ctx)
	if err != nil {
		return nil, err
	}
	events, err := s.events.Count(ctx)
	if err != nil {
		return nil, err
	}
	return &ports.AdminOverview{Users: users, Farms: farms, Crops: crops, Events: events}, nil
}

// ClientOverview returns the session owner's farms with their dashboards.
func (s *DashboardService) ClientOverview(ctx context.Context, session domain.Session) (*ports.ClientOverview, error) {
	farms, err := s.farms.List(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	dashboards, err := s.dashboards.ListByOwner(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	return &ports.ClientOverview{Farms: farms, Dashboards: dashboards}, nil
}
