package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/agrovia/farm-management/internal/core/domain"
	"github.com/agrovia/farm-management/internal/core/ports"
)

// FarmService implements farm CRUD with server-side ownership enforcement.
type FarmService struct {
	farms      ports.FarmRepository
	crops      ports.CropRepository
	dashboards ports.DashboardRepository
	health     ports.FarmHealthRepository
	logger     zerolog.Logger
}

func NewFarmService(
	farms ports.FarmRepository,
	crops ports.CropRepository,
	dashboards ports.DashboardRepository,
	health ports.FarmHealthRepository,
	logger zerolog.Logger,
) *FarmService {
	return &FarmService{farms: farms, crops: crops, dashboards: dashboards, health: health, logger: logger}
}

// canAccess reports whether the session may touch the farm: admins always,
// clients only when they own it.
func canAccess(session domain.Session, farm *domain.Farm) bool {
	return session.Role == domain.RoleAdmin || farm.OwnerID == session.UserID
}

func (s *FarmService) CreateFarm(ctx context.Context, session domain.Session, input ports.CreateFarmInput) (*domain.Farm, error) {
	now := time.Now().UTC()
	farm := &domain.Farm{
		Name:      input.Name,
		Location:  input.Location,
		SizeHa:    input.SizeHa,
		OwnerID:   session.UserID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.farms.Create(ctx, farm)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("farm_id", created.ID).Str("owner_id", session.UserID).Msg("farm created")
	return created, nil
}

func (s *FarmService) GetFarm(ctx context.Context, session domain.Session, farmID string) (*domain.Farm, error) {
	farm, err := s.farms.FindByID(ctx, farmID)
	if err != nil {
		return nil, err
	}
	if !canAccess(session, farm) {
		return nil, domain.ErrForbidden
	}
	return farm, nil
}

// ListFarms returns every farm for admins and only owned farms for clients.
func (s *FarmService) ListFarms(ctx context.Context, session domain.Session) ([]*domain.Farm, error) {
	ownerID := session.UserID
	if session.Role == domain.RoleAdmin {
		ownerID = ""
	}
	return s.farms.List(ctx, ownerID)
}

func (s *FarmService) UpdateFarm(ctx context.Context, session domain.Session, input ports.UpdateFarmInput) (*domain.Farm, error) {
	farm, err := s.farms.FindByID(ctx, input.FarmID)
	if err != nil {
		return nil, err
	}
	if !canAccess(session, farm) {
		return nil, domain.ErrForbidden
	}

	if input.Name != "" {
		farm.Name = input.Name
	}
	if input.Location != "" {
		farm.Location = input.Location
	}
	if input.SizeHa > 0 {
		farm.SizeHa = input.SizeHa
	}
	farm.UpdatedAt = time.Now().UTC()

	return s.farms.Update(ctx, farm)
}

// DeleteFarm removes the farm and its dependent documents. Dependent cleanup
// is best-effort: a failed crop or dashboard delete leaves orphans behind but
// never resurrects the farm.
func (s *FarmService) DeleteFarm(ctx context.Context, session domain.Session, farmID string) error {
	farm, err := s.farms.FindByID(ctx, farmID)
	if err != nil {
		return err
	}
	if !canAccess(session, farm) {
		return domain.ErrForbidden
	}

	if err := s.farms.Delete(ctx, farmID); err != nil {
		return err
	}

	if err := s.crops.DeleteByFarm(ctx, farmID); err != nil {
		s.logger.Warn().Err(err).Str("farm_id", farmID).Msg("failed to delete farm crops")
	}
	if err := s.dashboards.DeleteByFarm(ctx, farmID); err != nil {
		s.logger.Warn().Err(err).Str("farm_id", farmID).Msg("failed to delete farm dashboard")
	}
	if err := s.health.DeleteByFarm(ctx, farmID); err != nil {
		s.logger.Warn().Err(err).Str("farm_id", farmID).Msg("failed to delete farm health record")
	}

	s.logger.Info().Str("farm_id", farmID).Str("deleted_by", session.UserID).Msg("farm deleted")
	return nil
}
