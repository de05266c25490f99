package service

import (
	"context"
	"time"

	"github.com/agrovia/farm-management/internal/core/domain"
	"github.com/agrovia/farm-management/internal/core/ports"
)

// FarmHealthService serves per-farm health records. Owners and admins can
// read; only admins can write.
type FarmHealthService struct {
	health ports.FarmHealthRepository
	farms  ports.FarmRepository
}

func NewFarmHealthService(health ports.FarmHealthRepository, farms ports.FarmRepository) *FarmHealthService {
	return &FarmHealthService{health: health, farms: farms}
}

func (s *FarmHealthService) GetFarmHealth(ctx context.Context, session domain.Session, farmID string) (*domain.FarmHealth, error) {
	farm, err := s.farms.FindByID(ctx, farmID)
	if err != nil {
		return nil, err
	}
	if !canAccess(session, farm) {
		return nil, domain.ErrForbidden
	}
	return s.health.FindByFarm(ctx, farmID)
}

func (s *FarmHealthService) PutFarmHealth(ctx context.Context, session domain.Session, farmID string, input ports.FarmHealthInput) (*domain.FarmHealth, error) {
	if session.Role != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	if !domain.ValidRiskLevel(input.DiseaseRisk.Level) {
		return nil, domain.ErrInvalidInput
	}
	if _, err := s.farms.FindByID(ctx, farmID); err != nil {
		return nil, err
	}

	health := &domain.FarmHealth{
		FarmID:         farmID,
		PestPressure:   input.PestPressure,
		NutrientStatus: input.NutrientStatus,
		DiseaseRisk:    input.DiseaseRisk,
		UpdatedAt:      time.Now().UTC(),
	}
	return s.health.Upsert(ctx, health)
}
