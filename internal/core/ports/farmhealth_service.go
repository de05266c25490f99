package ports

import (
	"context"

	"github.com/agrovia/farm-management/internal/core/domain"
)

// FarmHealthInput carries the writable portion of a farm health record.
type FarmHealthInput struct {
	PestPressure   domain.PestPressure
	NutrientStatus domain.NutrientStatus
	DiseaseRisk    domain.DiseaseRisk
}

// FarmHealthService serves per-farm health records. Reads follow farm
// ownership; writes are admin-only.
type FarmHealthService interface {
	GetFarmHealth(ctx context.Context, session domain.Session, farmID string) (*domain.FarmHealth, error)
	PutFarmHealth(ctx context.Context, session domain.Session, farmID string, input FarmHealthInput) (*domain.FarmHealth, error)
}
