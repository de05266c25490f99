package service

import (
	"context"
	"time"

	"github.com/agrovia/farm-management/internal/core/domain"
	"github.com/agrovia/farm-management/internal/core/ports"
)

// CropService implements crop CRUD. Access rights are derived from the
// parent farm's ownership.
type CropService struct {
	crops ports.CropRepository
	farms ports.FarmRepository
}

func NewCropService(crops ports.CropRepository, farms ports.FarmRepository) *CropService {
	return &CropService{crops: crops, farms: farms}
}

// farmAccess loads the farm and enforces ownership before any crop operation.
func (s *CropService) farmAccess(ctx context.Context, session domain.Session, farmID string) (*domain.Farm, error) {
	farm, err := s.farms.FindByID(ctx, farmID)
	if err != nil {
		return nil, err
	}
	if !canAccess(session, farm) {
		return nil, domain.ErrForbidden
	}
	return farm, nil
}

func (s *CropService) CreateCrop(ctx context.Context, session domain.Session, farmID string, input ports.CropInput) (*domain.Crop, error) {
	if _, err := s.farmAccess(ctx, session, farmID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	crop := &domain.Crop{
		FarmID:       farmID,
		Name:         input.Name,
		AreaHa:       input.AreaHa,
		YieldTons:    input.YieldTons,
		PlantingDate: input.PlantingDate,
		HarvestDate:  input.HarvestDate,
		Stage:        input.Stage,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return s.crops.Create(ctx, crop)
}

func (s *CropService) ListCrops(ctx context.Context, session domain.Session, farmID string) ([]*domain.Crop, error) {
	if _, err := s.farmAccess(ctx, session, farmID); err != nil {
		return nil, err
	}
	return s.crops.ListByFarm(ctx, farmID)
}

func (s *CropService) UpdateCrop(ctx context.Context, session domain.Session, cropID string, input ports.CropInput) (*domain.Crop, error) {
	crop, err := s.crops.FindByID(ctx, cropID)
	if err != nil {
		return nil, err
	}
	if _, err := s.farmAccess(ctx, session, crop.FarmID); err != nil {
		return nil, err
	}

	if input.Name != "" {
		crop.Name = input.Name
	}
	if input.AreaHa > 0 {
		crop.AreaHa = input.AreaHa
	}
	if input.YieldTons > 0 {
		crop.YieldTons = input.YieldTons
	}
	if !input.PlantingDate.IsZero() {
		crop.PlantingDate = input.PlantingDate
	}
	if !input.HarvestDate.IsZero() {
		crop.HarvestDate = input.HarvestDate
	}
	if input.Stage != "" {
		crop.Stage = input.Stage
	}
	crop.UpdatedAt = time.Now().UTC()

	return s.crops.Update(ctx, crop)
}

func (s *CropService) DeleteCrop(ctx context.Context, session domain.Session, cropID string) error {
	crop, err := s.crops.FindByID(ctx, cropID)
	if err != nil {
		return err
	}
	if _, err := s.farmAccess(ctx, session, crop.FarmID); err != nil {
		return err
	}
	return s.crops.Delete(ctx, cropID)
}
