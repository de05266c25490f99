package domain

import (
	"errors"
	"time"
)

var ErrCropNotFound = errors.New("crop not found")

// CropStage is the free-form growth stage label shown on crop tables
// (e.g. "seeding", "vegetative", "flowering", "ready").
type CropStage = string

// Crop belongs to exactly one farm.
type Crop struct {
	ID           string    `json:"id"`
	FarmID       string    `json:"farm_id"`
	Name         string    `json:"name"`
	AreaHa       float64   `json:"area_ha"`
	YieldTons    float64   `json:"yield_tons"`
	PlantingDate time.Time `json:"planting_date"`
	HarvestDate  time.Time `json:"harvest_date"`
	Stage        CropStage `json:"stage"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
