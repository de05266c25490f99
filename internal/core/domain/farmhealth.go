package domain

import (
	"errors"
	"time"
)

var ErrHealthNotFound = errors.New("farm health record not found")

// RiskLevel grades disease risk on a farm.
type RiskLevel string

const (
	RiskLow      RiskLevel = "Low"
	RiskModerate RiskLevel = "Moderate"
	RiskHigh     RiskLevel = "High"
)

// ValidRiskLevel reports whether r is a known risk grade.
func ValidRiskLevel(r RiskLevel) bool {
	return r == RiskLow || r == RiskModerate || r == RiskHigh
}

// MeterReading is a named level on a 0 to 100 scale.
type MeterReading struct {
	Name  string  `json:"name" bson:"name"`
	Level float64 `json:"level" bson:"level"`
}

// PestPressure summarises pest activity: an overall gauge value plus the
// individual pest readings behind it.
type PestPressure struct {
	GaugeValue float64        `json:"gauge_value" bson:"gauge_value"`
	Pests      []MeterReading `json:"pests" bson:"pests"`
}

// NutrientStatus summarises soil nutrient levels.
type NutrientStatus struct {
	GaugeValue float64        `json:"gauge_value" bson:"gauge_value"`
	Nutrients  []MeterReading `json:"nutrients" bson:"nutrients"`
}

// DiseaseRisk summarises disease exposure and mitigation advice.
type DiseaseRisk struct {
	GaugeValue        float64   `json:"gauge_value" bson:"gauge_value"`
	Level             RiskLevel `json:"level" bson:"level"`
	PotentialDiseases []string  `json:"potential_diseases" bson:"potential_diseases"`
	Suggestions       string    `json:"suggestions,omitempty" bson:"suggestions,omitempty"`
}

// FarmHealth is the per-farm health record maintained by admins.
type FarmHealth struct {
	ID             string         `json:"id"`
	FarmID         string         `json:"farm_id"`
	PestPressure   PestPressure   `json:"pest_pressure"`
	NutrientStatus NutrientStatus `json:"nutrient_status"`
	DiseaseRisk    DiseaseRisk    `json:"disease_risk"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}
