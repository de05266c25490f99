package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/agrovia/farm-management/internal/core/domain"
	"github.com/agrovia/farm-management/internal/core/ports"
)

// FarmHealthHandler serves per-farm health records.
type FarmHealthHandler struct {
	healthService ports.FarmHealthService
}

func NewFarmHealthHandler(healthService ports.FarmHealthService) *FarmHealthHandler {
	return &FarmHealthHandler{healthService: healthService}
}

type meterReadingRequest struct {
	Name  string  `json:"name"  validate:"required"`
	Level float64 `json:"level" validate:"min=0,max=100"`
}

type pestPressureRequest struct {
	GaugeValue float64               `json:"gauge_value" validate:"min=0,max=100"`
	Pests      []meterReadingRequest `json:"pests" validate:"dive"`
}

type nutrientStatusRequest struct {
	GaugeValue float64               `json:"gauge_value" validate:"min=0,max=100"`
	Nutrients  []meterReadingRequest `json:"nutrients" validate:"dive"`
}

type diseaseRiskRequest struct {
	GaugeValue        float64  `json:"gauge_value" validate:"min=0,max=100"`
	Level             string   `json:"level" validate:"required,oneof=Low Moderate High"`
	PotentialDiseases []string `json:"potential_diseases"`
	Suggestions       string   `json:"suggestions"`
}

type farmHealthRequest struct {
	PestPressure   pestPressureRequest   `json:"pest_pressure"`
	NutrientStatus nutrientStatusRequest `json:"nutrient_status"`
	DiseaseRisk    diseaseRiskRequest    `json:"disease_risk" validate:"required"`
}

func meterReadings(readings []meterReadingRequest) []domain.MeterReading {
	if len(readings) == 0 {
		return nil
	}
	out := make([]domain.MeterReading, 0, len(readings))
	for _, r := range readings {
		out = append(out, domain.MeterReading{Name: r.Name, Level: r.Level})
	}
	return out
}

// Get returns the health record of a farm.
//
// @Summary      Get farm health
// @Tags         farm-health
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Farm ID"
// @Success      200  {object}  domain.FarmHealth
// @Failure      404  {object}  map[string]string
// @Router       /v1/farms/{id}/health [get]
func (h *FarmHealthHandler) Get(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	health, err := h.healthService.GetFarmHealth(c.Request().Context(), sess, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, health)
}

// Put creates or replaces the health record of a farm. Admin only.
//
// @Summary      Upsert farm health
// @Tags         farm-health
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Farm ID"
// @Param        body  body      farmHealthRequest  true  "Health record"
// @Success      200   {object}  domain.FarmHealth
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/farms/{id}/health [put]
func (h *FarmHealthHandler) Put(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	var req farmHealthRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	health, err := h.healthService.PutFarmHealth(c.Request().Context(), sess, c.Param("id"), ports.FarmHealthInput{
		PestPressure: domain.PestPressure{
			GaugeValue: req.PestPressure.GaugeValue,
			Pests:      meterReadings(req.PestPressure.Pests),
		},
		NutrientStatus: domain.NutrientStatus{
			GaugeValue: req.NutrientStatus.GaugeValue,
			Nutrients:  meterReadings(req.NutrientStatus.Nutrients),
		},
		DiseaseRisk: domain.DiseaseRisk{
			GaugeValue:        req.DiseaseRisk.GaugeValue,
			Level:             domain.RiskLevel(req.DiseaseRisk.Level),
			PotentialDiseases: req.DiseaseRisk.PotentialDiseases,
			Suggestions:       req.DiseaseRisk.Suggestions,
		},
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, health)
}
