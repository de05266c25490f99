package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/agrovia/farm-management/internal/core/ports"
)

// CropHandler handles HTTP requests for crop operations.
type CropHandler struct {
	cropService ports.CropService
}

func NewCropHandler(cropService ports.CropService) *CropHandler {
	return &CropHandler{cropService: cropService}
}

type cropRequest struct {
	Name         string    `json:"name"          validate:"required"`
	AreaHa       float64   `json:"area_ha"       validate:"required,gt=0"`
	YieldTons    float64   `json:"yield_tons"    validate:"omitempty,gt=0"`
	PlantingDate time.Time `json:"planting_date" validate:"required"`
	HarvestDate  time.Time `json:"harvest_date"`
	Stage        string    `json:"stage"`
}

type updateCropRequest struct {
	Name         string    `json:"name"`
	AreaHa       float64   `json:"area_ha"    validate:"omitempty,gt=0"`
	YieldTons    float64   `json:"yield_tons" validate:"omitempty,gt=0"`
	PlantingDate time.Time `json:"planting_date"`
	HarvestDate  time.Time `json:"harvest_date"`
	Stage        string    `json:"stage"`
}

// List returns the crops of a farm.
//
// @Summary      List farm crops
// @Tags         crops
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Farm ID"
// @Success      200  {array}   domain.Crop
// @Failure      404  {object}  map[string]string
// @Router       /v1/farms/{id}/crops [get]
func (h *CropHandler) List(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	crops, err := h.cropService.ListCrops(c.Request().Context(), sess, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, crops)
}

// Create adds a crop to a farm.
//
// @Summary      Create a crop
// @Tags         crops
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string       true  "Farm ID"
// @Param        body  body      cropRequest  true  "Crop details"
// @Success      201   {object}  domain.Crop
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/farms/{id}/crops [post]
func (h *CropHandler) Create(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	var req cropRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	crop, err := h.cropService.CreateCrop(c.Request().Context(), sess, c.Param("id"), ports.CropInput{
		Name:         req.Name,
		AreaHa:       req.AreaHa,
		YieldTons:    req.YieldTons,
		PlantingDate: req.PlantingDate,
		HarvestDate:  req.HarvestDate,
		Stage:        req.Stage,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, crop)
}

// Update modifies a crop.
//
// @Summary      Update a crop
// @Tags         crops
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Crop ID"
// @Param        body  body      updateCropRequest  true  "Fields to update"
// @Success      200   {object}  domain.Crop
// @Failure      404   {object}  map[string]string
// @Router       /v1/crops/{id} [put]
func (h *CropHandler) Update(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	var req updateCropRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	crop, err := h.cropService.UpdateCrop(c.Request().Context(), sess, c.Param("id"), ports.CropInput{
		Name:         req.Name,
		AreaHa:       req.AreaHa,
		YieldTons:    req.YieldTons,
		PlantingDate: req.PlantingDate,
		HarvestDate:  req.HarvestDate,
		Stage:        req.Stage,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, crop)
}

// Delete removes a crop.
//
// @Summary      Delete a crop
// @Tags         crops
// @Security     BearerAuth
// @Param        id  path  string  true  "Crop ID"
// @Success      204  "crop deleted"
// @Failure      404  {object}  map[string]string
// @Router       /v1/crops/{id} [delete]
func (h *CropHandler) Delete(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	if err := h.cropService.DeleteCrop(c.Request().Context(), sess, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
