package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/agrovia/farm-management/internal/core/ports"
)

// FarmHandler handles HTTP requests for farm operations.
type FarmHandler struct {
	farmService ports.FarmService
}

func NewFarmHandler(farmService ports.FarmService) *FarmHandler {
	return &FarmHandler{farmService: farmService}
}

type farmRequest struct {
	Name     string  `json:"name"     validate:"required"`
	Location string  `json:"location" validate:"required"`
	SizeHa   float64 `json:"size_ha"  validate:"required,gt=0"`
}

type updateFarmRequest struct {
	Name     string  `json:"name"`
	Location string  `json:"location"`
	SizeHa   float64 `json:"size_ha" validate:"omitempty,gt=0"`
}

// List returns the farms visible to the session: all farms for admins, own
// farms for clients.
//
// @Summary      List farms
// @Tags         farms
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Farm
// @Failure      401  {object}  map[string]string
// @Router       /v1/farms [get]
func (h *FarmHandler) List(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	farms, err := h.farmService.ListFarms(c.Request().Context(), sess)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, farms)
}

// Create registers a farm owned by the session user.
//
// @Summary      Create a farm
// @Tags         farms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      farmRequest  true  "Farm details"
// @Success      201   {object}  domain.Farm
// @Failure      400   {object}  map[string]string
// @Router       /v1/farms [post]
func (h *FarmHandler) Create(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	var req farmRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	farm, err := h.farmService.CreateFarm(c.Request().Context(), sess, ports.CreateFarmInput{
		Name:     req.Name,
		Location: req.Location,
		SizeHa:   req.SizeHa,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, farm)
}

// Get returns a single farm.
//
// @Summary      Get a farm
// @Tags         farms
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Farm ID"
// @Success      200  {object}  domain.Farm
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/farms/{id} [get]
func (h *FarmHandler) Get(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	farm, err := h.farmService.GetFarm(c.Request().Context(), sess, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, farm)
}

// Update modifies a farm.
//
// @Summary      Update a farm
// @Tags         farms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Farm ID"
// @Param        body  body      updateFarmRequest  true  "Fields to update"
// @Success      200   {object}  domain.Farm
// @Failure      404   {object}  map[string]string
// @Router       /v1/farms/{id} [put]
func (h *FarmHandler) Update(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	var req updateFarmRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	farm, err := h.farmService.UpdateFarm(c.Request().Context(), sess, ports.UpdateFarmInput{
		FarmID:   c.Param("id"),
		Name:     req.Name,
		Location: req.Location,
		SizeHa:   req.SizeHa,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, farm)
}

// Delete removes a farm and its dependent records.
//
// @Summary      Delete a farm
// @Tags         farms
// @Security     BearerAuth
// @Param        id  path  string  true  "Farm ID"
// @Success      204  "farm deleted"
// @Failure      404  {object}  map[string]string
// @Router       /v1/farms/{id} [delete]
func (h *FarmHandler) Delete(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	if err := h.farmService.DeleteFarm(c.Request().Context(), sess, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
