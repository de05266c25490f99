package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/agrovia/farm-management/internal/core/domain"
	"github.com/agrovia/farm-management/internal/core/ports"
)

// DashboardHandler serves per-farm dashboards and the role dashboard roots.
type DashboardHandler struct {
	dashboardService ports.DashboardService
}

func NewDashboardHandler(dashboardService ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

type chartPointRequest struct {
	Label string  `json:"label" validate:"required"`
	Value float64 `json:"value"`
}

type chartDataRequest struct {
	Humidity    []chartPointRequest `json:"humidity"`
	Temperature []chartPointRequest `json:"temperature"`
	Rainfall    []chartPointRequest `json:"rainfall"`
}

type dashboardRequest struct {
	Charts        chartDataRequest       `json:"charts"`
	Weather       domain.WeatherSnapshot `json:"weather"`
	Soil          domain.SoilStatus      `json:"soil"`
	UpcomingTasks []string               `json:"upcoming_tasks"`
	ImageURL      string                 `json:"image_url" validate:"omitempty,url"`
}

func chartPoints(points []chartPointRequest) []domain.ChartPoint {
	if len(points) == 0 {
		return nil
	}
	out := make([]domain.ChartPoint, 0, len(points))
	for _, p := range points {
		out = append(out, domain.ChartPoint{Label: p.Label, Value: p.Value})
	}
	return out
}

// GetFarmDashboard returns the dashboard of a farm.
//
// @Summary      Get a farm dashboard
// @Tags         dashboards
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Farm ID"
// @Success      200  {object}  domain.Dashboard
// @Failure      404  {object}  map[string]string
// @Router       /v1/farms/{id}/dashboard [get]
func (h *DashboardHandler) GetFarmDashboard(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	dashboard, err := h.dashboardService.GetFarmDashboard(c.Request().Context(), sess, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dashboard)
}

// PutFarmDashboard creates or replaces the dashboard of a farm.
//
// @Summary      Upsert a farm dashboard
// @Tags         dashboards
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string            true  "Farm ID"
// @Param        body  body      dashboardRequest  true  "Dashboard content"
// @Success      200   {object}  domain.Dashboard
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/farms/{id}/dashboard [put]
func (h *DashboardHandler) PutFarmDashboard(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	var req dashboardRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	dashboard, err := h.dashboardService.PutFarmDashboard(c.Request().Context(), sess, c.Param("id"), ports.DashboardInput{
		Charts: domain.ChartData{
			Humidity:    chartPoints(req.Charts.Humidity),
			Temperature: chartPoints(req.Charts.Temperature),
			Rainfall:    chartPoints(req.Charts.Rainfall),
		},
		Weather:       req.Weather,
		Soil:          req.Soil,
		UpcomingTasks: req.UpcomingTasks,
		ImageURL:      req.ImageURL,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dashboard)
}

// AdminHome returns the aggregate counters behind the admin dashboard root.
//
// @Summary      Admin dashboard
// @Tags         dashboards
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.AdminOverview
// @Router       /v1/admin/dashboard [get]
func (h *DashboardHandler) AdminHome(c echo.Context) error {
	overview, err := h.dashboardService.AdminOverview(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, overview)
}

// ClientHome returns the session owner's farms with their dashboards.
//
// @Summary      Client dashboard
// @Tags         dashboards
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.ClientOverview
// @Router       /v1/client/dashboard [get]
func (h *DashboardHandler) ClientHome(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	overview, err := h.dashboardService.ClientOverview(c.Request().Context(), sess)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, overview)
}
