package domain

import (
	"errors"
	"time"
)

var ErrDashboardNotFound = errors.New("dashboard not found")

// ChartPoint is a single labelled value in a chart series. The rendering
// layer consumes these as plain JSON arrays.
type ChartPoint struct {
	Label string  `json:"label" bson:"label"`
	Value float64 `json:"value" bson:"value"`
}

// ChartData holds the three series shown on a farm dashboard.
type ChartData struct {
	Humidity    []ChartPoint `json:"humidity" bson:"humidity"`
	Temperature []ChartPoint `json:"temperature" bson:"temperature"`
	Rainfall    []ChartPoint `json:"rainfall" bson:"rainfall"`
}

// WeatherSnapshot is the latest observed/forecast weather for a farm.
type WeatherSnapshot struct {
	Forecast    string `json:"forecast" bson:"forecast"`
	Temperature string `json:"temperature" bson:"temperature"`
	Humidity    string `json:"humidity" bson:"humidity"`
}

// SoilStatus is the current soil reading for a farm.
type SoilStatus struct {
	PH       float64 `json:"ph" bson:"ph"`
	Moisture string  `json:"moisture" bson:"moisture"`
}

// Dashboard aggregates the per-farm data the dashboard pages render.
type Dashboard struct {
	ID            string          `json:"id"`
	OwnerID       string          `json:"owner_id"`
	FarmID        string          `json:"farm_id"`
	Charts        ChartData       `json:"charts"`
	Weather       WeatherSnapshot `json:"weather"`
	Soil          SoilStatus      `json:"soil"`
	UpcomingTasks []string        `json:"upcoming_tasks"`
	ImageURL      string          `json:"image_url,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
