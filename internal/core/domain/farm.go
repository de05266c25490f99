package domain

import (
	"errors"
	"time"
)

var ErrFarmNotFound = errors.New("farm not found")

// Farm is a plot of land owned by a single user. Clients only ever see their
// own farms; admins see all of them.
type Farm struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Location  string    `json:"location"`
	SizeHa    float64   `json:"size_ha"`
	OwnerID   string    `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
