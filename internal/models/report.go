package models

import (
	"time"

	"github.com/google/uuid"
)

// Report is a community-reported issue pinned to an approximate area by its
// geo token. Raw coordinates are never stored: CenterLat/CenterLng are the
// midpoint of the token's cell, not the reporter's position.
type Report struct {
	ID          uuid.UUID `json:"id"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	GeoToken    string    `json:"geo_token"`
	Label       string    `json:"label,omitempty"`
	CenterLat   float64   `json:"center_lat"`
	CenterLng   float64   `json:"center_lng"`
	CreatedAt   time.Time `json:"created_at"`
}
