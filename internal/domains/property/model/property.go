package model

import (
	"errors"

	"github.com/google/uuid"
)

// Property mirrors the externally managed properties table. This service
// only reads it for referential and ownership checks.
type Property struct {
	ID         uuid.UUID `json:"id"`
	LandlordID uuid.UUID `json:"landlord_id"`
	Address    string    `json:"address"`
	City       string    `json:"city"`
	State      string    `json:"state"`
}

var ErrPropertyNotFound = errors.New("property not found")
