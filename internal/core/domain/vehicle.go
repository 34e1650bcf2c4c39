package domain

import (
	"strings"
	"time"
)

const minVehicleYear = 1900

// Vehicle is a car registered to exactly one owner.
type Vehicle struct {
	ID        uint
	Plate     string
	Make      string
	Model     string
	Year      int
	Color     string
	OwnerID   uint
	CreatedAt time.Time
}

// NormalizePlate trims and upper-cases a plate so uniqueness is case-blind.
func NormalizePlate(plate string) string {
	return strings.ToUpper(strings.TrimSpace(plate))
}

// ValidYear reports whether year is plausible for a vehicle registered now.
func ValidYear(year int, now time.Time) bool {
	return year >= minVehicleYear && year <= now.Year()+1
}
