package entity

import (
	"time"
)

// TripType selects which date-pair enumeration rule a search uses.
type TripType string

const (
	// TripWeekends searches short trips around a weekend, bounded by
	// Wednesdays, over the next N months.
	TripWeekends TripType = "weekends"
	// TripVacation searches flexible-length trips between two fixed dates.
	TripVacation TripType = "vacation"
)

// Search is a saved set of conditions for flight searching and filtering.
// The poll cycle iterates over every active search each run.
//
// Examples:
//
//	weekend flights to Ufa for the next 12 months
//	flights to Portugal from April 12th to May 6th, 7-14 nights
type Search struct {
	ID           string   `bson:"_id,omitempty"`
	Name         string   `bson:"name"` // unique index
	Destinations []string `bson:"destinations"`
	MaxPrice     int      `bson:"maxPrice"`
	TripType     TripType `bson:"tripType"`

	// NextXMonths is required when TripType == TripWeekends: how many
	// months ahead (including the current one) to scan.
	NextXMonths int `bson:"nextXMonths,omitempty"`

	// DepartureDate and ArrivalDate bound the scan window when
	// TripType == TripVacation. Stored in YYYY-MM-DD form.
	DepartureDate string `bson:"departureDate,omitempty"`
	ArrivalDate   string `bson:"arrivalDate,omitempty"`

	// TripMinLength and TripMaxLength are trip lengths in days,
	// required when TripType == TripVacation.
	TripMinLength int `bson:"tripMinLength,omitempty"`
	TripMaxLength int `bson:"tripMaxLength,omitempty"`

	// ExcludedDestinations are destination codes dropped by the filter
	// even when a flight otherwise qualifies.
	ExcludedDestinations []string `bson:"excludedDestinations,omitempty"`

	IsActive  bool      `bson:"isActive"`
	CreatedAt time.Time `bson:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

// Validate checks that exactly the fields required by the search's trip
// type are present. Searches are validated on insert, not re-validated
// downstream.
func (s *Search) Validate() error {
	if s.Name == "" {
		return newInvalidPolicy("search name is required")
	}
	if len(s.Destinations) == 0 {
		return newInvalidPolicy("at least one destination is required")
	}
	if s.MaxPrice <= 0 {
		return newInvalidPolicy("max price must be positive")
	}

	switch s.TripType {
	case TripWeekends:
		if s.NextXMonths < 1 {
			return newInvalidPolicy("weekends trip requires next_x_months >= 1")
		}
	case TripVacation:
		if s.DepartureDate == "" || s.ArrivalDate == "" {
			return newInvalidPolicy("vacation trip requires departure and arrival dates")
		}
		if s.TripMinLength <= 0 || s.TripMaxLength <= 0 {
			return newInvalidPolicy("vacation trip requires trip_min_length and trip_max_length")
		}
		if s.TripMinLength > s.TripMaxLength {
			return newInvalidPolicy("trip_min_length must not exceed trip_max_length")
		}
	default:
		return newInvalidPolicy("unknown trip type")
	}

	return nil
}
