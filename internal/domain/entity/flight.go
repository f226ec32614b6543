package entity

import (
	"strconv"
	"time"
)

// Flight is a raw price record from the Travelpayouts latest-prices
// endpoint. Dates are ISO strings as delivered by the API; FoundAt
// comes in either whole-second or microsecond precision.
type Flight struct {
	Origin          string `json:"origin"`
	Destination     string `json:"destination"`
	Value           int    `json:"value"`
	DepartDate      string `json:"depart_date"`
	ReturnDate      string `json:"return_date"`
	FoundAt         string `json:"found_at"`
	Gate            string `json:"gate,omitempty"`
	TripClass       int    `json:"trip_class"`
	NumberOfChanges int    `json:"number_of_changes"`
	Duration        int    `json:"duration,omitempty"`
	Distance        int    `json:"distance,omitempty"`
	Actual          bool   `json:"actual"`
}

// FormattedFlight is a display-ready flight entry: human-readable
// locations, price floored to the lower hundred, weekday names and a
// deep link into the provider's search UI.
type FormattedFlight struct {
	ID               string    `bson:"_id,omitempty"`
	Origin           string    `bson:"origin"`
	Destination      string    `bson:"destination"`
	DestinationCode  string    `bson:"destinationCode"`
	Price            int       `bson:"price"`
	DepartureDate    string    `bson:"departureDate"`
	DepartureWeekday string    `bson:"departureWeekday"`
	ArrivalDate      string    `bson:"arrivalDate"`
	ArrivalWeekday   string    `bson:"arrivalWeekday"`
	Link             string    `bson:"link"`
	FoundAt          time.Time `bson:"foundAt"`
	CreatedAt        time.Time `bson:"createdAt"`
}

// DedupeKey identifies a flight for in-batch deduplication. The Mongo
// history collection enforces the same four-field identity with a
// unique compound index.
func (f *FormattedFlight) DedupeKey() string {
	return f.DestinationCode + "|" + f.DepartureDate + "|" + f.ArrivalDate + "|" + strconv.Itoa(f.Price)
}
