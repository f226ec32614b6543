package usecase

import (
	"context"
	"fmt"
	"time"

	"flightwatch-service/internal/domain/entity"
	"flightwatch-service/internal/domain/repository"
	"flightwatch-service/pkg/logger"
	"flightwatch-service/pkg/utils"
)

// The deep-link format is an external contract with the provider's
// search UI: origin code, departure day+month, destination code,
// return day+month, one passenger, affiliate marker.
const (
	searchLinkBase   = "https://www.aviasales.ru/search/"
	affiliateMarker  = "207849"
	searchLinkFormat = searchLinkBase + "%s%s%s%s1?marker=" + affiliateMarker
)

// FlightFormatter turns raw provider records into display-ready
// entries. Location names come from the lookup table, cached at
// construction; unknown codes fall back to the raw code, so
// formatting never fails.
type FlightFormatter struct {
	names  map[string]string
	logger logger.Logger
}

// NewFlightFormatter builds a formatter, loading the location table
// once. A lookup failure only costs display names, never the cycle.
func NewFlightFormatter(ctx context.Context, locationRepo repository.LocationRepository, log logger.Logger) *FlightFormatter {
	names := make(map[string]string)

	if locationRepo != nil {
		locations, err := locationRepo.GetAll(ctx)
		if err != nil {
			log.Warn("Failed to load location names, falling back to raw codes", "error", err)
		}
		for _, loc := range locations {
			names[loc.Code] = loc.CityName
		}
	}

	return &FlightFormatter{
		names:  names,
		logger: log,
	}
}

// FormatFlights maps raw flights to formatted ones. Total: every input
// record yields an output record.
func (f *FlightFormatter) FormatFlights(flights []entity.Flight) []entity.FormattedFlight {
	formatted := make([]entity.FormattedFlight, 0, len(flights))

	for _, flight := range flights {
		// found_at was validated upstream by the filter.
		foundAt, _ := utils.ParseFoundAt(flight.FoundAt)

		formatted = append(formatted, entity.FormattedFlight{
			Origin:           f.locationName(flight.Origin),
			Destination:      f.locationName(flight.Destination),
			DestinationCode:  flight.Destination,
			Price:            floorToHundred(flight.Value),
			DepartureDate:    flight.DepartDate,
			DepartureWeekday: weekdayOfDate(flight.DepartDate),
			ArrivalDate:      flight.ReturnDate,
			ArrivalWeekday:   weekdayOfDate(flight.ReturnDate),
			Link:             SearchLink(flight.Origin, flight.DepartDate, flight.Destination, flight.ReturnDate),
			FoundAt:          foundAt,
		})
	}

	return formatted
}

// SearchLink builds the provider search deep link. The provider only
// searches the next twelve months, so dates are sent as day+month with
// the ISO order reversed.
func SearchLink(origin, departureDate, destination, returnDate string) string {
	return fmt.Sprintf(searchLinkFormat, origin, dayMonth(departureDate), destination, dayMonth(returnDate))
}

// dayMonth turns YYYY-MM-DD into DDMM.
func dayMonth(date string) string {
	if len(date) != len(entity.DateLayout) {
		return ""
	}
	return date[8:10] + date[5:7]
}

func (f *FlightFormatter) locationName(code string) string {
	if name, ok := f.names[code]; ok {
		return name
	}
	return code
}

func floorToHundred(price int) int {
	return price - price%100
}

func weekdayOfDate(date string) string {
	t, err := time.Parse(entity.DateLayout, date)
	if err != nil {
		return ""
	}
	return utils.WeekdayOf(t)
}
