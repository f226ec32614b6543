package usecase

import (
	"fmt"
	"time"

	"flightwatch-service/internal/domain/entity"
	"flightwatch-service/pkg/utils"
)

// DefaultTripMinLength is the shortest trip enumerated when a search
// does not specify one.
const DefaultTripMinLength = 3

// GenerateDatePairs enumerates every candidate (departure, return)
// window for a search as of the given day.
//
// The scan window comes from one of two sources, selected by the trip
// type: the next NextXMonths months starting today (weekends), or the
// explicit [DepartureDate, ArrivalDate] range (vacation). Pairs may
// repeat across consecutive days; callers treat the result as a
// membership set.
func GenerateDatePairs(search *entity.Search, today time.Time) ([]entity.DatePair, error) {
	today = truncateToDay(today)

	switch search.TripType {
	case entity.TripWeekends:
		if search.NextXMonths < 1 {
			return nil, fmt.Errorf("%w: weekends trip requires next_x_months >= 1", entity.ErrInvalidPolicy)
		}
		// Scan from today up to the first day of the month NextXMonths
		// months ahead.
		year, month, _ := today.Date()
		for i := 0; i < search.NextXMonths; i++ {
			year, month = utils.NextMonth(year, month)
		}
		bound := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)

		minLength := search.TripMinLength
		if minLength == 0 {
			minLength = DefaultTripMinLength
		}
		return weekendPairs(today, bound, minLength), nil

	case entity.TripVacation:
		departure, err := time.Parse(entity.DateLayout, search.DepartureDate)
		if err != nil {
			return nil, fmt.Errorf("%w: bad departure date %q", entity.ErrInvalidPolicy, search.DepartureDate)
		}
		arrival, err := time.Parse(entity.DateLayout, search.ArrivalDate)
		if err != nil {
			return nil, fmt.Errorf("%w: bad arrival date %q", entity.ErrInvalidPolicy, search.ArrivalDate)
		}

		if arrival.Before(today) {
			return nil, fmt.Errorf("%w: dates already passed", entity.ErrInvalidPolicy)
		}
		if departure.Before(today) {
			departure = today
		}
		if !departure.Before(arrival) {
			return nil, fmt.Errorf("%w: departure not before arrival", entity.ErrInvalidPolicy)
		}

		return vacationPairs(departure, arrival, search.TripMinLength, search.TripMaxLength), nil

	default:
		return nil, fmt.Errorf("%w: unknown trip type %q", entity.ErrInvalidPolicy, search.TripType)
	}
}

// weekendPairs emits pairs shaped around a weekend: departures any day
// except Wednesday, returns strictly before the Wednesday that follows
// the departure, so a trip never spills out of its weekend block.
// Only the minimum length bounds the loop; the block boundary is the
// effective maximum.
func weekendPairs(from, to time.Time, minLength int) []entity.DatePair {
	var pairs []entity.DatePair

	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		if d.Weekday() == time.Wednesday {
			continue
		}

		blockEnd := utils.NextWednesday(d)
		for length := minLength; ; length++ {
			ret := d.AddDate(0, 0, length)
			if !ret.Before(blockEnd) {
				break
			}
			pairs = append(pairs, entity.DatePair{Departure: d, Return: ret})
		}
	}

	return pairs
}

// vacationPairs emits every window of minLength-1 to maxLength days
// whose return still fits inside the scan window.
func vacationPairs(from, to time.Time, minLength, maxLength int) []entity.DatePair {
	var pairs []entity.DatePair

	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		for length := minLength - 1; length <= maxLength; length++ {
			if length < 1 {
				continue
			}
			ret := d.AddDate(0, 0, length)
			if ret.After(to) {
				break
			}
			pairs = append(pairs, entity.DatePair{Departure: d, Return: ret})
		}
	}

	return pairs
}

// ScanMonths returns the months a search's window spans, which drives
// one provider query per destination per month.
func ScanMonths(search *entity.Search, today time.Time) ([]utils.Month, error) {
	switch search.TripType {
	case entity.TripWeekends:
		if search.NextXMonths < 1 {
			return nil, fmt.Errorf("%w: weekends trip requires next_x_months >= 1", entity.ErrInvalidPolicy)
		}
		return utils.MonthsFrom(today, search.NextXMonths), nil

	case entity.TripVacation:
		departure, err := time.Parse(entity.DateLayout, search.DepartureDate)
		if err != nil {
			return nil, fmt.Errorf("%w: bad departure date %q", entity.ErrInvalidPolicy, search.DepartureDate)
		}
		arrival, err := time.Parse(entity.DateLayout, search.ArrivalDate)
		if err != nil {
			return nil, fmt.Errorf("%w: bad arrival date %q", entity.ErrInvalidPolicy, search.ArrivalDate)
		}
		return utils.MonthsBetween(departure, arrival), nil

	default:
		return nil, fmt.Errorf("%w: unknown trip type %q", entity.ErrInvalidPolicy, search.TripType)
	}
}

func truncateToDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
