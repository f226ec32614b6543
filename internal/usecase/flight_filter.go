package usecase

import (
	"time"

	"flightwatch-service/internal/domain/entity"
	"flightwatch-service/pkg/utils"
)

// DefaultMaxHoursPassed bounds how stale a price record may be before
// the filter rejects it.
const DefaultMaxHoursPassed = 6

// FilterOptions tune which flights survive the filter.
type FilterOptions struct {
	MaxPrice int
	// MaxHoursPassed overrides DefaultMaxHoursPassed when positive.
	MaxHoursPassed int
	// ExcludedDestinations drops flights by destination code.
	ExcludedDestinations []string
	// Now anchors the staleness check; zero means time.Now().
	Now time.Time
}

// FilterFlights returns the subsequence of flights that are fresh,
// within budget, not bound for an excluded destination, and whose
// (depart, return) dates exactly match one of the candidate pairs in
// canonical YYYY-MM-DD form. Input order is preserved; flights are not
// mutated. A found_at value in neither accepted precision fails the
// whole batch.
func FilterFlights(flights []entity.Flight, pairs []entity.DatePair, opts FilterOptions) ([]entity.Flight, error) {
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	maxHours := opts.MaxHoursPassed
	if maxHours <= 0 {
		maxHours = DefaultMaxHoursPassed
	}
	maxAge := time.Duration(maxHours) * time.Hour

	pairSet := make(map[string]struct{}, len(pairs))
	for _, p := range pairs {
		pairSet[p.Key()] = struct{}{}
	}

	excluded := make(map[string]struct{}, len(opts.ExcludedDestinations))
	for _, code := range opts.ExcludedDestinations {
		excluded[code] = struct{}{}
	}

	var result []entity.Flight
	for _, flight := range flights {
		foundAt, err := utils.ParseFoundAt(flight.FoundAt)
		if err != nil {
			return nil, err
		}
		if now.Sub(foundAt) > maxAge {
			continue
		}
		if flight.Value > opts.MaxPrice {
			continue
		}
		if _, ok := excluded[flight.Destination]; ok {
			continue
		}
		if _, ok := pairSet[flight.DepartDate+"|"+flight.ReturnDate]; !ok {
			continue
		}
		result = append(result, flight)
	}

	return result, nil
}
