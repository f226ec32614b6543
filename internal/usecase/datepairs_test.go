package usecase

import (
	"errors"
	"testing"
	"time"

	"flightwatch-service/internal/domain/entity"
)

func date(s string) time.Time {
	t, err := time.Parse(entity.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestGenerateDatePairsWeekendShape(t *testing.T) {
	search := &entity.Search{
		Name:         "weekend trips",
		TripType:     entity.TripWeekends,
		NextXMonths:  3,
		Destinations: []string{"UFA"},
		MaxPrice:     10000,
	}
	today := date("2019-12-01")

	pairs, err := GenerateDatePairs(search, today)
	if err != nil {
		t.Fatalf("GenerateDatePairs returned error: %v", err)
	}
	if len(pairs) == 0 {
		t.Fatal("expected pairs, got none")
	}

	bound := date("2020-03-01")
	for _, p := range pairs {
		if !p.Departure.Before(p.Return) {
			t.Errorf("pair %s: departure not before return", p.Key())
		}
		if p.Departure.Before(today) {
			t.Errorf("pair %s departs before today", p.Key())
		}
		if p.Departure.After(bound) {
			t.Errorf("pair %s departs after the %d-month window", p.Key(), search.NextXMonths)
		}
		if p.Departure.Weekday() == time.Wednesday {
			t.Errorf("pair %s departs on a Wednesday", p.Key())
		}
		next := p.Departure.AddDate(0, 0, (int(time.Wednesday)-int(p.Departure.Weekday())+7)%7)
		if next.Equal(p.Departure) {
			next = next.AddDate(0, 0, 7)
		}
		if !p.Return.Before(next) {
			t.Errorf("pair %s returns on or after the next Wednesday %s", p.Key(), next.Format(entity.DateLayout))
		}
		if length := int(p.Return.Sub(p.Departure).Hours() / 24); length < DefaultTripMinLength {
			t.Errorf("pair %s is only %d days long", p.Key(), length)
		}
	}
}

func TestGenerateDatePairsWeekendScenario(t *testing.T) {
	// 2019-12-05 is a Thursday; the block closes before Wednesday the 11th.
	search := &entity.Search{
		TripType:    entity.TripWeekends,
		NextXMonths: 1,
	}
	pairs, err := GenerateDatePairs(search, date("2019-12-05"))
	if err != nil {
		t.Fatalf("GenerateDatePairs returned error: %v", err)
	}

	want := map[string]bool{
		"2019-12-05|2019-12-08": true,
		"2019-12-05|2019-12-09": true,
		"2019-12-05|2019-12-10": true,
		"2019-12-06|2019-12-09": true,
		"2019-12-06|2019-12-10": true,
		"2019-12-07|2019-12-10": true,
	}

	got := make(map[string]bool)
	for _, p := range pairs {
		got[p.Key()] = true
	}
	for key := range want {
		if !got[key] {
			t.Errorf("missing expected pair %s", key)
		}
	}
	if got["2019-12-05|2019-12-11"] {
		t.Error("pair returning on the next Wednesday must not be emitted")
	}
}

func TestGenerateDatePairsVacationShape(t *testing.T) {
	search := &entity.Search{
		TripType:      entity.TripVacation,
		DepartureDate: "2020-04-01",
		ArrivalDate:   "2020-05-06",
		TripMinLength: 7,
		TripMaxLength: 14,
	}
	today := date("2020-03-15")

	pairs, err := GenerateDatePairs(search, today)
	if err != nil {
		t.Fatalf("GenerateDatePairs returned error: %v", err)
	}
	if len(pairs) == 0 {
		t.Fatal("expected pairs, got none")
	}

	arrival := date("2020-05-06")
	for _, p := range pairs {
		length := int(p.Return.Sub(p.Departure).Hours() / 24)
		if length < search.TripMinLength-1 || length > search.TripMaxLength {
			t.Errorf("pair %s has length %d outside [%d, %d]",
				p.Key(), length, search.TripMinLength-1, search.TripMaxLength)
		}
		if p.Return.After(arrival) {
			t.Errorf("pair %s returns after the arrival bound", p.Key())
		}
	}
}

func TestGenerateDatePairsClampsDeparture(t *testing.T) {
	search := &entity.Search{
		TripType:      entity.TripVacation,
		DepartureDate: "2020-04-01",
		ArrivalDate:   "2020-04-20",
		TripMinLength: 3,
		TripMaxLength: 5,
	}
	today := date("2020-04-10")

	pairs, err := GenerateDatePairs(search, today)
	if err != nil {
		t.Fatalf("GenerateDatePairs returned error: %v", err)
	}
	for _, p := range pairs {
		if p.Departure.Before(today) {
			t.Errorf("pair %s departs before today after clamping", p.Key())
		}
	}
}

func TestGenerateDatePairsInvalidPolicies(t *testing.T) {
	today := date("2020-04-10")

	tests := []struct {
		name   string
		search *entity.Search
	}{
		{
			name: "arrival already passed",
			search: &entity.Search{
				TripType:      entity.TripVacation,
				DepartureDate: "2020-03-01",
				ArrivalDate:   "2020-03-20",
				TripMinLength: 3,
				TripMaxLength: 7,
			},
		},
		{
			name: "departure not before arrival after clamping",
			search: &entity.Search{
				TripType:      entity.TripVacation,
				DepartureDate: "2020-04-01",
				ArrivalDate:   "2020-04-10",
				TripMinLength: 3,
				TripMaxLength: 7,
			},
		},
		{
			name: "weekends without months",
			search: &entity.Search{
				TripType: entity.TripWeekends,
			},
		},
		{
			name: "unknown trip type",
			search: &entity.Search{
				TripType: "looking_around",
			},
		},
		{
			name: "unparseable dates",
			search: &entity.Search{
				TripType:      entity.TripVacation,
				DepartureDate: "01.04.2020",
				ArrivalDate:   "2020-04-20",
				TripMinLength: 3,
				TripMaxLength: 7,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateDatePairs(tt.search, today)
			if !errors.Is(err, entity.ErrInvalidPolicy) {
				t.Errorf("GenerateDatePairs = %v; want ErrInvalidPolicy", err)
			}
		})
	}
}

func TestScanMonths(t *testing.T) {
	weekends := &entity.Search{TripType: entity.TripWeekends, NextXMonths: 3}
	months, err := ScanMonths(weekends, date("2019-11-03"))
	if err != nil {
		t.Fatalf("ScanMonths returned error: %v", err)
	}
	if len(months) != 3 || months[0].Name != "November" || months[2].Name != "January" {
		t.Errorf("unexpected months for weekends search: %+v", months)
	}

	vacation := &entity.Search{
		TripType:      entity.TripVacation,
		DepartureDate: "2019-12-20",
		ArrivalDate:   "2020-01-10",
	}
	months, err = ScanMonths(vacation, date("2019-11-03"))
	if err != nil {
		t.Fatalf("ScanMonths returned error: %v", err)
	}
	if len(months) != 2 || months[0].Name != "December" || months[1].Name != "January" {
		t.Errorf("unexpected months for vacation search: %+v", months)
	}
}
