package usecase

import (
	"context"
	"testing"
	"time"

	"flightwatch-service/internal/domain/entity"
	"flightwatch-service/pkg/logger"
)

type fakeLocationRepo struct {
	locations []*entity.Location
	err       error
}

func (r *fakeLocationRepo) GetByCode(ctx context.Context, code string) (*entity.Location, error) {
	for _, loc := range r.locations {
		if loc.Code == code {
			return loc, nil
		}
	}
	return nil, r.err
}

func (r *fakeLocationRepo) GetAll(ctx context.Context) ([]*entity.Location, error) {
	return r.locations, r.err
}

func testFormatter() *FlightFormatter {
	repo := &fakeLocationRepo{locations: []*entity.Location{
		{Code: "MOW", CityName: "Moscow"},
		{Code: "OPO", CityName: "Porto"},
	}}
	return NewFlightFormatter(context.Background(), repo, logger.NewNop())
}

func TestFormatFlights(t *testing.T) {
	flights := []entity.Flight{
		{
			Value:       11356,
			Origin:      "MOW",
			Destination: "OPO",
			DepartDate:  "2019-11-12",
			ReturnDate:  "2019-11-26",
			FoundAt:     "2019-11-03T09:37:26",
		},
		{
			Value:       16156,
			Origin:      "MOW",
			Destination: "OPO",
			DepartDate:  "2019-11-16",
			ReturnDate:  "2019-11-30",
			FoundAt:     "2019-11-03T12:28:45.684687",
		},
	}

	formatted := testFormatter().FormatFlights(flights)
	if len(formatted) != 2 {
		t.Fatalf("got %d formatted flights; want 2", len(formatted))
	}

	first := formatted[0]
	if first.Origin != "Moscow" || first.Destination != "Porto" {
		t.Errorf("locations = %s - %s; want Moscow - Porto", first.Origin, first.Destination)
	}
	if first.Price != 11300 {
		t.Errorf("price = %d; want 11300", first.Price)
	}
	if first.DepartureWeekday != "Tuesday" || first.ArrivalWeekday != "Tuesday" {
		t.Errorf("weekdays = %s/%s; want Tuesday/Tuesday", first.DepartureWeekday, first.ArrivalWeekday)
	}
	if want := "https://www.aviasales.ru/search/MOW1211OPO26111?marker=207849"; first.Link != want {
		t.Errorf("link = %s; want %s", first.Link, want)
	}
	if !first.FoundAt.Equal(time.Date(2019, 11, 3, 9, 37, 26, 0, time.UTC)) {
		t.Errorf("foundAt = %v", first.FoundAt)
	}

	second := formatted[1]
	if second.Price != 16100 {
		t.Errorf("price = %d; want 16100", second.Price)
	}
	if second.DepartureWeekday != "Saturday" {
		t.Errorf("departure weekday = %s; want Saturday", second.DepartureWeekday)
	}
	if second.DestinationCode != "OPO" {
		t.Errorf("destination code = %s; want OPO", second.DestinationCode)
	}
}

func TestFormatFlightsUnknownCodeFallsBack(t *testing.T) {
	flights := []entity.Flight{{
		Value:       4200,
		Origin:      "MOW",
		Destination: "XYZ",
		DepartDate:  "2019-11-10",
		ReturnDate:  "2019-11-12",
		FoundAt:     "2019-11-03T09:37:26",
	}}

	formatted := testFormatter().FormatFlights(flights)
	if formatted[0].Destination != "XYZ" {
		t.Errorf("destination = %s; want raw code XYZ", formatted[0].Destination)
	}
}

func TestFloorToHundred(t *testing.T) {
	tests := []struct {
		price int
		want  int
	}{
		{4251, 4200},
		{4248, 4200},
		{4200, 4200},
		{99, 0},
	}

	for _, tt := range tests {
		if got := floorToHundred(tt.price); got != tt.want {
			t.Errorf("floorToHundred(%d) = %d; want %d", tt.price, got, tt.want)
		}
	}
}

func TestSearchLink(t *testing.T) {
	got := SearchLink("MOW", "2019-11-10", "UFA", "2019-11-12")
	want := "https://www.aviasales.ru/search/MOW1011UFA12111?marker=207849"
	if got != want {
		t.Errorf("SearchLink = %s; want %s", got, want)
	}
}
