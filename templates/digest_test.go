package templates

import (
	"strings"
	"testing"
	"time"

	"flightwatch-service/internal/domain/entity"
)

func TestRenderDigest(t *testing.T) {
	flights := []entity.FormattedFlight{
		{
			Origin:           "Moscow",
			Destination:      "Porto",
			Price:            11300,
			DepartureDate:    "2019-11-12",
			DepartureWeekday: "Tuesday",
			ArrivalDate:      "2019-11-26",
			ArrivalWeekday:   "Tuesday",
			Link:             "https://www.aviasales.ru/search/MOW1211OPO26111?marker=207849",
			FoundAt:          time.Date(2019, 11, 3, 9, 37, 26, 0, time.UTC),
		},
		{
			Origin:           "Moscow",
			Destination:      "Porto",
			Price:            16100,
			DepartureDate:    "2019-11-16",
			DepartureWeekday: "Saturday",
			ArrivalDate:      "2019-11-30",
			ArrivalWeekday:   "Saturday",
			Link:             "https://www.aviasales.ru/search/MOW1611OPO30111?marker=207849",
			FoundAt:          time.Date(2019, 11, 3, 12, 28, 45, 684687000, time.UTC),
		},
	}

	digest := RenderDigest("Porto in november", flights)

	if !strings.HasPrefix(digest, `Flights found for "Porto in november" search:`) {
		t.Errorf("digest header missing: %q", digest)
	}
	for _, want := range []string{
		"Moscow - Porto for 11300 rubles",
		"2019-11-12 (Tuesday) - 2019-11-26 (Tuesday)",
		"https://www.aviasales.ru/search/MOW1211OPO26111?marker=207849",
		"found on 09:37, 03 Nov 2019",
		"Moscow - Porto for 16100 rubles",
	} {
		if !strings.Contains(digest, want) {
			t.Errorf("digest missing %q", want)
		}
	}

	if got := strings.Count(digest, "\n\n"); got != 2 {
		t.Errorf("digest has %d paragraph breaks; want 2", got)
	}
}

func TestRenderDigestEmpty(t *testing.T) {
	if got := RenderDigest("anything", nil); got != "" {
		t.Errorf("empty flight list rendered %q; want empty string", got)
	}
}
