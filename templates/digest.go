package templates

import (
	"fmt"
	"strings"

	"flightwatch-service/internal/domain/entity"
)

const foundAtLayout = "15:04, 02 Jan 2006"

// RenderDigest builds the single bulk message a notification channel
// posts for one search: one paragraph per flight with the price, the
// dates with weekday names, the search deep link and when the price
// was found.
func RenderDigest(searchName string, flights []entity.FormattedFlight) string {
	if len(flights) == 0 {
		return ""
	}

	paragraphs := make([]string, 0, len(flights))
	for _, f := range flights {
		paragraphs = append(paragraphs, fmt.Sprintf(
			"%s - %s for %d rubles, %s (%s) - %s (%s): %s\nfound on %s",
			f.Origin,
			f.Destination,
			f.Price,
			f.DepartureDate,
			f.DepartureWeekday,
			f.ArrivalDate,
			f.ArrivalWeekday,
			f.Link,
			f.FoundAt.Format(foundAtLayout),
		))
	}

	return fmt.Sprintf("Flights found for %q search:\n\n%s", searchName, strings.Join(paragraphs, "\n\n"))
}
