package entity

import (
	"time"
)

// DateLayout is the canonical date form used across the system: search
// windows, provider dates and deep links all speak YYYY-MM-DD.
const DateLayout = "2006-01-02"

// DatePair is a candidate (departure, return) window a trip could
// occupy. Departure is always strictly before Return.
type DatePair struct {
	Departure time.Time
	Return    time.Time
}

// Key renders the pair in its canonical string form. The flight filter
// matches provider date strings against these keys exactly, with no
// date-equivalence normalization.
func (p DatePair) Key() string {
	return p.Departure.Format(DateLayout) + "|" + p.Return.Format(DateLayout)
}
