package utils

import (
	"fmt"
	"time"

	"flightwatch-service/internal/domain/entity"
)

// The provider reports found_at in two precisions, depending on which
// backend produced the record.
const (
	FoundAtLayout      = "2006-01-02T15:04:05"
	FoundAtLayoutMicro = "2006-01-02T15:04:05.000000"
)

// ParseFoundAt parses a flight's found_at value, accepting either
// whole-second or microsecond precision. Anything else is a malformed
// timestamp.
func ParseFoundAt(value string) (time.Time, error) {
	if t, err := time.Parse(FoundAtLayout, value); err == nil {
		return t, nil
	}
	if t, err := time.Parse(FoundAtLayoutMicro, value); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("%w: %q", entity.ErrMalformedTimestamp, value)
}
