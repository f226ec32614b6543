package entity

import (
	"errors"
	"fmt"
)

// ErrInvalidPolicy marks a malformed or contradictory search: missing
// fields for the chosen trip type, both or neither date source given,
// or a scan window that already passed. Never retried; the search must
// be corrected at the source.
var ErrInvalidPolicy = errors.New("invalid search policy")

// ErrMalformedTimestamp marks a flight record whose found_at value
// matches neither accepted precision. Fatal for the batch, not
// silently skipped.
var ErrMalformedTimestamp = errors.New("malformed found_at timestamp")

func newInvalidPolicy(reason string) error {
	return fmt.Errorf("%w: %s", ErrInvalidPolicy, reason)
}
