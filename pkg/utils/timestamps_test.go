package utils

import (
	"errors"
	"testing"
	"time"

	"flightwatch-service/internal/domain/entity"
)

func TestParseFoundAt(t *testing.T) {
	tests := []struct {
		value string
		want  time.Time
	}{
		{"2019-11-03T09:37:26", time.Date(2019, 11, 3, 9, 37, 26, 0, time.UTC)},
		{"2019-11-03T12:28:45.684687", time.Date(2019, 11, 3, 12, 28, 45, 684687000, time.UTC)},
	}

	for _, tt := range tests {
		got, err := ParseFoundAt(tt.value)
		if err != nil {
			t.Errorf("ParseFoundAt(%q) returned error: %v", tt.value, err)
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("ParseFoundAt(%q) = %v; want %v", tt.value, got, tt.want)
		}
	}
}

func TestParseFoundAtMalformed(t *testing.T) {
	for _, value := range []string{"", "2019-11-03", "03/11/2019 09:37", "2019-11-03 09:37:26"} {
		_, err := ParseFoundAt(value)
		if !errors.Is(err, entity.ErrMalformedTimestamp) {
			t.Errorf("ParseFoundAt(%q) = %v; want ErrMalformedTimestamp", value, err)
		}
	}
}
