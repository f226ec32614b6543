package entity

import (
	"time"

	"gorm.io/gorm"
)

// Location maps an IATA city or airport code to display names.
type Location struct {
	ID          uint
	Code        string
	CityName    string
	CountryName string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt
}
