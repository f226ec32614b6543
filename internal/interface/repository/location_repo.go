package repository

import (
	"context"
	"time"

	"flightwatch-service/internal/domain/entity"
	"flightwatch-service/internal/domain/repository"

	"gorm.io/gorm"
)

// GormLocationRepository implements the LocationRepository interface
type GormLocationRepository struct {
	db *gorm.DB
}

// NewGormLocationRepository creates a new GORM location repository
func NewGormLocationRepository(db *gorm.DB) repository.LocationRepository {
	return &GormLocationRepository{
		db: db,
	}
}

// Locations GORM model for database mapping
type Locations struct {
	gorm.Model
	ID          uint           `gorm:"primaryKey"`
	Code        string         `gorm:"column:code;unique"`
	CityName    string         `gorm:"column:city_name"`
	CountryName string         `gorm:"column:country_name"`
	DeletedAt   gorm.DeletedAt `gorm:"index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName overrides the default table name
func (Locations) TableName() string {
	return "m_locations"
}

// GetByCode finds a location by IATA code
func (r *GormLocationRepository) GetByCode(ctx context.Context, code string) (*entity.Location, error) {
	var location Locations
	result := r.db.WithContext(ctx).Unscoped().Where("code = ?", code).First(&location)

	if result.Error != nil {
		return nil, result.Error
	}

	return toLocationEntity(&location), nil
}

// GetAll returns the full lookup table, used to warm the formatter cache
func (r *GormLocationRepository) GetAll(ctx context.Context) ([]*entity.Location, error) {
	var locations []Locations
	result := r.db.WithContext(ctx).Find(&locations)

	if result.Error != nil {
		return nil, result.Error
	}

	entities := make([]*entity.Location, 0, len(locations))
	for i := range locations {
		entities = append(entities, toLocationEntity(&locations[i]))
	}

	return entities, nil
}

// toLocationEntity converts the GORM model to a domain entity
func toLocationEntity(l *Locations) *entity.Location {
	return &entity.Location{
		ID:          l.ID,
		Code:        l.Code,
		CityName:    l.CityName,
		CountryName: l.CountryName,
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
		DeletedAt:   l.DeletedAt,
	}
}
