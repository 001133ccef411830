package repository

import (
	"strings" // String manipulation

	"villa_api/internal/domain" // Domain models

	"gorm.io/gorm" // GORM ORM library
)

// VillaRepository adds villa-specific lookups on top of the generic contract
type VillaRepository interface {
	Repository[domain.Villa]                          // Generic CRUD
	GetByID(id uint) (*domain.Villa, error)           // Lookup by primary key
	GetByName(name string) (*domain.Villa, error)     // Case-insensitive name lookup
}

// villaRepository is the GORM-backed implementation of VillaRepository
type villaRepository struct {
	Repository[domain.Villa] // Embedded generic repository
}

// NewVillaRepository creates a villa repository over the given database
func NewVillaRepository(db *gorm.DB) VillaRepository {
	return &villaRepository{Repository: NewRepository[domain.Villa](db)}
}

// GetByID fetches a villa by its primary key, nil when absent
func (r *villaRepository) GetByID(id uint) (*domain.Villa, error) {
	return r.Get("id = ?", id)
}

// GetByName fetches a villa by name, compared case-insensitively. Used as the
// fast-path duplicate check before insert; the unique index on name remains
// the authoritative guard.
func (r *villaRepository) GetByName(name string) (*domain.Villa, error) {
	return r.Get("LOWER(name) = ?", strings.ToLower(name))
}
