package repository

import (
	"villa_api/internal/domain" // Domain models

	"gorm.io/gorm" // GORM ORM library
)

// VillaNumberRepository adds number-keyed lookups on top of the generic contract
type VillaNumberRepository interface {
	Repository[domain.VillaNumber]                          // Generic CRUD
	GetByNumber(villaNo uint) (*domain.VillaNumber, error)  // Lookup by room number
}

// villaNumberRepository is the GORM-backed implementation of VillaNumberRepository
type villaNumberRepository struct {
	Repository[domain.VillaNumber] // Embedded generic repository
}

// NewVillaNumberRepository creates a villa number repository over the given database
func NewVillaNumberRepository(db *gorm.DB) VillaNumberRepository {
	return &villaNumberRepository{Repository: NewRepository[domain.VillaNumber](db)}
}

// GetByNumber fetches a villa number by its room number, nil when absent
func (r *villaNumberRepository) GetByNumber(villaNo uint) (*domain.VillaNumber, error) {
	return r.Get("villa_no = ?", villaNo)
}
