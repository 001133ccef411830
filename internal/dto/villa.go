package dto

import "villa_api/internal/domain" // Domain models

// VillaDTO is the wire-facing shape of a villa listing.
// Timestamps stay server-side and are never exposed.
type VillaDTO struct {
	ID        uint    `json:"id"`                           // Villa id
	Name      string  `json:"name" binding:"required"`      // Villa name
	Details   string  `json:"details"`                      // Description
	Rate      float64 `json:"rate"`                         // Nightly rate
	Sqft      int     `json:"sqft"`                         // Square footage
	Occupancy int     `json:"occupancy"`                    // Maximum occupancy
	ImageUrl  string  `json:"imageUrl"`                     // Image URL
	Amenity   string  `json:"amenity"`                      // Amenity text
}

// VillaCreateDTO is the request body for creating a villa (no id yet)
type VillaCreateDTO struct {
	Name      string  `json:"name" binding:"required,max=100"` // Villa name, must be provided
	Details   string  `json:"details"`                         // Description
	Rate      float64 `json:"rate"`                            // Nightly rate
	Sqft      int     `json:"sqft"`                            // Square footage
	Occupancy int     `json:"occupancy"`                       // Maximum occupancy
	ImageUrl  string  `json:"imageUrl"`                        // Image URL
	Amenity   string  `json:"amenity"`                         // Amenity text
}

// VillaUpdateDTO is the request body for full and partial updates
type VillaUpdateDTO struct {
	ID        uint    `json:"id" binding:"required"`           // Must match the path id
	Name      string  `json:"name" binding:"required,max=100"` // Villa name, must be provided
	Details   string  `json:"details"`                         // Description
	Rate      float64 `json:"rate"`                            // Nightly rate
	Sqft      int     `json:"sqft" binding:"required"`         // Square footage
	Occupancy int     `json:"occupancy" binding:"required"`    // Maximum occupancy
	ImageUrl  string  `json:"imageUrl"`                        // Image URL
	Amenity   string  `json:"amenity"`                         // Amenity text
}

// ToVillaDTO maps a persisted villa onto its wire shape
func ToVillaDTO(v *domain.Villa) VillaDTO {
	return VillaDTO{
		ID:        v.ID,        // Villa id
		Name:      v.Name,      // Villa name
		Details:   v.Details,   // Description
		Rate:      v.Rate,      // Nightly rate
		Sqft:      v.Sqft,      // Square footage
		Occupancy: v.Occupancy, // Maximum occupancy
		ImageUrl:  v.ImageUrl,  // Image URL
		Amenity:   v.Amenity,   // Amenity text
	}
}

// ToVillaDTOs maps a slice of villas onto their wire shapes
func ToVillaDTOs(villas []domain.Villa) []VillaDTO {
	dtos := make([]VillaDTO, len(villas))
	for i := range villas {
		dtos[i] = ToVillaDTO(&villas[i]) // Map each villa
	}
	return dtos
}

// FromVillaCreateDTO builds a new villa entity; the id and timestamps are
// owned by the persistence layer.
func FromVillaCreateDTO(d *VillaCreateDTO) domain.Villa {
	return domain.Villa{
		Name:      d.Name,      // Villa name
		Details:   d.Details,   // Description
		Rate:      d.Rate,      // Nightly rate
		Sqft:      d.Sqft,      // Square footage
		Occupancy: d.Occupancy, // Maximum occupancy
		ImageUrl:  d.ImageUrl,  // Image URL
		Amenity:   d.Amenity,   // Amenity text
	}
}

// ToVillaUpdateDTO projects a persisted villa onto the update shape, used as
// the base document for JSON patch.
func ToVillaUpdateDTO(v *domain.Villa) VillaUpdateDTO {
	return VillaUpdateDTO{
		ID:        v.ID,        // Villa id
		Name:      v.Name,      // Villa name
		Details:   v.Details,   // Description
		Rate:      v.Rate,      // Nightly rate
		Sqft:      v.Sqft,      // Square footage
		Occupancy: v.Occupancy, // Maximum occupancy
		ImageUrl:  v.ImageUrl,  // Image URL
		Amenity:   v.Amenity,   // Amenity text
	}
}

// ApplyVillaUpdateDTO maps the update shape onto an existing entity,
// leaving timestamps to GORM.
func ApplyVillaUpdateDTO(v *domain.Villa, d *VillaUpdateDTO) {
	v.ID = d.ID               // Villa id
	v.Name = d.Name           // Villa name
	v.Details = d.Details     // Description
	v.Rate = d.Rate           // Nightly rate
	v.Sqft = d.Sqft           // Square footage
	v.Occupancy = d.Occupancy // Maximum occupancy
	v.ImageUrl = d.ImageUrl   // Image URL
	v.Amenity = d.Amenity     // Amenity text
}
