package domain

import "time"

// Villa Model
type Villa struct {
	ID        uint      `gorm:"primaryKey"`           // Primary key
	Name      string    `gorm:"uniqueIndex;not null"` // Unique villa name, uniqueness also pre-checked case-insensitively
	Details   string    // Free-form description
	Rate      float64   // Nightly rate
	Sqft      int       // Square footage
	Occupancy int       // Maximum occupancy
	ImageUrl  string    // Listing image URL
	Amenity   string    // Amenity text
	CreatedAt time.Time `gorm:"autoCreateTime"` // Timestamp of creation
	UpdatedAt time.Time `gorm:"autoUpdateTime"` // Timestamp of last update
}
