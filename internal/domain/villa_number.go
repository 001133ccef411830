package domain

import "time"

// VillaNumber Model
type VillaNumber struct {
	VillaNo        uint      `gorm:"primaryKey;autoIncrement:false"` // Client-supplied room number, primary key
	VillaID        uint      `gorm:"not null"`                       // Foreign key to Villa
	Villa          Villa     `gorm:"foreignKey:VillaID"`             // Owning villa
	SpecialDetails string    // Special details for this unit
	CreatedAt      time.Time `gorm:"autoCreateTime"` // Timestamp of creation
	UpdatedAt      time.Time `gorm:"autoUpdateTime"` // Timestamp of last update
}
