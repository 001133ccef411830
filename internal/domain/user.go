package domain

// User Model
type User struct {
	ID       uint   `gorm:"primaryKey"`            // Primary key
	UserName string `gorm:"uniqueIndex;not null"`  // Unique username
	Name     string // Display name
	Email    string // Email, mirrors the username at registration
	Password string `gorm:"not null"`              // Hashed password
	Roles    []Role `gorm:"many2many:user_roles;"` // Assigned roles
}
