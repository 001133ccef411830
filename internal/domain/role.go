package domain

// Role names known to the system, seeded at migration time
const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

// Role Model
type Role struct {
	ID   uint   `gorm:"primaryKey"`           // Primary key
	Name string `gorm:"uniqueIndex;not null"` // Role name: admin or customer
}
