package db

import (
	"villa_api/internal/domain" // Importing domain models

	"github.com/sirupsen/logrus"

	"gorm.io/driver/mysql" // MySQL driver for GORM
	"gorm.io/gorm"         // GORM ORM library
)

// Migrate performs automatic migration for the database schema and seeds the
// baseline data
func Migrate(dsn string) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{}) // Open a connection to the database
	if err != nil {
		logrus.Fatalf("failed to connect database: %v", err) // Log fatal error if connection fails
	}
	// AutoMigrate will create tables, missing foreign keys, constraints, columns and indexes
	if err := AutoMigrate(db); err != nil {
		logrus.Fatalf("migration failed: %v", err) // Log fatal error if migration fails
	}
	// Seed the known roles and the starter villa listings
	if err := Seed(db); err != nil {
		logrus.Fatalf("seeding failed: %v", err) // Log fatal error if seeding fails
	}
	logrus.Info("Migration completed.") // Log successful migration
}

// AutoMigrate creates or updates the schema for every entity collection
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&domain.Villa{}, &domain.VillaNumber{}, &domain.User{}, &domain.Role{})
}

// Seed inserts the known roles and the starter villa listings. Safe to run
// repeatedly, existing rows are left untouched.
func Seed(db *gorm.DB) error {
	// Roles referenced by registration and the admin middleware
	for _, name := range []string{domain.RoleAdmin, domain.RoleCustomer} {
		if err := db.Where(domain.Role{Name: name}).FirstOrCreate(&domain.Role{Name: name}).Error; err != nil {
			return err // Role seeding failure
		}
	}
	// Starter villa listings
	villas := []domain.Villa{
		{Name: "Roial Villa", Details: "details test", Occupancy: 5, Rate: 200, Sqft: 550},
		{Name: "Luxury Villa", Details: "details test", Occupancy: 8, Rate: 500, Sqft: 1200},
		{Name: "Beachfront Villa", Details: "details test", Occupancy: 6, Rate: 300, Sqft: 800},
		{Name: "Private Villa", Details: "details test", Occupancy: 4, Rate: 150, Sqft: 450},
		{Name: "Honeymoon Villa", Details: "details test", Occupancy: 2, Rate: 100, Sqft: 350},
		{Name: "Mountain View Villa", Details: "details test", Occupancy: 7, Rate: 400, Sqft: 1000},
	}
	for _, v := range villas {
		if err := db.Where(domain.Villa{Name: v.Name}).FirstOrCreate(&v).Error; err != nil {
			return err // Villa seeding failure
		}
	}
	return nil
}
