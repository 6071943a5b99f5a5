package models

import "gorm.io/gorm"

// Migrate creates or updates the schema for every model in the system.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Trip{},
		&Activity{},
		&TripMember{},
	)
}
