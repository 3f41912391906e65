package repository

import "gorm.io/gorm"

// AutoMigrate creates or updates the schema for every table the
// repositories use. Called from cmd wiring and from tests.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel{},
		&mediaItemModel{},
		&commentModel{},
		&tagModel{},
		&mediaTagLinkModel{},
	)
}
