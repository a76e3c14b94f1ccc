package repository

import "gorm.io/gorm"

// AutoMigrate creates the tables owned by this package.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel{},
		&ongModel{},
		&jovemModel{},
		&serviceModel{},
		&bookingModel{},
		&profitConfigModel{},
	)
}
