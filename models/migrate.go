package models

import (
	"log"

	"gorm.io/gorm"
)

// AutoMigrate creates or updates every store table, parents first.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&User{},
		&Customer{},
		&Collection{},
		&Product{},
		&Review{},
		&Cart{},
		&CartItem{},
		&Order{},
		&OrderItem{},
		&ActivityLog{},
		&LoginEvent{},
	); err != nil {
		return err
	}
	log.Println("✅ Database synced successfully")
	return nil
}
