package postgres

import (
	"fmt"

	driver "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"smart-grocery/internal/domain/entities"
)

// Open connects to PostgreSQL and migrates the schema. TranslateError is on
// so unique violations surface as gorm.ErrDuplicatedKey.
func Open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(driver.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates or updates the users, groceries and expenses tables,
// including the unique index on username.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entities.User{}, &entities.GroceryItem{}, &entities.Expense{}); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
