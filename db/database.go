package db

import (
	"log"
	"os"
	"path/filepath"

	"supermall/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Init opens the database at the given path and migrates the schema.
// The returned handle is passed to the routers; there is no package-level
// connection.
func Init(dbPath string) (*gorm.DB, error) {
	// Ensure the directory exists (create if it doesn't)
	dir := filepath.Dir(dbPath)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}
	}

	database, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	log.Println("Database connected at", dbPath)

	if err := Migrate(database); err != nil {
		return nil, err
	}

	return database, nil
}

// Migrate runs the schema migration for every model.
func Migrate(database *gorm.DB) error {
	return database.AutoMigrate(
		&models.User{}, &models.Category{}, &models.Floor{},
		&models.Shop{}, &models.Product{}, &models.Offer{},
	)
}
