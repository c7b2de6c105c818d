package config

import (
	"fmt"
	"os"

	"backend/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	if err := godotenv.Load(); err != nil {
		Log.Warn("no .env file found, relying on process environment")
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		Log.Fatalw("failed to connect to database", "error", err)
	}

	if err := Migrate(DB); err != nil {
		Log.Fatalw("auto-migrate failed", "error", err)
	}
}

// Migrate is split out of InitDB so tests can run the same schema against
// their own database handle.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Informant{},
		&models.Menu{},
		&models.MenuIngredient{},
		&models.MenuStep{},
		&models.MenuPhoto{},
		&models.MasterIngredient{},
	)
}
