package services

import (
	"fmt"
	"strings"
	"testing"

	"backend/config"
	"backend/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a per-test in-memory database with the production schema.
// Connections are capped at one so goroutine tests exercise our conflict
// handling instead of SQLITE_BUSY.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap test db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := config.Migrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func seedInformant(t *testing.T, db *gorm.DB, code, name, creator string) *models.Informant {
	t.Helper()
	inf := &models.Informant{CodeSv: code, FullName: name, RefSvCode: creator}
	if err := db.Create(inf).Error; err != nil {
		t.Fatalf("seed informant: %v", err)
	}
	return inf
}

func seedMenu(t *testing.T, db *gorm.DB, name string, informantID uint, owner string) *models.Menu {
	t.Helper()
	menu := &models.Menu{Name: name, Category: models.CategorySavory, RefInformantID: informantID, RefSvCode: owner}
	if err := db.Create(menu).Error; err != nil {
		t.Fatalf("seed menu: %v", err)
	}
	return menu
}
