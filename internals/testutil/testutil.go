// Package testutil holds shared helpers for database-backed tests. Tests
// using it skip unless TEST_DATABASE_URL points at a disposable Postgres.
package testutil

import (
	"os"
	"testing"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	database "disco_backend/internals/databases"
)

// OpenTestDB connects, migrates the repertoire schema and truncates every
// table so each test starts clean.
func OpenTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping database test")
	}

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	if err := db.Exec(
		`TRUNCATE repertoire, music_tracks, genres, halls, hosts, week_days RESTART IDENTITY CASCADE`,
	).Error; err != nil {
		t.Fatalf("truncate test db: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}
