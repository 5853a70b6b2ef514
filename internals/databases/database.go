package database

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"disco_backend/internals/configs"
	genreModel "disco_backend/internals/features/repertoire/genres/model"
	hallModel "disco_backend/internals/features/repertoire/halls/model"
	hostModel "disco_backend/internals/features/repertoire/hosts/model"
	scheduleModel "disco_backend/internals/features/repertoire/schedule/model"
	trackModel "disco_backend/internals/features/repertoire/tracks/model"
	weekdayModel "disco_backend/internals/features/repertoire/weekdays/model"
)

// Connect opens the Postgres pool and returns the handle. The handle is
// injected into controllers; nothing in this package keeps a global copy.
func Connect(cfg *configs.Config) (*gorm.DB, error) {
	log.Println("🔌 Connecting to PostgreSQL...")

	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=disco_backend&options=-c statement_timeout=3000",
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBHost,
		cfg.DBPort,
		cfg.DBName,
		cfg.DBSSLMode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // safe with PgBouncer transaction pooling
	}), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	log.Println("✅ DB connected.")
	return db, nil
}

func TunePool(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// WarmUp pings in the background so the pool is primed before first traffic.
func WarmUp(db *gorm.DB) {
	go func() {
		time.Sleep(500 * time.Millisecond)
		if err := ping(db); err != nil {
			log.Printf("warm-up ping err: %v", err)
		}
	}()
}

// Migrate registers the six repertoire tables. FK constraints (including the
// cascade deletes) live in the model tags; AutoMigrate creates them.
func Migrate(db *gorm.DB) error {
	log.Println("Running database migrations...")
	return db.AutoMigrate(
		&genreModel.Genre{},
		&trackModel.MusicTrack{},
		&hallModel.Hall{},
		&hostModel.Host{},
		&weekdayModel.WeekDay{},
		&scheduleModel.Repertoire{},
	)
}

func ping(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
