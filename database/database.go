package database

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/eventlottery/eventlottery-backend/config"
	"github.com/eventlottery/eventlottery-backend/internal/auditlog"
)

// Connect opens the audit database. A blank DB_HOST returns nil and the
// server runs without an audit trail.
func Connect(cfg *config.Config) *gorm.DB {
	if cfg.DBHost == "" {
		log.Println("ℹ️  DB_HOST not set, audit logging disabled")
		return nil
	}

	log.Println("🔌 Connecting to PostgreSQL...")
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ Failed to connect DB: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("❌ Failed to get DB handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)

	log.Println("✅ DB connected.")
	return db
}

// Migrate creates or updates the audit tables
func Migrate(db *gorm.DB) error {
	log.Println("🔄 Running database migrations...")
	if err := db.AutoMigrate(&auditlog.AuditLog{}); err != nil {
		return err
	}
	log.Println("✅ Database migrations completed")
	return nil
}
