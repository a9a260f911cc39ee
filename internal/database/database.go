package database

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/dapurkita/backoffice/internal/config"
	"github.com/dapurkita/backoffice/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func Connect(cfg *config.Config) error {
	var err error
	DB, err = gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	slog.Info("database connected")
	return nil
}

// Migrate runs AutoMigrate for all models and installs the partial unique
// index that guarantees at most one SUPER_ADMIN row exists.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Identity{},
		&models.RefreshToken{},
		&models.User{},
		&models.PendingUser{},
		&models.JenisPaket{},
		&models.Makanan{},
		&models.Setting{},
		&models.SystemLog{},
	); err != nil {
		return err
	}

	// The bootstrap promotion relies on this index: the first transaction
	// to insert/update a SUPER_ADMIN row wins, a concurrent second one
	// fails the uniqueness check and the user stays ADMIN.
	return db.Exec(
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_users_single_super_admin ON users (role) WHERE role = 'SUPER_ADMIN'",
	).Error
}

func Ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
