package database

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sangkips/temple-billing/internal/config"
	"github.com/sangkips/temple-billing/internal/domain/entity"
	"github.com/sangkips/temple-billing/internal/domain/enum"
	applogger "github.com/sangkips/temple-billing/internal/infrastructure/logger"
	"github.com/sangkips/temple-billing/pkg/utils"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Open connects to the configured database engine.
func Open(cfg *config.DatabaseConfig, log *zap.Logger) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case "postgres":
		dialector = postgres.New(postgres.Config{
			DSN:                  cfg.DSN(),
			PreferSimpleProtocol: true,
		})
	case "mysql":
		dialector = mysql.Open(cfg.DSN())
	case "sqlite":
		dialector = sqlite.Open(sqliteDSN(cfg.DSN()))
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         applogger.NewGormLogger(log, applogger.MapGormLogLevel(cfg.LogLevel), 200*time.Millisecond),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if cfg.Driver == "sqlite" {
		// one writer at a time; transactions are serialised by the pool
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
		sqlDB.SetConnMaxLifetime(time.Hour)
	}

	log.Info("Connected to database", zap.String("driver", cfg.Driver))
	return db, nil
}

func sqliteDSN(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_busy_timeout=5000"
}

// Models lists every persisted entity.
func Models() []any {
	return []any{
		&entity.User{},
		&entity.Pooja{},
		&entity.Billing{},
		&entity.ReceiptCounter{},
		&entity.Withdrawal{},
		&entity.Expense{},
		&entity.IdempotencyKey{},
	}
}

// AutoMigrate creates or updates the schema with gorm.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// Migrate brings the schema up to date. Postgres uses the versioned SQL
// migrations; sqlite and mysql use gorm's auto migration.
func Migrate(db *gorm.DB, driver string, log *zap.Logger) error {
	if driver != "postgres" {
		log.Info("Running auto migration", zap.String("driver", driver))
		return AutoMigrate(db)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	m, err := NewMigrator(sqlDB, log)
	if err != nil {
		return err
	}
	return m.Up()
}

// SeedAdmin creates the configured admin account when it does not exist yet.
func SeedAdmin(ctx context.Context, db *gorm.DB, admin config.AdminConfig, log *zap.Logger) error {
	if admin.Username == "" || admin.Password == "" {
		log.Warn("ADMIN_USERNAME or ADMIN_PASSWORD not set, skipping admin seed")
		return nil
	}

	var existing entity.User
	err := db.WithContext(ctx).Where("username = ?", admin.Username).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to look up admin user: %w", err)
	}

	hash, err := utils.HashPassword(admin.Password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	user := entity.User{Username: admin.Username, Password: hash, Role: enum.UserRoleAdmin}
	if err := db.WithContext(ctx).Create(&user).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	log.Info("Admin user created", zap.String("username", admin.Username))
	return nil
}
