package database

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	config "github.com/6ixminds/labs_backend/configs"
	"github.com/6ixminds/labs_backend/models"
	"github.com/6ixminds/labs_backend/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func Connect(cfg config.Config) (*gorm.DB, error) {
	logLevel := logger.Warn
	if !cfg.IsProduction() {
		logLevel = logger.Info
	}

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DatabaseURL,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		PrepareStmt:                              false,
		SkipDefaultTransaction:                   true,
		DisableForeignKeyConstraintWhenMigrating: true,
		TranslateError:                           true,
		Logger:                                   logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	slog.Info("database connected")
	return db, nil
}

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Admin{},
		&models.Certificate{},
		&models.Internship{},
		&models.Project{},
		&models.TeamMember{},
		&models.Message{},
		&models.ShowcaseItem{},
	)
	if err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}
	slog.Info("database migration successful")
	return nil
}

// SeedAdmin creates the configured super-admin account when it does not exist yet.
func SeedAdmin(ctx context.Context, admins repository.AdminRepository, cfg config.Config) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		return fmt.Errorf("ADMIN_EMAIL and ADMIN_PASSWORD are required to seed the admin user")
	}

	email := strings.ToLower(strings.TrimSpace(cfg.AdminEmail))
	count, err := admins.CountByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("check for admin user: %w", err)
	}
	if count > 0 {
		slog.Info("admin user already exists", "email", email)
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	admin := models.Admin{
		FullName: cfg.AdminFullName,
		Email:    email,
		Password: string(hashedPassword),
		Role:     models.RoleSuperAdmin,
		IsActive: true,
	}
	if err := admins.Create(ctx, &admin); err != nil {
		return fmt.Errorf("seed admin user: %w", err)
	}

	slog.Info("admin user seeded", "email", admin.Email)
	return nil
}
