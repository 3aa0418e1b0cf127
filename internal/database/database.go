package database

import (
	"fmt"
	"time"

	"github.com/WynstelleID/finance-bot/internal/logger"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Manager owns the database handle. It is constructed once at startup and
// passed to whatever needs storage; there is no package-level engine state.
type Manager struct {
	db  *gorm.DB
	url string
}

// NewManager opens a pooled connection for the given configuration.
func NewManager(config *Config) (*Manager, error) {
	m := &Manager{}
	if err := m.connect(config); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Manager) connect(config *Config) error {
	db, err := gorm.Open(postgres.Open(config.DSN()), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying DB: %w", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	m.db = db
	m.url = config.URL()
	return nil
}

// Reconfigure replaces the connection factory with one built from the given
// configuration. This is the only supported way to repoint the manager at a
// different database after startup.
func (m *Manager) Reconfigure(config *Config) error {
	old, err := m.db.DB()
	if err == nil {
		defer old.Close()
	}
	return m.connect(config)
}

// RunMigrations applies pending SQL migrations from the migrations/ directory.
func (m *Manager) RunMigrations() error {
	logger.Get().Info("Running database migrations...")

	mig, err := migrate.New("file://migrations", m.url)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	defer func() {
		srcErr, dbErr := mig.Close()
		if srcErr != nil {
			logger.Get().Warnf("migrate source close error: %v", srcErr)
		}
		if dbErr != nil {
			logger.Get().Warnf("migrate database close error: %v", dbErr)
		}
	}()

	if err := mig.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("migration failed: %w", err)
	}

	logger.Get().Info("Database migrations completed successfully")
	return nil
}

// Ping verifies the underlying connection is alive.
func (m *Manager) Ping() error {
	sqlDB, err := m.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// DB returns the underlying GORM database instance
func (m *Manager) DB() *gorm.DB {
	return m.db
}
