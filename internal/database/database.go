package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"finance-dashboard/internal/config"
	"finance-dashboard/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const slowQueryThreshold = 200 * time.Millisecond

// DB is the remote store connection shared by the repositories
type DB struct {
	*gorm.DB
	config *config.DatabaseConfig
}

// schemaModels lists the tables the dashboard reads and writes
var schemaModels = []interface{}{
	&models.Profile{},
	&models.Account{},
	&models.Transaction{},
	&models.Goal{},
}

// ownerIndexes back the owner-scoped ordered list queries
var ownerIndexes = []string{
	"CREATE INDEX IF NOT EXISTS idx_accounts_owner_name ON accounts(owner_id, name)",
	"CREATE INDEX IF NOT EXISTS idx_transactions_owner_date ON transactions(owner_id, date DESC)",
	"CREATE INDEX IF NOT EXISTS idx_transactions_account_id ON transactions(account_id)",
	"CREATE INDEX IF NOT EXISTS idx_goals_owner_target_date ON goals(owner_id, target_date)",
}

// newGormLogger routes gorm's query log through slog
func newGormLogger(log *slog.Logger, level logger.LogLevel) logger.Interface {
	return logger.New(
		slog.NewLogLogger(log.With("component", "gorm").Handler(), slog.LevelDebug),
		logger.Config{
			SlowThreshold:             slowQueryThreshold,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
		},
	)
}

// New opens the Postgres connection and applies the pool settings
func New(cfg *config.DatabaseConfig, log *slog.Logger, logLevel logger.LogLevel) (*DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger:         newGormLogger(log, logLevel),
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxConnections)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	return &DB{DB: db, config: cfg}, nil
}

// AutoMigrate creates the dashboard tables from the gorm models
func (db *DB) AutoMigrate() error {
	return db.DB.AutoMigrate(schemaModels...)
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// CreateIndexes adds the list-query indexes. Failures are logged, not returned.
func (db *DB) CreateIndexes(ctx context.Context, log *slog.Logger) {
	for _, query := range ownerIndexes {
		if err := db.DB.WithContext(ctx).Exec(query).Error; err != nil {
			log.Warn("failed to create index", "query", query, "error", err)
		}
	}
}

// Initialize connects to the store and brings the schema up to date. SQL migrations run
// when AUTO_MIGRATE is set; gorm AutoMigrate covers development and migration failures.
func Initialize(ctx context.Context, cfg *config.Config, log *slog.Logger) (*DB, error) {
	logLevel := logger.Warn
	if cfg.IsDevelopment() {
		logLevel = logger.Info
	}

	db, err := New(&cfg.Database, log, logLevel)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	switch err := RunMigrationsIfEnabled(ctx, sqlDB, &cfg.Database); {
	case err != nil:
		log.Warn("migration runner failed, falling back to gorm AutoMigrate", "error", err)
		if err := db.AutoMigrate(); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	case !cfg.Database.AutoMigrate && cfg.IsDevelopment():
		if err := db.AutoMigrate(); err != nil {
			return nil, fmt.Errorf("failed to auto-migrate development schema: %w", err)
		}
	}

	db.CreateIndexes(ctx, log)

	log.Info("database initialized", "host", cfg.Database.Host, "database", cfg.Database.Name)
	return db, nil
}
