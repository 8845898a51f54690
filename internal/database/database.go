package database

import (
	"fmt"
	"log"
	"time"

	"rental-backoffice/internal/config"
	"rental-backoffice/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DB struct {
	*gorm.DB
	config *config.DatabaseConfig
}

func New(cfg *config.DatabaseConfig) (*DB, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
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

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{
		DB:     db,
		config: cfg,
	}, nil
}

func (db *DB) AutoMigrate() error {
	return db.DB.AutoMigrate(
		&models.Owner{},
		&models.OwnerWallet{},
		&models.Property{},
		&models.Booking{},
		&models.Expense{},
		&models.Payout{},
		&models.Statement{},
		&models.StatementLine{},
	)
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (db *DB) HealthCheck() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func (db *DB) Transaction(fn func(*gorm.DB) error) error {
	return db.DB.Transaction(fn)
}

func (db *DB) CreateIndexes() error {
	queries := []string{
		// Owner indexes
		"CREATE INDEX IF NOT EXISTS idx_owners_email ON owners(email)",
		"CREATE INDEX IF NOT EXISTS idx_owners_deleted_at ON owners(deleted_at) WHERE deleted_at IS NULL",
		// Property indexes
		"CREATE INDEX IF NOT EXISTS idx_properties_owner_id ON properties(owner_id)",
		// Booking indexes
		"CREATE INDEX IF NOT EXISTS idx_bookings_owner_id ON bookings(owner_id)",
		"CREATE INDEX IF NOT EXISTS idx_bookings_property_id ON bookings(property_id)",
		"CREATE INDEX IF NOT EXISTS idx_bookings_check_in_date ON bookings(check_in_date)",
		"CREATE INDEX IF NOT EXISTS idx_bookings_status ON bookings(status)",
		"CREATE INDEX IF NOT EXISTS idx_bookings_owner_checkin ON bookings(owner_id, check_in_date)",
		// Expense indexes
		"CREATE INDEX IF NOT EXISTS idx_expenses_owner_id ON expenses(owner_id)",
		"CREATE INDEX IF NOT EXISTS idx_expenses_property_id ON expenses(property_id)",
		"CREATE INDEX IF NOT EXISTS idx_expenses_date ON expenses(date)",
		"CREATE INDEX IF NOT EXISTS idx_expenses_owner_date ON expenses(owner_id, date)",
		// Wallet indexes
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_owner_wallets_owner_id ON owner_wallets(owner_id)",
		// Payout indexes
		"CREATE INDEX IF NOT EXISTS idx_payouts_owner_id ON payouts(owner_id)",
		"CREATE INDEX IF NOT EXISTS idx_payouts_created_at ON payouts(created_at)",
		// Statement indexes
		"CREATE INDEX IF NOT EXISTS idx_statements_owner_id ON statements(owner_id)",
		"CREATE INDEX IF NOT EXISTS idx_statements_status ON statements(status)",
		"CREATE INDEX IF NOT EXISTS idx_statements_period_start ON statements(period_start)",
		"CREATE INDEX IF NOT EXISTS idx_statements_owner_period ON statements(owner_id, period_start)",
		"CREATE INDEX IF NOT EXISTS idx_statement_lines_statement_id ON statement_lines(statement_id)",
		"CREATE INDEX IF NOT EXISTS idx_statement_lines_type ON statement_lines(type)",
	}

	for _, query := range queries {
		if err := db.DB.Exec(query).Error; err != nil {
			log.Printf("Failed to create index: %s, error: %v", query, err)
		}
	}

	return nil
}

// Initialize creates and configures the database connection
func Initialize(cfg *config.Config) (*gorm.DB, error) {
	db, err := New(&cfg.Database)
	if err != nil {
		return nil, err
	}

	// Get the underlying sql.DB for migration runner
	sqlDB, err := db.DB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	// Run SQL-based migrations using golang-migrate if enabled
	if err := RunMigrationsIfEnabled(sqlDB); err != nil {
		log.Printf("Warning: migration runner failed: %v", err)
		log.Println("Falling back to GORM AutoMigrate...")

		if err := db.AutoMigrate(); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	if err := db.CreateIndexes(); err != nil {
		log.Printf("Warning: failed to create some indexes: %v", err)
	}

	log.Println("Database initialized successfully")

	return db.DB, nil
}
