package database

import (
	"fmt"
	"log"
	"time"

	"sales-analytics/internal/config"
	"sales-analytics/internal/models"

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
		Logger: logger.Default.LogMode(logger.Warn),
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
		&models.SalesTransaction{},
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

// CreateIndexes creates the query-path indexes on the sales fact table.
// Safe to call repeatedly; used as a fallback when SQL migrations are
// disabled and the schema came from AutoMigrate.
func (db *DB) CreateIndexes() error {
	queries := []string{
		"CREATE INDEX IF NOT EXISTS idx_sales_customer_name ON sales_transactions(customer_name)",
		"CREATE INDEX IF NOT EXISTS idx_sales_phone_number ON sales_transactions(phone_number)",
		"CREATE INDEX IF NOT EXISTS idx_sales_date ON sales_transactions(date)",
		"CREATE INDEX IF NOT EXISTS idx_sales_customer_region ON sales_transactions(customer_region)",
		"CREATE INDEX IF NOT EXISTS idx_sales_gender ON sales_transactions(gender)",
		"CREATE INDEX IF NOT EXISTS idx_sales_product_category ON sales_transactions(product_category)",
		"CREATE INDEX IF NOT EXISTS idx_sales_payment_method ON sales_transactions(payment_method)",
		"CREATE INDEX IF NOT EXISTS idx_sales_age ON sales_transactions(age)",
		"CREATE INDEX IF NOT EXISTS idx_sales_tags ON sales_transactions USING GIN(tags)",
		"CREATE INDEX IF NOT EXISTS idx_sales_date_region_category ON sales_transactions(date, customer_region, product_category)",
	}

	for _, query := range queries {
		if err := db.DB.Exec(query).Error; err != nil {
			log.Printf("Failed to create index: %s, error: %v", query, err)
		}
	}

	return nil
}

// Initialize creates and configures the database connection
func Initialize(cfg *config.Config) (*DB, error) {
	db, err := New(&cfg.Database)
	if err != nil {
		return nil, err
	}

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

	return db, nil
}
