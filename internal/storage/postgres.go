package storage

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// KVBlob is one persisted collection. The schema is deliberately a key-value
// table rather than relational rows: the storage contract is whole-collection
// JSON replace under three fixed keys.
type KVBlob struct {
	Key   string `gorm:"primaryKey;type:varchar(64)"`
	Value []byte `gorm:"type:bytea;not null"`
}

// TableName overrides gorm's pluralized default.
func (KVBlob) TableName() string { return "kv_blobs" }

// PostgresConfig contains the database connection parameters.
type PostgresConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Database string
	SSLMode  string
}

// PostgresDriver stores collection blobs in a Postgres table via GORM.
type PostgresDriver struct {
	db *gorm.DB
}

// NewPostgresDriver connects to Postgres, configures the connection pool and
// migrates the blob table.
func NewPostgresDriver(config *PostgresConfig) (*PostgresDriver, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		config.Host,
		config.Port,
		config.User,
		config.Password,
		config.Database,
		config.SSLMode,
	)

	gormConfig := &gorm.Config{
		Logger: logger.New(
			log.New(os.Stdout, "\r\n", log.LstdFlags),
			logger.Config{
				SlowThreshold:             time.Second,
				LogLevel:                  logger.Silent,
				IgnoreRecordNotFoundError: true,
				Colorful:                  true,
			},
		),
	}

	db, err := gorm.Open(postgres.Open(dsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := db.AutoMigrate(&KVBlob{}); err != nil {
		return nil, fmt.Errorf("failed to migrate kv_blobs table: %w", err)
	}

	return &PostgresDriver{db: db}, nil
}

// Load returns the blob stored under key, or ErrNotFound.
func (d *PostgresDriver) Load(ctx context.Context, key string) ([]byte, error) {
	var row KVBlob
	err := d.db.WithContext(ctx).First(&row, "key = ?", key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("loading %s: %w", key, err)
	}
	return row.Value, nil
}

// Save upserts the blob under key in a single statement.
func (d *PostgresDriver) Save(ctx context.Context, key string, value []byte) error {
	row := KVBlob{Key: key, Value: value}
	err := d.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("saving %s: %w", key, err)
	}
	return nil
}
