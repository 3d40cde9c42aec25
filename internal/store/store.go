// Package store persists the session defaults (issuer identity and payment
// instructions), the only state that outlives a session. One fixed-key
// record, JSON payload, overwrite on every save.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/diewo77/invoice-studio/internal/models"
)

// DefaultsKey is the fixed identifier the defaults live under.
const DefaultsKey = "invoice-studio:defaults"

// Store reads and writes the persisted session defaults.
type Store interface {
	Load() (models.SessionDefaults, error)
	Save(models.SessionDefaults) error
}

// DefaultsRecord is the stored row. Payload is the JSON-encoded defaults;
// no schema versioning, a malformed payload is treated as absent.
type DefaultsRecord struct {
	Key       string `gorm:"primaryKey;size:64"`
	Payload   string `gorm:"not null"`
	UpdatedAt time.Time
}

// GormStore keeps the defaults in a sqlite file by default, or postgres when
// the DSN says so.
type GormStore struct {
	db *gorm.DB
}

// Open connects per the DSN, migrates the defaults table, and returns the
// store.
func Open(dsn string) (*GormStore, error) {
	dsn = NormalizeDSN(dsn)
	if dsn == "" {
		return nil, errors.New("empty defaults DSN")
	}
	var dial gorm.Dialector
	if IsPostgresDSN(dsn) {
		dial = postgres.Open(dsn)
	} else {
		dial = sqlite.Open(dsn)
	}
	logLevel := logger.Silent
	if os.Getenv("DB_DEBUG") == "1" {
		logLevel = logger.Info
	}
	db, err := gorm.Open(dial, &gorm.Config{Logger: logger.Default.LogMode(logLevel)})
	if err != nil {
		return nil, fmt.Errorf("open defaults store: %w", err)
	}
	if err := db.AutoMigrate(&DefaultsRecord{}); err != nil {
		return nil, fmt.Errorf("automigrate defaults: %w", err)
	}
	return &GormStore{db: db}, nil
}

// NewGormStore wraps an already-open connection; the caller migrates.
func NewGormStore(db *gorm.DB) *GormStore { return &GormStore{db: db} }

// Load returns the stored defaults. Absence and an unreadable payload both
// yield empty defaults without an error; only the database failing is one.
func (s *GormStore) Load() (models.SessionDefaults, error) {
	var rec DefaultsRecord
	err := s.db.First(&rec, "key = ?", DefaultsKey).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.SessionDefaults{}, nil
	}
	if err != nil {
		return models.SessionDefaults{}, fmt.Errorf("load defaults: %w", err)
	}
	var d models.SessionDefaults
	if err := json.Unmarshal([]byte(rec.Payload), &d); err != nil {
		log.Printf("defaults payload unreadable, starting empty: %v", err)
		return models.SessionDefaults{}, nil
	}
	return d, nil
}

// Save overwrites the stored defaults.
func (s *GormStore) Save(d models.SessionDefaults) error {
	payload, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("encode defaults: %w", err)
	}
	rec := DefaultsRecord{Key: DefaultsKey, Payload: string(payload)}
	if err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
	}).Create(&rec).Error; err != nil {
		return fmt.Errorf("save defaults: %w", err)
	}
	return nil
}
