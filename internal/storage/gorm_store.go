package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Record is a single key-value row. Values are stored as JSON text so the
// same table serves every logical record of the application.
type Record struct {
	Key   string `gorm:"primaryKey;type:varchar(255)"`
	Value string `gorm:"type:text"`
}

// TableName overrides the default GORM table name.
func (Record) TableName() string {
	return "kv_records"
}

// GormStore is a GORM implementation of Store. It works against any dialect
// GORM supports; the application uses the SQLite and PostgreSQL drivers.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore creates a new GormStore and migrates the backing table.
func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&Record{}); err != nil {
		return nil, fmt.Errorf("failed to migrate kv_records: %w", err)
	}
	return &GormStore{db: db}, nil
}

// Get decodes the value stored under key into out. Absent keys and corrupt
// values both report false without an error.
func (s *GormStore) Get(key string, out interface{}) (bool, error) {
	var rec Record
	if err := s.db.First(&rec, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read key %s: %w", key, err)
	}
	if err := json.Unmarshal([]byte(rec.Value), out); err != nil {
		log.Printf("Discarding corrupt value under key %s: %v", key, err)
		return false, nil
	}
	return true, nil
}

// Set encodes value and upserts it under key.
func (s *GormStore) Set(key string, value interface{}) error {
	body, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode value for key %s: %w", key, err)
	}
	rec := Record{Key: key, Value: string(body)}
	err = s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&rec).Error
	if err != nil {
		return fmt.Errorf("failed to store key %s: %w", key, err)
	}
	return nil
}

// Remove deletes the entry under key. Deleting an absent key succeeds.
func (s *GormStore) Remove(key string) error {
	if err := s.db.Delete(&Record{}, "key = ?", key).Error; err != nil {
		return fmt.Errorf("failed to remove key %s: %w", key, err)
	}
	return nil
}
