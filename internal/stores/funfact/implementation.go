package funfact

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethanbaker/states-api/pkg/funfact"
	"github.com/google/uuid"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store handles storage and retrieval of fun fact records using MySQL
type Store struct {
	db *gorm.DB
}

// NewStore creates a new fun fact store with MySQL connection
func NewStore(databaseURL string) (*Store, error) {
	db, err := gorm.Open(mysql.Open(databaseURL), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return NewStoreFromDB(db)
}

// NewStoreFromDB wraps an existing GORM connection and migrates the fun fact table
func NewStoreFromDB(db *gorm.DB) (*Store, error) {
	store := &Store{db: db}

	// Auto-migrate tables
	if err := store.db.AutoMigrate(&RecordModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate tables: %w", err)
	}

	return store, nil
}

// GetRecord retrieves the record for a state code
func (s *Store) GetRecord(ctx context.Context, code string) (*funfact.Record, error) {
	var model RecordModel
	result := s.db.WithContext(ctx).Where("state_code = ?", funfact.NormalizeCode(code)).First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, funfact.ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to get fun facts: %w", result.Error)
	}

	return model.toRecord(), nil
}

// ListRecords returns all stored records ordered by state code
func (s *Store) ListRecords(ctx context.Context) ([]*funfact.Record, error) {
	var models []RecordModel
	if err := s.db.WithContext(ctx).Order("state_code").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list fun facts: %w", err)
	}

	records := make([]*funfact.Record, len(models))
	for i := range models {
		records[i] = models[i].toRecord()
	}

	return records, nil
}

// Mutate applies fn to the record inside a transaction holding a row lock, so
// concurrent edits to the same state are serialized by the database. The row
// is claimed with an insert-if-absent first, so a first write has a row to lock
// and racing first writes wait on the unique index instead of failing
func (s *Store) Mutate(ctx context.Context, code string, fn funfact.MutateFunc) (*funfact.Record, error) {
	code = funfact.NormalizeCode(code)
	var saved *funfact.Record

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		placeholder := RecordModel{
			ID:        uuid.New(),
			StateCode: code,
			Funfacts:  FactList{},
		}

		claim := claimRecord(tx, &placeholder)
		if claim.Error != nil {
			return fmt.Errorf("failed to claim fun facts: %w", claim.Error)
		}

		var model RecordModel
		if err := lockRecord(tx, code, &model).Error; err != nil {
			return fmt.Errorf("failed to load fun facts: %w", err)
		}

		// A row inserted by this transaction did not exist before; rollback removes it
		var existing *funfact.Record
		if claim.RowsAffected == 0 {
			existing = model.toRecord()
		}

		facts, err := fn(existing)
		if err != nil {
			return err
		}

		model.Funfacts = FactList(facts)
		if err := tx.Save(&model).Error; err != nil {
			return fmt.Errorf("failed to save fun facts: %w", err)
		}

		saved = model.toRecord()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return saved, nil
}

// claimRecord inserts model unless a row with its state code already exists.
// RowsAffected is 1 only when the row was inserted
func claimRecord(tx *gorm.DB, model *RecordModel) *gorm.DB {
	return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(model)
}

// lockRecord loads the row for code with SELECT ... FOR UPDATE
func lockRecord(tx *gorm.DB, code string, model *RecordModel) *gorm.DB {
	return tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("state_code = ?", code).First(model)
}

// Ping checks the database connection
func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB from gorm.DB: %w", err)
	}
	return sqlDB.PingContext(ctx)
}

// Close closes the database connection
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB from gorm.DB: %w", err)
	}
	return sqlDB.Close()
}
