package db

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var ErrNotFound = errors.New("record not found")
var ErrDuplicate = errors.New("duplicate record")

type PostgresDB struct {
	DB *gorm.DB
}

func NewPostgresDB(dsn string) (*PostgresDB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		// unique violations surface as gorm.ErrDuplicatedKey
		TranslateError: true,
	})
	if err != nil {
		return &PostgresDB{}, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &PostgresDB{
		DB: db,
	}, nil
}

func (f *PostgresDB) MigrateTable(tbl ...any) error {
	err := f.DB.AutoMigrate(tbl...)
	if err != nil {
		return fmt.Errorf("failed to migrate table: %w", err)
	}

	return nil
}

func (f *PostgresDB) InsertRecord(ctx context.Context, record any) error {
	err := f.DB.WithContext(ctx).Create(record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		return fmt.Errorf("insert to table: %w", err)
	}

	return nil
}

func (f *PostgresDB) GetOneBy(ctx context.Context, column string, value any, entity any) error {
	query := fmt.Sprintf("%s = ?", column)
	err := f.DB.WithContext(ctx).Where(query, value).First(entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("getting record by %q: %w", column, err)
	}
	return nil
}

func (f *PostgresDB) GetAllBy(ctx context.Context, column string, value any, entity any) error {
	tx := f.DB.WithContext(ctx).Where(fmt.Sprintf("%s = ?", column), value).Find(entity)
	if tx.Error != nil {
		return fmt.Errorf("getting records by %q: %w", column, tx.Error)
	}
	return nil
}

// UpdateRecord applies the given column updates to the row identified by the
// entity's primary key. Columns absent from updates keep their stored value.
func (f *PostgresDB) UpdateRecord(ctx context.Context, entity any, updates map[string]any) error {
	err := f.DB.WithContext(ctx).Model(entity).Updates(updates).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		return fmt.Errorf("update record: %w", err)
	}
	return nil
}

// DeleteBy removes all rows matching column = value and reports how many were
// deleted, so callers can distinguish a miss from a successful delete.
func (f *PostgresDB) DeleteBy(ctx context.Context, column string, value any, entity any) (int64, error) {
	tx := f.DB.WithContext(ctx).Where(fmt.Sprintf("%s = ?", column), value).Delete(entity)
	if tx.Error != nil {
		return 0, fmt.Errorf("deleting records by %q: %w", column, tx.Error)
	}
	return tx.RowsAffected, nil
}

// Transaction runs fn inside a single database transaction. An error from fn
// rolls back every write made through the tx-scoped PostgresDB it receives.
func (f *PostgresDB) Transaction(ctx context.Context, fn func(tx *PostgresDB) error) error {
	return f.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PostgresDB{DB: tx})
	})
}
