package repository

import (
	"context"
	"feedbacker/internal/db"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Storage . Storage
type Storage interface {
	MigrateTable(tbl ...any) error
	InsertRecord(ctx context.Context, record any) error
	GetOneBy(ctx context.Context, column string, value any, entity any) error
	GetAllBy(ctx context.Context, column string, value any, entity any) error
	UpdateRecord(ctx context.Context, entity any, updates map[string]any) error
	DeleteBy(ctx context.Context, column string, value any, entity any) (int64, error)
	Transaction(ctx context.Context, fn func(tx *db.PostgresDB) error) error
}
