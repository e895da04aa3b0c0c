package repositories

import (
	"context"

	"gorm.io/gorm"
)

// ITransactor runs fn inside a database transaction. Repositories called with
// the context handed to fn join that transaction.
type ITransactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type GormTransactor struct {
	db *gorm.DB
}

func NewTransactor(db *gorm.DB) ITransactor {
	return &GormTransactor{db: db}
}

func (t *GormTransactor) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return dbFor(ctx, t.db).Transaction(func(tx *gorm.DB) error {
		return fn(ContextWithTx(ctx, tx))
	})
}

var _ ITransactor = (*GormTransactor)(nil)
