package repository

import (
	"context"
	"database/sql"

	domainRepo "github.com/sangkips/temple-billing/internal/domain/repository"
	"gorm.io/gorm"
)

type transactor struct {
	db *gorm.DB
}

// NewTransactor creates a Transactor backed by gorm
func NewTransactor(db *gorm.DB) domainRepo.Transactor {
	return &transactor{db: db}
}

func (t *transactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return t.run(ctx, fn, nil)
}

// WithinSerializableTransaction asks postgres and mysql for serializable
// isolation. SQLite already serialises writers through its single
// connection.
func (t *transactor) WithinSerializableTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	var opts *sql.TxOptions
	switch t.db.Dialector.Name() {
	case "postgres", "mysql":
		opts = &sql.TxOptions{Isolation: sql.LevelSerializable}
	}
	return t.run(ctx, fn, opts)
}

func (t *transactor) run(ctx context.Context, fn func(ctx context.Context) error, opts *sql.TxOptions) error {
	// nested calls join the outer transaction
	if _, ok := txFrom(ctx); ok {
		return fn(ctx)
	}

	var txOpts []*sql.TxOptions
	if opts != nil {
		txOpts = append(txOpts, opts)
	}
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(withTx(ctx, tx))
	}, txOpts...)
}
