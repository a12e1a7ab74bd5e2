package repository

import (
	"context"

	domainRepo "github.com/sangkips/temple-billing/internal/domain/repository"
	"gorm.io/gorm"
)

type ctxKey string

// txKey is the context key for the active transaction
const txKey ctxKey = "gorm_tx"

func withTx(ctx context.Context, tx *gorm.DB) context.Context {
	return context.WithValue(ctx, txKey, tx)
}

func txFrom(ctx context.Context) (*gorm.DB, bool) {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	return tx, ok
}

// conn returns the transaction carried by ctx, falling back to db.
// Every repository query goes through it so that services can group
// calls with a Transactor.
func conn(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := txFrom(ctx); ok {
		return tx.WithContext(ctx)
	}
	return db.WithContext(ctx)
}

// DateWindowScope limits billing rows to an inclusive bill_date range and,
// when set, a single user.
func DateWindowScope(w domainRepo.DateWindow) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if w.From == w.To {
			db = db.Where("bill_date = ?", w.From)
		} else {
			db = db.Where("bill_date BETWEEN ? AND ?", w.From, w.To)
		}
		if w.Username != "" {
			db = db.Where("username = ?", w.Username)
		}
		return db
	}
}

// DonationScope keeps donation rows only, or drops them when include is false.
func DonationScope(include bool) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if include {
			return db.Where("LOWER(pooja_name) LIKE ?", "donation%")
		}
		return db.Where("LOWER(pooja_name) NOT LIKE ?", "donation%")
	}
}
