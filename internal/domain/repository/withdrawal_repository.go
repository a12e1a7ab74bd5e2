package repository

import (
	"context"

	"github.com/sangkips/temple-billing/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// WithdrawalRepository defines the interface for cash handover records
type WithdrawalRepository interface {
	Create(ctx context.Context, w *entity.Withdrawal) error
	// ListByUserDate returns a user's handovers for a day, most recent first
	ListByUserDate(ctx context.Context, username, date string) ([]entity.Withdrawal, error)
	// SumHandover returns the total handed over by a user on a day
	SumHandover(ctx context.Context, username, date string) (decimal.Decimal, error)
}
