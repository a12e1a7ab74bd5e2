package repository

import (
	"context"

	"github.com/sangkips/temple-billing/internal/domain/entity"
)

// ExpenseRepository defines the interface for expense data operations
type ExpenseRepository interface {
	Create(ctx context.Context, expense *entity.Expense) error
	// List returns expenses newest first; empty bounds list everything
	List(ctx context.Context, from, to string) ([]entity.Expense, error)
}
