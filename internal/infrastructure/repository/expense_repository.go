package repository

import (
	"context"

	"github.com/sangkips/temple-billing/internal/domain/entity"
	domainRepo "github.com/sangkips/temple-billing/internal/domain/repository"
	"gorm.io/gorm"
)

type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new expense repository
func NewExpenseRepository(db *gorm.DB) domainRepo.ExpenseRepository {
	return &expenseRepository{db: db}
}

func (r *expenseRepository) Create(ctx context.Context, expense *entity.Expense) error {
	return conn(ctx, r.db).Create(expense).Error
}

func (r *expenseRepository) List(ctx context.Context, from, to string) ([]entity.Expense, error) {
	var expenses []entity.Expense

	query := conn(ctx, r.db)
	if from != "" && to != "" {
		query = query.Where("expense_date BETWEEN ? AND ?", from, to)
	}

	err := query.Order("expense_date DESC, id DESC").Find(&expenses).Error
	return expenses, err
}
