package repository

import (
	"context"

	"github.com/sangkips/temple-billing/internal/domain/entity"
	domainRepo "github.com/sangkips/temple-billing/internal/domain/repository"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type withdrawalRepository struct {
	db *gorm.DB
}

// NewWithdrawalRepository creates a new withdrawal repository
func NewWithdrawalRepository(db *gorm.DB) domainRepo.WithdrawalRepository {
	return &withdrawalRepository{db: db}
}

func (r *withdrawalRepository) Create(ctx context.Context, w *entity.Withdrawal) error {
	return conn(ctx, r.db).Create(w).Error
}

func (r *withdrawalRepository) ListByUserDate(ctx context.Context, username, date string) ([]entity.Withdrawal, error) {
	var withdrawals []entity.Withdrawal
	err := conn(ctx, r.db).
		Where("username = ? AND date = ?", username, date).
		Order("created_at DESC, id DESC").
		Find(&withdrawals).Error
	return withdrawals, err
}

func (r *withdrawalRepository) SumHandover(ctx context.Context, username, date string) (decimal.Decimal, error) {
	var out sumResult
	err := conn(ctx, r.db).
		Model(&entity.Withdrawal{}).
		Select("COALESCE(SUM(handover), 0) AS total").
		Where("username = ? AND date = ?", username, date).
		Scan(&out).Error
	return out.money(), err
}
