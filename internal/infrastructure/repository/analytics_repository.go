package repository

import (
	"context"

	"github.com/sangkips/temple-billing/internal/domain/entity"
	domainRepo "github.com/sangkips/temple-billing/internal/domain/repository"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// sumResult receives a single COALESCE(SUM(...), 0) AS total column.
// Engines return the sum as int64, float64 or text; decimal scans all three.
type sumResult struct {
	Total decimal.Decimal
}

func (s sumResult) money() decimal.Decimal {
	return s.Total.Round(2)
}

type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new analytics repository
func NewAnalyticsRepository(db *gorm.DB) domainRepo.AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) billing(ctx context.Context, w domainRepo.DateWindow) *gorm.DB {
	return conn(ctx, r.db).Model(&entity.Billing{}).Scopes(DateWindowScope(w))
}

// TotalsByPaymentMode also backs the ledger, which runs it inside the
// withdrawal transaction.
func (r *analyticsRepository) TotalsByPaymentMode(ctx context.Context, w domainRepo.DateWindow) ([]domainRepo.ModeTotalResult, error) {
	var results []domainRepo.ModeTotalResult
	err := r.billing(ctx, w).
		Select("payment_mode, COALESCE(SUM(total), 0) AS total").
		Group("payment_mode").
		Order("payment_mode").
		Scan(&results).Error
	if err != nil {
		return nil, err
	}
	for i := range results {
		results[i].Total = results[i].Total.Round(2)
	}
	return results, nil
}

func (r *analyticsRepository) SumTotal(ctx context.Context, w domainRepo.DateWindow) (decimal.Decimal, error) {
	var out sumResult
	err := r.billing(ctx, w).
		Select("COALESCE(SUM(total), 0) AS total").
		Scan(&out).Error
	return out.money(), err
}

func (r *analyticsRepository) SumDonations(ctx context.Context, w domainRepo.DateWindow) (decimal.Decimal, error) {
	var out sumResult
	err := r.billing(ctx, w).
		Scopes(DonationScope(true)).
		Select("COALESCE(SUM(total), 0) AS total").
		Scan(&out).Error
	return out.money(), err
}

func (r *analyticsRepository) TopPoojas(ctx context.Context, w domainRepo.DateWindow, limit int) ([]domainRepo.TopPoojaResult, error) {
	var results []domainRepo.TopPoojaResult
	err := r.billing(ctx, w).
		Scopes(DonationScope(false)).
		Select("pooja_name, COALESCE(SUM(qty), 0) AS count, COALESCE(SUM(total), 0) AS total").
		Group("pooja_name").
		Order("count DESC, pooja_name ASC").
		Limit(limit).
		Scan(&results).Error
	if err != nil {
		return nil, err
	}
	for i := range results {
		results[i].Total = results[i].Total.Round(2)
	}
	return results, nil
}

func (r *analyticsRepository) TotalsByUser(ctx context.Context, w domainRepo.DateWindow) ([]domainRepo.UserTotalResult, error) {
	var results []domainRepo.UserTotalResult
	err := r.billing(ctx, w).
		Select("username, COALESCE(SUM(total), 0) AS total").
		Group("username").
		Order("total DESC, username ASC").
		Scan(&results).Error
	if err != nil {
		return nil, err
	}
	for i := range results {
		results[i].Total = results[i].Total.Round(2)
	}
	return results, nil
}

func (r *analyticsRepository) DailyTotals(ctx context.Context, w domainRepo.DateWindow) ([]domainRepo.DailyTotalResult, error) {
	var results []domainRepo.DailyTotalResult
	err := r.billing(ctx, w).
		Select("bill_date AS date, COALESCE(SUM(total), 0) AS amount").
		Group("bill_date").
		Order("bill_date ASC").
		Scan(&results).Error
	if err != nil {
		return nil, err
	}
	for i := range results {
		results[i].Amount = results[i].Amount.Round(2)
	}
	return results, nil
}
