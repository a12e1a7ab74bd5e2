package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// DateWindow is an inclusive YYYY-MM-DD range, optionally narrowed to one user
type DateWindow struct {
	From     string
	To       string
	Username string
}

// ModeTotalResult is the billed total of one payment mode
type ModeTotalResult struct {
	PaymentMode string
	Total       decimal.Decimal
}

// TopPoojaResult is a pooja's quantity sold in a window
type TopPoojaResult struct {
	PoojaName string          `json:"pooja_name"`
	Count     int64           `json:"count"`
	Total     decimal.Decimal `json:"total"`
}

// UserTotalResult is a user's billed total in a window
type UserTotalResult struct {
	Username string          `json:"username"`
	Total    decimal.Decimal `json:"total"`
}

// DailyTotalResult is the billed total of one day
type DailyTotalResult struct {
	Date   string          `json:"date"`
	Amount decimal.Decimal `json:"amount"`
}

// AnalyticsRepository defines aggregation queries over billing transactions
type AnalyticsRepository interface {
	// TotalsByPaymentMode groups billed totals by raw payment mode
	TotalsByPaymentMode(ctx context.Context, w DateWindow) ([]ModeTotalResult, error)

	// SumTotal returns the billed total, zero when no rows match
	SumTotal(ctx context.Context, w DateWindow) (decimal.Decimal, error)

	// SumDonations returns the total of rows whose item is a donation
	SumDonations(ctx context.Context, w DateWindow) (decimal.Decimal, error)

	// TopPoojas returns the best selling non-donation items by quantity
	TopPoojas(ctx context.Context, w DateWindow, limit int) ([]TopPoojaResult, error)

	// TotalsByUser returns per-user totals, highest first
	TotalsByUser(ctx context.Context, w DateWindow) ([]UserTotalResult, error)

	// DailyTotals returns one entry per day with billing, oldest first
	DailyTotals(ctx context.Context, w DateWindow) ([]DailyTotalResult, error)
}
