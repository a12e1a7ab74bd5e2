package service

import (
	"context"
	"time"

	"github.com/sangkips/temple-billing/internal/domain/enum"
	"github.com/sangkips/temple-billing/internal/domain/repository"
	"github.com/sangkips/temple-billing/pkg/apperror"
	"github.com/shopspring/decimal"
)

const (
	topPoojaLimit = 5
	trendDays     = 7
)

// DashboardService provides collection statistics for a date range
type DashboardService struct {
	analyticsRepo repository.AnalyticsRepository
	clock         Clock
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(analyticsRepo repository.AnalyticsRepository, clock Clock) *DashboardService {
	return &DashboardService{
		analyticsRepo: analyticsRepo,
		clock:         clock,
	}
}

// DashboardInput selects the reporting window
type DashboardInput struct {
	Username string
	Range    string
	Start    string // custom range only, YYYY-MM-DD
	End      string
}

// DashboardStats represents dashboard statistics
type DashboardStats struct {
	Range           enum.DateRange                `json:"range"`
	StartDate       string                        `json:"start_date"`
	EndDate         string                        `json:"end_date"`
	TopPoojas       []repository.TopPoojaResult   `json:"top_poojas"`
	TotalCollection decimal.Decimal               `json:"total_collection"`
	UserTotal       decimal.Decimal               `json:"user_total"`
	CashTotal       decimal.Decimal               `json:"cash_total"`
	OnlineTotal     decimal.Decimal               `json:"online_total"`
	DonationTotal   decimal.Decimal               `json:"donation_total"`
	UserWise        []repository.UserTotalResult  `json:"userwise"`
	Trends          []repository.DailyTotalResult `json:"trends"`
}

// ResolveRange turns a named range into inclusive start and end dates.
// Weeks start on Monday; custom bounds default to today.
func ResolveRange(r enum.DateRange, now time.Time, start, end string) (string, string, error) {
	today := DateOf(now)

	switch r {
	case enum.DateRangeYesterday:
		d := DateOf(now.AddDate(0, 0, -1))
		return d, d, nil
	case enum.DateRangeWeek:
		offset := (int(now.Weekday()) + 6) % 7
		return DateOf(now.AddDate(0, 0, -offset)), today, nil
	case enum.DateRangeMonth:
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return DateOf(first), today, nil
	case enum.DateRangeCustom:
		if start == "" {
			start = today
		}
		if end == "" {
			end = today
		}
		if _, err := time.Parse(dateLayout, start); err != nil {
			return "", "", apperror.NewFieldError("start", "start must be YYYY-MM-DD")
		}
		if _, err := time.Parse(dateLayout, end); err != nil {
			return "", "", apperror.NewFieldError("end", "end must be YYYY-MM-DD")
		}
		if start > end {
			return "", "", apperror.NewFieldError("start", "start must not be after end")
		}
		return start, end, nil
	default:
		return today, today, nil
	}
}

// GetStats collects the dashboard figures. The trend always covers the
// last seven days regardless of the selected range.
func (s *DashboardService) GetStats(ctx context.Context, input *DashboardInput) (*DashboardStats, error) {
	now := s.clock.Now()
	dateRange := enum.ParseDateRange(input.Range)

	from, to, err := ResolveRange(dateRange, now, input.Start, input.End)
	if err != nil {
		return nil, err
	}
	window := repository.DateWindow{From: from, To: to}

	stats := &DashboardStats{
		Range:       dateRange,
		StartDate:   from,
		EndDate:     to,
		CashTotal:   decimal.Zero,
		OnlineTotal: decimal.Zero,
	}

	if stats.TopPoojas, err = s.analyticsRepo.TopPoojas(ctx, window, topPoojaLimit); err != nil {
		return nil, err
	}
	if stats.TotalCollection, err = s.analyticsRepo.SumTotal(ctx, window); err != nil {
		return nil, err
	}
	if stats.UserTotal, err = s.analyticsRepo.SumTotal(ctx, repository.DateWindow{From: from, To: to, Username: input.Username}); err != nil {
		return nil, err
	}
	if stats.DonationTotal, err = s.analyticsRepo.SumDonations(ctx, window); err != nil {
		return nil, err
	}
	if stats.UserWise, err = s.analyticsRepo.TotalsByUser(ctx, window); err != nil {
		return nil, err
	}

	modes, err := s.analyticsRepo.TotalsByPaymentMode(ctx, window)
	if err != nil {
		return nil, err
	}
	for _, m := range modes {
		if enum.PaymentBucketOf(m.PaymentMode) == enum.PaymentBucketOnline {
			stats.OnlineTotal = stats.OnlineTotal.Add(m.Total)
		} else {
			stats.CashTotal = stats.CashTotal.Add(m.Total)
		}
	}

	stats.Trends, err = s.trends(ctx, now)
	if err != nil {
		return nil, err
	}

	if stats.TopPoojas == nil {
		stats.TopPoojas = []repository.TopPoojaResult{}
	}
	if stats.UserWise == nil {
		stats.UserWise = []repository.UserTotalResult{}
	}
	return stats, nil
}

// trends returns one point per day for the last seven days, zero-filled
func (s *DashboardService) trends(ctx context.Context, now time.Time) ([]repository.DailyTotalResult, error) {
	first := now.AddDate(0, 0, -(trendDays - 1))
	daily, err := s.analyticsRepo.DailyTotals(ctx, repository.DateWindow{From: DateOf(first), To: DateOf(now)})
	if err != nil {
		return nil, err
	}

	byDate := make(map[string]decimal.Decimal, len(daily))
	for _, d := range daily {
		byDate[d.Date] = d.Amount
	}

	points := make([]repository.DailyTotalResult, 0, trendDays)
	for i := 0; i < trendDays; i++ {
		date := DateOf(first.AddDate(0, 0, i))
		amount, ok := byDate[date]
		if !ok {
			amount = decimal.Zero
		}
		points = append(points, repository.DailyTotalResult{Date: date, Amount: amount})
	}
	return points, nil
}
