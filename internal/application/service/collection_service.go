package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sangkips/temple-billing/internal/domain/entity"
	"github.com/sangkips/temple-billing/internal/domain/enum"
	"github.com/sangkips/temple-billing/internal/domain/repository"
	"github.com/sangkips/temple-billing/pkg/apperror"
	"github.com/sangkips/temple-billing/pkg/utils"
	"github.com/shopspring/decimal"
)

// CollectionSummary is a user's takings for one day
type CollectionSummary struct {
	Date      string          `json:"date"`
	Cash      decimal.Decimal `json:"cash"`
	Online    decimal.Decimal `json:"online"`
	Donation  decimal.Decimal `json:"donation"` // already counted in cash/online
	Total     decimal.Decimal `json:"total"`
	Withdrawn decimal.Decimal `json:"withdrawn"`
	Remaining decimal.Decimal `json:"remaining"`
}

// DailyCollection is the summary plus the day's handovers, newest first
type DailyCollection struct {
	Summary     CollectionSummary   `json:"summary"`
	Withdrawals []entity.Withdrawal `json:"withdrawals"`
}

// CollectionService reconciles each user's daily cash with the handovers
// they make to the office.
type CollectionService struct {
	transactor     repository.Transactor
	analyticsRepo  repository.AnalyticsRepository
	withdrawalRepo repository.WithdrawalRepository
	datePolicy     enum.WithdrawalDatePolicy
	clock          Clock
}

// NewCollectionService creates a new collection service
func NewCollectionService(
	transactor repository.Transactor,
	analyticsRepo repository.AnalyticsRepository,
	withdrawalRepo repository.WithdrawalRepository,
	datePolicy enum.WithdrawalDatePolicy,
	clock Clock,
) *CollectionService {
	return &CollectionService{
		transactor:     transactor,
		analyticsRepo:  analyticsRepo,
		withdrawalRepo: withdrawalRepo,
		datePolicy:     datePolicy,
		clock:          clock,
	}
}

// ParseHandoverAmount reads the numeric prefix of a submitted handover
// amount. Unparseable input counts as 0 and negative amounts are kept.
func ParseHandoverAmount(raw string) decimal.Decimal {
	amount, ok := utils.LeadingDecimal(raw)
	if !ok {
		return decimal.Zero
	}
	return amount.Round(2)
}

func (s *CollectionService) today() string {
	return DateOf(s.clock.Now())
}

// resolveDate validates an optional YYYY-MM-DD date, defaulting to today
func (s *CollectionService) resolveDate(date string) (string, error) {
	if date == "" {
		return s.today(), nil
	}
	if _, err := time.Parse(dateLayout, date); err != nil {
		return "", apperror.NewFieldError("date", "date must be YYYY-MM-DD")
	}
	return date, nil
}

// summarize computes a day's figures from billing and withdrawal rows.
// Inside a transaction it reads through that transaction.
func (s *CollectionService) summarize(ctx context.Context, username, date string) (*CollectionSummary, error) {
	window := repository.DateWindow{From: date, To: date, Username: username}

	modes, err := s.analyticsRepo.TotalsByPaymentMode(ctx, window)
	if err != nil {
		return nil, fmt.Errorf("sum payment modes: %w", err)
	}

	summary := &CollectionSummary{Date: date, Cash: decimal.Zero, Online: decimal.Zero}
	for _, m := range modes {
		if enum.PaymentBucketOf(m.PaymentMode) == enum.PaymentBucketOnline {
			summary.Online = summary.Online.Add(m.Total)
		} else {
			summary.Cash = summary.Cash.Add(m.Total)
		}
	}

	summary.Donation, err = s.analyticsRepo.SumDonations(ctx, window)
	if err != nil {
		return nil, fmt.Errorf("sum donations: %w", err)
	}

	summary.Withdrawn, err = s.withdrawalRepo.SumHandover(ctx, username, date)
	if err != nil {
		return nil, fmt.Errorf("sum handovers: %w", err)
	}

	summary.Total = summary.Cash.Add(summary.Online)
	summary.Remaining = summary.Cash.Sub(summary.Withdrawn)
	return summary, nil
}

// DailySummary reports a user's collection for date (today when empty).
// It only reads.
func (s *CollectionService) DailySummary(ctx context.Context, username, date string) (*DailyCollection, error) {
	date, err := s.resolveDate(date)
	if err != nil {
		return nil, err
	}

	summary, err := s.summarize(ctx, username, date)
	if err != nil {
		return nil, err
	}

	withdrawals, err := s.withdrawalRepo.ListByUserDate(ctx, username, date)
	if err != nil {
		return nil, fmt.Errorf("list withdrawals: %w", err)
	}
	if withdrawals == nil {
		withdrawals = []entity.Withdrawal{}
	}

	return &DailyCollection{Summary: *summary, Withdrawals: withdrawals}, nil
}

// RecordWithdrawalInput represents a cash handover submission
type RecordWithdrawalInput struct {
	Username       string
	HandoverAmount string
	ViewedDate     string
}

// EffectiveDate is the day a handover is booked against under the
// configured policy.
func (s *CollectionService) EffectiveDate(viewedDate string) (string, error) {
	if s.datePolicy == enum.WithdrawalDateViewed {
		return s.resolveDate(viewedDate)
	}
	return s.today(), nil
}

// RecordWithdrawal books one handover. The day's figures are recomputed
// and the record inserted in a single serializable transaction, so two
// concurrent handovers cannot both see the same prior total. Remaining is
// not clamped and goes negative when more is handed over than was taken.
func (s *CollectionService) RecordWithdrawal(ctx context.Context, input *RecordWithdrawalInput) (*entity.Withdrawal, error) {
	date, err := s.EffectiveDate(input.ViewedDate)
	if err != nil {
		return nil, err
	}
	handover := ParseHandoverAmount(input.HandoverAmount)

	var withdrawal *entity.Withdrawal
	err = s.transactor.WithinSerializableTransaction(ctx, func(ctx context.Context) error {
		summary, err := s.summarize(ctx, input.Username, date)
		if err != nil {
			return err
		}

		withdrawal = &entity.Withdrawal{
			Username:  input.Username,
			Date:      date,
			Cash:      summary.Cash,
			Online:    summary.Online,
			Donation:  summary.Donation,
			Handover:  handover,
			Remaining: summary.Cash.Sub(summary.Withdrawn.Add(handover)),
			CreatedAt: s.clock.Now(),
		}
		return s.withdrawalRepo.Create(ctx, withdrawal)
	})
	if err != nil {
		return nil, fmt.Errorf("record withdrawal: %w", err)
	}

	return withdrawal, nil
}
