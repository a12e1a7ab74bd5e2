package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sangkips/temple-billing/internal/domain/entity"
	"github.com/sangkips/temple-billing/internal/domain/enum"
	"github.com/sangkips/temple-billing/internal/infrastructure/repository"
	"github.com/sangkips/temple-billing/internal/testutil"
	"github.com/sangkips/temple-billing/pkg/apperror"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var ist = time.FixedZone("IST", 5*3600+1800)

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time { return c.now }

func at(year int, month time.Month, day, hour int) time.Time {
	return time.Date(year, month, day, hour, 0, 0, 0, ist)
}

type stubPrinter struct {
	err     error
	printed []*entity.Billing
}

func (p *stubPrinter) PrintBilling(_ context.Context, b *entity.Billing) (*entity.Receipt, error) {
	p.printed = append(p.printed, b)
	return &entity.Receipt{ReceiptNo: b.ReceiptNo}, p.err
}

type harness struct {
	db         *gorm.DB
	clock      *fixedClock
	printer    *stubPrinter
	billing    *BillingService
	collection *CollectionService
	dashboard  *DashboardService
	poojas     *PoojaService
	reports    *ReportService
	expenses   *ExpenseService
}

func newHarness(t *testing.T, strategy enum.SequencerStrategy, policy enum.WithdrawalDatePolicy) *harness {
	t.Helper()

	db := testutil.NewSQLiteDB(t)
	clock := &fixedClock{now: at(2025, time.June, 1, 10)}
	printer := &stubPrinter{}

	transactor := repository.NewTransactor(db)
	billingRepo := repository.NewBillingRepository(db)
	poojaRepo := repository.NewPoojaRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)
	sequencer := NewReceiptSequencer(strategy, "SRI", billingRepo, repository.NewReceiptCounterRepository(db))

	return &harness{
		db:         db,
		clock:      clock,
		printer:    printer,
		billing:    NewBillingService(transactor, billingRepo, poojaRepo, sequencer, printer, clock),
		collection: NewCollectionService(transactor, analyticsRepo, repository.NewWithdrawalRepository(db), policy, clock),
		dashboard:  NewDashboardService(analyticsRepo, clock),
		poojas:     NewPoojaService(poojaRepo),
		reports:    NewReportService(billingRepo, ist),
		expenses:   NewExpenseService(repository.NewExpenseRepository(db)),
	}
}

func (h *harness) addPooja(t *testing.T, name, price string) *entity.Pooja {
	t.Helper()
	p, err := h.poojas.CreatePooja(context.Background(), &CreatePoojaInput{Name: name, Price: price})
	require.NoError(t, err)
	return p
}

// insertBilling stores a row directly, bypassing pricing and numbering
func (h *harness) insertBilling(t *testing.T, receiptNo, user, pooja, mode, total string) {
	t.Helper()
	now := h.clock.Now()
	require.NoError(t, repository.NewBillingRepository(h.db).Create(context.Background(), &entity.Billing{
		PoojaName:    pooja,
		Qty:          1,
		Price:        testutil.D(total),
		Total:        testutil.D(total),
		ReceiptNo:    receiptNo,
		BillDate:     DateOf(now),
		BillDateTime: now,
		Username:     user,
		PaymentMode:  mode,
	}))
}

func (h *harness) bill(t *testing.T, user, pooja, qty, mode string) *entity.Billing {
	t.Helper()
	out, err := h.billing.CreateBilling(context.Background(), &CreateBillingInput{
		ComputeTotalInput: ComputeTotalInput{PoojaName: pooja, Quantity: qty},
		Username:          user,
		PaymentMode:       mode,
	})
	require.NoError(t, err)
	return out.Billing
}

func requireFieldError(t *testing.T, err error, field string) {
	t.Helper()
	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %v", err)
	require.Equal(t, 422, appErr.Code)
	require.NotEmpty(t, appErr.Errors)
	require.Equal(t, field, appErr.Errors[0].Field)
}

func assertMoney(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...any) {
	t.Helper()
	assert.True(t, testutil.D(want).Equal(got), append([]any{"want %s, got %s", want, got.String()}, msgAndArgs...)...)
}
