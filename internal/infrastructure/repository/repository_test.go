package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sangkips/temple-billing/internal/domain/entity"
	"github.com/sangkips/temple-billing/internal/domain/enum"
	domainRepo "github.com/sangkips/temple-billing/internal/domain/repository"
	"github.com/sangkips/temple-billing/internal/testutil"
	"github.com/sangkips/temple-billing/pkg/pagination"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func bill(receipt, date, user, pooja, mode string, qty int, total string) *entity.Billing {
	return &entity.Billing{
		DevName:      "Devotee",
		PoojaName:    pooja,
		Qty:          qty,
		Price:        testutil.D(total).Div(decimal.NewFromInt(int64(qty))),
		Total:        testutil.D(total),
		ReceiptNo:    receipt,
		BillDate:     date,
		BillDateTime: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
		Username:     user,
		PaymentMode:  mode,
	}
}

func seedBillings(t *testing.T, db *gorm.DB, rows ...*entity.Billing) {
	t.Helper()
	repo := NewBillingRepository(db)
	for _, row := range rows {
		require.NoError(t, repo.Create(context.Background(), row))
	}
}

func TestBillingRepository_LastReceiptNo_InsertionOrder(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := NewBillingRepository(db)
	ctx := context.Background()

	no, err := repo.LastReceiptNo(ctx, "SRI/25-26/")
	require.NoError(t, err)
	assert.Empty(t, no)

	seedBillings(t, db,
		bill("SRI/25-26/9", "2025-06-01", "priya", "Archana", "Cash", 1, "50"),
		bill("SRI/25-26/10", "2025-06-01", "priya", "Archana", "Cash", 1, "50"),
		bill("SRI/24-25/99", "2025-06-01", "priya", "Archana", "Cash", 1, "50"),
	)

	no, err = repo.LastReceiptNo(ctx, "SRI/25-26/")
	require.NoError(t, err)
	assert.Equal(t, "SRI/25-26/10", no)
}

func TestBillingRepository_ReceiptNoIsUnique(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := NewBillingRepository(db)

	require.NoError(t, repo.Create(context.Background(), bill("SRI/25-26/1", "2025-06-01", "a", "Archana", "Cash", 1, "50")))
	err := repo.Create(context.Background(), bill("SRI/25-26/1", "2025-06-01", "b", "Archana", "Cash", 1, "50"))
	assert.True(t, errors.Is(err, gorm.ErrDuplicatedKey))
}

func TestBillingRepository_ListAndSearch(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := NewBillingRepository(db)
	ctx := context.Background()

	seedBillings(t, db,
		bill("SRI/25-26/1", "2025-06-01", "priya", "Archana", "Cash", 2, "100"),
		bill("SRI/25-26/2", "2025-06-02", "ravi", "Homam", "Online", 1, "500"),
		bill("SRI/25-26/3", "2025-06-03", "priya", "Donation – Annadanam", "online", 1, "250"),
	)

	items, total, err := repo.List(ctx, &domainRepo.BillingFilterParams{
		Pagination: &pagination.PaginationParams{Page: 1, PerPage: 1},
		Username:   "priya",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, items, 1)
	assert.Equal(t, "SRI/25-26/3", items[0].ReceiptNo)

	rows, err := repo.Search(ctx, &domainRepo.ReportFilter{From: "2025-06-01", To: "2025-06-03", PaymentMode: "ONLINE"})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "SRI/25-26/2", rows[0].ReceiptNo)
	assert.True(t, rows[1].IsDonation())

	rows, err = repo.Search(ctx, &domainRepo.ReportFilter{From: "2025-06-02", To: "2025-06-02"})
	require.NoError(t, err)
	assert.Len(t, rows, 1)

	modes, err := repo.DistinctPaymentModes(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Cash", "Online", "online"}, modes)

	users, err := repo.DistinctUsernames(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"priya", "ravi"}, users)
}

func TestBillingRepository_GetByID_NotFound(t *testing.T) {
	db := testutil.NewSQLiteDB(t)

	got, err := NewBillingRepository(db).GetByID(context.Background(), 42)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestReceiptCounterRepository(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := NewReceiptCounterRepository(db)
	tx := NewTransactor(db)
	ctx := context.Background()

	err := tx.WithinTransaction(ctx, func(ctx context.Context) error {
		serial, found, err := repo.Increment(ctx, "SRI/25-26")
		require.NoError(t, err)
		assert.False(t, found)
		assert.Zero(t, serial)

		require.NoError(t, repo.Seed(ctx, "SRI/25-26", 41))
		// a second seed never resets an existing counter
		require.NoError(t, repo.Seed(ctx, "SRI/25-26", 0))

		serial, found, err = repo.Increment(ctx, "SRI/25-26")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, int64(42), serial)
		return nil
	})
	require.NoError(t, err)

	serial, _, err := repo.Increment(ctx, "SRI/25-26")
	require.NoError(t, err)
	assert.Equal(t, int64(43), serial)
}

func TestTransactor_RollsBack(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := NewBillingRepository(db)
	ctx := context.Background()
	boom := errors.New("boom")

	err := NewTransactor(db).WithinSerializableTransaction(ctx, func(ctx context.Context) error {
		require.NoError(t, repo.Create(ctx, bill("SRI/25-26/1", "2025-06-01", "a", "Archana", "Cash", 1, "50")))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	var count int64
	db.Model(&entity.Billing{}).Count(&count)
	assert.Zero(t, count)
}

func TestWithdrawalRepository(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := NewWithdrawalRepository(db)
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	for i, handover := range []string{"30", "50"} {
		require.NoError(t, repo.Create(ctx, &entity.Withdrawal{
			Username:  "priya",
			Date:      "2025-06-01",
			Cash:      testutil.D("200"),
			Handover:  testutil.D(handover),
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}))
	}

	sum, err := repo.SumHandover(ctx, "priya", "2025-06-01")
	require.NoError(t, err)
	assert.True(t, testutil.D("80").Equal(sum), sum.String())

	sum, err = repo.SumHandover(ctx, "priya", "2025-06-02")
	require.NoError(t, err)
	assert.True(t, sum.IsZero())

	list, err := repo.ListByUserDate(ctx, "priya", "2025-06-01")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.True(t, testutil.D("50").Equal(list[0].Handover))
}

func TestAnalyticsRepository(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := NewAnalyticsRepository(db)
	ctx := context.Background()

	seedBillings(t, db,
		bill("SRI/25-26/1", "2025-06-01", "priya", "Archana", "Cash", 3, "150"),
		bill("SRI/25-26/2", "2025-06-01", "ravi", "Homam", "UPI Online", 1, "500.50"),
		bill("SRI/25-26/3", "2025-06-02", "priya", "Donation – Annadanam", "Cash", 1, "250"),
		bill("SRI/25-26/4", "2025-06-02", "priya", "Archana", "Cash", 2, "100"),
		bill("SRI/25-26/5", "2025-07-01", "priya", "Archana", "Cash", 9, "450"),
	)
	w := domainRepo.DateWindow{From: "2025-06-01", To: "2025-06-02"}

	total, err := repo.SumTotal(ctx, w)
	require.NoError(t, err)
	assert.Equal(t, "1000.5", total.String())

	mine, err := repo.SumTotal(ctx, domainRepo.DateWindow{From: w.From, To: w.To, Username: "priya"})
	require.NoError(t, err)
	assert.Equal(t, "500", mine.String())

	donations, err := repo.SumDonations(ctx, w)
	require.NoError(t, err)
	assert.Equal(t, "250", donations.String())

	top, err := repo.TopPoojas(ctx, w, 5)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "Archana", top[0].PoojaName)
	assert.Equal(t, int64(5), top[0].Count)

	modes, err := repo.TotalsByPaymentMode(ctx, w)
	require.NoError(t, err)
	assert.Len(t, modes, 2)

	users, err := repo.TotalsByUser(ctx, w)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "ravi", users[0].Username)

	daily, err := repo.DailyTotals(ctx, w)
	require.NoError(t, err)
	require.Len(t, daily, 2)
	assert.Equal(t, "2025-06-01", daily[0].Date)
	assert.Equal(t, "650.5", daily[0].Amount.String())

	empty, err := repo.SumTotal(ctx, domainRepo.DateWindow{From: "2030-01-01", To: "2030-01-01"})
	require.NoError(t, err)
	assert.True(t, empty.IsZero())
}

func TestPoojaRepository(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := NewPoojaRepository(db)
	ctx := context.Background()

	archana := &entity.Pooja{Name: "Archana", Price: testutil.D("50"), Visible: true}
	homam := &entity.Pooja{Name: "Homam", Price: testutil.D("500"), Visible: true}
	require.NoError(t, repo.Create(ctx, homam))
	require.NoError(t, repo.Create(ctx, archana))

	err := repo.Create(ctx, &entity.Pooja{Name: "Archana", Price: testutil.D("1"), Visible: true})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	require.NoError(t, repo.SetVisible(ctx, homam.ID, false))
	require.NoError(t, repo.UpdatePrice(ctx, archana.ID, testutil.D("75")))

	visible, err := repo.ListVisible(ctx)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, "75", visible[0].Price.String())

	hidden, err := repo.GetByName(ctx, "Homam")
	require.NoError(t, err)
	require.NotNil(t, hidden)
	assert.False(t, hidden.Visible)

	require.NoError(t, repo.Delete(ctx, homam.ID))
	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	missing, err := repo.GetByName(ctx, "Homam")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestExpenseRepository(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := NewExpenseRepository(db)
	ctx := context.Background()

	for _, d := range []string{"2025-06-01", "2025-06-15", "2025-07-01"} {
		require.NoError(t, repo.Create(ctx, &entity.Expense{ExpenseDate: d, Purpose: "Flowers", Amount: testutil.D("120"), AddedBy: "Admin"}))
	}

	all, err := repo.List(ctx, "", "")
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "2025-07-01", all[0].ExpenseDate)

	june, err := repo.List(ctx, "2025-06-01", "2025-06-30")
	require.NoError(t, err)
	assert.Len(t, june, 2)

	onlyFrom, err := repo.List(ctx, "2025-06-01", "")
	require.NoError(t, err)
	assert.Len(t, onlyFrom, 3)
}

func TestIdempotencyRepository(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := NewIdempotencyRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.IdempotencyKey{Key: "k1", Username: "priya", Endpoint: "POST /api/v1/billings", ResponseCode: 201, ExpiresAt: time.Now().Add(time.Hour)}))
	require.NoError(t, repo.Create(ctx, &entity.IdempotencyKey{Key: "k2", Username: "priya", Endpoint: "POST /api/v1/billings", ResponseCode: 201, ExpiresAt: time.Now().Add(-time.Hour)}))

	got, err := repo.GetByKey(ctx, "k1", "priya")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 201, got.ResponseCode)

	other, err := repo.GetByKey(ctx, "k1", "ravi")
	require.NoError(t, err)
	assert.Nil(t, other)

	require.NoError(t, repo.DeleteExpired(ctx))
	gone, err := repo.GetByKey(ctx, "k2", "priya")
	require.NoError(t, err)
	assert.Nil(t, gone)

	require.NoError(t, repo.Delete(ctx, "k1", "priya"))
	gone, err = repo.GetByKey(ctx, "k1", "priya")
	require.NoError(t, err)
	assert.Nil(t, gone)
	require.NoError(t, repo.Create(ctx, &entity.IdempotencyKey{Key: "k1", Username: "priya", Endpoint: "POST /api/v1/billings", ResponseCode: 201, ExpiresAt: time.Now().Add(time.Hour)}))
}

func TestUserRepository(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	u := &entity.User{Username: "priya", Password: "hash"}
	require.NoError(t, repo.Create(ctx, u))

	got, err := repo.GetByUsername(ctx, "priya")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.False(t, got.IsAdmin())

	byID, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "priya", byID.Username)

	require.NoError(t, repo.Create(ctx, &entity.User{Username: "admin", Password: "hash", Role: enum.UserRoleAdmin}))
	admins, err := repo.CountByRole(ctx, enum.UserRoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, int64(1), admins)

	require.NoError(t, repo.UpdateRole(ctx, u.ID, enum.UserRoleAdmin))
	admins, err = repo.CountByRole(ctx, enum.UserRoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, int64(2), admins)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "admin", all[0].Username)

	require.NoError(t, repo.Delete(ctx, u.ID))
	gone, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}
