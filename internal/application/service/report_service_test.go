package service

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/sangkips/temple-billing/internal/domain/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestParseInputDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"2025-06-01", "2025-06-01", true},
		{"1/6/2025", "2025-06-01", true},
		{"01/06/2025", "2025-06-01", true},
		{" 31/12/2025 ", "2025-12-31", true},
		{"2025/06/01", "", false},
		{"31/02/2025", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseInputDate("from", tt.in)
			if !tt.ok {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func seedReport(t *testing.T, h *harness) {
	t.Helper()
	h.addPooja(t, "Archana", "50")
	h.addPooja(t, "Ganapathi Homam", "100")

	h.clock.now = at(2025, time.May, 31, 18)
	h.bill(t, "priya", "Archana", "1", "Cash")

	h.clock.now = at(2025, time.June, 1, 9)
	h.bill(t, "priya", "Ganapathi Homam", "2", "Online")
	h.bill(t, "ravi", "Archana", "3", "Cash")
}

func TestBuildWorkbook_ReportsExcelizeErrors(t *testing.T) {
	columns := []sheetColumn{{Header: "Purpose", Width: 20}}

	data, err := buildWorkbook("Sheet", columns, [][]any{{"Flowers"}})
	require.NoError(t, err)
	assert.NotEmpty(t, data)

	_, err = buildWorkbook("Sheet", columns, [][]any{make([]any, excelize.MaxColumns+1)})
	assert.ErrorIs(t, err, excelize.ErrColumnNumber)

	_, err = buildWorkbook("Sheet", []sheetColumn{{Header: "Purpose", Width: 300}}, nil)
	assert.ErrorIs(t, err, excelize.ErrColumnWidth)
}

func TestReportService_Search(t *testing.T) {
	h := newHarness(t, enum.SequencerCounter, enum.WithdrawalDateToday)
	ctx := context.Background()
	seedReport(t, h)

	all, err := h.reports.Search(ctx, &ReportInput{From: "31/5/2025", To: "2025-06-01"})
	require.NoError(t, err)
	assert.Equal(t, 3, all.Count)
	assertMoney(t, "400", all.Total)
	assert.Equal(t, "SRI/25-26/1", all.Rows[0].ReceiptNo)

	online, err := h.reports.Search(ctx, &ReportInput{From: "1/6/2025", To: "1/6/2025", PaymentMode: "ONLINE"})
	require.NoError(t, err)
	require.Equal(t, 1, online.Count)
	assert.Equal(t, "Ganapathi Homam", online.Rows[0].PoojaName)

	ravi, err := h.reports.Search(ctx, &ReportInput{From: "1/6/2025", To: "1/6/2025", Username: "ravi", PoojaName: "Archana"})
	require.NoError(t, err)
	assert.Equal(t, 1, ravi.Count)

	none, err := h.reports.Search(ctx, &ReportInput{From: "1/1/2024", To: "2/1/2024"})
	require.NoError(t, err)
	assert.NotNil(t, none.Rows)
	assert.Zero(t, none.Count)
}

func TestReportService_RequiresDates(t *testing.T) {
	h := newHarness(t, enum.SequencerCounter, enum.WithdrawalDateToday)

	_, err := h.reports.Search(context.Background(), &ReportInput{From: "", To: "1/6/2025"})
	requireFieldError(t, err, "from")
}

func TestReportService_Options(t *testing.T) {
	h := newHarness(t, enum.SequencerCounter, enum.WithdrawalDateToday)
	ctx := context.Background()

	empty, err := h.reports.Options(ctx)
	require.NoError(t, err)
	assert.NotNil(t, empty.Poojas)

	seedReport(t, h)
	opts, err := h.reports.Options(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Archana", "Ganapathi Homam"}, opts.Poojas)
	assert.Equal(t, []string{"priya", "ravi"}, opts.Users)
	assert.Len(t, opts.PaymentModes, 2)
}

func TestReportService_Export(t *testing.T) {
	h := newHarness(t, enum.SequencerCounter, enum.WithdrawalDateToday)
	ctx := context.Background()
	seedReport(t, h)

	export, err := h.reports.Export(ctx, &ReportInput{From: "1/6/2025", To: "1/6/2025"})
	require.NoError(t, err)
	assert.Equal(t, "temple-report.xlsx", export.FileName)

	f, err := excelize.OpenReader(bytes.NewReader(export.Data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Temple Report")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Receipt No", "Date & Time", "Devotee", "Pooja", "Qty", "Total ₹", "Payment Mode", "Reference ID", "User"}, rows[0])
	assert.Equal(t, "SRI/25-26/2", rows[1][0])
	assert.Equal(t, "01/06/2025 09:00:00", rows[1][1])
	assert.Equal(t, "200", rows[1][5])
	assert.Equal(t, "ravi", rows[2][8])
}

func TestExpenseService(t *testing.T) {
	h := newHarness(t, enum.SequencerCounter, enum.WithdrawalDateToday)
	ctx := context.Background()

	e, err := h.expenses.CreateExpense(ctx, &CreateExpenseInput{ExpenseDate: "2025-06-01", Purpose: "Flowers", Amount: "250"})
	require.NoError(t, err)
	assert.Equal(t, "Admin", e.AddedBy)

	_, err = h.expenses.CreateExpense(ctx, &CreateExpenseInput{ExpenseDate: "15/5/2025", Purpose: "Oil", Amount: "90.5", AddedBy: "ravi"})
	require.NoError(t, err)

	_, err = h.expenses.CreateExpense(ctx, &CreateExpenseInput{ExpenseDate: "2025-06-01", Purpose: " ", Amount: "10"})
	requireFieldError(t, err, "purpose")

	all, err := h.expenses.ListExpenses(ctx, "", "")
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "2025-06-01", all[0].ExpenseDate)

	// one bound alone does not filter
	all, err = h.expenses.ListExpenses(ctx, "2025-06-01", "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	may, err := h.expenses.ListExpenses(ctx, "1/5/2025", "31/5/2025")
	require.NoError(t, err)
	require.Len(t, may, 1)
	assert.Equal(t, "Oil", may[0].Purpose)

	export, err := h.expenses.ExportExpenses(ctx, "", "")
	require.NoError(t, err)
	assert.Equal(t, "temple-expenses.xlsx", export.FileName)

	f, err := excelize.OpenReader(bytes.NewReader(export.Data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Temple Expenses")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Date", "Purpose", "Amount ₹", "Added By"}, rows[0])
	assert.Equal(t, "01/06/2025", rows[1][0])
	assert.Equal(t, "ravi", rows[2][3])
}
