package service

import (
	"context"
	"errors"
	"testing"

	"github.com/sangkips/temple-billing/internal/domain/enum"
	"github.com/sangkips/temple-billing/pkg/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeTotal_Donation(t *testing.T) {
	h := newHarness(t, enum.SequencerCounter, enum.WithdrawalDateToday)

	item, err := h.billing.ComputeTotal(context.Background(), &ComputeTotalInput{
		PoojaName:       "Donation",
		Quantity:        "4",
		DonationPurpose: "Annadanam",
		DonationAmount:  "500",
	})
	require.NoError(t, err)

	assert.Equal(t, "Donation – Annadanam", item.PoojaName)
	assert.Equal(t, 1, item.Qty)
	assertMoney(t, "500", item.Price)
	assertMoney(t, "500", item.Total)
}

func TestComputeTotal_DonationValidation(t *testing.T) {
	h := newHarness(t, enum.SequencerCounter, enum.WithdrawalDateToday)
	ctx := context.Background()

	tests := []struct {
		name    string
		purpose string
		amount  string
		field   string
	}{
		{"missing purpose", "", "500", "donation_purpose"},
		{"missing amount", "Annadanam", "", "donation_amount"},
		{"non-numeric amount", "Annadanam", "five hundred", "donation_amount"},
		{"zero amount", "Annadanam", "0", "donation_amount"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := h.billing.ComputeTotal(ctx, &ComputeTotalInput{
				PoojaName:       "Donation",
				DonationPurpose: tt.purpose,
				DonationAmount:  tt.amount,
			})
			requireFieldError(t, err, tt.field)
		})
	}
}

func TestComputeTotal_Catalog(t *testing.T) {
	h := newHarness(t, enum.SequencerCounter, enum.WithdrawalDateToday)
	ctx := context.Background()
	h.addPooja(t, "Ganapathi Homam", "100")

	item, err := h.billing.ComputeTotal(ctx, &ComputeTotalInput{PoojaName: "Ganapathi Homam", Quantity: "3"})
	require.NoError(t, err)
	assert.Equal(t, "Ganapathi Homam", item.PoojaName)
	assert.Equal(t, 3, item.Qty)
	assertMoney(t, "100", item.Price)
	assertMoney(t, "300", item.Total)

	item, err = h.billing.ComputeTotal(ctx, &ComputeTotalInput{PoojaName: "Ganapathi Homam", Quantity: " "})
	require.NoError(t, err)
	assert.Equal(t, 1, item.Qty)
}

func TestComputeTotal_RejectsBadInput(t *testing.T) {
	h := newHarness(t, enum.SequencerCounter, enum.WithdrawalDateToday)
	ctx := context.Background()
	h.addPooja(t, "Archana", "50")

	tests := []struct {
		name  string
		pooja string
		qty   string
		field string
	}{
		{"zero quantity", "Archana", "0", "qty"},
		{"negative quantity", "Archana", "-2", "qty"},
		{"non-numeric quantity", "Archana", "two", "qty"},
		{"fractional quantity", "Archana", "1.5", "qty"},
		{"unknown pooja", "Pushpanjali", "1", "pooja_name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := h.billing.ComputeTotal(ctx, &ComputeTotalInput{PoojaName: tt.pooja, Quantity: tt.qty})
			requireFieldError(t, err, tt.field)
		})
	}
}

func TestComputeTotal_HiddenPoojaStillPriced(t *testing.T) {
	h := newHarness(t, enum.SequencerCounter, enum.WithdrawalDateToday)
	ctx := context.Background()
	p := h.addPooja(t, "Archana", "50")
	_, err := h.poojas.ToggleVisibility(ctx, p.ID)
	require.NoError(t, err)

	item, err := h.billing.ComputeTotal(ctx, &ComputeTotalInput{PoojaName: "Archana", Quantity: "2"})
	require.NoError(t, err)
	assertMoney(t, "100", item.Total)
}

func TestCreateBilling(t *testing.T) {
	h := newHarness(t, enum.SequencerCounter, enum.WithdrawalDateToday)
	ctx := context.Background()
	h.addPooja(t, "Archana", "50")
	h.clock.now = at(2025, 6, 1, 23)

	out, err := h.billing.CreateBilling(ctx, &CreateBillingInput{
		ComputeTotalInput: ComputeTotalInput{PoojaName: "Archana", Quantity: "2"},
		Username:          "priya",
		DevName:           "  Lakshmi ",
		PaymentMode:       "online",
		ReferenceID:       "UPI-991",
		Print:             true,
	})
	require.NoError(t, err)

	b := out.Billing
	assert.NotZero(t, b.ID)
	assert.Equal(t, "SRI/25-26/1", b.ReceiptNo)
	assert.Equal(t, "2025-06-01", b.BillDate)
	assert.Equal(t, "Lakshmi", b.DevName)
	assert.Equal(t, "online", b.PaymentMode)
	require.NotNil(t, b.ReferenceID)
	assert.Equal(t, "UPI-991", *b.ReferenceID)
	assertMoney(t, "100", b.Total)
	assert.True(t, out.Printed)
	assert.Len(t, h.printer.printed, 1)

	stored, err := h.billing.GetBilling(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, b.ReceiptNo, stored.ReceiptNo)
}

func TestCreateBilling_PaymentModeRules(t *testing.T) {
	h := newHarness(t, enum.SequencerCounter, enum.WithdrawalDateToday)
	ctx := context.Background()
	h.addPooja(t, "Archana", "50")

	out, err := h.billing.CreateBilling(ctx, &CreateBillingInput{
		ComputeTotalInput: ComputeTotalInput{PoojaName: "Archana"},
		Username:          "priya",
		ReferenceID:       "ignored",
	})
	require.NoError(t, err)
	assert.Equal(t, "Cash", out.Billing.PaymentMode)
	assert.Nil(t, out.Billing.ReferenceID)

	out, err = h.billing.CreateBilling(ctx, &CreateBillingInput{
		ComputeTotalInput: ComputeTotalInput{PoojaName: "Archana"},
		Username:          "priya",
		PaymentMode:       "Online-UPI",
		ReferenceID:       "UPI-1",
	})
	require.NoError(t, err)
	assert.Nil(t, out.Billing.ReferenceID)
}

func TestCreateBilling_PrintFailureKeepsBill(t *testing.T) {
	h := newHarness(t, enum.SequencerCounter, enum.WithdrawalDateToday)
	ctx := context.Background()
	h.addPooja(t, "Archana", "50")
	h.printer.err = errors.New("paper out")

	out, err := h.billing.CreateBilling(ctx, &CreateBillingInput{
		ComputeTotalInput: ComputeTotalInput{PoojaName: "Archana"},
		Username:          "priya",
		Print:             true,
	})
	require.NoError(t, err)
	assert.False(t, out.Printed)
	assert.Equal(t, "paper out", out.PrintError)

	_, err = h.billing.GetBilling(ctx, out.Billing.ID)
	assert.NoError(t, err)
}

func TestCreateBilling_InvalidInputWritesNothing(t *testing.T) {
	h := newHarness(t, enum.SequencerCounter, enum.WithdrawalDateToday)
	ctx := context.Background()

	_, err := h.billing.CreateBilling(ctx, &CreateBillingInput{
		ComputeTotalInput: ComputeTotalInput{PoojaName: "Unknown", Quantity: "1"},
		Username:          "priya",
	})
	requireFieldError(t, err, "pooja_name")

	list, err := h.billing.ListBillings(ctx, &ListBillingsInput{IsAdmin: true})
	require.NoError(t, err)
	assert.Empty(t, list.Items)
}

func TestGetBilling_NotFound(t *testing.T) {
	h := newHarness(t, enum.SequencerCounter, enum.WithdrawalDateToday)

	_, err := h.billing.GetBilling(context.Background(), 404)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Billing not found")
}

func TestListBillings_StaffSeeOnlyTheirOwn(t *testing.T) {
	h := newHarness(t, enum.SequencerCounter, enum.WithdrawalDateToday)
	ctx := context.Background()
	h.addPooja(t, "Archana", "50")
	h.bill(t, "priya", "Archana", "1", "Cash")
	h.bill(t, "ravi", "Archana", "1", "Cash")
	h.bill(t, "priya", "Archana", "2", "Cash")

	staff, err := h.billing.ListBillings(ctx, &ListBillingsInput{Caller: "priya", Username: "ravi"})
	require.NoError(t, err)
	require.Len(t, staff.Items, 2)
	assert.Equal(t, "SRI/25-26/3", staff.Items[0].ReceiptNo)

	admin, err := h.billing.ListBillings(ctx, &ListBillingsInput{
		Caller:     "admin",
		IsAdmin:    true,
		Pagination: &pagination.PaginationParams{Page: 1, PerPage: 2},
	})
	require.NoError(t, err)
	assert.Len(t, admin.Items, 2)
	assert.Equal(t, int64(3), admin.Pagination.Total)
}
