package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/sangkips/temple-billing/internal/domain/entity"
	"github.com/sangkips/temple-billing/internal/domain/enum"
	"github.com/sangkips/temple-billing/internal/domain/repository"
	"github.com/sangkips/temple-billing/internal/infrastructure/logger"
	"github.com/sangkips/temple-billing/pkg/apperror"
	"github.com/sangkips/temple-billing/pkg/pagination"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ReceiptPrinter prints the receipt of a stored billing transaction
type ReceiptPrinter interface {
	PrintBilling(ctx context.Context, billing *entity.Billing) (*entity.Receipt, error)
}

// BillingService records pooja sales and donations
type BillingService struct {
	transactor  repository.Transactor
	billingRepo repository.BillingRepository
	poojaRepo   repository.PoojaRepository
	sequencer   ReceiptSequencer
	printer     ReceiptPrinter
	clock       Clock
}

// NewBillingService creates a new billing service
func NewBillingService(
	transactor repository.Transactor,
	billingRepo repository.BillingRepository,
	poojaRepo repository.PoojaRepository,
	sequencer ReceiptSequencer,
	printer ReceiptPrinter,
	clock Clock,
) *BillingService {
	return &BillingService{
		transactor:  transactor,
		billingRepo: billingRepo,
		poojaRepo:   poojaRepo,
		sequencer:   sequencer,
		printer:     printer,
		clock:       clock,
	}
}

// ComputeTotalInput is the item part of a billing submission, as entered
type ComputeTotalInput struct {
	PoojaName       string
	Quantity        string
	DonationPurpose string
	DonationAmount  string
}

// LineItem is a priced billing line
type LineItem struct {
	PoojaName string
	Qty       int
	Price     decimal.Decimal
	Total     decimal.Decimal
}

// ComputeTotal prices one submission. Donations take their amount as
// entered and always count once; catalog items are priced from the
// catalog whether or not they are visible.
func (s *BillingService) ComputeTotal(ctx context.Context, input *ComputeTotalInput) (*LineItem, error) {
	if input.PoojaName == enum.DonationItemName {
		return computeDonation(input)
	}

	qty, err := parseQuantity(input.Quantity)
	if err != nil {
		return nil, err
	}

	pooja, err := s.poojaRepo.GetByName(ctx, input.PoojaName)
	if err != nil {
		return nil, fmt.Errorf("look up pooja: %w", err)
	}
	if pooja == nil {
		return nil, apperror.NewFieldError("pooja_name", "invalid pooja")
	}

	return &LineItem{
		PoojaName: pooja.Name,
		Qty:       qty,
		Price:     pooja.Price,
		Total:     pooja.Price.Mul(decimal.NewFromInt(int64(qty))).Round(2),
	}, nil
}

func computeDonation(input *ComputeTotalInput) (*LineItem, error) {
	purpose := strings.TrimSpace(input.DonationPurpose)
	rawAmount := strings.TrimSpace(input.DonationAmount)

	var fieldErrors []apperror.FieldError
	if purpose == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "donation_purpose", Message: "donation purpose is required"})
	}
	if rawAmount == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "donation_amount", Message: "donation amount is required"})
	}
	if len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	amount, err := decimal.NewFromString(rawAmount)
	if err != nil || !amount.IsPositive() {
		return nil, apperror.NewFieldError("donation_amount", "invalid donation amount")
	}
	amount = amount.Round(2)

	return &LineItem{
		PoojaName: enum.DonationLabel(purpose),
		Qty:       1,
		Price:     amount,
		Total:     amount,
	}, nil
}

// parseQuantity treats a blank quantity as 1 and rejects anything that is
// not a positive whole number.
func parseQuantity(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 1, nil
	}
	qty, err := strconv.Atoi(raw)
	if err != nil || qty <= 0 {
		return 0, apperror.NewFieldError("qty", "invalid quantity")
	}
	return qty, nil
}

// CreateBillingInput represents a billing submission
type CreateBillingInput struct {
	ComputeTotalInput
	Username    string
	DevName     string
	PaymentMode string
	ReferenceID string
	Print       bool
}

// CreateBillingOutput is the stored transaction plus the print outcome
type CreateBillingOutput struct {
	Billing    *entity.Billing
	Printed    bool
	PrintError string
}

// CreateBilling prices the submission, draws the next receipt number and
// stores the transaction atomically. A failed print never undoes the bill.
func (s *BillingService) CreateBilling(ctx context.Context, input *CreateBillingInput) (*CreateBillingOutput, error) {
	item, err := s.ComputeTotal(ctx, &input.ComputeTotalInput)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	mode := enum.NormalizePaymentMode(input.PaymentMode)

	billing := &entity.Billing{
		DevName:      strings.TrimSpace(input.DevName),
		PoojaName:    item.PoojaName,
		Qty:          item.Qty,
		Price:        item.Price,
		Total:        item.Total,
		BillDate:     DateOf(now),
		BillDateTime: now,
		Username:     input.Username,
		PaymentMode:  mode,
	}
	if ref := strings.TrimSpace(input.ReferenceID); ref != "" && enum.KeepsReference(mode) {
		billing.ReferenceID = &ref
	}

	err = s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		receiptNo, err := s.sequencer.Next(ctx, now)
		if err != nil {
			return err
		}
		billing.ReceiptNo = receiptNo
		return s.billingRepo.Create(ctx, billing)
	})
	if err != nil {
		return nil, fmt.Errorf("create billing: %w", err)
	}

	out := &CreateBillingOutput{Billing: billing}
	if input.Print && s.printer != nil {
		if _, err := s.printer.PrintBilling(ctx, billing); err != nil {
			logger.FromContext(ctx).Warn("Receipt print failed",
				zap.String("receipt_no", billing.ReceiptNo),
				zap.Error(err),
			)
			out.PrintError = err.Error()
		} else {
			out.Printed = true
		}
	}

	return out, nil
}

// GetBilling returns one billing transaction
func (s *BillingService) GetBilling(ctx context.Context, id uint) (*entity.Billing, error) {
	billing, err := s.billingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if billing == nil {
		return nil, apperror.NewNotFoundError("Billing")
	}
	return billing, nil
}

// ListBillingsInput selects whose transactions to list
type ListBillingsInput struct {
	Caller     string
	IsAdmin    bool
	Username   string // admins only; empty means every user
	Pagination *pagination.PaginationParams
}

// ListBillings lists transactions newest first. Staff only ever see their own.
func (s *BillingService) ListBillings(ctx context.Context, input *ListBillingsInput) (*pagination.PaginatedResult[entity.Billing], error) {
	params := input.Pagination
	if params == nil {
		params = pagination.DefaultPagination()
	}
	params.Validate()

	username := input.Caller
	if input.IsAdmin {
		username = input.Username
	}

	billings, total, err := s.billingRepo.List(ctx, &repository.BillingFilterParams{
		Pagination: params,
		Username:   username,
	})
	if err != nil {
		return nil, err
	}

	return pagination.NewPaginatedResult(billings, pagination.NewPagination(params.Page, params.PerPage, total)), nil
}

// VisiblePoojas returns the catalog offered on the billing form
func (s *BillingService) VisiblePoojas(ctx context.Context) ([]entity.Pooja, error) {
	return s.poojaRepo.ListVisible(ctx)
}
