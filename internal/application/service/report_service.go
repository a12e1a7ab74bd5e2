package service

import (
	"context"
	"time"

	"github.com/sangkips/temple-billing/internal/domain/entity"
	"github.com/sangkips/temple-billing/internal/domain/repository"
	"github.com/sangkips/temple-billing/pkg/apperror"
	"github.com/shopspring/decimal"
)

// ReportService filters and exports billing transactions
type ReportService struct {
	billingRepo repository.BillingRepository
	loc         *time.Location
}

// NewReportService creates a new report service
func NewReportService(billingRepo repository.BillingRepository, loc *time.Location) *ReportService {
	return &ReportService{billingRepo: billingRepo, loc: loc}
}

// ReportInput holds report filters as submitted
type ReportInput struct {
	From        string
	To          string
	PoojaName   string
	Username    string
	PaymentMode string
}

// ReportOptions feeds the report filter drop-downs
type ReportOptions struct {
	Poojas       []string `json:"poojas"`
	Users        []string `json:"users"`
	PaymentModes []string `json:"payment_modes"`
}

// ReportResult is the filtered rows with their grand total
type ReportResult struct {
	From  string           `json:"from"`
	To    string           `json:"to"`
	Count int              `json:"count"`
	Total decimal.Decimal  `json:"total"`
	Rows  []entity.Billing `json:"rows"`
}

// Options lists the distinct values recorded so far
func (s *ReportService) Options(ctx context.Context) (*ReportOptions, error) {
	poojas, err := s.billingRepo.DistinctPoojaNames(ctx)
	if err != nil {
		return nil, err
	}
	users, err := s.billingRepo.DistinctUsernames(ctx)
	if err != nil {
		return nil, err
	}
	modes, err := s.billingRepo.DistinctPaymentModes(ctx)
	if err != nil {
		return nil, err
	}

	return &ReportOptions{
		Poojas:       nonNil(poojas),
		Users:        nonNil(users),
		PaymentModes: nonNil(modes),
	}, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func (s *ReportService) filter(input *ReportInput) (*repository.ReportFilter, error) {
	var fieldErrors []apperror.FieldError

	from, err := ParseInputDate("from", input.From)
	if err != nil {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "from", Message: "from must be D/M/YYYY or YYYY-MM-DD"})
	}
	to, err := ParseInputDate("to", input.To)
	if err != nil {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "to", Message: "to must be D/M/YYYY or YYYY-MM-DD"})
	}
	if len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	return &repository.ReportFilter{
		From:        from,
		To:          to,
		PoojaName:   input.PoojaName,
		Username:    input.Username,
		PaymentMode: input.PaymentMode,
	}, nil
}

// Search returns the matching rows in insertion order
func (s *ReportService) Search(ctx context.Context, input *ReportInput) (*ReportResult, error) {
	filter, err := s.filter(input)
	if err != nil {
		return nil, err
	}

	rows, err := s.billingRepo.Search(ctx, filter)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []entity.Billing{}
	}

	total := decimal.Zero
	for _, row := range rows {
		total = total.Add(row.Total)
	}

	return &ReportResult{From: filter.From, To: filter.To, Count: len(rows), Total: total, Rows: rows}, nil
}

var reportColumns = []sheetColumn{
	{"Receipt No", 15},
	{"Date & Time", 22},
	{"Devotee", 20},
	{"Pooja", 20},
	{"Qty", 10},
	{"Total ₹", 12},
	{"Payment Mode", 15},
	{"Reference ID", 25},
	{"User", 15},
}

// Export renders the matching rows as an xlsx workbook
func (s *ReportService) Export(ctx context.Context, input *ReportInput) (*Export, error) {
	result, err := s.Search(ctx, input)
	if err != nil {
		return nil, err
	}

	rows := make([][]any, 0, len(result.Rows))
	for _, b := range result.Rows {
		ref := ""
		if b.ReferenceID != nil {
			ref = *b.ReferenceID
		}
		rows = append(rows, []any{
			b.ReceiptNo,
			b.BillDateTime.In(s.loc).Format("02/01/2006 15:04:05"),
			b.DevName,
			b.PoojaName,
			b.Qty,
			b.Total.InexactFloat64(),
			b.PaymentMode,
			ref,
			b.Username,
		})
	}

	data, err := buildWorkbook("Temple Report", reportColumns, rows)
	if err != nil {
		return nil, err
	}
	return &Export{FileName: "temple-report.xlsx", ContentType: xlsxContentType, Data: data}, nil
}
