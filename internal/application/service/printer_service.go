package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sangkips/temple-billing/internal/domain/entity"
	"github.com/sangkips/temple-billing/internal/domain/repository"
	"github.com/sangkips/temple-billing/internal/infrastructure/logger"
	"github.com/sangkips/temple-billing/pkg/apperror"
	"github.com/sangkips/temple-billing/pkg/printer"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// PrinterService handles receipt formatting and thermal printing.
type PrinterService struct {
	printer     printer.Printer
	billingRepo repository.BillingRepository
	header      entity.ReceiptHeader
	charWidth   int
	loc         *time.Location
}

// NewPrinterService creates a new printer service.
func NewPrinterService(
	p printer.Printer,
	billingRepo repository.BillingRepository,
	header entity.ReceiptHeader,
	charWidth int,
	loc *time.Location,
) *PrinterService {
	if charWidth <= 0 {
		charWidth = printer.DefaultCharWidth
	}
	if loc == nil {
		loc = time.UTC
	}
	return &PrinterService{
		printer:     p,
		billingRepo: billingRepo,
		header:      header,
		charWidth:   charWidth,
		loc:         loc,
	}
}

// PrinterStatus returns the current printer status information.
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
	Target     string `json:"target,omitempty"`
}

// GetStatus returns printer connection status.
func (s *PrinterService) GetStatus(ctx context.Context) *PrinterStatus {
	st := s.printer.Status(ctx)
	return &PrinterStatus{
		Configured: st.Type != "none" && st.Type != "",
		Connected:  st.Connected,
		Type:       st.Type,
		Target:     st.Target,
	}
}

// ReceiptFor builds the printable receipt of a billing row.
func (s *PrinterService) ReceiptFor(b *entity.Billing) *entity.Receipt {
	r := &entity.Receipt{
		Header:      s.header,
		ReceiptNo:   b.ReceiptNo,
		Date:        b.BillDateTime.In(s.loc).Format("02/01/2006 15:04"),
		Devotee:     b.DevName,
		Cashier:     b.Username,
		PaymentMode: b.PaymentMode,
		Items: []entity.ReceiptItem{{
			Name:      b.PoojaName,
			Quantity:  b.Qty,
			UnitPrice: b.Price,
			Total:     b.Total,
		}},
		Total: b.Total,
	}
	if b.ReferenceID != nil {
		r.ReferenceID = *b.ReferenceID
	}
	return r
}

// PrintBilling prints the receipt of a stored billing row. The receipt is
// returned even when printing fails.
func (s *PrinterService) PrintBilling(ctx context.Context, b *entity.Billing) (*entity.Receipt, error) {
	receipt := s.ReceiptFor(b)
	if err := s.printer.Print(ctx, FormatReceipt(receipt, s.charWidth)); err != nil {
		logger.FromContext(ctx).Error("Printer error",
			zap.String("receipt_no", b.ReceiptNo),
			zap.Error(err),
		)
		return receipt, fmt.Errorf("failed to print receipt: %w", err)
	}
	return receipt, nil
}

// Reprint prints the receipt of a billing row again.
func (s *PrinterService) Reprint(ctx context.Context, id uint) (*entity.Receipt, error) {
	b, err := s.billingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, apperror.NewNotFoundError("Billing")
	}
	return s.PrintBilling(ctx, b)
}

// TestPrint sends a test page to the printer.
// The receipt is returned so a disabled printer still shows what would print.
func (s *PrinterService) TestPrint(ctx context.Context) (*entity.Receipt, error) {
	receipt := &entity.Receipt{
		Header:      s.header,
		ReceiptNo:   "TEST-001",
		Date:        time.Now().In(s.loc).Format("02/01/2006 15:04"),
		Cashier:     "System",
		PaymentMode: "Cash",
		Items: []entity.ReceiptItem{
			{Name: "Archana", Quantity: 1, UnitPrice: decimal.NewFromInt(10), Total: decimal.NewFromInt(10)},
			{Name: "Pushpanjali", Quantity: 2, UnitPrice: decimal.NewFromInt(5), Total: decimal.NewFromInt(10)},
		},
		Total: decimal.NewFromInt(20),
	}

	if err := s.printer.Print(ctx, FormatReceipt(receipt, s.charWidth)); err != nil {
		return receipt, fmt.Errorf("test print failed: %w", err)
	}
	return receipt, nil
}

func rupees(d decimal.Decimal) string {
	return "₹" + d.StringFixed(2)
}

// FormatReceipt converts a Receipt into ESC/POS bytes.
func FormatReceipt(r *entity.Receipt, charWidth int) []byte {
	doc := printer.NewDocument(charWidth)

	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		SetFontSize(printer.FontDouble).
		Text(r.Header.TempleName).
		SetFontSize(printer.FontNormal).
		SetBold(false)

	if r.Header.Address != "" {
		doc.Text(r.Header.Address)
	}
	if r.Header.Phone != "" {
		doc.TextF("Ph: %s", r.Header.Phone)
	}

	doc.SetAlign(printer.AlignLeft).
		Separator('-')

	doc.KeyValue("Receipt:", r.ReceiptNo).
		KeyValue("Date:", r.Date)

	if r.Devotee != "" {
		doc.KeyValue("Devotee:", r.Devotee)
	}
	if r.Cashier != "" {
		doc.KeyValue("Counter:", r.Cashier)
	}
	if r.PaymentMode != "" {
		doc.KeyValue("Payment:", r.PaymentMode)
	}
	if r.ReferenceID != "" {
		doc.KeyValue("Ref:", r.ReferenceID)
	}

	doc.Separator('-')

	for _, item := range r.Items {
		doc.ItemLine(item.Quantity, item.Name, rupees(item.Total))
		if item.Quantity > 1 {
			doc.TextF("  @ %s each", rupees(item.UnitPrice))
		}
	}

	doc.Separator('-').
		SetBold(true).
		KeyValue("TOTAL:", rupees(r.Total)).
		SetBold(false).
		Separator('-')

	doc.SetAlign(printer.AlignCenter).
		FeedLines(1).
		Text("Thank you. May God bless you!").
		FeedLines(1).
		SetAlign(printer.AlignLeft)

	doc.FeedLines(3).
		PartialCut()

	return doc.Bytes()
}
