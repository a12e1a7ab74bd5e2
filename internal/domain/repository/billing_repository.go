package repository

import (
	"context"

	"github.com/sangkips/temple-billing/internal/domain/entity"
	"github.com/sangkips/temple-billing/pkg/pagination"
)

// BillingRepository defines the interface for billing transaction data operations
type BillingRepository interface {
	Create(ctx context.Context, billing *entity.Billing) error
	GetByID(ctx context.Context, id uint) (*entity.Billing, error)
	// LastReceiptNo returns the receipt number of the most recently inserted
	// row whose receipt_no starts with prefix, or "" when there is none.
	LastReceiptNo(ctx context.Context, prefix string) (string, error)
	List(ctx context.Context, params *BillingFilterParams) ([]entity.Billing, int64, error)
	// Search returns rows matching a report filter ordered by insertion.
	Search(ctx context.Context, filter *ReportFilter) ([]entity.Billing, error)
	DistinctPoojaNames(ctx context.Context) ([]string, error)
	DistinctUsernames(ctx context.Context) ([]string, error)
	DistinctPaymentModes(ctx context.Context) ([]string, error)
}

// BillingFilterParams contains filtering parameters for billing listings
type BillingFilterParams struct {
	Pagination *pagination.PaginationParams
	Username   string // empty lists every user
}

// ReportFilter narrows billing rows for reports and exports.
// From and To are inclusive YYYY-MM-DD bounds.
type ReportFilter struct {
	From        string
	To          string
	PoojaName   string
	Username    string
	PaymentMode string // matched case-insensitively
}
