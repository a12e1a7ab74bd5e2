package entity

import (
	"time"

	"github.com/sangkips/temple-billing/internal/domain/enum"
	"github.com/shopspring/decimal"
)

// Billing is one pooja sale or donation. Rows are written once and never
// updated; ID order is insertion order.
type Billing struct {
	ID           uint            `gorm:"primaryKey" json:"id"`
	DevName      string          `gorm:"size:255" json:"dev_name"`
	PoojaName    string          `gorm:"size:255;not null;index" json:"pooja_name"`
	Qty          int             `gorm:"not null" json:"qty"`
	Price        decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	Total        decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total"`
	ReceiptNo    string          `gorm:"size:64;not null;uniqueIndex" json:"receipt_no"`
	BillDate     string          `gorm:"size:10;not null;index" json:"bill_date"` // YYYY-MM-DD, business timezone
	BillDateTime time.Time       `gorm:"column:bill_datetime;not null" json:"bill_datetime"`
	Username     string          `gorm:"size:100;not null;index" json:"username"`
	PaymentMode  string          `gorm:"size:50;not null" json:"payment_mode"`
	ReferenceID  *string         `gorm:"size:255" json:"reference_id,omitempty"`
	Withdrawn    bool            `gorm:"not null;default:false" json:"withdrawn"` // legacy, never read
	CreatedAt    time.Time       `json:"created_at"`
}

// TableName returns the table name for the Billing model
func (Billing) TableName() string {
	return "billing"
}

// IsDonation reports whether the row records a donation
func (b *Billing) IsDonation() bool {
	return enum.IsDonationLabel(b.PoojaName)
}

// Bucket returns the reconciliation bucket of the row's payment mode
func (b *Billing) Bucket() enum.PaymentBucket {
	return enum.PaymentBucketOf(b.PaymentMode)
}
