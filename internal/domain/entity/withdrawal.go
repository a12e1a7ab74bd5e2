package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Withdrawal is an immutable snapshot of a user's day plus one cash handover.
// Remaining = Cash - (handovers recorded earlier that day + Handover).
type Withdrawal struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	Username  string          `gorm:"size:100;not null;index:idx_withdrawals_user_date" json:"username"`
	Date      string          `gorm:"size:10;not null;index:idx_withdrawals_user_date" json:"date"` // YYYY-MM-DD
	Cash      decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"cash"`
	Online    decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"online"`
	Donation  decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"donation"`
	Handover  decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"handover"`
	Remaining decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"remaining"`
	CreatedAt time.Time       `gorm:"not null" json:"created_at"`
}

// TableName returns the table name for the Withdrawal model
func (Withdrawal) TableName() string {
	return "withdrawals"
}
