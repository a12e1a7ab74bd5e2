package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is money paid out by the temple office
type Expense struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	ExpenseDate string          `gorm:"size:10;not null;index" json:"expense_date"` // YYYY-MM-DD
	Purpose     string          `gorm:"type:text;not null" json:"purpose"`
	Amount      decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	AddedBy     string          `gorm:"size:100;not null" json:"added_by"`
	CreatedAt   time.Time       `json:"created_at"`
}

// TableName returns the table name for the Expense model
func (Expense) TableName() string {
	return "expenses"
}
