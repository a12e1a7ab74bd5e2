package entity

import "time"

// ReceiptCounter holds the last issued serial of one receipt series
// (prefix plus fiscal year, e.g. "SRI/25-26").
type ReceiptCounter struct {
	Series     string    `gorm:"primaryKey;size:32"`
	LastSerial int64     `gorm:"not null"`
	UpdatedAt  time.Time
}

// TableName returns the table name for the ReceiptCounter model
func (ReceiptCounter) TableName() string {
	return "receipt_counters"
}
