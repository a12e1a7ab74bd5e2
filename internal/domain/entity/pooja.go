package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Pooja is a priced ritual service in the temple catalog
type Pooja struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	Name      string          `gorm:"column:pooja_name;size:255;not null;uniqueIndex" json:"pooja_name"`
	Price     decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	Visible   bool            `gorm:"not null;default:true" json:"visible"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// TableName returns the table name for the Pooja model
func (Pooja) TableName() string {
	return "pooja_master"
}
