package entity

import "github.com/shopspring/decimal"

// ReceiptHeader holds the temple header printed at the top of a receipt.
type ReceiptHeader struct {
	TempleName string `json:"temple_name"`
	Address    string `json:"address,omitempty"`
	Phone      string `json:"phone,omitempty"`
}

// ReceiptItem represents a single line on a receipt.
type ReceiptItem struct {
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Total     decimal.Decimal `json:"total"`
}

// Receipt is a value object representing a printable receipt.
// It is composed from a billing row at print time and never stored.
type Receipt struct {
	Header      ReceiptHeader   `json:"header"`
	ReceiptNo   string          `json:"receipt_no"`
	Date        string          `json:"date"`
	Devotee     string          `json:"devotee,omitempty"`
	Cashier     string          `json:"cashier,omitempty"`
	PaymentMode string          `json:"payment_mode,omitempty"`
	ReferenceID string          `json:"reference_id,omitempty"`
	Items       []ReceiptItem   `json:"items"`
	Total       decimal.Decimal `json:"total"`
}
