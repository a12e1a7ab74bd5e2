package request

// CreateBillingRequest represents a counter sale or donation
type CreateBillingRequest struct {
	DevName         string     `json:"dev_name" form:"dev_name" binding:"max=255"`
	PoojaName       string     `json:"pooja_name" form:"pooja_name" binding:"required"`
	Qty             FlexString `json:"qty" form:"qty"`
	DonationPurpose string     `json:"donation_purpose" form:"donation_purpose" binding:"max=200"`
	DonationAmount  FlexString `json:"donation_amount" form:"donation_amount"`
	PaymentMode     string     `json:"payment_mode" form:"payment_mode" binding:"max=50"`
	ReferenceID     string     `json:"reference_id" form:"reference_id" binding:"max=255"`
	Print           bool       `json:"print" form:"print"`
}

// ListBillingsQuery represents billing list query parameters
type ListBillingsQuery struct {
	Username string `form:"username"`
	Page     string `form:"page"`
	PerPage  string `form:"per_page"`
}

// WithdrawRequest represents a cash handover
type WithdrawRequest struct {
	HandoverAmount FlexString `json:"handover_amount" form:"handover_amount"`
	Date           string     `json:"date" form:"date"`
}
