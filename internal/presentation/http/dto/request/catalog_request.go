package request

// CreatePoojaRequest represents a new catalog entry
type CreatePoojaRequest struct {
	PoojaName string     `json:"pooja_name" form:"pooja_name" binding:"required,max=255"`
	Price     FlexString `json:"price" form:"price" binding:"required"`
}

// UpdatePriceRequest represents a price change
type UpdatePriceRequest struct {
	Price FlexString `json:"price" form:"price" binding:"required"`
}

// CreateExpenseRequest represents an expense entry
type CreateExpenseRequest struct {
	ExpenseDate string     `json:"expense_date" form:"expense_date"`
	Purpose     string     `json:"purpose" form:"purpose"`
	Amount      FlexString `json:"amount" form:"amount"`
	AddedBy     string     `json:"added_by" form:"added_by" binding:"max=100"`
}
