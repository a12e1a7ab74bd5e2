package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/temple-billing/internal/application/service"
	"github.com/sangkips/temple-billing/internal/presentation/http/dto/request"
	"github.com/sangkips/temple-billing/internal/presentation/http/dto/response"
)

// ExpenseHandler handles temple expense HTTP requests
type ExpenseHandler struct {
	expenseService *service.ExpenseService
}

// NewExpenseHandler creates a new expense handler
func NewExpenseHandler(expenseService *service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

// Create records an expense
func (h *ExpenseHandler) Create(c *gin.Context) {
	var req request.CreateExpenseRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	expense, err := h.expenseService.CreateExpense(c.Request.Context(), &service.CreateExpenseInput{
		ExpenseDate: req.ExpenseDate,
		Purpose:     req.Purpose,
		Amount:      req.Amount.String(),
		AddedBy:     req.AddedBy,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Expense added", expense)
}

// List returns expenses, optionally within from/to
func (h *ExpenseHandler) List(c *gin.Context) {
	var q request.DateRangeQuery
	_ = c.ShouldBindQuery(&q)

	expenses, err := h.expenseService.ListExpenses(c.Request.Context(), q.From, q.To)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Expenses retrieved successfully", expenses)
}

// Export downloads expenses as xlsx
func (h *ExpenseHandler) Export(c *gin.Context) {
	var q request.DateRangeQuery
	_ = c.ShouldBindQuery(&q)

	export, err := h.expenseService.ExportExpenses(c.Request.Context(), q.From, q.To)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Attachment(c, export.FileName, export.ContentType, export.Data)
}
