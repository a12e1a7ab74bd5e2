package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/temple-billing/internal/application/service"
	"github.com/sangkips/temple-billing/internal/presentation/http/dto/request"
	"github.com/sangkips/temple-billing/internal/presentation/http/dto/response"
	"github.com/sangkips/temple-billing/pkg/pagination"
)

// BillingHandler handles billing counter HTTP requests
type BillingHandler struct {
	billingService *service.BillingService
}

// NewBillingHandler creates a new billing handler
func NewBillingHandler(billingService *service.BillingService) *BillingHandler {
	return &BillingHandler{billingService: billingService}
}

// Create records a sale or donation
// @Summary Create billing
// @Tags billing
// @Accept json
// @Produce json
// @Param Idempotency-Key header string false "Retry key"
// @Param request body request.CreateBillingRequest true "Billing"
// @Success 201 {object} response.APIResponse
// @Failure 422 {object} response.APIResponse
// @Router /billings [post]
func (h *BillingHandler) Create(c *gin.Context) {
	var req request.CreateBillingRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	out, err := h.billingService.CreateBilling(c.Request.Context(), &service.CreateBillingInput{
		ComputeTotalInput: service.ComputeTotalInput{
			PoojaName:       req.PoojaName,
			Quantity:        req.Qty.String(),
			DonationPurpose: req.DonationPurpose,
			DonationAmount:  req.DonationAmount.String(),
		},
		Username:    GetUsername(c),
		DevName:     req.DevName,
		PaymentMode: req.PaymentMode,
		ReferenceID: req.ReferenceID,
		Print:       req.Print,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	data := gin.H{
		"billing": out.Billing,
		"printed": out.Printed,
	}
	if out.PrintError != "" {
		data["print_error"] = out.PrintError
	}
	response.Created(c, "Bill saved: "+out.Billing.ReceiptNo, data)
}

// List returns recent billing transactions, newest first
// @Summary List billings
// @Tags billing
// @Produce json
// @Router /billings [get]
func (h *BillingHandler) List(c *gin.Context) {
	var q request.ListBillingsQuery
	_ = c.ShouldBindQuery(&q)

	result, err := h.billingService.ListBillings(c.Request.Context(), &service.ListBillingsInput{
		Caller:     GetUsername(c),
		IsAdmin:    IsAdmin(c),
		Username:   q.Username,
		Pagination: pagination.FromQuery(q.Page, q.PerPage),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, "Billings retrieved successfully", result)
}

// Get returns one billing transaction
// @Summary Get billing
// @Tags billing
// @Produce json
// @Router /billings/{id} [get]
func (h *BillingHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	billing, err := h.billingService.GetBilling(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Billing retrieved successfully", billing)
}

// Poojas returns the visible catalog for the billing form
// @Summary Billing catalog
// @Tags billing
// @Produce json
// @Router /billing/poojas [get]
func (h *BillingHandler) Poojas(c *gin.Context) {
	poojas, err := h.billingService.VisiblePoojas(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Poojas retrieved successfully", poojas)
}
