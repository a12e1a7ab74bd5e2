package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/temple-billing/internal/application/service"
	"github.com/sangkips/temple-billing/internal/presentation/http/dto/request"
	"github.com/sangkips/temple-billing/internal/presentation/http/dto/response"
)

// CollectionHandler serves the cash reconciliation ledger
type CollectionHandler struct {
	collectionService *service.CollectionService
}

// NewCollectionHandler creates a new collection handler
func NewCollectionHandler(collectionService *service.CollectionService) *CollectionHandler {
	return &CollectionHandler{collectionService: collectionService}
}

// Summary returns the caller's collection for a day
// @Summary Daily collection
// @Tags collections
// @Produce json
// @Param date query string false "YYYY-MM-DD, defaults to today"
// @Router /collections [get]
func (h *CollectionHandler) Summary(c *gin.Context) {
	day, err := h.collectionService.DailySummary(c.Request.Context(), GetUsername(c), c.Query("date"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Collection retrieved successfully", day)
}

// Withdraw records a cash handover
// @Summary Record handover
// @Tags collections
// @Accept json
// @Produce json
// @Param request body request.WithdrawRequest true "Handover"
// @Router /collections/withdraw [post]
func (h *CollectionHandler) Withdraw(c *gin.Context) {
	var req request.WithdrawRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	withdrawal, err := h.collectionService.RecordWithdrawal(c.Request.Context(), &service.RecordWithdrawalInput{
		Username:       GetUsername(c),
		HandoverAmount: req.HandoverAmount.String(),
		ViewedDate:     req.Date,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Handover recorded", withdrawal)
}
