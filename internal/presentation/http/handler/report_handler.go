package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/temple-billing/internal/application/service"
	"github.com/sangkips/temple-billing/internal/presentation/http/dto/request"
	"github.com/sangkips/temple-billing/internal/presentation/http/dto/response"
)

// ReportHandler serves transaction reports and exports
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

func reportInput(c *gin.Context) *service.ReportInput {
	var q request.ReportQuery
	_ = c.ShouldBindQuery(&q)
	return &service.ReportInput{
		From:        q.From,
		To:          q.To,
		PoojaName:   q.PoojaName,
		Username:    q.Username,
		PaymentMode: q.PaymentMode,
	}
}

// Options returns the filter drop-down values
func (h *ReportHandler) Options(c *gin.Context) {
	opts, err := h.reportService.Options(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Report options retrieved successfully", opts)
}

// Search returns the filtered rows
func (h *ReportHandler) Search(c *gin.Context) {
	result, err := h.reportService.Search(c.Request.Context(), reportInput(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Report generated successfully", result)
}

// Export downloads the filtered rows as xlsx
func (h *ReportHandler) Export(c *gin.Context) {
	export, err := h.reportService.Export(c.Request.Context(), reportInput(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Attachment(c, export.FileName, export.ContentType, export.Data)
}
