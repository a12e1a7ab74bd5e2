package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/temple-billing/internal/application/service"
	"github.com/sangkips/temple-billing/internal/presentation/http/dto/request"
	"github.com/sangkips/temple-billing/internal/presentation/http/dto/response"
)

// PoojaHandler handles catalog administration
type PoojaHandler struct {
	poojaService *service.PoojaService
}

// NewPoojaHandler creates a new pooja handler
func NewPoojaHandler(poojaService *service.PoojaService) *PoojaHandler {
	return &PoojaHandler{poojaService: poojaService}
}

// List returns the whole catalog
func (h *PoojaHandler) List(c *gin.Context) {
	poojas, err := h.poojaService.ListPoojas(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Poojas retrieved successfully", poojas)
}

// Create adds a catalog entry
func (h *PoojaHandler) Create(c *gin.Context) {
	var req request.CreatePoojaRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	pooja, err := h.poojaService.CreatePooja(c.Request.Context(), &service.CreatePoojaInput{
		Name:  req.PoojaName,
		Price: req.Price.String(),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Pooja added", pooja)
}

// UpdatePrice changes a catalog price
func (h *PoojaHandler) UpdatePrice(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req request.UpdatePriceRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	pooja, err := h.poojaService.UpdatePrice(c.Request.Context(), id, req.Price.String())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Price updated", pooja)
}

// Toggle shows or hides an entry on the billing form
func (h *PoojaHandler) Toggle(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	pooja, err := h.poojaService.ToggleVisibility(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Visibility updated", pooja)
}

// Delete removes a catalog entry
func (h *PoojaHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.poojaService.DeletePooja(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Pooja deleted", nil)
}
