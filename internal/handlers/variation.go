package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/deblinanandy/stockmanagement/internal/catalog"
)

type VariationHandler struct {
	service *catalog.VariationService
}

func NewVariationHandler(service *catalog.VariationService) *VariationHandler {
	return &VariationHandler{service: service}
}

func (h *VariationHandler) Create(c *gin.Context) {
	var req catalog.VariationRequest
	if !bindAndValidate(c, &req) {
		return
	}

	variation, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, "Variation created successfully", variation)
}

func (h *VariationHandler) List(c *gin.Context) {
	variations, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "", variations)
}

func (h *VariationHandler) GetByID(c *gin.Context) {
	variation, err := h.service.Get(c.Request.Context(), c.Param("variationId"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "", variation)
}

func (h *VariationHandler) Update(c *gin.Context) {
	var req catalog.VariationRequest
	if !bindAndValidate(c, &req) {
		return
	}

	variation, err := h.service.Update(c.Request.Context(), c.Param("variationId"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Variation updated successfully", variation)
}

func (h *VariationHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("variationId")); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Variation deleted successfully", nil)
}
