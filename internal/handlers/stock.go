package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/deblinanandy/stockmanagement/internal/catalog"
)

type StockHandler struct {
	service *catalog.StockService
}

func NewStockHandler(service *catalog.StockService) *StockHandler {
	return &StockHandler{service: service}
}

func (h *StockHandler) Create(c *gin.Context) {
	var req catalog.StockRequest
	if !bindAndValidate(c, &req) {
		return
	}

	stock, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, "Stock created successfully", stock)
}

func (h *StockHandler) GetByPair(c *gin.Context) {
	stock, err := h.service.Get(c.Request.Context(), c.Param("productId"), c.Param("variationId"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "", stock)
}

func (h *StockHandler) Update(c *gin.Context) {
	var req catalog.UpdateStockRequest
	if !bindAndValidate(c, &req) {
		return
	}

	stock, err := h.service.Update(c.Request.Context(), c.Param("stockId"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Stock updated successfully", stock)
}

func (h *StockHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("stockId")); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Stock record deleted successfully", nil)
}
