package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/deblinanandy/stockmanagement/internal/catalog"
)

type ProductHandler struct {
	service *catalog.ProductService
}

func NewProductHandler(service *catalog.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req catalog.ProductRequest
	if !bindAndValidate(c, &req) {
		return
	}

	product, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, "Product created successfully", product)
}

func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "", products)
}

func (h *ProductHandler) GetByID(c *gin.Context) {
	product, err := h.service.Get(c.Request.Context(), c.Param("productId"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "", product)
}

func (h *ProductHandler) Update(c *gin.Context) {
	var req catalog.ProductRequest
	if !bindAndValidate(c, &req) {
		return
	}

	product, err := h.service.Update(c.Request.Context(), c.Param("productId"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Product updated successfully", product)
}

func (h *ProductHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("productId")); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Product deleted successfully", nil)
}
