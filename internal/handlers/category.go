package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/deblinanandy/stockmanagement/internal/catalog"
)

type CategoryHandler struct {
	service *catalog.CategoryService
}

func NewCategoryHandler(service *catalog.CategoryService) *CategoryHandler {
	return &CategoryHandler{service: service}
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var req catalog.CategoryRequest
	if !bindAndValidate(c, &req) {
		return
	}

	category, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, "Category created successfully", category)
}

func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "", categories)
}

func (h *CategoryHandler) GetByID(c *gin.Context) {
	category, err := h.service.Get(c.Request.Context(), c.Param("categoryId"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "", category)
}

func (h *CategoryHandler) Update(c *gin.Context) {
	var req catalog.CategoryRequest
	if !bindAndValidate(c, &req) {
		return
	}

	category, err := h.service.Update(c.Request.Context(), c.Param("categoryId"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Category updated successfully", category)
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("categoryId")); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Category deleted successfully", nil)
}
