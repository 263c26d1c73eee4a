package handler

import (
	"errors"
	"net/http"

	"github.com/neelamenterprises/sajawatdesigns/internal/apierror"
	"github.com/neelamenterprises/sajawatdesigns/internal/cache"
	"github.com/neelamenterprises/sajawatdesigns/internal/dto"
	"github.com/neelamenterprises/sajawatdesigns/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AdminHandler serves the catalog write endpoints. Every successful mutation
// flushes the page cache so shoppers never see stale listings.
type AdminHandler struct {
	svc   service.AdminService
	pages *cache.PageCache
}

func NewAdminHandler(svc service.AdminService, pages *cache.PageCache) *AdminHandler {
	return &AdminHandler{svc: svc, pages: pages}
}

// writeError maps service errors onto HTTP statuses.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrLiveBackendRequired):
		c.JSON(http.StatusServiceUnavailable, apierror.New(err.Error()))
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
	default:
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
	}
}

// CreateProduct POST /v1/admin/products
func (h *AdminHandler) CreateProduct(c *gin.Context) {
	var req dto.ProductRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CreateProduct(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	h.pages.InvalidateAll(c.Request.Context())
	c.JSON(http.StatusCreated, resp)
}

// UpdateProduct PUT /v1/admin/products/:id
func (h *AdminHandler) UpdateProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid id"))
		return
	}
	var req dto.ProductRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, svcErr := h.svc.UpdateProduct(c.Request.Context(), id, req)
	if svcErr != nil {
		writeError(c, svcErr)
		return
	}
	h.pages.InvalidateAll(c.Request.Context())
	c.JSON(http.StatusOK, resp)
}

// DeleteProduct DELETE /v1/admin/products/:id
func (h *AdminHandler) DeleteProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid id"))
		return
	}
	if svcErr := h.svc.DeleteProduct(c.Request.Context(), id); svcErr != nil {
		writeError(c, svcErr)
		return
	}
	h.pages.InvalidateAll(c.Request.Context())
	c.Status(http.StatusNoContent)
}

// ToggleProduct PATCH /v1/admin/products/:id/toggle
func (h *AdminHandler) ToggleProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid id"))
		return
	}
	var req dto.ToggleProductRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if svcErr := h.svc.ToggleProduct(c.Request.Context(), id, req); svcErr != nil {
		writeError(c, svcErr)
		return
	}
	h.pages.InvalidateAll(c.Request.Context())
	c.Status(http.StatusNoContent)
}

// CreateCategory POST /v1/admin/categories
func (h *AdminHandler) CreateCategory(c *gin.Context) {
	var req dto.CategoryRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CreateCategory(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	h.pages.InvalidateAll(c.Request.Context())
	c.JSON(http.StatusCreated, resp)
}

// UpdateCategory PUT /v1/admin/categories/:id
func (h *AdminHandler) UpdateCategory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid id"))
		return
	}
	var req dto.CategoryRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, svcErr := h.svc.UpdateCategory(c.Request.Context(), id, req)
	if svcErr != nil {
		writeError(c, svcErr)
		return
	}
	h.pages.InvalidateAll(c.Request.Context())
	c.JSON(http.StatusOK, resp)
}

// DeleteCategory DELETE /v1/admin/categories/:id
func (h *AdminHandler) DeleteCategory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid id"))
		return
	}
	if svcErr := h.svc.DeleteCategory(c.Request.Context(), id); svcErr != nil {
		writeError(c, svcErr)
		return
	}
	h.pages.InvalidateAll(c.Request.Context())
	c.Status(http.StatusNoContent)
}
