package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/neelamenterprises/sajawatdesigns/internal/apierror"
	"github.com/neelamenterprises/sajawatdesigns/internal/cache"
	"github.com/neelamenterprises/sajawatdesigns/internal/dto"
	"github.com/neelamenterprises/sajawatdesigns/internal/service"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the shopper-facing read endpoints. The hot,
// parameterless pages (categories, featured, trending) go through the Redis
// page cache; filtered listings are too variable to be worth caching.
type CatalogHandler struct {
	svc   service.CatalogService
	pages *cache.PageCache
}

func NewCatalogHandler(svc service.CatalogService, pages *cache.PageCache) *CatalogHandler {
	return &CatalogHandler{svc: svc, pages: pages}
}

// ListCategories GET /v1/categories
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	ctx := c.Request.Context()

	var cached []dto.CategoryResponse
	if h.pages.GetJSON(ctx, "categories", &cached) {
		c.JSON(http.StatusOK, cached)
		return
	}

	resp, err := h.svc.Categories(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to list categories"))
		return
	}
	h.pages.SetJSON(ctx, "categories", resp)
	c.JSON(http.StatusOK, resp)
}

// GetCategory GET /v1/categories/:slug
func (h *CatalogHandler) GetCategory(c *gin.Context) {
	resp, err := h.svc.CategoryBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to load category"))
		return
	}
	if resp == nil {
		c.JSON(http.StatusNotFound, apierror.New("Category not found"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListProducts GET /v1/products
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	filter := dto.DecodeProductFilter(c.Request.URL.Query())
	resp, err := h.svc.Products(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to list products"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetProduct GET /v1/products/:slug
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	resp, err := h.svc.ProductBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to load product"))
		return
	}
	if resp == nil {
		c.JSON(http.StatusNotFound, apierror.New("Product not found"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Featured GET /v1/products/featured
func (h *CatalogHandler) Featured(c *gin.Context) {
	h.cachedList(c, "featured", h.svc.Featured)
}

// Trending GET /v1/products/trending
func (h *CatalogHandler) Trending(c *gin.Context) {
	h.cachedList(c, "trending", h.svc.Trending)
}

// Related GET /v1/products/:slug/related
func (h *CatalogHandler) Related(c *gin.Context) {
	ctx := c.Request.Context()
	product, err := h.svc.ProductBySlug(ctx, c.Param("slug"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to load product"))
		return
	}
	if product == nil {
		c.JSON(http.StatusNotFound, apierror.New("Product not found"))
		return
	}
	resp, err := h.svc.Related(ctx, product.ID, product.CategoryID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to load related products"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Search GET /v1/search?q=
func (h *CatalogHandler) Search(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		c.JSON(http.StatusBadRequest, apierror.New("Query parameter q is required"))
		return
	}
	filter := dto.DecodeProductFilter(c.Request.URL.Query())
	resp, err := h.svc.Search(c.Request.Context(), query, filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Search failed"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CatalogHandler) cachedList(c *gin.Context, key string, load func(ctx context.Context) ([]dto.ProductResponse, error)) {
	ctx := c.Request.Context()

	var cached []dto.ProductResponse
	if h.pages.GetJSON(ctx, key, &cached) {
		c.JSON(http.StatusOK, cached)
		return
	}

	resp, err := load(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to load products"))
		return
	}
	h.pages.SetJSON(ctx, key, resp)
	c.JSON(http.StatusOK, resp)
}
