package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/neelamenterprises/sajawatdesigns/internal/cache"
	"github.com/neelamenterprises/sajawatdesigns/internal/middleware"
	"github.com/neelamenterprises/sajawatdesigns/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func mintToken(t *testing.T, role string) string {
	t.Helper()
	claims := middleware.AdminClaims{
		Subject: "admin@example.com",
		Role:    role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}

// newAdminRouter wires the admin routes with no live backend configured, so
// every authenticated write should report the backend as unavailable.
func newAdminRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := NewAdminHandler(service.NewAdminService(nil), cache.New(nil, 0))

	r := gin.New()
	admin := r.Group("/v1/admin", middleware.AdminAuth(testSecret))
	admin.POST("/products", h.CreateProduct)
	admin.PUT("/products/:id", h.UpdateProduct)
	admin.DELETE("/products/:id", h.DeleteProduct)
	admin.PATCH("/products/:id/toggle", h.ToggleProduct)
	admin.POST("/categories", h.CreateCategory)
	return r
}

func adminReq(t *testing.T, r *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAdminRequiresToken(t *testing.T) {
	r := newAdminRouter()

	w := adminReq(t, r, http.MethodPost, "/v1/admin/categories", "", `{"name":"Rings"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = adminReq(t, r, http.MethodPost, "/v1/admin/categories", "garbage-token", `{"name":"Rings"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminRequiresAdminRole(t *testing.T) {
	r := newAdminRouter()
	token := mintToken(t, "viewer")

	w := adminReq(t, r, http.MethodPost, "/v1/admin/categories", token, `{"name":"Rings"}`)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminWritesWithoutBackendAreUnavailable(t *testing.T) {
	r := newAdminRouter()
	token := mintToken(t, "admin")

	w := adminReq(t, r, http.MethodPost, "/v1/admin/categories", token, `{"name":"Nose Pins"}`)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestAdminValidation(t *testing.T) {
	r := newAdminRouter()
	token := mintToken(t, "admin")

	// Missing required name
	w := adminReq(t, r, http.MethodPost, "/v1/admin/categories", token, `{}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	// Malformed JSON
	w = adminReq(t, r, http.MethodPost, "/v1/admin/categories", token, `{"name":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Bad uuid in path
	w = adminReq(t, r, http.MethodDelete, "/v1/admin/products/not-a-uuid", token, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Toggle rejects fields outside the whitelist
	w = adminReq(t, r, http.MethodPatch,
		"/v1/admin/products/b0000000-0000-4000-8000-000000000001/toggle", token,
		`{"field":"price","value":true}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}
