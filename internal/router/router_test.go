package router_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/neelamenterprises/sajawatdesigns/internal/config"
	"github.com/neelamenterprises/sajawatdesigns/internal/router"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func serve(r *gin.Engine, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(`{"name":"Rings"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// Without a real signing secret the admin routes must not exist at all;
// mounting them would verify tokens against a forgeable HMAC key.
func TestAdminRoutesWithheldWithoutSecret(t *testing.T) {
	gin.SetMode(gin.TestMode)

	for _, secret := range []string{"", "changeme"} {
		r := router.New(&config.Config{AdminJWTSecret: secret}, nil, nil)

		w := serve(r, http.MethodPost, "/v1/admin/categories")
		assert.Equal(t, http.StatusNotFound, w.Code, "secret %q", secret)

		// Public surface stays up regardless
		w = serve(r, http.MethodGet, "/v1/categories")
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestAdminRoutesMountedWithSecret(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := router.New(&config.Config{AdminJWTSecret: "a-real-secret"}, nil, nil)

	// Mounted and gatekept: an unauthenticated write is rejected, not unknown.
	w := serve(r, http.MethodPost, "/v1/admin/categories")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
