package router

import (
	"time"

	"github.com/neelamenterprises/sajawatdesigns/internal/cache"
	"github.com/neelamenterprises/sajawatdesigns/internal/config"
	"github.com/neelamenterprises/sajawatdesigns/internal/handler"
	"github.com/neelamenterprises/sajawatdesigns/internal/middleware"
	"github.com/neelamenterprises/sajawatdesigns/internal/repository"
	"github.com/neelamenterprises/sajawatdesigns/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
//
// db is nil when no live backend is configured: reads then serve the static
// dataset and writes report the backend as unavailable. rdb is nil when Redis
// is absent, which disables the page cache.
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(600, time.Minute)) // 600 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	var store repository.CatalogStore
	var live repository.Catalog
	if db != nil {
		store = repository.NewGormCatalog(db)
		live = store
	}
	static := repository.NewStaticCatalog()

	// ── Services ─────────────────────────────────────────────────────────────
	catalogSvc := service.NewCatalogService(live, static)
	adminSvc := service.NewAdminService(store)

	pages := cache.New(rdb, cache.DefaultTTL)

	// ── Handlers ─────────────────────────────────────────────────────────────
	catalogH := handler.NewCatalogHandler(catalogSvc, pages)
	adminH := handler.NewAdminHandler(adminSvc, pages)

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/health", handler.Health(db, rdb))

	v1 := r.Group("/v1")
	{
		v1.GET("/categories", catalogH.ListCategories)
		v1.GET("/categories/:slug", catalogH.GetCategory)
		v1.GET("/products", catalogH.ListProducts)
		v1.GET("/products/featured", catalogH.Featured)
		v1.GET("/products/trending", catalogH.Trending)
		v1.GET("/products/:slug", catalogH.GetProduct)
		v1.GET("/products/:slug/related", catalogH.Related)
		v1.GET("/search", catalogH.Search)
	}

	// The admin group only exists with a real signing secret. An empty or
	// placeholder ADMIN_JWT_SECRET would turn every admin token into a
	// forgeable one, so the write API is withheld instead.
	if cfg.AdminAPIEnabled() {
		admin := v1.Group("/admin", middleware.AdminAuth(cfg.AdminJWTSecret))
		{
			admin.POST("/products", adminH.CreateProduct)
			admin.PUT("/products/:id", adminH.UpdateProduct)
			admin.DELETE("/products/:id", adminH.DeleteProduct)
			admin.PATCH("/products/:id/toggle", adminH.ToggleProduct)

			admin.POST("/categories", adminH.CreateCategory)
			admin.PUT("/categories/:id", adminH.UpdateCategory)
			admin.DELETE("/categories/:id", adminH.DeleteCategory)
		}
	} else {
		log.Warn().Msg("ADMIN_JWT_SECRET not set, admin API disabled")
	}

	return r
}
