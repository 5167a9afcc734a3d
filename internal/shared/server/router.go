package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"product-describer/internal/descriptions"
	"product-describer/internal/drafts"
	"product-describer/internal/services/health"
	"product-describer/internal/shared/config"
	"product-describer/internal/shared/metrics"
	"product-describer/internal/shared/server/middleware"
	"product-describer/internal/shared/server/respond"
)

const healthPath = "/api/v1/health"

// RouterDeps carries the handlers mounted by NewRouter. Nil handlers are
// skipped.
type RouterDeps struct {
	Config              config.Config
	DescriptionsHandler *descriptions.Handler
	DraftsHandler       *drafts.Handler
	Health              *health.Service
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	if deps.Config.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.Use(
		middleware.Identity(healthPath),
		middleware.RateLimit(rateLimitConfig(deps.Config)),
	)

	healthSvc := deps.Health
	if healthSvc == nil {
		healthSvc = health.NewService()
	}
	api.GET("/health", func(c *gin.Context) {
		report := healthSvc.Status(c.Request.Context())
		status := http.StatusOK
		if !report.OK {
			status = http.StatusServiceUnavailable
		}
		respond.JSON(c, status, report)
	})

	if deps.DescriptionsHandler != nil {
		deps.DescriptionsHandler.RegisterRoutes(api)
	}
	if deps.DraftsHandler != nil {
		deps.DraftsHandler.RegisterRoutes(api)
	}

	return r
}

func rateLimitConfig(cfg config.Config) middleware.RateLimitConfig {
	return middleware.RateLimitConfig{
		Rules: map[string]middleware.RateLimitRule{
			"DEFAULT":  {Rate: cfg.RateLimitPerSec, Burst: cfg.RateLimitBurst},
			"GENERATE": {Rate: cfg.GenerateLimitRate, Burst: cfg.GenerateBurst},
		},
		GroupFor: func(c *gin.Context) string {
			if c.Request.Method == http.MethodPost && c.FullPath() == "/api/v1/descriptions" {
				return "GENERATE"
			}
			if c.Request.URL.Path == healthPath {
				return "NONE"
			}
			return "DEFAULT"
		},
	}
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
