package handlers

import (
	"log/slog"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/ratewise/currency_rates_app/cmd/docs"
	portssvc "github.com/ratewise/currency_rates_app/internal/core/ports/services"
	"github.com/ratewise/currency_rates_app/internal/middleware"
	"github.com/ratewise/currency_rates_app/internal/platform/config"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
	limitermem "github.com/ulule/limiter/v3/drivers/store/memory"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	counter *middleware.RequestCounter,
	logger *slog.Logger,
) {
	RegisterCustomValidations(logger)

	r.Use(cors.Default())
	r.Use(counter.Middleware())

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Setup API v1 routes
	setupAPIV1Routes(r, cfg, services, counter, logger)

	// Server-rendered views call the same services as the API
	RegisterWebRoutes(r, services)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	counter *middleware.RequestCounter,
	logger *slog.Logger,
) {
	v1 := r.Group("/api/v1", middleware.RateLimit(newRateLimiter(cfg, logger)))

	// Delegate route registration to specific handlers, passing required services
	RegisterCurrencyRoutes(v1, services.Currency, services.Rate)
	RegisterRateRoutes(v1, services.Rate)
	RegisterConversionRoutes(v1, services.Conversion)
	registerCounterRoutes(v1, counter)
}

func newRateLimiter(cfg *config.Config, logger *slog.Logger) *limiter.Limiter {
	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		logger.Warn("Invalid RATE_LIMIT value, falling back to 60-M", slog.String("value", cfg.RateLimit))
		rate = limiter.Rate{Period: time.Minute, Limit: 60}
	}
	return limiter.New(limitermem.NewStore(), rate)
}

// RegisterCustomValidations adds validations used by the DTO binding tags.
func RegisterCustomValidations(logger *slog.Logger) {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		logger.Warn("Could not access gin validator engine; custom validations disabled")
		return
	}
	// notblank rejects strings that are empty after trimming whitespace
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	// Swagger setup
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
