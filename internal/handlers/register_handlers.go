package handlers

import (
	portssvc "github.com/contazen/erp-ledger/internal/core/ports/services"
	"github.com/contazen/erp-ledger/internal/middleware"
	"github.com/contazen/erp-ledger/pkg/config"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	r.Use(corsMiddleware(cfg))

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Setup API v1 routes with Auth Middleware, passing service interfaces
	setupAPIV1Routes(r, cfg, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Apply AuthMiddleware and IP rate limiting to the entire v1 group
	v1 := r.Group("/api/v1",
		middleware.AuthMiddleware(cfg.JWTSecret),
		middleware.RateLimit(newIPLimiter(cfg.RateLimitFormat)),
	)

	// All ledger resources are scoped to a company
	company := v1.Group("/companies/:company_id")
	registerLedgerRoutes(company, services.Ledger)
	registerBankRoutes(company, services.BankJournal)
	registerCashRoutes(company, services.CashJournal)
	registerPurchaseRoutes(company, services.PurchaseJournal)
	registerSalesRoutes(company, services.SalesJournal)
	registerPeriodRoutes(company, services.Period)
	registerNumberingRoutes(company, services.Numbering)
}

func newIPLimiter(rateFormat string) *limiter.Limiter {
	rate, err := limiter.NewRateFromFormatted(rateFormat)
	if err != nil {
		// invalid formats fall back to the default rate
		rate, _ = limiter.NewRateFromFormatted("100-M")
	}
	return limiter.New(memory.NewStore(), rate)
}

func corsMiddleware(cfg *config.Config) gin.HandlerFunc {
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	if len(cfg.CORSAllowedOrigins) > 0 {
		corsCfg.AllowOrigins = cfg.CORSAllowedOrigins
	} else {
		corsCfg.AllowAllOrigins = true
	}
	return cors.New(corsCfg)
}
