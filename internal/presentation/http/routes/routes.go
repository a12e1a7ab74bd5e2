package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/temple-billing/internal/config"
	"github.com/sangkips/temple-billing/internal/domain/enum"
	domainRepo "github.com/sangkips/temple-billing/internal/domain/repository"
	"github.com/sangkips/temple-billing/internal/infrastructure/logger"
	"github.com/sangkips/temple-billing/internal/presentation/http/handler"
	"github.com/sangkips/temple-billing/internal/presentation/http/middleware"
	"github.com/sangkips/temple-billing/pkg/utils"
	"go.uber.org/zap"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth       *handler.AuthHandler
	Billing    *handler.BillingHandler
	Collection *handler.CollectionHandler
	Dashboard  *handler.DashboardHandler
	Pooja      *handler.PoojaHandler
	Report     *handler.ReportHandler
	Expense    *handler.ExpenseHandler
	Printer    *handler.PrinterHandler
	User       *handler.UserHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
	RateLimiter     *middleware.UserRateLimiter
	Logger          *zap.Logger
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	router.Use(logger.Recovery(deps.Logger))
	router.Use(logger.GinMiddleware(deps.Logger))
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})
		v1.POST("/auth/login", h.Auth.Login)

		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))
		if deps.RateLimiter != nil {
			protected.Use(deps.RateLimiter.Middleware())
		}

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	admin := middleware.RequireRole(enum.UserRoleAdmin)

	protected.POST("/auth/logout", h.Auth.Logout)
	protected.GET("/profile", h.Auth.GetProfile)

	protected.GET("/dashboard", h.Dashboard.GetStats)

	// Billing counter
	protected.GET("/billing/poojas", h.Billing.Poojas)
	billings := protected.Group("/billings")
	{
		billings.GET("", h.Billing.List)
		billings.GET("/:id", h.Billing.Get)
		billings.POST("", middleware.Idempotency(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
			TTL:  deps.Cfg.Idempotency.TTL,
		}), h.Billing.Create)
	}

	// Cash reconciliation
	collections := protected.Group("/collections")
	{
		collections.GET("", h.Collection.Summary)
		collections.POST("/withdraw", middleware.Idempotency(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
			TTL:  deps.Cfg.Idempotency.TTL,
		}), h.Collection.Withdraw)
	}

	// Catalog
	poojas := protected.Group("/poojas", admin)
	{
		poojas.GET("", h.Pooja.List)
		poojas.POST("", h.Pooja.Create)
		poojas.PUT("/:id/price", h.Pooja.UpdatePrice)
		poojas.POST("/:id/toggle", h.Pooja.Toggle)
		poojas.DELETE("/:id", h.Pooja.Delete)
	}

	// Reports
	reports := protected.Group("/reports")
	{
		reports.GET("", h.Report.Search)
		reports.GET("/options", h.Report.Options)
		reports.GET("/export", h.Report.Export)
	}

	// Expenses
	expenses := protected.Group("/expenses", admin)
	{
		expenses.GET("", h.Expense.List)
		expenses.POST("", h.Expense.Create)
		expenses.GET("/export", h.Expense.Export)
	}

	// Accounts
	users := protected.Group("/users", admin)
	{
		users.GET("", h.User.List)
		users.POST("", h.User.Create)
		users.GET("/:id", h.User.Get)
		users.PUT("/:id/role", h.User.UpdateRole)
		users.DELETE("/:id", h.User.Delete)
	}

	// Printer
	printer := protected.Group("/printer")
	{
		printer.GET("/status", h.Printer.GetStatus)
		printer.POST("/test", admin, h.Printer.TestPrint)
		printer.POST("/billing/:id", h.Printer.PrintBilling)
	}
}
