package server

import (
	"log/slog"
	"net/http"

	"finance-tracker/internal/config"
	"finance-tracker/internal/handlers"
	"finance-tracker/internal/middleware"
	"finance-tracker/internal/services"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Dependencies are the collaborators the HTTP surface is built from
type Dependencies struct {
	Config      *config.Config
	Logger      *slog.Logger
	Registerer  prometheus.Registerer
	Gatherer    prometheus.Gatherer
	Sessions    middleware.LedgerResolver
	Tokens      services.TokenServiceInterface
	Store       handlers.StorePinger
	RateLimiter *middleware.RateLimiter
}

// NewRouter builds the echo instance serving /api/v1, /health and /metrics
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.NewHTTPErrorHandler(deps.Logger, deps.Registerer).Handle

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery(deps.Logger))
	e.Use(middleware.SecurityHeaders(deps.Config.Server.Environment))
	if len(deps.Config.Server.CORSAllowOrigins) > 0 {
		e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
			AllowOrigins:     deps.Config.Server.CORSAllowOrigins,
			AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
			AllowHeaders:     []string{echo.HeaderContentType, echo.HeaderAuthorization, middleware.TraceIDHeader},
			AllowCredentials: true,
		}))
	}

	health := handlers.NewHealthCheckHandler(deps.Store)
	e.GET("/health", health.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))

	api := e.Group("/api/v1",
		deps.RateLimiter.Middleware(),
		middleware.Identity(deps.Tokens),
		middleware.Session(deps.Sessions, deps.Config.Engine),
	)
	registerLedgerRoutes(api, handlers.NewLedgerHandler(deps.Logger, deps.Config.Engine.DemoModeCookieName))

	return e
}

func registerLedgerRoutes(api *echo.Group, h *handlers.LedgerHandler) {
	api.GET("/mode", h.GetMode)
	api.PUT("/mode", h.SwitchMode)

	api.GET("/accounts", h.ListAccounts)
	api.POST("/accounts", h.CreateAccount)
	api.GET("/accounts/:id", h.GetAccount)
	api.PUT("/accounts/:id", h.UpdateAccount)
	api.DELETE("/accounts/:id", h.DeleteAccount)
	api.POST("/accounts/:id/reconcile", h.ReconcileAccount)

	api.GET("/transactions", h.ListTransactions)
	api.POST("/transactions", h.CreateTransaction)
	api.GET("/transactions/:id", h.GetTransaction)
	api.PUT("/transactions/:id", h.UpdateTransaction)
	api.DELETE("/transactions/:id", h.DeleteTransaction)

	api.GET("/categories", h.ListCategories)
	api.POST("/categories", h.CreateCategory)
	api.PUT("/categories/:id", h.UpdateCategory)
	api.DELETE("/categories/:id", h.DeleteCategory)

	api.GET("/budgets", h.ListBudgets)
	api.POST("/budgets", h.CreateBudget)
	api.GET("/budgets/progress", h.GetBudgetProgress)
	api.PUT("/budgets/:id", h.UpdateBudget)
	api.DELETE("/budgets/:id", h.DeleteBudget)

	api.GET("/goals", h.ListGoals)
	api.POST("/goals", h.CreateGoal)
	api.GET("/goals/progress", h.GetGoalProgress)
	api.PUT("/goals/:id", h.UpdateGoal)
	api.DELETE("/goals/:id", h.DeleteGoal)

	api.GET("/dashboard", h.GetDashboard)
	api.GET("/analytics/categories", h.GetCategoryBreakdown)
}
