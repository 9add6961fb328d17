package handlers

import (
	portssvc "github.com/homefolio/expense_tracker_app/internal/core/ports/services"
	"github.com/homefolio/expense_tracker_app/internal/middleware"
	"github.com/homefolio/expense_tracker_app/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	registerAuthRoutes(r, services.Auth)

	api := r.Group("/api")
	registerExpenseRoutes(api, services.Expense)

	// Only the three /api/reports endpoints honor the bearer token, and
	// they fail open with empty payloads rather than a 401. The summary,
	// list and mutation endpoints are deliberately left ungated;
	// extending coverage is a product decision, not a refactor.
	registerReportingRoutes(api, cfg.AppToken, services.Reporting)
}

// registerReportingRoutes registers the summary and report routes.
func registerReportingRoutes(rg *gin.RouterGroup, appToken string, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	rg.GET("/summary", h.getSummary)

	reports := rg.Group("/reports", middleware.ReportTokenAuth(appToken))
	{
		reports.GET("/time-series", h.getTimeSeries)
		reports.GET("/range-breakdown", h.getRangeBreakdown)
		reports.GET("/available-years", h.getAvailableYears)
	}
}
