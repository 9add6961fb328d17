package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/homefolio/expense_tracker_app/internal/core/ports/services"
	"github.com/homefolio/expense_tracker_app/internal/dto"
	"github.com/homefolio/expense_tracker_app/internal/middleware"
	"github.com/shopspring/decimal"
)

// reportingHandler handles HTTP requests for aggregate reports
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// getSummary godoc
// @Summary Unscoped category and user totals
// @Description Totals the entire record set by category; per-user totals cover only records filed under the reserved "user" category
// @Tags reports
// @Produce json
// @Success 200 {object} dto.SummaryResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/summary [get]
func (h *reportingHandler) getSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	totals, err := h.reportingService.SummaryTotals(c.Request.Context())
	if err != nil {
		logger.Error("Failed to generate summary totals", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.SummaryResponse{
		Ok:         true,
		ByCategory: totals.ByCategory,
		ByUser:     totals.ByUser,
	})
}

// getTimeSeries godoc
// @Summary Period-bucketed spending totals
// @Description Buckets matching records by day, ISO week or month; empty buckets are omitted. Without the bearer token the endpoint succeeds with an empty series.
// @Tags reports
// @Produce json
// @Param period query string false "day|week|month" default(month)
// @Param days query int false "Lookback window in whole days" default(365)
// @Param from query string false "Window start (RFC3339 or YYYY-MM-DD)"
// @Param to query string false "Window end (RFC3339 or YYYY-MM-DD)"
// @Param user query string false "User filter or 'all'"
// @Param category query string false "Category filter or 'all'"
// @Success 200 {object} dto.TimeSeriesResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/reports/time-series [get]
func (h *reportingHandler) getTimeSeries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if !middleware.IsReportAuthorized(c) {
		// Fail open: unauthorized callers get an empty series, not a 401.
		c.JSON(http.StatusOK, dto.TimeSeriesResponse{Ok: true, Data: []dto.SeriesPointResponse{}})
		return
	}

	params := dto.TimeSeriesParams{
		Period:   c.Query("period"),
		Days:     c.Query("days"),
		From:     c.Query("from"),
		To:       c.Query("to"),
		User:     c.Query("user"),
		Category: c.Query("category"),
	}

	points, err := h.reportingService.TimeSeries(c.Request.Context(), params)
	if err != nil {
		logger.Error("Failed to generate time series", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.TimeSeriesResponse{Ok: true, Data: dto.ToSeriesPointResponses(points)})
}

// getRangeBreakdown godoc
// @Summary Window-scoped category and user totals
// @Description Totals a date window by category and by the record's user field. Without the bearer token the endpoint succeeds with empty maps.
// @Tags reports
// @Produce json
// @Param from query string false "Window start (RFC3339 or YYYY-MM-DD)"
// @Param to query string false "Window end (RFC3339 or YYYY-MM-DD)"
// @Param days query int false "Lookback window in whole days"
// @Param user query string false "User filter or 'all'"
// @Param category query string false "Category filter or 'all'"
// @Success 200 {object} dto.RangeBreakdownResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/reports/range-breakdown [get]
func (h *reportingHandler) getRangeBreakdown(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if !middleware.IsReportAuthorized(c) {
		c.JSON(http.StatusOK, dto.RangeBreakdownResponse{
			Ok:         true,
			ByCategory: map[string]decimal.Decimal{},
			ByUser:     map[string]decimal.Decimal{},
		})
		return
	}

	params := dto.RangeParams{
		From:     c.Query("from"),
		To:       c.Query("to"),
		Days:     c.Query("days"),
		User:     c.Query("user"),
		Category: c.Query("category"),
	}

	breakdown, err := h.reportingService.RangeBreakdown(c.Request.Context(), params)
	if err != nil {
		logger.Error("Failed to generate range breakdown", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.RangeBreakdownResponse{
		Ok:         true,
		ByCategory: breakdown.ByCategory,
		ByUser:     breakdown.ByUser,
	})
}

// getAvailableYears godoc
// @Summary Calendar years present in matching records
// @Description Returns distinct years descending. Without the bearer token the endpoint succeeds with an empty list.
// @Tags reports
// @Produce json
// @Param user query string false "User filter or 'all'"
// @Param category query string false "Category filter or 'all'"
// @Success 200 {object} dto.AvailableYearsResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/reports/available-years [get]
func (h *reportingHandler) getAvailableYears(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if !middleware.IsReportAuthorized(c) {
		c.JSON(http.StatusOK, dto.AvailableYearsResponse{Ok: true, Data: []int{}})
		return
	}

	params := dto.ReportFilterParams{
		User:     c.Query("user"),
		Category: c.Query("category"),
	}

	years, err := h.reportingService.AvailableYears(c.Request.Context(), params)
	if err != nil {
		logger.Error("Failed to list available years", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.AvailableYearsResponse{Ok: true, Data: years})
}
