package dto

import (
	"github.com/homefolio/expense_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TimeSeriesParams carries the raw query-string values of the
// time-series endpoint.
type TimeSeriesParams struct {
	Period   string
	Days     string
	From     string
	To       string
	User     string
	Category string
}

// RangeParams carries the raw query-string values of the
// range-breakdown endpoint.
type RangeParams struct {
	From     string
	To       string
	Days     string
	User     string
	Category string
}

// ReportFilterParams carries the optional enum filters shared by
// reports without a date window.
type ReportFilterParams struct {
	User     string
	Category string
}

// SummaryResponse is the envelope of the unscoped totals endpoint.
type SummaryResponse struct {
	Ok         bool                       `json:"ok"`
	ByCategory map[string]decimal.Decimal `json:"byCategory"`
	ByUser     map[string]decimal.Decimal `json:"byUser"`
}

// SeriesPointResponse is one bucket of a time-series report.
type SeriesPointResponse struct {
	Period string          `json:"period"`
	Total  decimal.Decimal `json:"total"`
}

// TimeSeriesResponse is the envelope of the time-series endpoint.
type TimeSeriesResponse struct {
	Ok   bool                  `json:"ok"`
	Data []SeriesPointResponse `json:"data"`
}

// RangeBreakdownResponse is the envelope of the range-breakdown
// endpoint.
type RangeBreakdownResponse struct {
	Ok         bool                       `json:"ok"`
	ByCategory map[string]decimal.Decimal `json:"byCategory"`
	ByUser     map[string]decimal.Decimal `json:"byUser"`
}

// AvailableYearsResponse is the envelope of the available-years
// endpoint.
type AvailableYearsResponse struct {
	Ok   bool  `json:"ok"`
	Data []int `json:"data"`
}

// ToSeriesPointResponses converts domain series points to their wire
// form, returning an empty slice rather than nil.
func ToSeriesPointResponses(points []domain.SeriesPoint) []SeriesPointResponse {
	data := make([]SeriesPointResponse, 0, len(points))
	for _, p := range points {
		data = append(data, SeriesPointResponse{Period: p.Period, Total: p.Total})
	}
	return data
}
