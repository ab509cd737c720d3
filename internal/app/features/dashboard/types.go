// internal/app/features/dashboard/types.go
package dashboard

import (
	"html/template"

	"github.com/dalemusser/streamscope/internal/app/store/catalog"
	"github.com/dalemusser/streamscope/internal/app/system/viewdata"
)

// MetricVM is a single metric card.
type MetricVM struct {
	Label string
	Value string
}

// DashboardVM is the view model for the main dashboard page.
type DashboardVM struct {
	viewdata.BaseVM

	// Active filter and the options to populate the sidebar controls.
	Filter         catalog.Filter
	FilterQuery    string // encoded filter for links (export, API)
	HasSavedFilter bool
	TypeOptions    []string
	CountryOptions []string
	RatingOptions  []string
	YearFloor      int // bounds of the release-year slider
	YearCeil       int

	// Metric cards
	Metrics []MetricVM

	// Chart tables rendered server-side
	TypeCounts       []catalog.Count
	TopGenres        []catalog.Count
	TopCountries     []catalog.Count
	RatingCounts     []catalog.Count
	DurationByRating []catalog.Count

	// Summary statistics
	ReleaseSummary  catalog.Summary
	AddedSummary    catalog.Summary
	DurationSummary catalog.Summary

	// All chart series, JSON-encoded for the client-side renderer.
	ChartsJSON template.JS

	FilteredCount int
	TotalCount    int
}

// chartData is what ChartsJSON encodes. Field names are the contract with
// assets/js/charts.js.
type chartData struct {
	Types            []catalog.Count     `json:"types"`
	Genres           []catalog.Count     `json:"genres"`
	Countries        []catalog.Count     `json:"countries"`
	Ratings          []catalog.Count     `json:"ratings"`
	DurationByRating []catalog.Count     `json:"duration_by_rating"`
	ReleaseTimeline  []catalog.YearCount `json:"release_timeline"`
	AddedTimeline    []catalog.YearCount `json:"added_timeline"`
}
