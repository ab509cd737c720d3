// internal/app/features/dashboard/handler.go
package dashboard

import (
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"

	errorpages "github.com/dalemusser/streamscope/internal/app/features/errorpages"
	"github.com/dalemusser/streamscope/internal/app/store/catalog"
	"github.com/dalemusser/streamscope/internal/app/system/filterstate"
	"github.com/dalemusser/streamscope/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// RecentSince is the release-year cutoff for the "recent content" metric.
const RecentSince = 2020

// Handler serves the main dashboard page.
type Handler struct {
	store   *catalog.Store
	filters *filterstate.Manager
	errLog  *errorpages.ErrorLogger
	logger  *zap.Logger
}

// NewHandler creates a new dashboard Handler.
func NewHandler(store *catalog.Store, filters *filterstate.Manager, errLog *errorpages.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		store:   store,
		filters: filters,
		errLog:  errLog,
		logger:  logger,
	}
}

// EffectiveFilter resolves the filter for a request: explicit query
// parameters win; otherwise the visitor's saved filter applies.
func (h *Handler) EffectiveFilter(r *http.Request) (catalog.Filter, bool) {
	if f := catalog.FilterFromQuery(r.URL.Query()); !f.IsZero() {
		return f, false
	}
	if saved, ok := h.filters.Load(r); ok {
		return saved, true
	}
	return catalog.Filter{}, false
}

// ServeDashboard handles GET /dashboard.
func (h *Handler) ServeDashboard(w http.ResponseWriter, r *http.Request) {
	f, fromSession := h.EffectiveFilter(r)
	sub := h.store.Filter(f)

	yearFloor, yearCeil, _ := h.store.YearRange()

	vm := DashboardVM{
		BaseVM:         viewdata.NewBaseVM(r, "Dashboard", "/"),
		Filter:         f,
		FilterQuery:    f.Query().Encode(),
		HasSavedFilter: fromSession,
		TypeOptions:    h.store.Types(),
		CountryOptions: h.store.Countries(),
		RatingOptions:  h.store.Ratings(),
		YearFloor:      yearFloor,
		YearCeil:       yearCeil,

		TypeCounts:       sub.TypeCounts(),
		TopGenres:        sub.TopGenres(10),
		TopCountries:     sub.TopCountries(5),
		RatingCounts:     sub.RatingCounts(),
		DurationByRating: sub.DurationByRating(),

		ReleaseSummary:  sub.ReleaseYearSummary(),
		AddedSummary:    sub.YearAddedSummary(),
		DurationSummary: sub.DurationSummary(),

		FilteredCount: sub.Len(),
		TotalCount:    h.store.Len(),
	}
	vm.Metrics = buildMetrics(sub)

	charts, err := json.Marshal(chartData{
		Types:            vm.TypeCounts,
		Genres:           vm.TopGenres,
		Countries:        vm.TopCountries,
		Ratings:          vm.RatingCounts,
		DurationByRating: vm.DurationByRating,
		ReleaseTimeline:  sub.ReleaseTimeline(),
		AddedTimeline:    sub.AddedTimeline(),
	})
	if err != nil {
		h.errLog.Log(r, "chart data encode failed", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	vm.ChartsJSON = template.JS(charts)

	templates.Render(w, r, "dashboard/index", vm)
}

// buildMetrics assembles the metric cards along the top of the page.
func buildMetrics(sub *catalog.Subset) []MetricVM {
	return []MetricVM{
		{Label: "Total Titles", Value: fmt.Sprintf("%d", sub.Len())},
		{Label: "Movies %", Value: fmt.Sprintf("%.1f%%", sub.MoviePercent())},
		{Label: fmt.Sprintf("Recent (%d+)", RecentSince), Value: fmt.Sprintf("%d", sub.RecentCount(RecentSince))},
		{Label: "Countries", Value: fmt.Sprintf("%d", sub.CountryCount())},
	}
}
