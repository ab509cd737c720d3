// internal/app/features/explore/handler.go
package explore

import (
	"net/http"

	"github.com/dalemusser/streamscope/internal/app/store/catalog"
	"github.com/dalemusser/streamscope/internal/app/system/jsonutil"
	"go.uber.org/zap"
)

// Handler serves the chart JSON API. Every endpoint accepts the same filter
// query parameters as the dashboard page (type, country, rating, year_min,
// year_max) and aggregates over the matching subset.
type Handler struct {
	store  *catalog.Store
	logger *zap.Logger
}

// NewHandler creates a new explore Handler.
func NewHandler(store *catalog.Store, logger *zap.Logger) *Handler {
	return &Handler{
		store:  store,
		logger: logger,
	}
}

func (h *Handler) subset(r *http.Request) *catalog.Subset {
	return h.store.Filter(catalog.FilterFromQuery(r.URL.Query()))
}

// ServeTypes handles GET /api/charts/types.
func (h *Handler) ServeTypes(w http.ResponseWriter, r *http.Request) {
	jsonutil.OK(w, h.subset(r).TypeCounts())
}

// ServeGenres handles GET /api/charts/genres.
func (h *Handler) ServeGenres(w http.ResponseWriter, r *http.Request) {
	jsonutil.OK(w, h.subset(r).TopGenres(10))
}

// ServeCountries handles GET /api/charts/countries.
func (h *Handler) ServeCountries(w http.ResponseWriter, r *http.Request) {
	jsonutil.OK(w, h.subset(r).TopCountries(5))
}

// ServeRatings handles GET /api/charts/ratings.
func (h *Handler) ServeRatings(w http.ResponseWriter, r *http.Request) {
	jsonutil.OK(w, h.subset(r).RatingCounts())
}

// ServeReleaseTimeline handles GET /api/charts/release-timeline.
func (h *Handler) ServeReleaseTimeline(w http.ResponseWriter, r *http.Request) {
	jsonutil.OK(w, h.subset(r).ReleaseTimeline())
}

// ServeAddedTimeline handles GET /api/charts/added-timeline.
func (h *Handler) ServeAddedTimeline(w http.ResponseWriter, r *http.Request) {
	jsonutil.OK(w, h.subset(r).AddedTimeline())
}

// ServeDurationByRating handles GET /api/charts/duration-by-rating.
func (h *Handler) ServeDurationByRating(w http.ResponseWriter, r *http.Request) {
	jsonutil.OK(w, h.subset(r).DurationByRating())
}

// summaryResponse is the GET /api/summary payload.
type summaryResponse struct {
	Count       int             `json:"count"`
	ReleaseYear catalog.Summary `json:"release_year"`
	YearAdded   catalog.Summary `json:"year_added"`
	Duration    catalog.Summary `json:"duration_mins"`
}

// ServeSummary handles GET /api/summary.
func (h *Handler) ServeSummary(w http.ResponseWriter, r *http.Request) {
	sub := h.subset(r)
	jsonutil.OK(w, summaryResponse{
		Count:       sub.Len(),
		ReleaseYear: sub.ReleaseYearSummary(),
		YearAdded:   sub.YearAddedSummary(),
		Duration:    sub.DurationSummary(),
	})
}
