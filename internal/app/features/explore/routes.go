// internal/app/features/explore/routes.go
package explore

import (
	"github.com/go-chi/chi/v5"
)

// Routes returns the router for the chart API, mounted under /api.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Route("/charts", func(r chi.Router) {
		r.Get("/types", h.ServeTypes)
		r.Get("/genres", h.ServeGenres)
		r.Get("/countries", h.ServeCountries)
		r.Get("/ratings", h.ServeRatings)
		r.Get("/release-timeline", h.ServeReleaseTimeline)
		r.Get("/added-timeline", h.ServeAddedTimeline)
		r.Get("/duration-by-rating", h.ServeDurationByRating)
	})
	r.Get("/summary", h.ServeSummary)

	return r
}
