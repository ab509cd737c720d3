// internal/app/features/filters/filters.go
package filters

import (
	"net/http"
	"net/url"

	errorpages "github.com/dalemusser/streamscope/internal/app/features/errorpages"
	"github.com/dalemusser/streamscope/internal/app/store/catalog"
	"github.com/dalemusser/streamscope/internal/app/system/filterstate"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Handler persists and clears the visitor's saved filter. Both routes are
// form posts from the dashboard sidebar and are CSRF-protected by the
// global middleware.
type Handler struct {
	filters *filterstate.Manager
	errLog  *errorpages.ErrorLogger
	logger  *zap.Logger
}

// NewHandler creates a new filters Handler.
func NewHandler(filters *filterstate.Manager, errLog *errorpages.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		filters: filters,
		errLog:  errLog,
		logger:  logger,
	}
}

// Routes returns the router for the filters feature.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/save", h.Save)
	r.Post("/clear", h.Clear)
	return r
}

// Save handles POST /filters/save. The dashboard form carries the active
// filter as an encoded query string in filter_query.
func (h *Handler) Save(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	q, err := url.ParseQuery(r.PostFormValue("filter_query"))
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	f := catalog.FilterFromQuery(q)

	if err := h.filters.Save(w, r, f); err != nil {
		h.errLog.Log(r, "saving filter failed", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	h.logger.Debug("filter saved", zap.String("filter", f.Query().Encode()))
	redirectToDashboard(w, r, f)
}

// Clear handles POST /filters/clear.
func (h *Handler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.filters.Clear(w, r); err != nil {
		h.errLog.Log(r, "clearing filter failed", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func redirectToDashboard(w http.ResponseWriter, r *http.Request, f catalog.Filter) {
	target := "/dashboard"
	if enc := f.Query().Encode(); enc != "" {
		target += "?" + enc
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}
