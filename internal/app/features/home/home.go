// internal/app/features/home/home.go
package home

import (
	"html/template"
	"net/http"
	"os"

	"github.com/dalemusser/streamscope/internal/app/store/catalog"
	"github.com/dalemusser/streamscope/internal/app/system/htmlsanitize"
	"github.com/dalemusser/streamscope/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Handler provides the landing page.
type Handler struct {
	store     *catalog.Store
	notesPath string
	logger    *zap.Logger
}

// NewHandler creates a new home Handler. notesPath may be empty; when set it
// names an HTML fragment shown on the landing page after sanitization.
func NewHandler(store *catalog.Store, notesPath string, logger *zap.Logger) *Handler {
	return &Handler{
		store:     store,
		notesPath: notesPath,
		logger:    logger,
	}
}

// HomeVM is the view model for the landing page.
type HomeVM struct {
	viewdata.BaseVM
	Types []string
	Notes template.HTML // operator notes, sanitized
}

// Routes returns a chi.Router with home routes mounted.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.Index)
	return r
}

// Index renders the landing page: the dataset info card plus optional
// operator notes.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	vm := HomeVM{
		BaseVM: viewdata.New(r),
		Types:  h.store.Types(),
	}
	vm.Title = "Home"

	if h.notesPath != "" {
		raw, err := os.ReadFile(h.notesPath)
		if err != nil {
			h.logger.Warn("failed to load notes file", zap.String("path", h.notesPath), zap.Error(err))
		} else {
			vm.Notes = htmlsanitize.SanitizeToHTML(string(raw))
		}
	}

	templates.Render(w, r, "home/index", vm)
}
