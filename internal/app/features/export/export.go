// internal/app/features/export/export.go
package export

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"net/url"
	"time"

	errorpages "github.com/dalemusser/streamscope/internal/app/features/errorpages"
	"github.com/dalemusser/streamscope/internal/app/store/catalog"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Handler serves the filtered-subset CSV download. The export uses the same
// filter query parameters as the dashboard and emits rows with the schema of
// the normalized file, unchanged.
type Handler struct {
	store  *catalog.Store
	errLog *errorpages.ErrorLogger
	logger *zap.Logger
}

// NewHandler creates a new export Handler.
func NewHandler(store *catalog.Store, errLog *errorpages.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		store:  store,
		errLog: errLog,
		logger: logger,
	}
}

// Routes returns the router for the export feature.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/csv", h.ServeCSV)
	return r
}

// ServeCSV handles GET /export/csv - download of the currently filtered
// subset.
func (h *Handler) ServeCSV(w http.ResponseWriter, r *http.Request) {
	f := catalog.FilterFromQuery(r.URL.Query())
	tbl := h.store.Filter(f).Table()

	filename := fmt.Sprintf("streamscope_%s.csv", time.Now().Format("20060102"))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, url.PathEscape(filename)))

	// UTF-8 BOM for Excel
	if _, err := w.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		h.logger.Error("CSV write failed (BOM)", zap.Error(err))
		return
	}

	cw := csv.NewWriter(w)
	cw.UseCRLF = true
	defer cw.Flush()

	if err := cw.Write(tbl.Columns); err != nil {
		h.logger.Error("CSV write failed (header)", zap.Error(err))
		return
	}

	rec := make([]string, len(tbl.Columns))
	for _, row := range tbl.Rows {
		for j := range rec {
			rec[j] = ""
			if j < len(row) && row[j].Valid {
				rec[j] = sanitizeCSVField(row[j].Value)
			}
		}
		if err := cw.Write(rec); err != nil {
			h.logger.Error("CSV write failed (row)", zap.Error(err))
			return
		}
	}

	h.logger.Info("filtered catalog exported",
		zap.Int("rows", len(tbl.Rows)),
		zap.String("filter", f.Query().Encode()),
	)
}

// sanitizeCSVField prevents CSV formula injection.
func sanitizeCSVField(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@':
		return "'" + s
	}
	return s
}
