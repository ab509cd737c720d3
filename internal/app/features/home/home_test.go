package home

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dalemusser/streamscope/internal/testutil"
	"go.uber.org/zap"
)

func TestIndex(t *testing.T) {
	testutil.MustBootTemplates(t)
	h := NewHandler(testutil.SampleCatalog(t), "", zap.NewNop())

	rec := testutil.NewRecorder()
	h.Index(rec.ResponseRecorder, testutil.NewPageRequest(http.MethodGet, "/"))

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "StreamScope")
	rec.AssertContains(t, "Movie")
}

func TestIndexSanitizesNotes(t *testing.T) {
	testutil.MustBootTemplates(t)

	notesPath := filepath.Join(t.TempDir(), "notes.html")
	notes := `<p>Refreshed <b>last week</b>.</p><script>alert("x")</script>`
	if err := os.WriteFile(notesPath, []byte(notes), 0o644); err != nil {
		t.Fatalf("write notes: %v", err)
	}

	h := NewHandler(testutil.SampleCatalog(t), notesPath, zap.NewNop())

	rec := testutil.NewRecorder()
	h.Index(rec.ResponseRecorder, testutil.NewPageRequest(http.MethodGet, "/"))

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "Refreshed <b>last week</b>.")
	if strings.Contains(rec.Body.String(), "<script>") {
		t.Error("script tag survived sanitization")
	}
}

func TestIndexMissingNotesFile(t *testing.T) {
	testutil.MustBootTemplates(t)
	h := NewHandler(testutil.SampleCatalog(t), "/no/such/file.html", zap.NewNop())

	rec := testutil.NewRecorder()
	h.Index(rec.ResponseRecorder, testutil.NewPageRequest(http.MethodGet, "/"))

	// Missing notes are logged but never fail the page.
	rec.AssertStatus(t, http.StatusOK)
}
