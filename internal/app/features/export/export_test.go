package export

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	errorpages "github.com/dalemusser/streamscope/internal/app/features/errorpages"
	"github.com/dalemusser/streamscope/internal/app/store/catalog"
	"github.com/dalemusser/streamscope/internal/app/system/tabular"
	"go.uber.org/zap"
)

const testCSV = `title,type,release_year,rating,year_added
Alpha,Movie,2020,Pg,2021
=HYPERLINK.Bad,Movie,2019,Pg,2020
Beta,Tv Show,2018,Tv-Ma,2019
`

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	tbl, err := tabular.ReadCSV(strings.NewReader(testCSV))
	if err != nil {
		t.Fatalf("ReadCSV failed: %v", err)
	}
	logger := zap.NewNop()
	return NewHandler(catalog.FromTable(tbl), errorpages.NewErrorLogger(logger), logger)
}

func TestServeCSV(t *testing.T) {
	h := newTestHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/export/csv", nil)
	h.ServeCSV(rec, req)

	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Errorf("Content-Type = %q", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "attachment") {
		t.Errorf("Content-Disposition = %q", cd)
	}

	body := rec.Body.String()
	if !strings.HasPrefix(body, "\xEF\xBB\xBF") {
		t.Error("output does not start with a UTF-8 BOM")
	}
	if !strings.Contains(body, "title,type,release_year,rating,year_added\r\n") {
		t.Errorf("header row missing or not CRLF:\n%s", body)
	}
	if lines := strings.Count(body, "\r\n"); lines != 4 {
		t.Errorf("got %d lines, want header + 3 rows", lines)
	}
	if !strings.Contains(body, "'=HYPERLINK.Bad") {
		t.Error("formula-leading cell was not sanitized")
	}
}

func TestServeCSVFiltered(t *testing.T) {
	h := newTestHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/export/csv?type=Tv+Show", nil)
	h.ServeCSV(rec, req)

	body := rec.Body.String()
	if strings.Contains(body, "Alpha") {
		t.Error("filtered-out row present in export")
	}
	if !strings.Contains(body, "Beta") {
		t.Error("matching row missing from export")
	}
}

func TestSanitizeCSVField(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"plain", "plain"},
		{"=SUM(A1)", "'=SUM(A1)"},
		{"+1", "'+1"},
		{"-1", "'-1"},
		{"@cmd", "'@cmd"},
	}
	for _, tt := range tests {
		if got := sanitizeCSVField(tt.input); got != tt.expected {
			t.Errorf("sanitizeCSVField(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}
