package dashboard

import (
	"net/http"
	"testing"
	"time"

	errorpages "github.com/dalemusser/streamscope/internal/app/features/errorpages"
	"github.com/dalemusser/streamscope/internal/app/store/catalog"
	"github.com/dalemusser/streamscope/internal/app/system/filterstate"
	"github.com/dalemusser/streamscope/internal/testutil"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()

	logger := zap.NewNop()
	mgr, err := filterstate.NewManager(
		"test-session-key-0123456789ABCDEFGHIJ",
		filterstate.DefaultSessionName, "", time.Hour, false, logger)
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}
	return NewHandler(testutil.SampleCatalog(t), mgr, errorpages.NewErrorLogger(logger), logger)
}

func TestServeDashboard(t *testing.T) {
	testutil.MustBootTemplates(t)
	h := newTestHandler(t)

	rec := testutil.NewRecorder()
	req := testutil.NewPageRequest(http.MethodGet, "/dashboard")
	h.ServeDashboard(rec, req)

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "Movies vs TV Shows")
	rec.AssertContains(t, "chart-data")
	// Fixture has 4 titles total.
	rec.AssertContains(t, "4")
}

func TestServeDashboardFiltered(t *testing.T) {
	testutil.MustBootTemplates(t)
	h := newTestHandler(t)

	rec := testutil.NewRecorder()
	req := testutil.NewPageRequest(http.MethodGet, "/dashboard?type=Movie")
	h.ServeDashboard(rec, req)

	rec.AssertStatus(t, http.StatusOK)
	// Only the two movies match, and their genres show in the chart data.
	rec.AssertContains(t, "Dramas")
}

func TestEffectiveFilterQueryWins(t *testing.T) {
	h := newTestHandler(t)

	saved := catalog.Filter{Types: []string{"Tv Show"}}
	rec := testutil.NewRecorder()
	if err := h.filters.Save(rec.ResponseRecorder, testutil.NewRequest(http.MethodPost, "/filters/save"), saved); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	cookie := rec.Header().Get("Set-Cookie")
	if cookie == "" {
		t.Fatal("no session cookie set")
	}

	// With an explicit query, the saved filter must not apply.
	req := testutil.NewRequest(http.MethodGet, "/dashboard?type=Movie")
	req.Header.Set("Cookie", cookie)
	f, fromSession := h.EffectiveFilter(req)
	if fromSession {
		t.Error("explicit query should not be reported as a session filter")
	}
	if len(f.Types) != 1 || f.Types[0] != "Movie" {
		t.Errorf("filter types = %v, want [Movie]", f.Types)
	}

	// Without a query, the saved filter applies.
	req = testutil.NewRequest(http.MethodGet, "/dashboard")
	req.Header.Set("Cookie", cookie)
	f, fromSession = h.EffectiveFilter(req)
	if !fromSession {
		t.Error("expected the saved filter to apply")
	}
	if len(f.Types) != 1 || f.Types[0] != "Tv Show" {
		t.Errorf("filter types = %v, want [Tv Show]", f.Types)
	}
}

func TestBuildMetrics(t *testing.T) {
	h := newTestHandler(t)

	metrics := buildMetrics(h.store.All())
	if len(metrics) != 4 {
		t.Fatalf("got %d metrics, want 4", len(metrics))
	}
	if metrics[0].Label != "Total Titles" || metrics[0].Value != "4" {
		t.Errorf("total titles metric = %+v", metrics[0])
	}
	// 2 of 4 fixture titles are movies.
	if metrics[1].Value != "50.0%" {
		t.Errorf("movies %% metric = %q, want 50.0%%", metrics[1].Value)
	}
}
