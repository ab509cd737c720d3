package errorpages

import (
	"errors"
	"net/http"
	"testing"

	"github.com/dalemusser/streamscope/internal/testutil"
	"go.uber.org/zap"
)

func TestNotFound(t *testing.T) {
	testutil.MustBootTemplates(t)
	h := NewHandler()

	rec := testutil.NewRecorder()
	h.NotFound(rec.ResponseRecorder, testutil.NewPageRequest(http.MethodGet, "/nope"))

	rec.AssertStatus(t, http.StatusNotFound)
	rec.AssertContains(t, "404")
}

func TestInternalError(t *testing.T) {
	testutil.MustBootTemplates(t)
	h := NewHandler()

	rec := testutil.NewRecorder()
	h.InternalError(rec.ResponseRecorder, testutil.NewPageRequest(http.MethodGet, "/dashboard"))

	rec.AssertStatus(t, http.StatusInternalServerError)
	rec.AssertContains(t, "Something went wrong")
}

func TestErrorLoggerDoesNotPanicOnNilError(t *testing.T) {
	e := NewErrorLogger(zap.NewNop())
	req := testutil.NewRequest(http.MethodGet, "/x")
	e.Log(req, "message", nil)
	e.LogWithFields(req, "message", errors.New("boom"), zap.Int("n", 1))
}
