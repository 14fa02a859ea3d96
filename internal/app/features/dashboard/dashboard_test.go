package dashboard

import (
	"net/http"
	"strings"
	"testing"

	errorsfeature "github.com/dalemusser/stratacard/internal/app/features/errors"
	statcardstore "github.com/dalemusser/stratacard/internal/app/store/statcards"
	"github.com/dalemusser/stratacard/internal/domain/models"
	"github.com/dalemusser/stratacard/internal/testutil"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T) (http.Handler, *statcardstore.Store) {
	t.Helper()
	testutil.MustBootTemplates(t)
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()

	h := NewHandler(db, errorsfeature.NewErrorLogger(logger), logger)
	r := chi.NewRouter()
	r.Get("/", RedirectHome)
	r.Mount("/dashboard", Routes(h))
	return r, statcardstore.New(db)
}

func TestRedirectHome(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := testutil.NewRecorder()
	r.ServeHTTP(rec, testutil.NewRequest(http.MethodGet, "/", nil))
	rec.AssertRedirect(t, "/dashboard")
}

func TestDashboard_RendersCardsInOrder(t *testing.T) {
	r, store := newTestRouter(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	store.Create(ctx, models.StatCard{Title: "Revenue", Value: "1200", Trend: "up", TrendValue: "8%"})
	store.Create(ctx, models.StatCard{Title: "Errors", Value: "3", Variant: "destructive", Icon: "alert"})

	rec := testutil.NewRecorder()
	r.ServeHTTP(rec, testutil.NewRequest(http.MethodGet, "/dashboard", nil))

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "↑8%")
	rec.AssertContains(t, "bg-destructive-soft")

	body := rec.Body.String()
	if strings.Index(body, "Revenue") > strings.Index(body, "Errors") {
		t.Error("cards should render in position order")
	}
}

func TestDashboard_Empty(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := testutil.NewRecorder()
	r.ServeHTTP(rec, testutil.NewRequest(http.MethodGet, "/dashboard", nil))

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "No cards yet.")
}

func TestGrid_IsFragment(t *testing.T) {
	r, store := newTestRouter(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	store.Create(ctx, models.StatCard{Title: "Uptime", Value: "99.9%"})

	rec := testutil.NewRecorder()
	r.ServeHTTP(rec, testutil.NewRequest(http.MethodGet, "/dashboard/grid", nil))

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "Uptime")
	rec.AssertNotContains(t, "<html")
}

func TestDashboard_StoreDown(t *testing.T) {
	testutil.MustBootTemplates(t)
	logger := zap.NewNop()
	h := NewHandler(testutil.UnreachableDB(t), errorsfeature.NewErrorLogger(logger), logger)
	r := chi.NewRouter()
	r.Mount("/dashboard", Routes(h))

	rec := testutil.NewRecorder()
	r.ServeHTTP(rec, testutil.NewRequest(http.MethodGet, "/dashboard", nil))
	rec.AssertStatus(t, http.StatusInternalServerError)
	rec.AssertContains(t, "Something went wrong")

	rec = testutil.NewRecorder()
	r.ServeHTTP(rec, testutil.NewRequest(http.MethodGet, "/dashboard/grid", nil))
	rec.AssertStatus(t, http.StatusInternalServerError)
	rec.AssertNotContains(t, "Something went wrong")
}
