package http

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"plantoes/internal/cache"
	"plantoes/internal/core"
	applog "plantoes/internal/log"
	"plantoes/internal/report"
	"plantoes/internal/session"
)

func newTestServer(rateLimit int) *Server {
	store := session.NewStore(time.Hour, core.BillingConfig{HourlyRate: core.Money{Cents: 16000}})
	reports := cache.NewLRUCache[report.Report](16, time.Minute)
	logger := applog.New(applog.Config{
		Component: applog.ComponentHTTP,
		Handler:   slog.NewTextHandler(io.Discard, nil),
	})
	return NewServer(":0", store, reports, rateLimit, logger)
}

func doRequest(srv *Server, method, path, body string, cookie *http.Cookie) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}
	srv.Handler.ServeHTTP(rr, req)
	return rr
}

func sessionCookie(t *testing.T, rr *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rr.Result().Cookies() {
		if c.Name == sessionCookieName {
			return c
		}
	}
	t.Fatal("expected a session cookie to be set")
	return nil
}

func TestIndexAndHealth(t *testing.T) {
	srv := newTestServer(60)

	rr := doRequest(srv, http.MethodGet, "/", "", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("index status=%d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "Plantões") {
		t.Fatal("index body missing heading")
	}
	sessionCookie(t, rr)

	for _, path := range []string{"/healthz", "/readyz"} {
		rr := doRequest(srv, http.MethodGet, path, "", nil)
		if rr.Code != http.StatusOK {
			t.Fatalf("%s status=%d", path, rr.Code)
		}
	}
}

func TestIndexUnknownPathIs404(t *testing.T) {
	srv := newTestServer(60)
	rr := doRequest(srv, http.MethodGet, "/nope", "", nil)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
}

func TestCreateShiftValidationAndSuccess(t *testing.T) {
	srv := newTestServer(60)

	// Wrong method
	rr := doRequest(srv, http.MethodGet, "/shifts", "", nil)
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rr.Code)
	}

	// Malformed date
	rr = doRequest(srv, http.MethodPost, "/shifts", "date=01-07-2025&sector=Diarismo&slot=07h+-+19h", nil)
	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for bad date, got %d", rr.Code)
	}

	// Unknown sector
	rr = doRequest(srv, http.MethodPost, "/shifts", "date=2025-07-01&sector=UTI&slot=07h+-+19h", nil)
	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for bad sector, got %d", rr.Code)
	}

	// Single shift
	rr = doRequest(srv, http.MethodPost, "/shifts", "date=2025-07-01&sector=Diarismo&slot=07h+-+19h", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	if !strings.Contains(rr.Header().Get("HX-Trigger"), `"shift:created"`) {
		t.Fatalf("missing shift:created trigger: %s", rr.Header().Get("HX-Trigger"))
	}

	// Weekly recurrence inside July
	rr = doRequest(srv, http.MethodPost, "/shifts", "date=2025-07-01&sector=Centro&slot=19h+-+07h&recurrence=weekly", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	if !strings.Contains(rr.Body.String(), "5 plantões registrados") {
		t.Fatalf("expected 5 records message, got %s", rr.Body.String())
	}
}

func TestShiftLifecycleOverHTTP(t *testing.T) {
	srv := newTestServer(60)

	rr := doRequest(srv, http.MethodPost, "/shifts", "date=2025-07-10&sector=Ambulatório&slot=07h+-+13h", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("create status=%d", rr.Code)
	}
	cookie := sessionCookie(t, rr)

	rr = doRequest(srv, http.MethodGet, "/ui/shifts", "", cookie)
	if rr.Code != http.StatusOK {
		t.Fatalf("list status=%d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "10/07/2025") {
		t.Fatalf("expected shift row in list, got %s", rr.Body.String())
	}

	rr = doRequest(srv, http.MethodPost, "/shifts/delete", "index=0", cookie)
	if rr.Code != http.StatusOK {
		t.Fatalf("delete status=%d: %s", rr.Code, rr.Body.String())
	}

	// Same index again is now stale
	rr = doRequest(srv, http.MethodPost, "/shifts/delete", "index=0", cookie)
	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for stale index, got %d", rr.Code)
	}

	rr = doRequest(srv, http.MethodPost, "/shifts/clear", "", cookie)
	if rr.Code != http.StatusOK {
		t.Fatalf("clear status=%d", rr.Code)
	}
	if !strings.Contains(rr.Header().Get("HX-Trigger"), `"ledger:cleared"`) {
		t.Fatalf("missing ledger:cleared trigger: %s", rr.Header().Get("HX-Trigger"))
	}
}

func TestReportEndpoints(t *testing.T) {
	srv := newTestServer(60)

	// Empty ledger: partial shows placeholder, download is 404
	rr := doRequest(srv, http.MethodGet, "/ui/report", "", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("report partial status=%d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "Nenhum plantão registrado") {
		t.Fatalf("expected empty placeholder, got %s", rr.Body.String())
	}
	cookie := sessionCookie(t, rr)

	rr = doRequest(srv, http.MethodGet, "/report.txt", "", cookie)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for empty report download, got %d", rr.Code)
	}

	rr = doRequest(srv, http.MethodPost, "/config", "physician_name=Dr.+João&hourly_rate=160", cookie)
	if rr.Code != http.StatusOK {
		t.Fatalf("config status=%d: %s", rr.Code, rr.Body.String())
	}

	rr = doRequest(srv, http.MethodPost, "/shifts", "date=2025-07-05&sector=Centro&slot=07h+-+19h", cookie)
	if rr.Code != http.StatusOK {
		t.Fatalf("create status=%d", rr.Code)
	}

	rr = doRequest(srv, http.MethodGet, "/ui/report", "", cookie)
	if !strings.Contains(rr.Body.String(), "Serviços HOE - Dr. João - Julho/2025:") {
		t.Fatalf("expected report header in partial, got %s", rr.Body.String())
	}

	rr = doRequest(srv, http.MethodGet, "/report.txt", "", cookie)
	if rr.Code != http.StatusOK {
		t.Fatalf("download status=%d", rr.Code)
	}
	if got := rr.Header().Get("Content-Disposition"); !strings.Contains(got, `filename="plantoes_julho_2025.txt"`) {
		t.Fatalf("unexpected Content-Disposition: %s", got)
	}
	body := rr.Body.String()
	for _, line := range []string{"Julho", "05/07/2025 (07h - 19h) - 12h", "Total: 12 horas", "Valor: 12 X 160 = 1.920,00"} {
		if !strings.Contains(body, line) {
			t.Fatalf("download body missing %q:\n%s", line, body)
		}
	}
}

func TestSessionIsolation(t *testing.T) {
	srv := newTestServer(60)

	rr := doRequest(srv, http.MethodPost, "/shifts", "date=2025-07-01&sector=Diarismo&slot=07h+-+19h", nil)
	first := sessionCookie(t, rr)

	// A request without the cookie gets its own empty session
	rr = doRequest(srv, http.MethodGet, "/ui/shifts", "", nil)
	if strings.Contains(rr.Body.String(), "01/07/2025") {
		t.Fatal("expected a fresh session to see no shifts")
	}

	rr = doRequest(srv, http.MethodGet, "/ui/shifts", "", first)
	if !strings.Contains(rr.Body.String(), "01/07/2025") {
		t.Fatal("expected the original session to keep its shifts")
	}
}

func TestRateLimitOnMutations(t *testing.T) {
	srv := newTestServer(2)

	var last *httptest.ResponseRecorder
	for i := 0; i < 3; i++ {
		last = doRequest(srv, http.MethodPost, "/shifts", "date=2025-07-01&sector=Diarismo&slot=07h+-+19h", nil)
	}
	if last.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 after exceeding limit, got %d", last.Code)
	}
	if last.Header().Get("Retry-After") != "60" {
		t.Fatalf("expected Retry-After header, got %q", last.Header().Get("Retry-After"))
	}

	// Reads are not limited
	rr := doRequest(srv, http.MethodGet, "/ui/shifts", "", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected GET to bypass the limiter, got %d", rr.Code)
	}
}
