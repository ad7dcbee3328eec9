package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"waiswallet/internal/core"
	"waiswallet/internal/services"
	"waiswallet/internal/source/memory"
)

type failingReader struct{}

func (failingReader) ReadSnapshot(ctx context.Context) (core.Snapshot, error) {
	return core.Snapshot{}, context.DeadlineExceeded
}

type recordingPublisher struct{ reasons []string }

func (p *recordingPublisher) PublishRefreshRequest(ctx context.Context, reason string) error {
	p.reasons = append(p.reasons, reason)
	return nil
}

func newDemoServer(t *testing.T) *Server {
	t.Helper()
	snapshots := services.NewSnapshotService(memory.NewDemo(), time.Minute)
	srv := NewServer(":0", snapshots, nil)
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	})
	return srv
}

func get(srv *Server, path string) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	srv.Handler.ServeHTTP(rr, req)
	return rr
}

func postForm(srv *Server, path, form string) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	srv.Handler.ServeHTTP(rr, req)
	return rr
}

func TestIndexAndHealth(t *testing.T) {
	srv := newDemoServer(t)

	rr := get(srv, "/")
	if rr.Code != 200 {
		t.Fatalf("index status=%d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "WaisWallet") {
		t.Fatalf("index body missing heading")
	}

	for _, path := range []string{"/healthz", "/readyz"} {
		if rr := get(srv, path); rr.Code != 200 {
			t.Fatalf("%s status=%d", path, rr.Code)
		}
	}

	if rr := get(srv, "/nonexistent"); rr.Code != http.StatusNotFound {
		t.Fatalf("unknown path status=%d, want 404", rr.Code)
	}
}

func TestSecurityHeaders(t *testing.T) {
	srv := newDemoServer(t)

	rr := get(srv, "/")
	if got := rr.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Errorf("X-Content-Type-Options = %q", got)
	}
	if got := rr.Header().Get("X-Frame-Options"); got != "DENY" {
		t.Errorf("X-Frame-Options = %q", got)
	}
	if csp := rr.Header().Get("Content-Security-Policy"); !strings.Contains(csp, "default-src 'self'") {
		t.Errorf("missing CSP, got %q", csp)
	}
}

func TestPartials(t *testing.T) {
	srv := newDemoServer(t)

	tests := []struct {
		path string
		want string
	}{
		{"/ui/dashboard", "February 2026"},
		{"/ui/wallets", "Everyday Card"},
		{"/ui/cashback", "Travel Card"},
		{"/ui/report", "svg"},
		{"/ui/history", "tx-table"},
	}
	for _, tt := range tests {
		rr := get(srv, tt.path)
		if rr.Code != 200 {
			t.Errorf("%s status=%d", tt.path, rr.Code)
			continue
		}
		if !strings.Contains(rr.Body.String(), tt.want) {
			t.Errorf("%s body missing %q", tt.path, tt.want)
		}
	}
}

func TestPartialPeriodSwitch(t *testing.T) {
	srv := newDemoServer(t)

	rr := get(srv, "/ui/dashboard?period=yearly")
	if rr.Code != 200 {
		t.Fatalf("yearly dashboard status=%d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "2026") {
		t.Error("yearly dashboard should label the year")
	}

	rr = get(srv, "/ui/dashboard?period=daily&date=2026-02-07")
	if rr.Code != 200 {
		t.Fatalf("daily dashboard status=%d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "February 7, 2026") {
		t.Error("daily dashboard should label the exact day")
	}
}

func TestPartialUnavailableSnapshot(t *testing.T) {
	snapshots := services.NewSnapshotService(failingReader{}, time.Minute)
	srv := NewServer(":0", snapshots, nil)
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}()

	rr := get(srv, "/ui/dashboard")
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("status=%d, want 503", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "placeholder") {
		t.Error("unavailable partial should render a placeholder div")
	}

	if rr := get(srv, "/readyz"); rr.Code != http.StatusServiceUnavailable {
		t.Errorf("readyz status=%d, want 503 when source fails", rr.Code)
	}
}

func TestPageCacheServesAndInvalidates(t *testing.T) {
	srv := newDemoServer(t)

	first := get(srv, "/ui/wallets")
	if first.Code != 200 {
		t.Fatalf("first render status=%d", first.Code)
	}
	if _, ok := srv.pageCache.Get("/ui/wallets?"); !ok {
		t.Fatal("successful render should populate the page cache")
	}

	second := get(srv, "/ui/wallets")
	if second.Body.String() != first.Body.String() {
		t.Error("cached render should match the first")
	}

	srv.InvalidateSnapshot()
	if _, ok := srv.pageCache.Get("/ui/wallets?"); ok {
		t.Error("invalidation should purge rendered partials")
	}
}

func TestRefreshEndpoint(t *testing.T) {
	pub := &recordingPublisher{}
	snapshots := services.NewSnapshotService(memory.NewDemo(), time.Minute)
	srv := NewServer(":0", snapshots, pub)
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}()

	if rr := get(srv, "/refresh"); rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("GET /refresh status=%d, want 405", rr.Code)
	}

	rr := postForm(srv, "/refresh", "")
	if rr.Code != 200 {
		t.Fatalf("POST /refresh status=%d", rr.Code)
	}
	if len(pub.reasons) != 1 || pub.reasons[0] != "manual" {
		t.Errorf("published reasons = %v, want [manual]", pub.reasons)
	}
	if rr.Header().Get("HX-Trigger") == "" {
		t.Error("refresh should trigger a client-side snapshot event")
	}
}

func TestSimulateEndpoint(t *testing.T) {
	srv := newDemoServer(t)

	if rr := get(srv, "/simulate"); rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("GET /simulate status=%d, want 405", rr.Code)
	}

	// Invalid amount
	if rr := postForm(srv, "/simulate", "amount=abc&wallet=1&category=groceries"); rr.Code != 422 {
		t.Fatalf("bad amount status=%d, want 422", rr.Code)
	}

	// Unknown wallet
	if rr := postForm(srv, "/simulate", "amount=100&wallet=999&category=groceries"); rr.Code != http.StatusNotFound {
		t.Fatalf("unknown wallet status=%d, want 404", rr.Code)
	}

	// Installment without a term
	if rr := postForm(srv, "/simulate", "amount=100&wallet=1&category=groceries&payment=installment&term=abc"); rr.Code != 422 {
		t.Fatalf("missing term status=%d, want 422", rr.Code)
	}

	// Straight purchase on the cashback credit card
	rr := postForm(srv, "/simulate", "amount=2500&wallet=1&category=groceries")
	if rr.Code != 200 {
		t.Fatalf("simulate status=%d, body=%s", rr.Code, rr.Body.String())
	}
	body := rr.Body.String()
	if !strings.Contains(body, "Everyday Card") {
		t.Error("simulation result should name the wallet")
	}

	// Installment split over six months
	rr = postForm(srv, "/simulate", "amount=6000&wallet=1&category=shopping&payment=installment&term=6")
	if rr.Code != 200 {
		t.Fatalf("installment simulate status=%d, body=%s", rr.Code, rr.Body.String())
	}
	if !strings.Contains(rr.Body.String(), "1,000") {
		t.Errorf("six-way split of 6,000 should show a 1,000 monthly share, body=%s", rr.Body.String())
	}
}

func TestRateLimiting(t *testing.T) {
	srv := newDemoServer(t)

	form := "amount=100&wallet=1&category=groceries"
	var limited bool
	for i := 0; i < 70; i++ {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/simulate", strings.NewReader(form))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.Header.Set("X-Forwarded-For", "203.0.113.9")
		srv.Handler.ServeHTTP(rr, req)
		if rr.Code == http.StatusTooManyRequests {
			limited = true
			break
		}
	}
	if !limited {
		t.Error("expected rate limiting to kick in for rapid POSTs")
	}

	// GETs are never rate limited
	if rr := get(srv, "/ui/dashboard"); rr.Code != 200 {
		t.Errorf("GET after rate limit status=%d", rr.Code)
	}
}

func TestStaticAssets(t *testing.T) {
	srv := newDemoServer(t)

	rr := get(srv, "/static/style.css")
	if rr.Code != 200 {
		t.Fatalf("static status=%d", rr.Code)
	}
	if cc := rr.Header().Get("Cache-Control"); !strings.Contains(cc, "max-age") {
		t.Errorf("static Cache-Control = %q", cc)
	}
}
