package upstream

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"MarketLens/internal/service/session"
	"MarketLens/pkg/logger"
)

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New(&logger.Config{Level: "error", Format: "json", Output: "stderr"})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	return log
}

func testSession(t *testing.T, token string) (*session.Session, *session.MemoryStore) {
	t.Helper()
	store := session.NewMemoryStore()
	t.Cleanup(func() { store.Close() })
	sess := session.New("test-session", store)
	if token != "" {
		if err := sess.SetToken(context.Background(), token, time.Hour); err != nil {
			t.Fatalf("seed token: %v", err)
		}
	}
	return sess, store
}

func TestTransportAttachesBearer(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	sess, _ := testSession(t, "tok-123")
	tr := NewTransport(srv.URL, time.Second, nil, testLogger(t))

	var out map[string]interface{}
	if err := tr.get(context.Background(), sess, "test", "/stocks/", nil, &out); err != nil {
		t.Fatalf("get: %v", err)
	}
	if gotAuth != "Bearer tok-123" {
		t.Errorf("Authorization = %q", gotAuth)
	}
}

func TestTransportAnonymousOmitsBearer(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	tr := NewTransport(srv.URL, time.Second, nil, testLogger(t))
	var out map[string]interface{}
	if err := tr.get(context.Background(), session.Anonymous(), "test", "/stocks/", nil, &out); err != nil {
		t.Fatalf("get: %v", err)
	}
	if gotAuth != "" {
		t.Errorf("anonymous request carried Authorization %q", gotAuth)
	}
}

func TestTransport401EvictsOnce(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	sess, store := testSession(t, "tok-123")
	tr := NewTransport(srv.URL, time.Second, nil, testLogger(t))

	var wg sync.WaitGroup
	var authErrs int64
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := tr.get(context.Background(), sess, "test", "/auth/me", nil, nil)
			if IsAuthError(err) {
				atomic.AddInt64(&authErrs, 1)
			}
		}()
	}
	wg.Wait()

	if authErrs != 5 {
		t.Errorf("got %d auth errors, want 5", authErrs)
	}
	if _, err := store.Token(context.Background(), sess.ID()); err != session.ErrNotFound {
		t.Errorf("token still present after 401: err = %v", err)
	}
}

func TestTransportMapsStatusToError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	tr := NewTransport(srv.URL, time.Second, nil, testLogger(t))
	err := tr.get(context.Background(), session.Anonymous(), "test", "/stocks/", nil, nil)

	ue, ok := err.(*Error)
	if !ok {
		t.Fatalf("error type %T, want *Error", err)
	}
	if ue.Status != http.StatusBadGateway || ue.Path != "/stocks/" {
		t.Errorf("Error = %+v", ue)
	}
	if ue.IsAuth() {
		t.Error("502 reported as auth error")
	}
}

func TestAuthClientLoginForm(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/token" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/x-www-form-urlencoded" {
			t.Errorf("Content-Type = %q", ct)
		}
		if err := r.ParseForm(); err != nil {
			t.Errorf("parse form: %v", err)
		}
		if r.PostFormValue("username") != "demo" || r.PostFormValue("password") != "secret" {
			t.Errorf("credentials = %q / %q", r.PostFormValue("username"), r.PostFormValue("password"))
		}
		w.Write([]byte(`{"access_token": "fresh-token", "token_type": "bearer"}`))
	}))
	defer srv.Close()

	sess, store := testSession(t, "")
	tr := NewTransport(srv.URL, time.Second, nil, testLogger(t))
	auth := NewAuthClient(tr, time.Hour)

	if err := auth.Login(context.Background(), sess, "demo", "secret"); err != nil {
		t.Fatalf("login: %v", err)
	}
	tok, err := store.Token(context.Background(), sess.ID())
	if err != nil {
		t.Fatalf("token after login: %v", err)
	}
	if tok != "fresh-token" {
		t.Errorf("stored token = %q", tok)
	}
}

func TestAnomalyClientLatestNormalizes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("limit"); got != "10" {
			t.Errorf("limit = %q", got)
		}
		w.Write([]byte(`[{"id": 7, "stock_symbol": "SFBT", "alert_type": "VOLUME_SPIKE",
			"description": "d", "limitations": "l", "confidence": 0.9,
			"created_at": "2026-08-30T09:15:00"}]`))
	}))
	defer srv.Close()

	tr := NewTransport(srv.URL, time.Second, nil, testLogger(t))
	client := NewAnomalyClient(tr)

	got, err := client.Latest(context.Background(), session.Anonymous(), 10)
	if err != nil {
		t.Fatalf("Latest: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d anomalies", len(got))
	}
	if got[0].ID != "7" || got[0].Type != "volume_spike" || got[0].Severity != "critical" {
		t.Errorf("anomaly = %+v", got[0])
	}
}
