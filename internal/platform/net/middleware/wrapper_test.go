package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestDefaults_ChainServes(t *testing.T) {
	var h http.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mws := Defaults()
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	// NoCache headers applied
	if rec.Header().Get("Cache-Control") == "" {
		t.Fatalf("missing no-cache headers")
	}
}

func TestCORS_Preflight(t *testing.T) {
	h := CORS(CORSOptions{AllowedOrigins: []string{"*"}})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("OPTIONS", "/", nil)
	req.Header.Set("Origin", "https://example.com")
	req.Header.Set("Access-Control-Request-Method", "POST")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("Access-Control-Allow-Origin = %q", got)
	}
}

func TestHeartbeat(t *testing.T) {
	h := Heartbeat("/ping")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("heartbeat should short-circuit")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/ping", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
}
