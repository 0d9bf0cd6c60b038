package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/khizar-anjum/courtlistener-mcp/internal/core/courtdir"
	"github.com/khizar-anjum/courtlistener-mcp/internal/platform/config"
	phttp "github.com/khizar-anjum/courtlistener-mcp/internal/platform/net/http"
	"github.com/khizar-anjum/courtlistener-mcp/internal/services/jurisdiction/repo"
)

// full-stack smoke test: snapshot provider, module wiring, middleware, routes
func TestMount_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	err := repo.WriteSnapshot(dir, courtdir.Build([]courtdir.Record{
		{ID: "scotus", FullName: "Supreme Court of the United States", Category: courtdir.CategoryFederal},
		{ID: "ca9", FullName: "Court of Appeals for the Ninth Circuit", Category: courtdir.CategoryFederal},
		{ID: "cal", FullName: "Supreme Court of California", Category: courtdir.CategoryState},
	}))
	if err != nil {
		t.Fatalf("WriteSnapshot: %v", err)
	}

	t.Setenv("COURTS_SOURCE", "snapshot")
	t.Setenv("COURTS_SNAPSHOT_DIR", dir)

	srv := phttp.NewServer(config.New())
	Mount(srv.Router(), Options{Config: config.New()})

	ts := httptest.NewServer(srv.Router().Mux())
	defer ts.Close()

	get := func(path string) (int, map[string]json.RawMessage) {
		resp, err := http.Get(ts.URL + path)
		if err != nil {
			t.Fatalf("GET %s: %v", path, err)
		}
		defer resp.Body.Close()
		var body map[string]json.RawMessage
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			t.Fatalf("decode %s: %v", path, err)
		}
		return resp.StatusCode, body
	}

	if status, _ := get("/api/v1/meta/health"); status != http.StatusOK {
		t.Fatalf("health status = %d", status)
	}
	if status, _ := get("/api/v1/meta/ready"); status != http.StatusOK {
		t.Fatalf("ready status = %d", status)
	}

	status, body := get("/api/v1/jurisdiction/resolve?token=federal")
	if status != http.StatusOK {
		t.Fatalf("resolve status = %d", status)
	}
	if _, ok := body["data"]; !ok {
		t.Fatalf("resolve envelope missing data: %v", body)
	}

	if status, _ = get("/api/v1/jurisdiction/resolve?token=zzzz"); status != http.StatusNotFound {
		t.Fatalf("unknown token status = %d, want 404", status)
	}

	// request ids flow through the middleware stack into the envelope
	if _, b := get("/api/v1/jurisdiction/resolve?token=ca9"); len(b["request_id"]) == 0 {
		t.Fatalf("request_id missing from envelope: %v", b)
	}
}
