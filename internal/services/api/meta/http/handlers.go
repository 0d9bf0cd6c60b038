// Package http provides meta endpoints
package http

import (
	stdctx "context"
	"net/http"
	"time"

	"github.com/khizar-anjum/courtlistener-mcp/internal/core/version"
	"github.com/khizar-anjum/courtlistener-mcp/internal/modkit/httpkit"
	"github.com/khizar-anjum/courtlistener-mcp/internal/services/jurisdiction/domain"
)

// Deps are the handler dependencies
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	Catalog     domain.CatalogPort
}

type handlers struct {
	deps Deps
}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	h := &handlers{deps: d}

	httpkit.Get(r, "/meta/health", h.health)
	httpkit.Get(r, "/meta/ready", h.ready)
	httpkit.Get(r, "/meta/version", h.version)
}

// HealthResponse is the health payload
type HealthResponse struct {
	OK      bool   `json:"ok"`
	Service string `json:"service"`
	Started string `json:"started"`
	Now     string `json:"now"`
}

// ReadyResponse summarizes readiness of the court directory
type ReadyResponse struct {
	Status string `json:"status"` // ok fail skipped
	Courts int    `json:"courts"`
	Error  string `json:"error,omitempty"`
	Now    string `json:"now"`
}

func (h *handlers) health(_ *http.Request) (any, error) {
	return HealthResponse{
		OK:      true,
		Service: h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Now:     time.Now().UTC().Format(time.RFC3339),
	}, nil
}

func (h *handlers) ready(_ *http.Request) (any, error) {
	now := time.Now().UTC().Format(time.RFC3339)
	if h.deps.Catalog == nil {
		return ReadyResponse{Status: "skipped", Now: now}, nil
	}

	ctx, cancel := stdctx.WithTimeout(stdctx.Background(), 10*time.Second)
	defer cancel()

	dir, err := h.deps.Catalog.Directory(ctx)
	if err != nil {
		return ReadyResponse{Status: "fail", Error: err.Error(), Now: now}, nil
	}
	return ReadyResponse{Status: "ok", Courts: dir.Len(), Now: now}, nil
}

func (h *handlers) version(_ *http.Request) (any, error) {
	return version.Info(), nil
}
