// Package http provides the jurisdiction resolution endpoints
package http

import (
	stdctx "context"
	"net/http"

	"github.com/khizar-anjum/courtlistener-mcp/internal/core/courtdir"
	"github.com/khizar-anjum/courtlistener-mcp/internal/modkit/httpkit"
	perr "github.com/khizar-anjum/courtlistener-mcp/internal/platform/errors"
	"github.com/khizar-anjum/courtlistener-mcp/internal/services/jurisdiction/domain"
)

// Deps are the handler dependencies
type Deps struct {
	Resolver  domain.ResolverPort
	Suggester domain.SuggesterPort
	Catalog   domain.CatalogPort
}

type handlers struct {
	deps Deps
}

// Register mounts the jurisdiction routes
func Register(r httpkit.Router, d Deps) {
	h := &handlers{deps: d}

	httpkit.Get(r, "/jurisdiction/resolve", h.resolveGet)
	httpkit.PostJSON(r, "/jurisdiction/resolve", h.resolvePost)
	httpkit.Get(r, "/jurisdiction/suggest", h.suggest)
	httpkit.Get(r, "/jurisdiction/courts", h.courts)
}

// ResolveRequest is the POST resolve payload
type ResolveRequest struct {
	Jurisdiction string `json:"jurisdiction" validate:"required,min=1"`
	MaxCourts    int    `json:"max_courts,omitempty" validate:"omitempty,min=1,max=500"`
}

// ResolveResponse is the successful resolution payload
type ResolveResponse struct {
	Token    string   `json:"token"`
	CourtIDs []string `json:"court_ids"`
	All      bool     `json:"all"`
	Count    int      `json:"count"`
}

// ResolveFailure echoes the token and pairs the failure with suggestions
type ResolveFailure struct {
	Token       string   `json:"token"`
	Error       string   `json:"error"`
	Suggestions []string `json:"suggestions"`
}

// SuggestResponse is the suggestion payload
type SuggestResponse struct {
	Token       string   `json:"token"`
	Suggestions []string `json:"suggestions"`
}

// CourtsResponse lists one category's courts
type CourtsResponse struct {
	Category string            `json:"category"`
	Count    int               `json:"count"`
	Courts   []courtdir.Record `json:"courts"`
}

func (h *handlers) resolveGet(r *http.Request) (any, error) {
	token := r.URL.Query().Get("token")
	if token == "" {
		return nil, perr.InvalidArgf("token query parameter is required")
	}
	return h.resolve(r.Context(), token, 0)
}

func (h *handlers) resolvePost(r *http.Request, in ResolveRequest) (any, error) {
	return h.resolve(r.Context(), in.Jurisdiction, in.MaxCourts)
}

// resolve runs the resolver and, on an unrecognized token, downgrades the
// error to a 404 payload that already carries the suggestion list
func (h *handlers) resolve(ctx stdctx.Context, token string, maxCourts int) (any, error) {
	res, err := h.deps.Resolver.Resolve(ctx, token)
	if err != nil {
		if !perr.IsCode(err, perr.ErrorCodeNotFound) {
			return nil, err
		}
		sugg, serr := h.deps.Suggester.Suggest(ctx, token)
		if serr != nil {
			sugg = nil
		}
		return httpkit.Response{
			Status: http.StatusNotFound,
			Body: ResolveFailure{
				Token:       token,
				Error:       perr.WireFrom(err).Message,
				Suggestions: sugg,
			},
		}, nil
	}

	ids := res.CourtIDs
	if maxCourts > 0 && len(ids) > maxCourts {
		ids = ids[:maxCourts]
	}
	return ResolveResponse{
		Token:    token,
		CourtIDs: ids,
		All:      res.All,
		Count:    len(ids),
	}, nil
}

func (h *handlers) suggest(r *http.Request) (any, error) {
	token := r.URL.Query().Get("token")
	if token == "" {
		return nil, perr.InvalidArgf("token query parameter is required")
	}
	sugg, err := h.deps.Suggester.Suggest(r.Context(), token)
	if err != nil {
		return nil, err
	}
	return SuggestResponse{Token: token, Suggestions: sugg}, nil
}

func (h *handlers) courts(r *http.Request) (any, error) {
	raw := r.URL.Query().Get("category")
	if raw == "" {
		return nil, perr.InvalidArgf("category query parameter is required")
	}
	var cat courtdir.Category
	for _, c := range courtdir.Categories() {
		if string(c) == raw {
			cat = c
		}
	}
	if cat == "" {
		return nil, perr.InvalidArgf("unknown category %q", raw)
	}

	dir, err := h.deps.Catalog.Directory(r.Context())
	if err != nil {
		return nil, err
	}
	courts := dir.ByCategory[cat]
	return CourtsResponse{Category: raw, Count: len(courts), Courts: courts}, nil
}
