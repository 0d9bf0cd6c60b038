// Package module implements the jurisdiction service module
package module

import (
	"strings"

	"github.com/khizar-anjum/courtlistener-mcp/internal/modkit"
	"github.com/khizar-anjum/courtlistener-mcp/internal/modkit/httpkit"
	"github.com/khizar-anjum/courtlistener-mcp/internal/services/jurisdiction/domain"
	"github.com/khizar-anjum/courtlistener-mcp/internal/services/jurisdiction/repo"
	"github.com/khizar-anjum/courtlistener-mcp/internal/services/jurisdiction/service"
)

// Ports exposed by the jurisdiction module
type Ports struct {
	Resolver  domain.ResolverPort
	Suggester domain.SuggesterPort
	Catalog   domain.CatalogPort
}

// Module implements the jurisdiction service module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs a new jurisdiction module, selecting the record provider
// from configuration
func New(deps modkit.Deps) *Module {
	opts := FromConfig(deps.Cfg)

	var provider domain.ProviderPort
	if strings.EqualFold(opts.Source, "snapshot") {
		provider = repo.NewSnapshot(opts.SnapshotDir)
	} else {
		provider = repo.NewLive(repo.LiveOptions{
			BaseURL:  opts.BaseURL,
			Token:    opts.Token,
			PageSize: opts.PageSize,
			Timeout:  opts.Timeout,
		})
	}

	cache := service.NewCache(provider, opts.TTL)

	m := &Module{deps: deps}
	m.ports = Ports{
		Resolver:  service.NewResolver(cache, service.Config{MaxPartialMatches: opts.MaxPartialMatches}),
		Suggester: service.NewSuggester(cache),
		Catalog:   cache,
	}
	return m
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "jurisdiction" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// MountRoutes satisfies modkit.Module; routes are mounted by the api layer
func (m *Module) MountRoutes(r httpkit.Router) {}
