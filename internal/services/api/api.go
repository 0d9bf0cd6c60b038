// Package api provides the HTTP API for the jurisdiction service
package api

import (
	"time"

	"github.com/khizar-anjum/courtlistener-mcp/internal/modkit"
	"github.com/khizar-anjum/courtlistener-mcp/internal/platform/config"
	"github.com/khizar-anjum/courtlistener-mcp/internal/platform/logger"
	phttp "github.com/khizar-anjum/courtlistener-mcp/internal/platform/net/http"
	"github.com/khizar-anjum/courtlistener-mcp/internal/platform/net/middleware"

	jurhttp "github.com/khizar-anjum/courtlistener-mcp/internal/services/api/jurisdiction/http"
	metahttp "github.com/khizar-anjum/courtlistener-mcp/internal/services/api/meta/http"
	jurmod "github.com/khizar-anjum/courtlistener-mcp/internal/services/jurisdiction/module"
)

// Options are the API options
type Options struct {
	Config config.Conf
	Logger *logger.Logger
}

// Mount wires the jurisdiction module and mounts all routes onto the router
func Mount(r phttp.Router, opt Options) {
	deps := modkit.Deps{Cfg: opt.Config}
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	}

	jur := jurmod.New(deps)
	ports := jur.Ports().(jurmod.Ports)

	r.Use(middleware.Defaults()...)
	r.Use(middleware.AccessLogZerolog(middleware.AccessLogOptions{Slow: 2 * time.Second}))
	r.Use(middleware.CORS(middleware.CORSOptions{
		AllowedOrigins: opt.Config.MayCSV("CORS_ORIGINS", []string{"*"}),
	}))

	r.Route("/api/v1", func(v1 phttp.Router) {
		jurhttp.Register(v1, jurhttp.Deps{
			Resolver:  ports.Resolver,
			Suggester: ports.Suggester,
			Catalog:   ports.Catalog,
		})
		metahttp.Register(v1, metahttp.Deps{
			ServiceName: "courtlistener-api",
			StartedAt:   time.Now(),
			Catalog:     ports.Catalog,
		})
	})
}
