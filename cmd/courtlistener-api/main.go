// Command courtlistener-api serves the jurisdiction resolution API
package main

import (
	"context"

	"github.com/khizar-anjum/courtlistener-mcp/internal/platform/config"
	"github.com/khizar-anjum/courtlistener-mcp/internal/platform/logger"
	phttp "github.com/khizar-anjum/courtlistener-mcp/internal/platform/net/http"

	"github.com/khizar-anjum/courtlistener-mcp/internal/services/api"
)

func main() {
	// service-scoped config for HTTP etc (CORE_API_*); courts config lives under COURTS_*
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	// bring up logging early
	l := logger.Get()

	srv := phttp.NewServer(apiCfg)

	api.Mount(srv.Router(), api.Options{
		Config: root,
		Logger: l,
	})

	if err := srv.Run(context.Background()); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
