// Command courtlistener-snapshot fetches the full court listing and writes
// the snapshot file set consumed by the snapshot provider
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/khizar-anjum/courtlistener-mcp/internal/core/courtdir"
	"github.com/khizar-anjum/courtlistener-mcp/internal/platform/logger"
	"github.com/khizar-anjum/courtlistener-mcp/internal/services/jurisdiction/repo"
)

func must(err error) {
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func main() {
	var (
		out      = flag.String("out", "./snapshots", "output directory for snapshot files")
		baseURL  = flag.String("base-url", "", "CourtListener API base URL (default production)")
		token    = flag.String("token", "", "CourtListener API token (optional)")
		pageSize = flag.Int("page-size", 100, "listing page size")
		timeout  = flag.Duration("timeout", 60*time.Second, "per-request HTTP timeout")
	)
	flag.Parse()

	log := logger.Named("snapshot")

	live := repo.NewLive(repo.LiveOptions{
		BaseURL:  *baseURL,
		Token:    *token,
		PageSize: *pageSize,
		Timeout:  *timeout,
	})

	records, err := live.FetchAll(context.Background())
	must(err)

	dir := courtdir.Build(records)
	must(repo.WriteSnapshot(*out, dir))

	log.Info().
		Str("out", *out).
		Int("courts", dir.Len()).
		Int("states", len(dir.StateIndex)).
		Msg("snapshot written")
}
