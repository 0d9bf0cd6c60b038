package module

import (
	"context"
	"testing"
	"time"

	"github.com/khizar-anjum/courtlistener-mcp/internal/core/courtdir"
	"github.com/khizar-anjum/courtlistener-mcp/internal/modkit"
	"github.com/khizar-anjum/courtlistener-mcp/internal/platform/config"
	"github.com/khizar-anjum/courtlistener-mcp/internal/services/jurisdiction/repo"
)

func TestFromConfig_Defaults(t *testing.T) {
	opts := FromConfig(config.New())
	if opts.Source != "live" {
		t.Fatalf("default source = %q", opts.Source)
	}
	if opts.SnapshotDir != "./snapshots" || opts.PageSize != 100 {
		t.Fatalf("defaults = %+v", opts)
	}
	if opts.Timeout != 30*time.Second || opts.TTL != 0 {
		t.Fatalf("defaults = %+v", opts)
	}
}

func TestFromConfig_Env(t *testing.T) {
	t.Setenv("COURTS_SOURCE", "snapshot")
	t.Setenv("COURTS_SNAPSHOT_DIR", "/var/lib/courts")
	t.Setenv("COURTS_PAGE_SIZE", "50")
	t.Setenv("COURTS_CACHE_TTL", "24h")
	t.Setenv("COURTS_API_TOKEN", "tok")

	opts := FromConfig(config.New())
	if opts.Source != "snapshot" || opts.SnapshotDir != "/var/lib/courts" {
		t.Fatalf("opts = %+v", opts)
	}
	if opts.PageSize != 50 || opts.TTL != 24*time.Hour || opts.Token != "tok" {
		t.Fatalf("opts = %+v", opts)
	}
}

func TestNew_SnapshotSourceServesDirectory(t *testing.T) {
	dir := t.TempDir()
	err := repo.WriteSnapshot(dir, courtdir.Build([]courtdir.Record{
		{ID: "scotus", FullName: "Supreme Court of the United States", Category: courtdir.CategoryFederal},
		{ID: "cal", FullName: "Supreme Court of California", Category: courtdir.CategoryState},
	}))
	if err != nil {
		t.Fatalf("WriteSnapshot: %v", err)
	}

	t.Setenv("COURTS_SOURCE", "snapshot")
	t.Setenv("COURTS_SNAPSHOT_DIR", dir)

	m := New(modkit.Deps{Cfg: config.New()})
	if m.Name() != "jurisdiction" {
		t.Fatalf("Name = %q", m.Name())
	}
	ports, ok := m.Ports().(Ports)
	if !ok {
		t.Fatalf("Ports() has wrong type %T", m.Ports())
	}

	got, err := ports.Catalog.Directory(context.Background())
	if err != nil {
		t.Fatalf("Directory: %v", err)
	}
	if got.Len() != 2 {
		t.Fatalf("directory has %d courts, want 2", got.Len())
	}

	res, err := ports.Resolver.Resolve(context.Background(), "scotus")
	if err != nil || len(res.CourtIDs) != 1 {
		t.Fatalf("Resolve through module ports: %v %+v", err, res)
	}
}
