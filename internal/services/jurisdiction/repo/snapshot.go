package repo

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/khizar-anjum/courtlistener-mcp/internal/core/courtdir"
	perr "github.com/khizar-anjum/courtlistener-mcp/internal/platform/errors"
	"github.com/khizar-anjum/courtlistener-mcp/internal/platform/logger"

	"github.com/google/uuid"
)

// AllCourtsFile is the one snapshot file the runtime loader consumes; the
// per-category and per-state files exist for offline consumers
const AllCourtsFile = "all-courts.json"

// StatesDir holds the per-state snapshot files under the snapshot root
const StatesDir = "states"

// snapshotFile is the serialized form shared by every snapshot artifact
type snapshotFile struct {
	SnapshotID  string            `json:"snapshot_id"`
	GeneratedAt time.Time         `json:"generated_at"`
	Count       int               `json:"count"`
	Courts      []courtdir.Record `json:"courts"`
}

// Snapshot loads court records from a pre-generated snapshot directory,
// the only provider usable when the resolution path must stay off the network
type Snapshot struct {
	dir string
	log logger.Logger
}

// NewSnapshot creates a Snapshot provider rooted at dir
func NewSnapshot(dir string) *Snapshot {
	return &Snapshot{dir: dir, log: *logger.Named("courts_snapshot")}
}

// FetchAll implements domain.ProviderPort by reading the all-courts file.
// Missing or malformed files and empty court lists are acquisition failures
func (s *Snapshot) FetchAll(ctx context.Context) ([]courtdir.Record, error) {
	_ = ctx // no cancellation point, the read is a single local file

	path := filepath.Join(s.dir, AllCourtsFile)
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "court snapshot missing at %s", path)
	}

	var sf snapshotFile
	if err := json.Unmarshal(b, &sf); err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "court snapshot malformed at %s", path)
	}
	if len(sf.Courts) == 0 {
		return nil, perr.Unavailablef("court snapshot at %s has no courts", path)
	}

	s.log.Info().
		Str("snapshot_id", sf.SnapshotID).
		Time("generated_at", sf.GeneratedAt).
		Int("records", len(sf.Courts)).
		Msg("court snapshot loaded")

	return sf.Courts, nil
}

// WriteSnapshot writes the full snapshot file set for a built directory:
// the all-courts file, one file per category, and one file per indexed state.
// Artifacts are write-once, the runtime never mutates them
func WriteSnapshot(dir string, d *courtdir.Directory) error {
	id := uuid.New().String()
	now := time.Now().UTC()

	if err := os.MkdirAll(filepath.Join(dir, StatesDir), 0o755); err != nil {
		return perr.Wrap(err, perr.ErrorCodeUnknown, "snapshot dir create failed")
	}

	write := func(name string, courts []courtdir.Record) error {
		sf := snapshotFile{
			SnapshotID:  id,
			GeneratedAt: now,
			Count:       len(courts),
			Courts:      courts,
		}
		b, err := json.MarshalIndent(sf, "", "  ")
		if err != nil {
			return perr.Wrapf(err, perr.ErrorCodeUnknown, "snapshot encode failed for %s", name)
		}
		if err := os.WriteFile(filepath.Join(dir, name), b, 0o644); err != nil {
			return perr.Wrapf(err, perr.ErrorCodeUnknown, "snapshot write failed for %s", name)
		}
		return nil
	}

	if err := write(AllCourtsFile, d.All); err != nil {
		return err
	}
	for _, cat := range courtdir.Categories() {
		if err := write(string(cat)+".json", d.ByCategory[cat]); err != nil {
			return err
		}
	}

	// per-state files carry the records claimed by each state's prefix codes
	byID := make(map[string]courtdir.Record, len(d.All))
	for _, r := range d.All {
		byID[r.ID] = r
	}
	for key, ids := range d.StateIndex {
		courts := make([]courtdir.Record, 0, len(ids))
		for _, cid := range ids {
			if r, ok := byID[cid]; ok {
				courts = append(courts, r)
			}
		}
		if err := write(filepath.Join(StatesDir, key+".json"), courts); err != nil {
			return err
		}
	}
	return nil
}
