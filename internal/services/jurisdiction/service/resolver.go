package service

import (
	"context"
	"strings"

	"github.com/khizar-anjum/courtlistener-mcp/internal/core/courtdir"
	"github.com/khizar-anjum/courtlistener-mcp/internal/core/normalize"
	perr "github.com/khizar-anjum/courtlistener-mcp/internal/platform/errors"
	"github.com/khizar-anjum/courtlistener-mcp/internal/services/jurisdiction/domain"
)

// MaxPartialMatches caps the partial name match strategy so a one-word token
// cannot return the whole directory
const MaxPartialMatches = 50

// Config for the resolver
type Config struct {
	MaxPartialMatches int
}

// Resolver implements domain.ResolverPort over a catalog.
// Resolution is a fixed ordered strategy chain, the first strategy that
// produces a result wins, and the output order always follows directory
// insertion order so repeated calls are stable
type Resolver struct {
	catalog domain.CatalogPort
	norm    *normalize.Normalizer
	cfg     Config
}

// NewResolver constructs a Resolver with a required catalog
func NewResolver(catalog domain.CatalogPort, cfg Config) *Resolver {
	if cfg.MaxPartialMatches <= 0 {
		cfg.MaxPartialMatches = MaxPartialMatches
	}
	return &Resolver{catalog: catalog, norm: normalize.New(), cfg: cfg}
}

// Resolve implements domain.ResolverPort
func (rs *Resolver) Resolve(ctx context.Context, token string) (domain.Resolution, error) {
	lower := rs.norm.Lower(token)
	key := rs.norm.Key(token)
	if key == "" {
		return domain.Resolution{}, perr.InvalidArgf("empty jurisdiction token")
	}

	dir, err := rs.catalog.Directory(ctx)
	if err != nil {
		return domain.Resolution{}, err
	}

	// 1 sentinel keywords
	if res, ok := sentinel(dir, key); ok {
		return res, nil
	}

	// 2 comma-separated id list, unknown parts dropped not erred
	if strings.Contains(lower, ",") {
		var ids []string
		for _, part := range strings.Split(lower, ",") {
			part = strings.TrimSpace(part)
			if part != "" && dir.HasCourt(part) {
				ids = append(ids, part)
			}
		}
		if len(ids) > 0 {
			return domain.Resolution{CourtIDs: ids}, nil
		}
		// an all-bogus list falls through to the failure path below
	}

	// 3 exact court id
	if dir.HasCourt(lower) {
		return domain.Resolution{CourtIDs: []string{lower}}, nil
	}

	// 4 state lookup, tried with both the hyphen-preserving token and the key
	for _, probe := range []string{lower, key} {
		if sk, ok := courtdir.StateKey(probe); ok {
			if ids := dir.StateIndex[sk]; len(ids) > 0 {
				return domain.Resolution{CourtIDs: ids}, nil
			}
		}
	}

	// 5 partial name match, capped
	if ids := rs.nameMatches(dir, key); len(ids) > 0 {
		return domain.Resolution{CourtIDs: ids}, nil
	}

	return domain.Resolution{}, perr.NotFoundf("unrecognized jurisdiction %q", token)
}

// sentinel handles the fixed keyword vocabulary. "all" succeeds with an empty
// list meaning no filter; the category words return that category's ids
func sentinel(dir *courtdir.Directory, key string) (domain.Resolution, bool) {
	switch key {
	case "all":
		return domain.Resolution{All: true}, true
	case "federal":
		return domain.Resolution{CourtIDs: dir.CategoryIDs(courtdir.CategoryFederal)}, true
	case "state":
		return domain.Resolution{CourtIDs: dir.CategoryIDs(courtdir.CategoryState)}, true
	case "bankruptcy", "federalbankruptcy":
		return domain.Resolution{CourtIDs: dir.CategoryIDs(courtdir.CategoryFederalBankruptcy)}, true
	case "military":
		return domain.Resolution{CourtIDs: dir.CategoryIDs(courtdir.CategoryMilitary)}, true
	case "special":
		return domain.Resolution{CourtIDs: dir.CategoryIDs(courtdir.CategorySpecial)}, true
	}
	return domain.Resolution{}, false
}

// nameMatches collects courts whose short or full name contains the key once
// both sides are collapsed the same way, in directory order, capped
func (rs *Resolver) nameMatches(dir *courtdir.Directory, key string) []string {
	var ids []string
	for i := range dir.All {
		r := &dir.All[i]
		if strings.Contains(rs.norm.Key(r.ShortName), key) ||
			strings.Contains(rs.norm.Key(r.FullName), key) {
			ids = append(ids, r.ID)
			if len(ids) >= rs.cfg.MaxPartialMatches {
				break
			}
		}
	}
	return ids
}
