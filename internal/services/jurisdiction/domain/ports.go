package domain

import (
	"context"

	"github.com/khizar-anjum/courtlistener-mcp/internal/core/courtdir"
)

// ProviderPort produces the full current court record sequence.
// Implementations: live paginated acquisition and snapshot files.
// Zero records is always an error, never a legitimate empty universe
type ProviderPort interface {
	FetchAll(ctx context.Context) ([]courtdir.Record, error)
}

// CatalogPort serves a fresh, categorized court directory
type CatalogPort interface {
	Directory(ctx context.Context) (*courtdir.Directory, error)
}

// ResolverPort turns a raw jurisdiction token into court ids
type ResolverPort interface {
	Resolve(ctx context.Context, token string) (Resolution, error)
}

// SuggesterPort proposes near-matches for a token that failed to resolve
type SuggesterPort interface {
	Suggest(ctx context.Context, token string) ([]string, error)
}
