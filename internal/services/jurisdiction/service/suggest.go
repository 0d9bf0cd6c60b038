package service

import (
	"context"
	"strings"

	"github.com/khizar-anjum/courtlistener-mcp/internal/core/courtdir"
	"github.com/khizar-anjum/courtlistener-mcp/internal/core/normalize"
	pstrings "github.com/khizar-anjum/courtlistener-mcp/internal/platform/strings"
	"github.com/khizar-anjum/courtlistener-mcp/internal/services/jurisdiction/domain"
)

const (
	// suggestScanLimit bounds the directory prefix scanned for name matches
	suggestScanLimit = 100

	// suggestMax caps the returned candidate list
	suggestMax = 5

	// suggestEditMax is the edit distance threshold for near-match candidates
	suggestEditMax = 2
)

// keywordRule is one fixed heuristic trigger: when every needle appears in
// the collapsed token, candidate is proposed
type keywordRule struct {
	needles   []string
	candidate string
}

var keywordRules = []keywordRule{
	{needles: []string{"fed"}, candidate: "federal"},
	{needles: []string{"supreme"}, candidate: "scotus"},
	{needles: []string{"bank"}, candidate: "federal-bankruptcy"},
	{needles: []string{"new", "york"}, candidate: "new-york"},
	{needles: []string{"new", "jersey"}, candidate: "new-jersey"},
	{needles: []string{"new", "hampshire"}, candidate: "new-hampshire"},
	{needles: []string{"new", "mexico"}, candidate: "new-mexico"},
	{needles: []string{"north", "carolina"}, candidate: "north-carolina"},
	{needles: []string{"south", "carolina"}, candidate: "south-carolina"},
	{needles: []string{"north", "dakota"}, candidate: "north-dakota"},
	{needles: []string{"south", "dakota"}, candidate: "south-dakota"},
	{needles: []string{"west", "virginia"}, candidate: "west-virginia"},
	{needles: []string{"rhode", "island"}, candidate: "rhode-island"},
}

// Suggester implements domain.SuggesterPort, called only after a resolution
// failure. Best effort: directory name matches first, then near-match state
// keys by edit distance, then the fixed keyword triggers, deduped, capped
type Suggester struct {
	catalog domain.CatalogPort
	norm    *normalize.Normalizer
}

// NewSuggester constructs a Suggester with a required catalog
func NewSuggester(catalog domain.CatalogPort) *Suggester {
	return &Suggester{catalog: catalog, norm: normalize.New()}
}

// Suggest implements domain.SuggesterPort
func (sg *Suggester) Suggest(ctx context.Context, token string) ([]string, error) {
	key := sg.norm.Key(token)
	if key == "" {
		return nil, nil
	}

	dir, err := sg.catalog.Directory(ctx)
	if err != nil {
		return nil, err
	}

	var out []string

	// bounded scan of the directory prefix for name matches
	limit := suggestScanLimit
	if limit > len(dir.All) {
		limit = len(dir.All)
	}
	for i := 0; i < limit; i++ {
		r := &dir.All[i]
		if strings.Contains(sg.norm.Key(r.ShortName), key) ||
			strings.Contains(sg.norm.Key(r.FullName), key) {
			out = append(out, r.ID)
		}
	}

	// near-match state keys catch misspellings like "calfornia"
	if len(key) >= 4 {
		for _, st := range courtdir.States() {
			collapsed := strings.ReplaceAll(st.Key, "-", "")
			if editDistance(key, collapsed) <= suggestEditMax {
				out = append(out, st.Key)
			}
		}
	}

	// fixed keyword triggers
	for _, rule := range keywordRules {
		hit := true
		for _, n := range rule.needles {
			if !strings.Contains(key, n) {
				hit = false
				break
			}
		}
		if hit {
			out = append(out, rule.candidate)
		}
	}

	out = pstrings.Dedupe(out)
	if len(out) > suggestMax {
		out = out[:suggestMax]
	}
	return out, nil
}

// editDistance computes the Levenshtein distance between two strings using a
// single rolling row
func editDistance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}
	if len(a) > len(b) {
		a, b = b, a
	}

	prev := make([]int, len(a)+1)
	for i := range prev {
		prev[i] = i
	}
	for j := 1; j <= len(b); j++ {
		cur := make([]int, len(a)+1)
		cur[0] = j
		for i := 1; i <= len(a); i++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			cur[i] = min(prev[i]+1, min(cur[i-1]+1, prev[i-1]+cost))
		}
		prev = cur
	}
	return prev[len(a)]
}
