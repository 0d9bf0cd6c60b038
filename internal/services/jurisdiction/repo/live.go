// Package repo provides the two court record providers: live CourtListener
// REST acquisition and the offline snapshot file set
package repo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/khizar-anjum/courtlistener-mcp/internal/core/courtdir"
	perr "github.com/khizar-anjum/courtlistener-mcp/internal/platform/errors"
	"github.com/khizar-anjum/courtlistener-mcp/internal/platform/logger"
)

const (
	baseURLDefault  = "https://www.courtlistener.com/api/rest/v4"
	defaultTimeout  = 30 * time.Second
	defaultUA       = "courtlistener-mcp"
	defaultPageSize = 100

	// maxRecords bounds runaway pagination if the source never signals the
	// last page; acquisition truncates at the ceiling rather than looping
	maxRecords = 4000
)

// LiveOptions configures the Live provider
type LiveOptions struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
	PageSize  int

	// Token is the optional CourtListener API token, empty means anonymous
	Token string
}

// Live fetches the court universe from the CourtListener courts listing
// endpoint, one fixed-size page at a time. Failures are not retried here,
// retry policy belongs to the caller
type Live struct {
	http *http.Client
	opts LiveOptions
	log  logger.Logger
}

// NewLive creates a Live provider with sane defaults
func NewLive(o LiveOptions) *Live {
	if o.BaseURL == "" {
		o.BaseURL = baseURLDefault
	}
	if o.UserAgent == "" {
		o.UserAgent = defaultUA
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	if o.PageSize <= 0 {
		o.PageSize = defaultPageSize
	}
	return &Live{
		http: &http.Client{Timeout: o.Timeout},
		opts: o,
		log:  *logger.Named("courts_live"),
	}
}

// courtPage is the wire shape of one courts listing page
type courtPage struct {
	Count    int        `json:"count"`
	Next     string     `json:"next"`
	Previous string     `json:"previous"`
	Results  []rawCourt `json:"results"`
}

// rawCourt is the wire shape of one court object
type rawCourt struct {
	ID           string `json:"id"`
	ShortName    string `json:"short_name"`
	FullName     string `json:"full_name"`
	Jurisdiction string `json:"jurisdiction"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
}

// FetchAll implements domain.ProviderPort. Pages through the listing until the
// source reports no next page or the record ceiling is hit, skipping records
// that lack an id or a jurisdiction code
func (l *Live) FetchAll(ctx context.Context) ([]courtdir.Record, error) {
	next := fmt.Sprintf("%s/courts/?page_size=%d", l.opts.BaseURL, l.opts.PageSize)

	var records []courtdir.Record
	skipped := 0
	pages := 0

	for next != "" {
		page, err := l.fetchPage(ctx, next)
		if err != nil {
			return nil, err
		}
		pages++

		for _, rc := range page.Results {
			if strings.TrimSpace(rc.ID) == "" || strings.TrimSpace(rc.Jurisdiction) == "" {
				skipped++
				continue
			}
			records = append(records, courtdir.Record{
				ID:        strings.ToLower(strings.TrimSpace(rc.ID)),
				ShortName: rc.ShortName,
				FullName:  rc.FullName,
				Category:  courtdir.CategoryFromJurisdiction(rc.Jurisdiction),
				StartDate: rc.StartDate,
				EndDate:   rc.EndDate,
			})
		}

		if len(records) >= maxRecords {
			l.log.Warn().
				Int("records", len(records)).
				Int("ceiling", maxRecords).
				Msg("court listing hit record ceiling, truncating")
			records = records[:maxRecords]
			break
		}
		next = page.Next
	}

	l.log.Info().
		Int("records", len(records)).
		Int("skipped", skipped).
		Int("pages", pages).
		Msg("court listing fetched")

	if len(records) == 0 {
		return nil, perr.Unavailablef("court listing returned no usable records")
	}
	return records, nil
}

// fetchPage issues one GET and decodes the page body
func (l *Live) fetchPage(ctx context.Context, pageURL string) (*courtPage, error) {
	if _, err := url.Parse(pageURL); err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "bad courts page url %q", pageURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeUnknown, "courts request build failed")
	}
	req.Header.Set("User-Agent", l.opts.UserAgent)
	req.Header.Set("Accept", "application/json")
	if l.opts.Token != "" {
		req.Header.Set("Authorization", "Token "+l.opts.Token)
	}

	resp, err := l.http.Do(req)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeUnavailable, "courts listing fetch failed")
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			l.log.Error().Err(cerr).Msg("failed to close courts response body")
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, perr.Unavailablef("courts listing returned status %d", resp.StatusCode)
	}

	var page courtPage
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeUnavailable, "courts listing page malformed")
	}
	return &page, nil
}
