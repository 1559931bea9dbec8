// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package enrich fills in citation fields from external metadata
// providers. Providers for a citation type are queried concurrently
// under one deadline; whatever answers arrive in time are merged in a
// fixed provider-priority order, so output is reproducible for any
// given set of providers that succeeded. Provider failures degrade the
// result, never fail it.
package enrich

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/caplane/citeflex/internal/httputil"
	"github.com/caplane/citeflex/internal/landmark"
	"github.com/caplane/citeflex/internal/refdata"
	"github.com/caplane/citeflex/pkg/types"
)

// Provider looks up one external metadata source. Implementations must
// be safe for concurrent use and honor ctx cancellation.
type Provider interface {
	Name() string
	Lookup(ctx context.Context, cit types.Citation) (types.Citation, error)
}

// Output holds the enriched citation plus per-provider outcomes.
type Output struct {
	Citation types.Citation

	// Results records every provider call in priority order, including
	// failures. Diagnostic only.
	Results []types.LookupResult

	// Warnings lists provider failures in human-readable form.
	Warnings []string
}

// Coordinator dispatches enrichment by citation type. One Coordinator
// is safe for concurrent use; the per-call shorthand state lives in the
// formatter, not here.
type Coordinator struct {
	cfg       types.EnrichConfig
	landmarks *landmark.Cache

	// providers maps a citation type to its ranked provider list;
	// earlier providers win field conflicts.
	providers map[types.CitationType][]Provider

	warn io.Writer

	// now stamps accessed dates; tests substitute a fixed clock.
	now func() time.Time
}

// New builds a Coordinator with the default provider rankings:
// journal crossref > openalex > semanticscholar, medical pubmed >
// crossref > semanticscholar, book openlibrary > googlebooks >
// crossref. Legal citations resolve from the landmark cache and only
// reach CourtListener when cfg enables it. Warnings are written to w.
func New(cfg types.EnrichConfig, lm *landmark.Cache, w io.Writer) *Coordinator {
	cfg = cfg.WithDefaults()
	client := httputil.NewClient(cfg.HTTPConfig)

	crossref := &CrossrefProvider{Client: client, Email: cfg.PoliteEmail}
	openalex := &OpenAlexProvider{Client: client, Email: cfg.PoliteEmail}
	semantic := &SemanticScholarProvider{Client: client, APIKey: cfg.SemanticScholarAPIKey}
	pubmed := &PubMedProvider{Client: client}
	openlib := &OpenLibraryProvider{Client: client}
	gbooks := &GoogleBooksProvider{Client: client}

	providers := map[types.CitationType][]Provider{
		types.TypeJournal: {crossref, openalex, semantic},
		types.TypeMedical: {pubmed, crossref, semantic},
		types.TypeBook:    {openlib, gbooks, crossref},
	}
	if cfg.EnableCourtListener {
		providers[types.TypeLegal] = []Provider{
			&CourtListenerProvider{Client: client, Token: cfg.CourtListenerToken},
		}
	}

	return &Coordinator{
		cfg:       cfg,
		landmarks: lm,
		providers: providers,
		warn:      w,
		now:       time.Now,
	}
}

// NewWithProviders builds a Coordinator with an explicit provider map.
// Used by tests to substitute stub providers.
func NewWithProviders(cfg types.EnrichConfig, lm *landmark.Cache, providers map[types.CitationType][]Provider, w io.Writer) *Coordinator {
	return &Coordinator{
		cfg:       cfg.WithDefaults(),
		landmarks: lm,
		providers: providers,
		warn:      w,
		now:       time.Now,
	}
}

// Enrich returns a more complete copy of cit. The input is never
// mutated. The call always returns a citation: if every provider fails
// or times out the result is just the fields parsed from raw text.
func (c *Coordinator) Enrich(ctx context.Context, cit types.Citation) Output {
	switch cit.Type {
	case types.TypeLegal:
		return c.enrichLegal(ctx, cit)
	case types.TypeJournal, types.TypeMedical, types.TypeBook:
		out := c.fanOut(ctx, cit, c.providers[cit.Type])
		if out.Citation.Type == types.TypeBook {
			out.Citation.Place = refdata.ResolvePlace(out.Citation.Publisher, out.Citation.Place)
		}
		c.stampAccessed(&out.Citation)
		return out
	case types.TypeGovernment:
		if cit.Agency == "" && cit.URL != "" {
			cit.Agency = refdata.AgencyForURL(cit.URL)
		}
		c.stampAccessed(&cit)
		return Output{Citation: cit}
	case types.TypeNewspaper:
		if cit.Publication == "" && cit.URL != "" {
			cit.Publication = refdata.NewspaperForURL(cit.URL)
		}
		c.stampAccessed(&cit)
		return Output{Citation: cit}
	default:
		// Interview and unknown pass through unchanged.
		c.stampAccessed(&cit)
		return Output{Citation: cit}
	}
}

// enrichLegal resolves against the landmark cache first; a hit merges
// and returns without any network call. On a miss the citation goes to
// the legal provider list, which is empty unless CourtListener is
// enabled.
func (c *Coordinator) enrichLegal(ctx context.Context, cit types.Citation) Output {
	if cit.CaseName != "" {
		if hit, ok := c.landmarks.Lookup(cit.CaseName); ok {
			merged := cit
			mergeInto(&merged, hit)
			return Output{Citation: merged}
		}
	}
	if provs := c.providers[types.TypeLegal]; len(provs) > 0 && cit.CaseName != "" {
		return c.fanOut(ctx, cit, provs)
	}
	return Output{Citation: cit}
}

// fanOut queries providers concurrently on a bounded worker pool under
// the parallel deadline. Each call writes only its own result slot;
// merging happens single-threaded after the join, in provider priority
// order. Providers still running at the deadline are abandoned and
// contribute nothing.
func (c *Coordinator) fanOut(ctx context.Context, cit types.Citation, provs []Provider) Output {
	out := Output{Citation: cit}
	if len(provs) == 0 {
		return out
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.ParallelTimeout)
	defer cancel()

	results := make([]types.LookupResult, len(provs))
	var g errgroup.Group
	g.SetLimit(c.cfg.MaxWorkers)
	for i, p := range provs {
		i, p := i, p
		g.Go(func() error {
			start := time.Now()
			frag, err := p.Lookup(ctx, cit)
			results[i] = types.LookupResult{
				Provider: p.Name(),
				Fragment: frag,
				OK:       err == nil,
				Latency:  time.Since(start),
				Err:      err,
			}
			return nil
		})
	}
	g.Wait()

	for _, r := range results {
		if !r.OK {
			if r.Err != nil && !errors.Is(r.Err, httputil.ErrNotFound) {
				msg := fmt.Sprintf("%s: %v", r.Provider, r.Err)
				out.Warnings = append(out.Warnings, msg)
				fmt.Fprintf(c.warn, "warning: provider %s failed: %v\n", r.Provider, r.Err)
			}
			continue
		}
		mergeInto(&out.Citation, r.Fragment)
	}
	out.Results = results
	return out
}

// stampAccessed records the retrieval date for web sources.
func (c *Coordinator) stampAccessed(cit *types.Citation) {
	if cit.URL != "" && cit.AccessedDate == "" {
		cit.AccessedDate = c.now().Format("2006-01-02")
	}
}

// mergeInto fills empty fields of dst from src. Fields already set by
// the raw parse or a higher-priority provider are never overwritten;
// Raw and Type are never touched.
func mergeInto(dst *types.Citation, src types.Citation) {
	if len(dst.Authors) == 0 && len(src.Authors) > 0 {
		dst.Authors = src.Authors
	}
	fillString(&dst.Title, src.Title)
	fillString(&dst.Publication, src.Publication)
	if dst.Year == 0 && src.Year != 0 {
		dst.Year = src.Year
	}
	fillString(&dst.Date, src.Date)
	fillString(&dst.Volume, src.Volume)
	fillString(&dst.Issue, src.Issue)
	fillString(&dst.Pages, src.Pages)
	fillString(&dst.Publisher, src.Publisher)
	fillString(&dst.Place, src.Place)
	fillString(&dst.Edition, src.Edition)
	fillString(&dst.ISBN, src.ISBN)
	fillString(&dst.DOI, src.DOI)
	fillString(&dst.PMID, src.PMID)
	fillString(&dst.URL, src.URL)
	fillString(&dst.CaseName, src.CaseName)
	fillString(&dst.Reporter, src.Reporter)
	fillString(&dst.Court, src.Court)
	fillString(&dst.Jurisdiction, src.Jurisdiction)
	fillString(&dst.NeutralCitation, src.NeutralCitation)
	fillString(&dst.Agency, src.Agency)
	fillString(&dst.Interviewee, src.Interviewee)
	fillString(&dst.Interviewer, src.Interviewer)
}

func fillString(dst *string, src string) {
	if *dst == "" && src != "" {
		*dst = src
	}
}
