// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package enrich

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caplane/citeflex/internal/httputil"
	"github.com/caplane/citeflex/internal/landmark"
	"github.com/caplane/citeflex/pkg/types"
)

// stubProvider returns a fixed fragment or error, optionally after a
// delay, and counts how often it was called.
type stubProvider struct {
	name  string
	frag  types.Citation
	err   error
	delay time.Duration
	calls int32
}

func (p *stubProvider) Name() string { return p.name }

func (p *stubProvider) Lookup(ctx context.Context, _ types.Citation) (types.Citation, error) {
	atomic.AddInt32(&p.calls, 1)
	if p.delay > 0 {
		select {
		case <-time.After(p.delay):
		case <-ctx.Done():
			return types.Citation{}, ctx.Err()
		}
	}
	return p.frag, p.err
}

func newCoordinator(t *testing.T, providers map[types.CitationType][]Provider) *Coordinator {
	t.Helper()
	return NewWithProviders(types.EnrichConfig{}, landmark.New(), providers, io.Discard)
}

func TestEnrichMergePriorityOrder(t *testing.T) {
	first := &stubProvider{
		name: "first",
		frag: types.Citation{Title: "Primary Title", Year: 2020},
	}
	second := &stubProvider{
		name: "second",
		frag: types.Citation{Title: "Secondary Title", Publication: "Nature", Year: 1999, DOI: "10.1000/xyz"},
	}
	c := newCoordinator(t, map[types.CitationType][]Provider{
		types.TypeJournal: {first, second},
	})

	out := c.Enrich(context.Background(), types.Citation{Raw: "x", Type: types.TypeJournal, Title: "x"})

	// Input fields are never overwritten; provider conflicts resolve in
	// ranking order; lower-ranked providers still fill gaps.
	assert.Equal(t, "x", out.Citation.Title)
	assert.Equal(t, 2020, out.Citation.Year)
	assert.Equal(t, "Nature", out.Citation.Publication)
	assert.Equal(t, "10.1000/xyz", out.Citation.DOI)
	require.Len(t, out.Results, 2)
	assert.Equal(t, "first", out.Results[0].Provider)
	assert.Equal(t, "second", out.Results[1].Provider)
}

func TestEnrichProviderConflict(t *testing.T) {
	first := &stubProvider{name: "first", frag: types.Citation{Publication: "From First"}}
	second := &stubProvider{name: "second", frag: types.Citation{Publication: "From Second"}}
	c := newCoordinator(t, map[types.CitationType][]Provider{
		types.TypeJournal: {first, second},
	})

	out := c.Enrich(context.Background(), types.Citation{Raw: "x", Type: types.TypeJournal})
	assert.Equal(t, "From First", out.Citation.Publication)
}

func TestEnrichAllProvidersFail(t *testing.T) {
	var buf strings.Builder
	broken := &stubProvider{name: "broken", err: errors.New("connection refused")}
	missing := &stubProvider{name: "missing", err: httputil.ErrNotFound}
	c := NewWithProviders(types.EnrichConfig{}, landmark.New(), map[types.CitationType][]Provider{
		types.TypeJournal: {broken, missing},
	}, &buf)

	in := types.Citation{Raw: "raw text", Type: types.TypeJournal, Title: "Some Title"}
	out := c.Enrich(context.Background(), in)

	// Degraded, not failed: the parsed fields survive untouched.
	assert.Equal(t, in.Title, out.Citation.Title)
	assert.Equal(t, in.Raw, out.Citation.Raw)
	assert.Equal(t, in.Type, out.Citation.Type)

	// Transport failures warn; not-found results do not.
	require.Len(t, out.Warnings, 1)
	assert.Contains(t, out.Warnings[0], "broken")
	assert.Contains(t, buf.String(), "broken")
	assert.NotContains(t, buf.String(), "missing")
}

func TestEnrichSlowProviderAbandoned(t *testing.T) {
	fast := &stubProvider{name: "fast", frag: types.Citation{Title: "Fast Title"}}
	slow := &stubProvider{name: "slow", frag: types.Citation{Publication: "Never Arrives"}, delay: 2 * time.Second}
	c := NewWithProviders(types.EnrichConfig{ParallelTimeout: 50 * time.Millisecond}, landmark.New(), map[types.CitationType][]Provider{
		types.TypeJournal: {fast, slow},
	}, io.Discard)

	out := c.Enrich(context.Background(), types.Citation{Raw: "x", Type: types.TypeJournal})
	assert.Equal(t, "Fast Title", out.Citation.Title)
	assert.Empty(t, out.Citation.Publication)
}

func TestEnrichLegalLandmarkHitSkipsNetwork(t *testing.T) {
	remote := &stubProvider{name: "remote", frag: types.Citation{Court: "Wrong Court"}}
	c := newCoordinator(t, map[types.CitationType][]Provider{
		types.TypeLegal: {remote},
	})

	in := types.Citation{Raw: "Obergefell v. Hodges", Type: types.TypeLegal, CaseName: "Obergefell v. Hodges"}
	out := c.Enrich(context.Background(), in)

	assert.Equal(t, "Supreme Court of the United States", out.Citation.Court)
	assert.Equal(t, "576 U.S. 644", out.Citation.ReporterCite())
	assert.Equal(t, 2015, out.Citation.Year)
	assert.Equal(t, int32(0), atomic.LoadInt32(&remote.calls))
}

func TestEnrichLegalLandmarkMissUsesProviders(t *testing.T) {
	remote := &stubProvider{name: "remote", frag: types.Citation{Court: "S.D.N.Y."}}
	c := newCoordinator(t, map[types.CitationType][]Provider{
		types.TypeLegal: {remote},
	})

	in := types.Citation{Raw: "Nobody v. Nothing", Type: types.TypeLegal, CaseName: "Nobody v. Nothing"}
	out := c.Enrich(context.Background(), in)

	assert.Equal(t, "S.D.N.Y.", out.Citation.Court)
	assert.Equal(t, int32(1), atomic.LoadInt32(&remote.calls))
}

func TestEnrichLegalMissWithoutProviders(t *testing.T) {
	c := newCoordinator(t, map[types.CitationType][]Provider{})

	in := types.Citation{Raw: "Nobody v. Nothing", Type: types.TypeLegal, CaseName: "Nobody v. Nothing"}
	out := c.Enrich(context.Background(), in)
	assert.Equal(t, in, out.Citation)
	assert.Empty(t, out.Warnings)
}

func TestEnrichGovernmentStatic(t *testing.T) {
	c := newCoordinator(t, nil)
	c.now = func() time.Time { return time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC) }

	in := types.Citation{
		Raw:  "https://www.epa.gov/ghgemissions",
		Type: types.TypeGovernment,
		URL:  "https://www.epa.gov/ghgemissions",
	}
	out := c.Enrich(context.Background(), in)
	assert.Equal(t, "Environmental Protection Agency", out.Citation.Agency)
	assert.Equal(t, "2026-03-15", out.Citation.AccessedDate)
}

func TestEnrichNewspaperStatic(t *testing.T) {
	c := newCoordinator(t, nil)

	in := types.Citation{
		Raw:  "https://www.nytimes.com/2023/05/14/us/story.html",
		Type: types.TypeNewspaper,
		URL:  "https://www.nytimes.com/2023/05/14/us/story.html",
	}
	out := c.Enrich(context.Background(), in)
	assert.Equal(t, "The New York Times", out.Citation.Publication)
	assert.NotEmpty(t, out.Citation.AccessedDate)
}

func TestEnrichBookPlaceFallback(t *testing.T) {
	openlib := &stubProvider{name: "openlibrary", frag: types.Citation{Publisher: "Oxford University Press"}}
	c := newCoordinator(t, map[types.CitationType][]Provider{
		types.TypeBook: {openlib},
	})

	out := c.Enrich(context.Background(), types.Citation{Raw: "x", Type: types.TypeBook, Title: "The Selfish Gene"})
	assert.Equal(t, "Oxford University Press", out.Citation.Publisher)
	assert.Equal(t, "Oxford", out.Citation.Place)
}

func TestEnrichInterviewPassthrough(t *testing.T) {
	c := newCoordinator(t, nil)

	in := types.Citation{Raw: "Interview with Jane Smith", Type: types.TypeInterview, Interviewee: "Jane Smith"}
	out := c.Enrich(context.Background(), in)
	assert.Equal(t, in, out.Citation)
}

func TestMergeIntoNeverTouchesRawAndType(t *testing.T) {
	dst := types.Citation{Raw: "original", Type: types.TypeJournal}
	mergeInto(&dst, types.Citation{Raw: "other", Type: types.TypeBook, Title: "T"})
	assert.Equal(t, "original", dst.Raw)
	assert.Equal(t, types.TypeJournal, dst.Type)
	assert.Equal(t, "T", dst.Title)
}
