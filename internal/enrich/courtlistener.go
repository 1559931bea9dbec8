// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package enrich

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/caplane/citeflex/internal/httputil"
	"github.com/caplane/citeflex/internal/pattern"
	"github.com/caplane/citeflex/pkg/types"
)

// courtListenerBase is the CourtListener REST API root. Declared as a
// var so tests can substitute an httptest server.
var courtListenerBase = "https://www.courtlistener.com/api/rest/v4"

// CourtListenerProvider resolves case metadata for legal citations that
// miss the landmark cache. It is wired in only when explicitly enabled;
// the default legal path never touches the network.
type CourtListenerProvider struct {
	Client *httputil.Client
	// Token authenticates the API when set.
	Token string
}

// Name returns the provider identifier.
func (p *CourtListenerProvider) Name() string { return "courtlistener" }

// Lookup searches opinions by case name and maps the best hit.
func (p *CourtListenerProvider) Lookup(ctx context.Context, cit types.Citation) (types.Citation, error) {
	if cit.CaseName == "" {
		return types.Citation{}, fmt.Errorf("courtlistener: no case name to search by")
	}

	var header http.Header
	if p.Token != "" {
		header = http.Header{"Authorization": {"Token " + p.Token}}
	}

	params := url.Values{
		"q":    {cit.CaseName},
		"type": {"o"},
	}
	var resp courtListenerResponse
	if err := p.Client.GetJSON(ctx, courtListenerBase+"/search/?"+params.Encode(), header, &resp); err != nil {
		return types.Citation{}, fmt.Errorf("courtlistener search: %w", err)
	}
	if len(resp.Results) == 0 {
		return types.Citation{}, httputil.ErrNotFound
	}

	hit := resp.Results[0]
	frag := types.Citation{
		CaseName:     hit.CaseName,
		Court:        hit.Court,
		Jurisdiction: "US",
		Year:         yearFromDate(hit.DateFiled),
	}
	for _, c := range hit.Citations {
		if vol, rep, page, ok := pattern.MatchReporter(c); ok {
			frag.Volume, frag.Reporter, frag.Pages = vol, rep, page
			break
		}
	}
	if hit.AbsoluteURL != "" {
		frag.URL = "https://www.courtlistener.com" + hit.AbsoluteURL
	}
	return frag, nil
}

// CourtListener API JSON structures.
type courtListenerResponse struct {
	Results []courtListenerResult `json:"results"`
}

type courtListenerResult struct {
	CaseName    string   `json:"caseName"`
	Court       string   `json:"court"`
	Citations   []string `json:"citation"`
	DateFiled   string   `json:"dateFiled"`
	AbsoluteURL string   `json:"absolute_url"`
}
