// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package enrich

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/caplane/citeflex/internal/httputil"
	"github.com/caplane/citeflex/pkg/types"
)

// semanticScholarBase is the Semantic Scholar Graph API paper endpoint.
// Declared as a var so tests can substitute an httptest server.
var semanticScholarBase = "https://api.semanticscholar.org/graph/v1/paper"

// semanticScholarFields selects the response fields needed to build a
// citation fragment.
const semanticScholarFields = "title,venue,year,authors,journal,externalIds"

// SemanticScholarProvider resolves journal and medical metadata from
// the Semantic Scholar Graph API.
type SemanticScholarProvider struct {
	Client *httputil.Client
	// APIKey raises the rate limit when set.
	APIKey string
}

// Name returns the provider identifier.
func (p *SemanticScholarProvider) Name() string { return "semanticscholar" }

// Lookup fetches metadata for the citation.
func (p *SemanticScholarProvider) Lookup(ctx context.Context, cit types.Citation) (types.Citation, error) {
	var header http.Header
	if p.APIKey != "" {
		header = http.Header{"X-Api-Key": {p.APIKey}}
	}

	if cit.DOI != "" {
		var paper semanticScholarPaper
		reqURL := semanticScholarBase + "/DOI:" + url.PathEscape(cit.DOI) + "?fields=" + semanticScholarFields
		if err := p.Client.GetJSON(ctx, reqURL, header, &paper); err != nil {
			return types.Citation{}, fmt.Errorf("semanticscholar DOI fetch: %w", err)
		}
		return semanticScholarFragment(paper), nil
	}
	if cit.PMID != "" {
		var paper semanticScholarPaper
		reqURL := semanticScholarBase + "/PMID:" + cit.PMID + "?fields=" + semanticScholarFields
		if err := p.Client.GetJSON(ctx, reqURL, header, &paper); err != nil {
			return types.Citation{}, fmt.Errorf("semanticscholar PMID fetch: %w", err)
		}
		return semanticScholarFragment(paper), nil
	}

	if cit.Title == "" {
		return types.Citation{}, fmt.Errorf("semanticscholar: no identifier or title to search by")
	}

	params := url.Values{
		"query":  {cit.Title},
		"limit":  {"1"},
		"fields": {semanticScholarFields},
	}
	var resp semanticScholarSearchResponse
	if err := p.Client.GetJSON(ctx, semanticScholarBase+"/search?"+params.Encode(), header, &resp); err != nil {
		return types.Citation{}, fmt.Errorf("semanticscholar search: %w", err)
	}
	if len(resp.Data) == 0 {
		return types.Citation{}, httputil.ErrNotFound
	}
	return semanticScholarFragment(resp.Data[0]), nil
}

// semanticScholarFragment maps a paper record to citation fields.
func semanticScholarFragment(paper semanticScholarPaper) types.Citation {
	frag := types.Citation{
		Title:       paper.Title,
		Publication: paper.Venue,
		Year:        paper.Year,
		Volume:      paper.Journal.Volume,
		Pages:       paper.Journal.Pages,
		DOI:         paper.ExternalIDs.DOI,
		PMID:        paper.ExternalIDs.PubMed,
	}
	if frag.Publication == "" {
		frag.Publication = paper.Journal.Name
	}
	for _, a := range paper.Authors {
		if a.Name != "" {
			frag.Authors = append(frag.Authors, a.Name)
		}
	}
	return frag
}

// Semantic Scholar API JSON structures.
type semanticScholarSearchResponse struct {
	Data []semanticScholarPaper `json:"data"`
}

type semanticScholarPaper struct {
	Title       string                   `json:"title"`
	Venue       string                   `json:"venue"`
	Year        int                      `json:"year"`
	Authors     []semanticScholarAuthor  `json:"authors"`
	Journal     semanticScholarJournal   `json:"journal"`
	ExternalIDs semanticScholarExternals `json:"externalIds"`
}

type semanticScholarAuthor struct {
	Name string `json:"name"`
}

type semanticScholarJournal struct {
	Name   string `json:"name"`
	Volume string `json:"volume"`
	Pages  string `json:"pages"`
}

type semanticScholarExternals struct {
	DOI    string `json:"DOI"`
	PubMed string `json:"PubMed"`
}
