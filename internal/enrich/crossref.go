// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package enrich

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/caplane/citeflex/internal/httputil"
	"github.com/caplane/citeflex/pkg/types"
)

// crossrefBase is the Crossref REST API root. Declared as a var so
// tests can substitute an httptest server.
var crossrefBase = "https://api.crossref.org"

// CrossrefProvider resolves journal and book metadata from Crossref.
// A DOI on the input is a direct record fetch; otherwise it searches by
// title and takes the best match.
type CrossrefProvider struct {
	Client *httputil.Client
	// Email is sent as mailto parameter for polite pool access.
	Email string
}

// Name returns the provider identifier.
func (p *CrossrefProvider) Name() string { return "crossref" }

// Lookup fetches metadata for the citation.
func (p *CrossrefProvider) Lookup(ctx context.Context, cit types.Citation) (types.Citation, error) {
	if cit.DOI != "" {
		var resp crossrefWorkResponse
		reqURL := crossrefBase + "/works/" + url.PathEscape(cit.DOI)
		if p.Email != "" {
			reqURL += "?mailto=" + url.QueryEscape(p.Email)
		}
		if err := p.Client.GetJSON(ctx, reqURL, nil, &resp); err != nil {
			return types.Citation{}, fmt.Errorf("crossref DOI fetch: %w", err)
		}
		return crossrefFragment(resp.Message), nil
	}

	if cit.Title == "" {
		return types.Citation{}, fmt.Errorf("crossref: no DOI or title to search by")
	}

	params := url.Values{
		"query.bibliographic": {cit.Title},
		"rows":                {"1"},
	}
	if len(cit.Authors) > 0 {
		params.Set("query.author", cit.Authors[0])
	}
	if p.Email != "" {
		params.Set("mailto", p.Email)
	}

	var resp crossrefSearchResponse
	if err := p.Client.GetJSON(ctx, crossrefBase+"/works?"+params.Encode(), nil, &resp); err != nil {
		return types.Citation{}, fmt.Errorf("crossref search: %w", err)
	}
	if len(resp.Message.Items) == 0 {
		return types.Citation{}, httputil.ErrNotFound
	}
	return crossrefFragment(resp.Message.Items[0]), nil
}

// crossrefFragment maps a Crossref work to citation fields.
func crossrefFragment(w crossrefWork) types.Citation {
	frag := types.Citation{
		Volume:    w.Volume,
		Issue:     w.Issue,
		Pages:     w.Page,
		DOI:       w.DOI,
		Publisher: w.Publisher,
		URL:       w.URL,
	}
	if len(w.Title) > 0 {
		frag.Title = w.Title[0]
	}
	if len(w.ContainerTitle) > 0 {
		frag.Publication = w.ContainerTitle[0]
	}
	if len(w.ISBN) > 0 {
		frag.ISBN = strings.ReplaceAll(w.ISBN[0], "-", "")
	}
	for _, a := range w.Author {
		name := strings.TrimSpace(a.Given + " " + a.Family)
		if name != "" {
			frag.Authors = append(frag.Authors, name)
		}
	}
	if len(w.Issued.DateParts) > 0 && len(w.Issued.DateParts[0]) > 0 {
		frag.Year = w.Issued.DateParts[0][0]
	}
	return frag
}

// Crossref API JSON structures.
type crossrefWorkResponse struct {
	Message crossrefWork `json:"message"`
}

type crossrefSearchResponse struct {
	Message crossrefItems `json:"message"`
}

type crossrefItems struct {
	Items []crossrefWork `json:"items"`
}

type crossrefWork struct {
	Title          []string         `json:"title"`
	ContainerTitle []string         `json:"container-title"`
	Author         []crossrefAuthor `json:"author"`
	Issued         crossrefDate     `json:"issued"`
	Volume         string           `json:"volume"`
	Issue          string           `json:"issue"`
	Page           string           `json:"page"`
	DOI            string           `json:"DOI"`
	Publisher      string           `json:"publisher"`
	ISBN           []string         `json:"ISBN"`
	URL            string           `json:"URL"`
}

type crossrefAuthor struct {
	Given  string `json:"given"`
	Family string `json:"family"`
}

type crossrefDate struct {
	DateParts [][]int `json:"date-parts"`
}
