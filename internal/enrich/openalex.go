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

// openAlexBase is the OpenAlex Works endpoint. Declared as a var so
// tests can substitute an httptest server.
var openAlexBase = "https://api.openalex.org/works"

// OpenAlexProvider resolves journal metadata from OpenAlex. OpenAlex is
// DOI-centric, so a DOI input becomes a direct record fetch.
type OpenAlexProvider struct {
	Client *httputil.Client
	// Email is sent as mailto parameter for polite pool access.
	Email string
}

// Name returns the provider identifier.
func (p *OpenAlexProvider) Name() string { return "openalex" }

// Lookup fetches metadata for the citation.
func (p *OpenAlexProvider) Lookup(ctx context.Context, cit types.Citation) (types.Citation, error) {
	if cit.DOI != "" {
		reqURL := openAlexBase + "/https://doi.org/" + cit.DOI
		if p.Email != "" {
			reqURL += "?mailto=" + url.QueryEscape(p.Email)
		}
		var work openAlexWork
		if err := p.Client.GetJSON(ctx, reqURL, nil, &work); err != nil {
			return types.Citation{}, fmt.Errorf("openalex DOI fetch: %w", err)
		}
		return openAlexFragment(work), nil
	}

	if cit.Title == "" {
		return types.Citation{}, fmt.Errorf("openalex: no DOI or title to search by")
	}

	params := url.Values{
		"search":   {cit.Title},
		"per_page": {"1"},
	}
	if p.Email != "" {
		params.Set("mailto", p.Email)
	}

	var resp openAlexResponse
	if err := p.Client.GetJSON(ctx, openAlexBase+"?"+params.Encode(), nil, &resp); err != nil {
		return types.Citation{}, fmt.Errorf("openalex search: %w", err)
	}
	if len(resp.Results) == 0 {
		return types.Citation{}, httputil.ErrNotFound
	}
	return openAlexFragment(resp.Results[0]), nil
}

// openAlexFragment maps an OpenAlex work to citation fields.
func openAlexFragment(w openAlexWork) types.Citation {
	frag := types.Citation{
		Title:       w.Title,
		Publication: w.PrimaryLocation.Source.DisplayName,
		Date:        w.PublicationDate,
		Year:        w.PublicationYear,
		Volume:      w.Biblio.Volume,
		Issue:       w.Biblio.Issue,
	}
	if w.DOI != "" {
		frag.DOI = strings.TrimPrefix(w.DOI, "https://doi.org/")
	}
	if w.Biblio.FirstPage != "" {
		frag.Pages = w.Biblio.FirstPage
		if w.Biblio.LastPage != "" && w.Biblio.LastPage != w.Biblio.FirstPage {
			frag.Pages += "-" + w.Biblio.LastPage
		}
	}
	for _, a := range w.Authorships {
		if a.Author.DisplayName != "" {
			frag.Authors = append(frag.Authors, a.Author.DisplayName)
		}
	}
	return frag
}

// OpenAlex API JSON structures.
type openAlexResponse struct {
	Results []openAlexWork `json:"results"`
}

type openAlexWork struct {
	Title           string               `json:"title"`
	DOI             string               `json:"doi"`
	PublicationDate string               `json:"publication_date"`
	PublicationYear int                  `json:"publication_year"`
	Authorships     []openAlexAuthorship `json:"authorships"`
	Biblio          openAlexBiblio       `json:"biblio"`
	PrimaryLocation openAlexLocation     `json:"primary_location"`
}

type openAlexAuthorship struct {
	Author openAlexAuthor `json:"author"`
}

type openAlexAuthor struct {
	DisplayName string `json:"display_name"`
}

type openAlexBiblio struct {
	Volume    string `json:"volume"`
	Issue     string `json:"issue"`
	FirstPage string `json:"first_page"`
	LastPage  string `json:"last_page"`
}

type openAlexLocation struct {
	Source openAlexSource `json:"source"`
}

type openAlexSource struct {
	DisplayName string `json:"display_name"`
}
