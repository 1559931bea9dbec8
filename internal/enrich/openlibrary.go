// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package enrich

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/caplane/citeflex/internal/httputil"
	"github.com/caplane/citeflex/pkg/types"
)

// openLibraryBase is the Open Library API root. Declared as a var so
// tests can substitute an httptest server.
var openLibraryBase = "https://openlibrary.org"

// OpenLibraryProvider resolves book metadata from Open Library. An ISBN
// on the input is a direct edition fetch; otherwise it searches by
// title and optional author.
type OpenLibraryProvider struct {
	Client *httputil.Client
}

// Name returns the provider identifier.
func (p *OpenLibraryProvider) Name() string { return "openlibrary" }

// Lookup fetches metadata for the citation.
func (p *OpenLibraryProvider) Lookup(ctx context.Context, cit types.Citation) (types.Citation, error) {
	if cit.ISBN != "" {
		var ed openLibraryEdition
		if err := p.Client.GetJSON(ctx, openLibraryBase+"/isbn/"+url.PathEscape(cit.ISBN)+".json", nil, &ed); err != nil {
			return types.Citation{}, fmt.Errorf("openlibrary ISBN fetch: %w", err)
		}
		frag := types.Citation{
			Title: ed.Title,
			ISBN:  cit.ISBN,
			Year:  yearFromDate(ed.PublishDate),
		}
		if len(ed.Publishers) > 0 {
			frag.Publisher = ed.Publishers[0]
		}
		if len(ed.PublishPlaces) > 0 {
			frag.Place = ed.PublishPlaces[0]
		}
		return frag, nil
	}

	if cit.Title == "" {
		return types.Citation{}, fmt.Errorf("openlibrary: no ISBN or title to search by")
	}

	params := url.Values{
		"title": {cit.Title},
		"limit": {"1"},
	}
	if len(cit.Authors) > 0 {
		params.Set("author", cit.Authors[0])
	}
	var resp openLibrarySearchResponse
	if err := p.Client.GetJSON(ctx, openLibraryBase+"/search.json?"+params.Encode(), nil, &resp); err != nil {
		return types.Citation{}, fmt.Errorf("openlibrary search: %w", err)
	}
	if len(resp.Docs) == 0 {
		return types.Citation{}, httputil.ErrNotFound
	}

	doc := resp.Docs[0]
	frag := types.Citation{
		Title:   doc.Title,
		Authors: doc.AuthorName,
		Year:    doc.FirstPublishYear,
	}
	if len(doc.Publisher) > 0 {
		frag.Publisher = doc.Publisher[0]
	}
	if len(doc.ISBN) > 0 {
		frag.ISBN = doc.ISBN[0]
	}
	return frag, nil
}

// yearFromDate pulls the four-digit year out of publish dates like
// "2006-03-02", "March 2, 2006" or "2006".
func yearFromDate(date string) int {
	date = strings.TrimSpace(date)
	if len(date) >= 4 {
		if y, err := strconv.Atoi(date[:4]); err == nil && y > 1000 {
			return y
		}
	}
	for _, field := range strings.Fields(date) {
		field = strings.Trim(field, ",.")
		if len(field) == 4 {
			if y, err := strconv.Atoi(field); err == nil && y > 1000 {
				return y
			}
		}
	}
	return 0
}

// Open Library API JSON structures.
type openLibraryEdition struct {
	Title         string   `json:"title"`
	Publishers    []string `json:"publishers"`
	PublishDate   string   `json:"publish_date"`
	PublishPlaces []string `json:"publish_places"`
}

type openLibrarySearchResponse struct {
	Docs []openLibraryDoc `json:"docs"`
}

type openLibraryDoc struct {
	Title            string   `json:"title"`
	AuthorName       []string `json:"author_name"`
	FirstPublishYear int      `json:"first_publish_year"`
	Publisher        []string `json:"publisher"`
	ISBN             []string `json:"isbn"`
}
