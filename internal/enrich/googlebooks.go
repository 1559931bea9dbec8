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

// googleBooksBase is the Google Books volumes endpoint. Declared as a
// var so tests can substitute an httptest server.
var googleBooksBase = "https://www.googleapis.com/books/v1/volumes"

// GoogleBooksProvider resolves book metadata from the Google Books API.
type GoogleBooksProvider struct {
	Client *httputil.Client
}

// Name returns the provider identifier.
func (p *GoogleBooksProvider) Name() string { return "googlebooks" }

// Lookup fetches metadata for the citation.
func (p *GoogleBooksProvider) Lookup(ctx context.Context, cit types.Citation) (types.Citation, error) {
	var q string
	switch {
	case cit.ISBN != "":
		q = "isbn:" + cit.ISBN
	case cit.Title != "":
		q = "intitle:" + cit.Title
		if len(cit.Authors) > 0 {
			q += " inauthor:" + cit.Authors[0]
		}
	default:
		return types.Citation{}, fmt.Errorf("googlebooks: no ISBN or title to search by")
	}

	params := url.Values{
		"q":          {q},
		"maxResults": {"1"},
	}
	var resp googleBooksResponse
	if err := p.Client.GetJSON(ctx, googleBooksBase+"?"+params.Encode(), nil, &resp); err != nil {
		return types.Citation{}, fmt.Errorf("googlebooks search: %w", err)
	}
	if len(resp.Items) == 0 {
		return types.Citation{}, httputil.ErrNotFound
	}

	info := resp.Items[0].VolumeInfo
	frag := types.Citation{
		Title:     info.Title,
		Authors:   info.Authors,
		Publisher: info.Publisher,
		Year:      yearFromDate(info.PublishedDate),
	}
	if info.Subtitle != "" {
		frag.Title = info.Title + ": " + info.Subtitle
	}
	if strings.Count(info.PublishedDate, "-") == 2 {
		frag.Date = info.PublishedDate
	}
	for _, id := range resp.Items[0].VolumeInfo.IndustryIdentifiers {
		if id.Type == "ISBN_13" {
			frag.ISBN = id.Identifier
			break
		}
		if id.Type == "ISBN_10" && frag.ISBN == "" {
			frag.ISBN = id.Identifier
		}
	}
	return frag, nil
}

// Google Books API JSON structures.
type googleBooksResponse struct {
	Items []googleBooksItem `json:"items"`
}

type googleBooksItem struct {
	VolumeInfo googleBooksVolumeInfo `json:"volumeInfo"`
}

type googleBooksVolumeInfo struct {
	Title               string          `json:"title"`
	Subtitle            string          `json:"subtitle"`
	Authors             []string        `json:"authors"`
	Publisher           string          `json:"publisher"`
	PublishedDate       string          `json:"publishedDate"`
	IndustryIdentifiers []googleBooksID `json:"industryIdentifiers"`
}

type googleBooksID struct {
	Type       string `json:"type"`
	Identifier string `json:"identifier"`
}
