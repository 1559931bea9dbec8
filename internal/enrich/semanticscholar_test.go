// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package enrich

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caplane/citeflex/internal/httputil"
	"github.com/caplane/citeflex/pkg/types"
)

func TestSemanticScholarLookupByDOI(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/DOI:10.1038%2Fnphys1170", r.URL.EscapedPath())
		assert.Contains(t, r.URL.Query().Get("fields"), "externalIds")
		assert.Equal(t, "sk_test", r.Header.Get("X-Api-Key"))
		w.Write([]byte(`{
			"title": "Measured measurement",
			"venue": "Nature Physics",
			"year": 2009,
			"authors": [{"name": "Markus Aspelmeyer"}],
			"journal": {"name": "Nature Physics", "volume": "5", "pages": "11-12"},
			"externalIds": {"DOI": "10.1038/nphys1170", "PubMed": "12345678"}
		}`))
	}))
	defer ts.Close()

	old := semanticScholarBase
	semanticScholarBase = ts.URL
	defer func() { semanticScholarBase = old }()

	p := &SemanticScholarProvider{Client: testClient(), APIKey: "sk_test"}
	frag, err := p.Lookup(context.Background(), types.Citation{DOI: "10.1038/nphys1170"})
	require.NoError(t, err)

	assert.Equal(t, "Measured measurement", frag.Title)
	assert.Equal(t, "Nature Physics", frag.Publication)
	assert.Equal(t, []string{"Markus Aspelmeyer"}, frag.Authors)
	assert.Equal(t, 2009, frag.Year)
	assert.Equal(t, "5", frag.Volume)
	assert.Equal(t, "11-12", frag.Pages)
	assert.Equal(t, "10.1038/nphys1170", frag.DOI)
	assert.Equal(t, "12345678", frag.PMID)
}

func TestSemanticScholarLookupByPMID(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/PMID:26414579", r.URL.Path)
		// No API key configured means no auth header.
		assert.Empty(t, r.Header.Get("X-Api-Key"))
		w.Write([]byte(`{
			"title": "Global life expectancy",
			"venue": "",
			"year": 2015,
			"journal": {"name": "The Lancet", "volume": "386"}
		}`))
	}))
	defer ts.Close()

	old := semanticScholarBase
	semanticScholarBase = ts.URL
	defer func() { semanticScholarBase = old }()

	p := &SemanticScholarProvider{Client: testClient()}
	frag, err := p.Lookup(context.Background(), types.Citation{PMID: "26414579"})
	require.NoError(t, err)
	// An empty venue falls back to the journal name.
	assert.Equal(t, "The Lancet", frag.Publication)
	assert.Equal(t, "386", frag.Volume)
}

func TestSemanticScholarSearchByTitle(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "A Mathematical Theory of Communication", q.Get("query"))
		assert.Equal(t, "1", q.Get("limit"))
		assert.Equal(t, semanticScholarFields, q.Get("fields"))
		w.Write([]byte(`{"data": [{
			"title": "A Mathematical Theory of Communication",
			"venue": "Bell System Technical Journal",
			"year": 1948,
			"authors": [{"name": "C. E. Shannon"}]
		}]}`))
	}))
	defer ts.Close()

	old := semanticScholarBase
	semanticScholarBase = ts.URL
	defer func() { semanticScholarBase = old }()

	p := &SemanticScholarProvider{Client: testClient()}
	frag, err := p.Lookup(context.Background(), types.Citation{
		Title: "A Mathematical Theory of Communication",
	})
	require.NoError(t, err)
	assert.Equal(t, "Bell System Technical Journal", frag.Publication)
	assert.Equal(t, []string{"C. E. Shannon"}, frag.Authors)
}

func TestSemanticScholarSearchNoResults(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"data": []}`))
	}))
	defer ts.Close()

	old := semanticScholarBase
	semanticScholarBase = ts.URL
	defer func() { semanticScholarBase = old }()

	p := &SemanticScholarProvider{Client: testClient()}
	_, err := p.Lookup(context.Background(), types.Citation{Title: "nonexistent"})
	assert.ErrorIs(t, err, httputil.ErrNotFound)
}

func TestSemanticScholarNothingToSearchBy(t *testing.T) {
	p := &SemanticScholarProvider{Client: testClient()}
	_, err := p.Lookup(context.Background(), types.Citation{})
	assert.Error(t, err)
}
