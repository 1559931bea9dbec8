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

func TestOpenLibraryLookupByISBN(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/isbn/9780199291151.json", r.URL.Path)
		w.Write([]byte(`{
			"title": "The Selfish Gene",
			"publishers": ["Oxford University Press"],
			"publish_date": "March 16, 2006",
			"publish_places": ["Oxford"]
		}`))
	}))
	defer ts.Close()

	old := openLibraryBase
	openLibraryBase = ts.URL
	defer func() { openLibraryBase = old }()

	p := &OpenLibraryProvider{Client: testClient()}
	frag, err := p.Lookup(context.Background(), types.Citation{ISBN: "9780199291151"})
	require.NoError(t, err)

	assert.Equal(t, "The Selfish Gene", frag.Title)
	assert.Equal(t, "Oxford University Press", frag.Publisher)
	assert.Equal(t, "Oxford", frag.Place)
	assert.Equal(t, "9780199291151", frag.ISBN)
	assert.Equal(t, 2006, frag.Year)
}

func TestOpenLibrarySearchByTitle(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search.json", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "The Selfish Gene", q.Get("title"))
		assert.Equal(t, "Richard Dawkins", q.Get("author"))
		assert.Equal(t, "1", q.Get("limit"))
		w.Write([]byte(`{"docs": [{
			"title": "The Selfish Gene",
			"author_name": ["Richard Dawkins"],
			"first_publish_year": 1976,
			"publisher": ["Oxford University Press"],
			"isbn": ["9780199291151"]
		}]}`))
	}))
	defer ts.Close()

	old := openLibraryBase
	openLibraryBase = ts.URL
	defer func() { openLibraryBase = old }()

	p := &OpenLibraryProvider{Client: testClient()}
	frag, err := p.Lookup(context.Background(), types.Citation{
		Title:   "The Selfish Gene",
		Authors: []string{"Richard Dawkins"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Richard Dawkins"}, frag.Authors)
	assert.Equal(t, 1976, frag.Year)
	assert.Equal(t, "Oxford University Press", frag.Publisher)
	assert.Equal(t, "9780199291151", frag.ISBN)
}

func TestOpenLibrarySearchNoResults(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"docs": []}`))
	}))
	defer ts.Close()

	old := openLibraryBase
	openLibraryBase = ts.URL
	defer func() { openLibraryBase = old }()

	p := &OpenLibraryProvider{Client: testClient()}
	_, err := p.Lookup(context.Background(), types.Citation{Title: "nonexistent"})
	assert.ErrorIs(t, err, httputil.ErrNotFound)
}

func TestOpenLibraryNothingToSearchBy(t *testing.T) {
	p := &OpenLibraryProvider{Client: testClient()}
	_, err := p.Lookup(context.Background(), types.Citation{})
	assert.Error(t, err)
}

func TestYearFromDate(t *testing.T) {
	tests := []struct {
		date string
		want int
	}{
		{"2006-03-02", 2006},
		{"March 2, 2006", 2006},
		{"2006", 2006},
		{"n.d.", 0},
		{"", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, yearFromDate(tt.date), tt.date)
	}
}
