// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package enrich

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/caplane/citeflex/internal/httputil"
	"github.com/caplane/citeflex/pkg/types"
)

// pubmedBase is the NCBI E-utilities root. Declared as a var so tests
// can substitute an httptest server.
var pubmedBase = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils"

// PubMedProvider resolves medical article metadata from NCBI. A PMID on
// the input goes straight to esummary; otherwise an esearch call finds
// the best-matching PMID first.
type PubMedProvider struct {
	Client *httputil.Client
}

// Name returns the provider identifier.
func (p *PubMedProvider) Name() string { return "pubmed" }

// Lookup fetches metadata for the citation.
func (p *PubMedProvider) Lookup(ctx context.Context, cit types.Citation) (types.Citation, error) {
	pmid := cit.PMID
	if pmid == "" {
		if cit.Title == "" {
			return types.Citation{}, fmt.Errorf("pubmed: no PMID or title to search by")
		}
		var err error
		pmid, err = p.search(ctx, cit.Title)
		if err != nil {
			return types.Citation{}, err
		}
	}
	return p.summary(ctx, pmid)
}

// search resolves a title to the best-matching PMID.
func (p *PubMedProvider) search(ctx context.Context, title string) (string, error) {
	params := url.Values{
		"db":      {"pubmed"},
		"term":    {title},
		"retmode": {"json"},
		"retmax":  {"1"},
	}
	var resp pubmedSearchResponse
	if err := p.Client.GetJSON(ctx, pubmedBase+"/esearch.fcgi?"+params.Encode(), nil, &resp); err != nil {
		return "", fmt.Errorf("pubmed search: %w", err)
	}
	if len(resp.ESearchResult.IDList) == 0 {
		return "", httputil.ErrNotFound
	}
	return resp.ESearchResult.IDList[0], nil
}

// summary fetches the esummary record for a PMID. The response keys
// documents by PMID, so the document is decoded in a second pass.
func (p *PubMedProvider) summary(ctx context.Context, pmid string) (types.Citation, error) {
	params := url.Values{
		"db":      {"pubmed"},
		"id":      {pmid},
		"retmode": {"json"},
	}
	var resp pubmedSummaryResponse
	if err := p.Client.GetJSON(ctx, pubmedBase+"/esummary.fcgi?"+params.Encode(), nil, &resp); err != nil {
		return types.Citation{}, fmt.Errorf("pubmed summary: %w", err)
	}

	raw, ok := resp.Result[pmid]
	if !ok {
		return types.Citation{}, httputil.ErrNotFound
	}
	var doc pubmedDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return types.Citation{}, fmt.Errorf("parsing pubmed document: %w", err)
	}

	frag := types.Citation{
		Title:       doc.Title,
		Publication: doc.FullJournalName,
		Volume:      doc.Volume,
		Issue:       doc.Issue,
		Pages:       doc.Pages,
		PMID:        pmid,
		Year:        pubmedYear(doc.PubDate),
	}
	for _, a := range doc.Authors {
		if a.Name != "" {
			frag.Authors = append(frag.Authors, a.Name)
		}
	}
	for _, id := range doc.ArticleIDs {
		if id.IDType == "doi" {
			frag.DOI = id.Value
		}
	}
	return frag, nil
}

// pubmedYear extracts the leading year from a pubdate like "2015 Jun 26".
func pubmedYear(pubdate string) int {
	if len(pubdate) < 4 {
		return 0
	}
	y := 0
	for _, r := range pubdate[:4] {
		if r < '0' || r > '9' {
			return 0
		}
		y = y*10 + int(r-'0')
	}
	return y
}

// NCBI E-utilities JSON structures.
type pubmedSearchResponse struct {
	ESearchResult pubmedSearchResult `json:"esearchresult"`
}

type pubmedSearchResult struct {
	IDList []string `json:"idlist"`
}

type pubmedSummaryResponse struct {
	Result map[string]json.RawMessage `json:"result"`
}

type pubmedDoc struct {
	Title           string            `json:"title"`
	FullJournalName string            `json:"fulljournalname"`
	Volume          string            `json:"volume"`
	Issue           string            `json:"issue"`
	Pages           string            `json:"pages"`
	PubDate         string            `json:"pubdate"`
	Authors         []pubmedAuthor    `json:"authors"`
	ArticleIDs      []pubmedArticleID `json:"articleids"`
}

type pubmedAuthor struct {
	Name string `json:"name"`
}

type pubmedArticleID struct {
	IDType string `json:"idtype"`
	Value  string `json:"value"`
}
