// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the data model shared across pipeline stages.
package types

import (
	"fmt"
	"strings"
	"time"
)

// CitationType classifies the kind of source a citation refers to.
// Assigned once by the detector; later stages never reclassify.
type CitationType string

const (
	TypeLegal      CitationType = "legal"
	TypeJournal    CitationType = "journal"
	TypeBook       CitationType = "book"
	TypeMedical    CitationType = "medical"
	TypeInterview  CitationType = "interview"
	TypeNewspaper  CitationType = "newspaper"
	TypeGovernment CitationType = "government"
	TypeUnknown    CitationType = "unknown"
)

// CitationStyle selects the rendering convention.
type CitationStyle string

const (
	StyleChicago  CitationStyle = "chicago"
	StyleAPA      CitationStyle = "apa"
	StyleMLA      CitationStyle = "mla"
	StyleBluebook CitationStyle = "bluebook"
	StyleOSCOLA   CitationStyle = "oscola"
)

// ParseStyle resolves a user-supplied style name ("Chicago Manual of
// Style", "APA 7th", "bluebook") to a CitationStyle. Matching is
// case-insensitive and accepts any string containing the style name.
func ParseStyle(name string) (CitationStyle, error) {
	lower := strings.ToLower(strings.TrimSpace(name))
	switch {
	case strings.Contains(lower, "chicago"):
		return StyleChicago, nil
	case strings.Contains(lower, "apa"):
		return StyleAPA, nil
	case strings.Contains(lower, "mla"):
		return StyleMLA, nil
	case strings.Contains(lower, "bluebook"):
		return StyleBluebook, nil
	case strings.Contains(lower, "oscola"):
		return StyleOSCOLA, nil
	}
	return "", fmt.Errorf("unknown citation style %q", name)
}

// Citation is the structured record flowing between pipeline stages.
// Raw and Type are always set; every other field is optional and must be
// consistent with Type (reporter/court only for legal, agency only for
// government, and so on).
type Citation struct {
	// Raw is the original input text, preserved verbatim.
	Raw string `json:"raw" yaml:"raw"`

	// Type is the detected citation type.
	Type CitationType `json:"type" yaml:"type"`

	// Authors lists author display names in source order.
	Authors []string `json:"authors,omitempty" yaml:"authors,omitempty"`

	// Title is the work's title (article, book, or document title).
	Title string `json:"title,omitempty" yaml:"title,omitempty"`

	// Publication is the container: journal, newspaper, or site name.
	Publication string `json:"publication,omitempty" yaml:"publication,omitempty"`

	// Year is the publication year (0 when unknown).
	Year int `json:"year,omitempty" yaml:"year,omitempty"`

	// Date is the full publication date in YYYY-MM-DD form where known.
	Date string `json:"date,omitempty" yaml:"date,omitempty"`

	Volume string `json:"volume,omitempty" yaml:"volume,omitempty"`
	Issue  string `json:"issue,omitempty" yaml:"issue,omitempty"`
	Pages  string `json:"pages,omitempty" yaml:"pages,omitempty"`

	Publisher string `json:"publisher,omitempty" yaml:"publisher,omitempty"`
	Place     string `json:"place,omitempty" yaml:"place,omitempty"`
	Edition   string `json:"edition,omitempty" yaml:"edition,omitempty"`
	ISBN      string `json:"isbn,omitempty" yaml:"isbn,omitempty"`

	DOI  string `json:"doi,omitempty" yaml:"doi,omitempty"`
	PMID string `json:"pmid,omitempty" yaml:"pmid,omitempty"`
	URL  string `json:"url,omitempty" yaml:"url,omitempty"`

	// AccessedDate is when a web source was retrieved (YYYY-MM-DD).
	AccessedDate string `json:"accessed_date,omitempty" yaml:"accessed_date,omitempty"`

	// Legal fields.
	CaseName string `json:"case_name,omitempty" yaml:"case_name,omitempty"`
	// Reporter is the reporter series abbreviation, e.g. "U.S." or "F.3d".
	Reporter string `json:"reporter,omitempty" yaml:"reporter,omitempty"`
	Court    string `json:"court,omitempty" yaml:"court,omitempty"`
	// Jurisdiction is "US" or "UK".
	Jurisdiction string `json:"jurisdiction,omitempty" yaml:"jurisdiction,omitempty"`
	// NeutralCitation holds a UK neutral citation, e.g. "[2020] UKSC 1".
	NeutralCitation string `json:"neutral_citation,omitempty" yaml:"neutral_citation,omitempty"`
	// Pincite is a page reference within the cited source.
	Pincite string `json:"pincite,omitempty" yaml:"pincite,omitempty"`

	// Interview fields.
	Interviewee string `json:"interviewee,omitempty" yaml:"interviewee,omitempty"`
	Interviewer string `json:"interviewer,omitempty" yaml:"interviewer,omitempty"`

	// Government fields.
	Agency string `json:"agency,omitempty" yaml:"agency,omitempty"`
}

// ReporterCite returns the volume-reporter-page citation string
// ("347 U.S. 483"), or "" when the legal fields are incomplete.
func (c Citation) ReporterCite() string {
	if c.Volume == "" || c.Reporter == "" || c.Pages == "" {
		return ""
	}
	return c.Volume + " " + c.Reporter + " " + c.Pages
}

// Key returns a stable identifier for the underlying work, used to decide
// whether two citations refer to the same source. Priority: DOI, then
// URL, then case name, then title plus first author. Returns "" when no
// identifying field is populated.
func (c Citation) Key() string {
	if c.DOI != "" {
		return "doi:" + strings.ToLower(strings.TrimPrefix(c.DOI, "https://doi.org/"))
	}
	if c.URL != "" {
		u := strings.ToLower(strings.TrimRight(c.URL, "/"))
		if i := strings.Index(u, "?"); i >= 0 {
			u = u[:i]
		}
		return "url:" + u
	}
	if c.CaseName != "" {
		return "case:" + normalizeKeyPart(c.CaseName)
	}
	if c.Title != "" {
		key := "title:" + normalizeKeyPart(c.Title)
		if len(c.Authors) > 0 {
			key += "|author:" + normalizeKeyPart(c.Authors[0])
		}
		return key
	}
	return ""
}

// SameSource reports whether two citations refer to the same work.
func (c Citation) SameSource(other Citation) bool {
	k1, k2 := c.Key(), other.Key()
	return k1 != "" && k1 == k2
}

// HasMinimumData reports whether the record carries enough fields to be
// worth formatting beyond the raw text.
func (c Citation) HasMinimumData() bool {
	switch c.Type {
	case TypeLegal:
		return c.CaseName != "" || c.ReporterCite() != "" || c.NeutralCitation != ""
	case TypeInterview:
		return c.Interviewee != ""
	default:
		return c.Title != "" || c.URL != ""
	}
}

func normalizeKeyPart(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// LookupResult records the outcome of one external provider call. It
// lives only for the enrichment call that created it.
type LookupResult struct {
	// Provider is the connector name ("crossref", "pubmed", ...).
	Provider string

	// Fragment holds whatever fields the provider resolved.
	Fragment Citation

	// OK is true when the provider returned a usable fragment.
	OK bool

	// Latency is the wall time the call took.
	Latency time.Duration

	// Err describes the failure when OK is false.
	Err error
}

// FormattedCitation is the formatter's output.
type FormattedCitation struct {
	// Style is the style that produced Text.
	Style CitationStyle `json:"style"`

	// Text is the rendered citation, with <i> markers around italicized
	// spans.
	Text string `json:"text"`

	// Shorthand is true when Text is an "Id."/"Ibid." substitution for
	// the immediately preceding citation.
	Shorthand bool `json:"shorthand"`
}
