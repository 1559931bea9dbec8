// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package detect assigns exactly one citation type to a raw input string
// and parses whatever structured fields the text itself carries. Rules
// run in a fixed precedence order; the first matching rule wins, and
// unmatched input degrades to the unknown type rather than failing.
package detect

import (
	"regexp"
	"strings"

	"github.com/caplane/citeflex/internal/landmark"
	"github.com/caplane/citeflex/internal/pattern"
	"github.com/caplane/citeflex/internal/refdata"
	"github.com/caplane/citeflex/pkg/types"
)

// Detector classifies raw citation strings. It holds only immutable
// collaborators, so one Detector is safe for concurrent use.
type Detector struct {
	landmarks *landmark.Cache
}

// New returns a Detector backed by the given landmark cache.
func New(lm *landmark.Cache) *Detector {
	return &Detector{landmarks: lm}
}

var (
	pubmedURLRe = regexp.MustCompile(`(?i)pubmed(?:\.ncbi\.nlm\.nih\.gov)?/(\d{1,9})`)

	// Pincite immediately after a reporter cite: "576 U.S. 644, 652".
	pinciteRe = regexp.MustCompile(`^,\s*(\d+(?:[-–]\d+)?)`)
)

// Type classifies raw without parsing fields.
func (d *Detector) Type(raw string) types.CitationType {
	return d.Detect(raw).Type
}

// Detect classifies raw and returns a partially parsed citation. The
// result always has Raw set verbatim and Type set; every other field is
// best effort. Empty or whitespace-only input yields the unknown type.
func (d *Detector) Detect(raw string) types.Citation {
	cit := types.Citation{Raw: raw, Type: types.TypeUnknown}
	s := strings.TrimSpace(raw)
	if s == "" {
		return cit
	}
	if pattern.IsURL(s) {
		return d.detectURL(cit, s)
	}
	return d.detectText(cit, s)
}

// detectURL classifies by domain. Medical runs before the generic
// government rule so clinical .gov hosts never classify as Government.
func (d *Detector) detectURL(cit types.Citation, s string) types.Citation {
	cit.URL = s
	if !strings.HasPrefix(strings.ToLower(s), "http") {
		cit.URL = "https://" + s
	}
	switch {
	case pattern.IsLegalDomain(s):
		cit.Type = types.TypeLegal
	case pattern.IsMedical(s):
		cit.Type = types.TypeMedical
		if m := pubmedURLRe.FindStringSubmatch(s); m != nil {
			cit.PMID = m[1]
		}
	case pattern.IsGovernment(s):
		cit.Type = types.TypeGovernment
		cit.Agency = refdata.AgencyForURL(s)
	case pattern.IsNewspaper(s):
		cit.Type = types.TypeNewspaper
		cit.Publication = refdata.NewspaperForURL(s)
		if date, ok := pattern.MatchURLDate(s); ok {
			cit.Date = date
			cit.Year = yearOf(date)
		}
	default:
		// A dated article path marks a newspaper even off the known
		// domain list.
		if date, ok := pattern.MatchURLDate(s); ok {
			cit.Type = types.TypeNewspaper
			cit.Date = date
			cit.Year = yearOf(date)
		} else if doi := pattern.FindDOI(s); doi != "" {
			cit.Type = types.TypeJournal
			cit.DOI = doi
		}
	}
	return cit
}

func (d *Detector) detectText(cit types.Citation, s string) types.Citation {
	// Legal.
	if hit, ok := d.landmarks.Lookup(s); ok {
		hit.Raw = cit.Raw
		return hit
	}
	if vol, rep, page, ok := pattern.MatchReporter(s); ok {
		return d.legalFromReporter(cit, s, vol, rep, page)
	}
	if year, number, ok := pattern.MatchWestlaw(s); ok {
		cit.Type = types.TypeLegal
		cit.Jurisdiction = "US"
		cit.Volume, cit.Reporter, cit.Pages = year, "WL", number
		if name, rest, ok := pattern.MatchCaseName(s); ok {
			cit.CaseName = caseNameOf(name, rest)
		}
		return cit
	}
	if year, court, number, ok := pattern.MatchUKNeutral(s); ok {
		cit.Type = types.TypeLegal
		cit.Jurisdiction = "UK"
		cit.NeutralCitation = "[" + year + "] " + court + " " + number
		cit.Year = atoi(year)
		if name, rest, ok := pattern.MatchCaseName(s); ok {
			cit.CaseName = caseNameOf(name, rest)
		}
		return cit
	}
	if name, rest, ok := pattern.MatchCaseName(s); ok {
		cit.Type = types.TypeLegal
		cit.Jurisdiction = "US"
		cit.CaseName = caseNameOf(name, rest)
		if hit, ok := d.landmarks.Lookup(cit.CaseName); ok {
			hit.Raw = cit.Raw
			return hit
		}
		if y := pattern.FindParenYear(s); y > 0 {
			cit.Year = y
		}
		return cit
	}

	// Medical.
	if pmid := pattern.FindPMID(s); pmid != "" {
		cit.Type = types.TypeMedical
		cit.PMID = pmid
		return cit
	}
	if pattern.IsMedical(s) {
		cit.Type = types.TypeMedical
		return cit
	}

	// Government.
	if pattern.IsGovernment(s) {
		cit.Type = types.TypeGovernment
		cit.Agency = refdata.AgencyForURL(s)
		if y := pattern.FindParenYear(s); y > 0 {
			cit.Year = y
		}
		return cit
	}

	// Newspaper.
	if pattern.IsNewspaper(s) {
		cit.Type = types.TypeNewspaper
		cit.Publication = refdata.NewspaperForURL(s)
		return cit
	}

	// Interview.
	if who, ok := pattern.MatchInterview(s); ok {
		cit.Type = types.TypeInterview
		cit.Interviewee = who
		if y := pattern.FindParenYear(s); y > 0 {
			cit.Year = y
		}
		return cit
	}

	// Journal.
	if doi := pattern.FindDOI(s); doi != "" {
		cit.Type = types.TypeJournal
		cit.DOI = doi
		if authors, title, journal, volume, year, ok := pattern.MatchJournalShape(s); ok {
			fillJournal(&cit, authors, title, journal, volume, year)
		}
		return cit
	}
	if authors, title, journal, volume, year, ok := pattern.MatchJournalShape(s); ok {
		cit.Type = types.TypeJournal
		fillJournal(&cit, authors, title, journal, volume, year)
		return cit
	}

	// Book.
	if authors, title, place, publisher, year, ok := pattern.MatchBookShape(s); ok {
		cit.Type = types.TypeBook
		cit.Authors = splitAuthors(authors)
		cit.Title = strings.TrimSpace(title)
		cit.Place = place
		cit.Publisher = publisher
		cit.Year = atoi(year)
		return cit
	}
	if isbn := pattern.FindISBN(s); isbn != "" {
		cit.Type = types.TypeBook
		cit.ISBN = isbn
		return cit
	}
	if pub := refdata.MatchPublisher(s); pub != "" {
		cit.Type = types.TypeBook
		cit.Publisher = pub
		cit.Place = refdata.ResolvePlace(pub, "")
		if y := pattern.FindParenYear(s); y > 0 {
			cit.Year = y
		}
		return cit
	}

	return cit
}

// legalFromReporter builds a legal citation around a matched
// volume-reporter-page cite, pulling out the case name before the cite,
// a pincite after it, and a trailing parenthesized year. A bare reporter
// cite with no case name still classifies as Legal.
func (d *Detector) legalFromReporter(cit types.Citation, s, vol, rep, page string) types.Citation {
	cit.Type = types.TypeLegal
	cit.Jurisdiction = "US"
	cit.Volume, cit.Reporter, cit.Pages = vol, rep, page

	cite := vol + " " + rep + " " + page
	if idx := strings.Index(s, cite); idx >= 0 {
		name := strings.TrimRight(strings.TrimSpace(s[:idx]), ",")
		if name != "" {
			cit.CaseName = name
		}
		if m := pinciteRe.FindStringSubmatch(s[idx+len(cite):]); m != nil {
			cit.Pincite = m[1]
		}
	}
	if y := pattern.FindParenYear(s); y > 0 {
		cit.Year = y
	}
	if cit.CaseName != "" {
		if hit, ok := d.landmarks.Lookup(cit.CaseName); ok {
			if hit.Court != "" {
				cit.Court = hit.Court
			}
			if cit.Year == 0 {
				cit.Year = hit.Year
			}
		}
	}
	return cit
}

// caseNameOf rejoins the two parties and strips any trailing citation
// text from the second party.
func caseNameOf(plaintiff, rest string) string {
	defendant := rest
	for _, sep := range []string{",", " [", " ("} {
		if i := strings.Index(defendant, sep); i >= 0 {
			defendant = defendant[:i]
		}
	}
	return strings.TrimSpace(plaintiff) + " v. " + strings.TrimSpace(defendant)
}

func fillJournal(cit *types.Citation, authors, title, journal, volume, year string) {
	cit.Authors = splitAuthors(authors)
	cit.Title = strings.TrimSpace(title)
	cit.Publication = strings.TrimSpace(journal)
	cit.Volume = volume
	cit.Year = atoi(year)
}

// splitAuthors splits "A. One, B. Two and C. Three" into display names.
func splitAuthors(s string) []string {
	s = strings.ReplaceAll(s, " and ", ", ")
	s = strings.ReplaceAll(s, " & ", ", ")
	var out []string
	for _, part := range strings.Split(s, ", ") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// yearOf extracts the year from a YYYY-MM-DD date string.
func yearOf(date string) int {
	if len(date) < 4 {
		return 0
	}
	return atoi(date[:4])
}

func atoi(s string) int {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0
		}
		n = n*10 + int(r-'0')
	}
	return n
}
