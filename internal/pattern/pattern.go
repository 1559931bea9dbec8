// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pattern holds the recognition rules the type detector applies:
// reporter-citation shapes, Westlaw identifiers, case-name forms, domain
// and keyword lists, URL date patterns, and identifier shapes (DOI, ISBN,
// PMID). The rule set is immutable after construction.
package pattern

import (
	"regexp"
	"strings"
)

// Reporters is the closed set of reporter series abbreviations recognized
// in volume-reporter-page citations. Ordered longest-first so that more
// specific series ("F. Supp. 2d") match before their prefixes ("F.").
var Reporters = []string{
	"F. Supp. 3d", "F. Supp. 2d", "F. Supp.",
	"F.4th", "F.3d", "F.2d", "F.",
	"S. Ct.", "U.S.",
	"A.3d", "A.2d", "A.",
	"P.3d", "P.2d", "P.",
	"N.E.3d", "N.E.2d", "N.W.2d",
	"S.E.2d", "S.W.3d", "S.W.2d",
	"So. 3d", "So. 2d",
	"Cal. App. 3d", "Cal. 3d", "Cal.",
	"N.Y.2d", "N.Y.",
	"Va.", "Mich.", "Mass.", "N.H.", "N.J.",
}

// MedicalDomains lists clinical and biomedical domains that override the
// generic government rule. Many of these sit on .gov; they must be
// claimed by Medical before the Government rule runs.
var MedicalDomains = []string{
	"pubmed.ncbi.nlm.nih.gov",
	"ncbi.nlm.nih.gov",
	"pubmed",
	"nimh.nih.gov",
	"nida.nih.gov",
	"niaid.nih.gov",
	"medlineplus.gov",
	"medlineplus",
	"nih.gov/health",
	"clinicaltrials.gov",
	"who.int",
	"thelancet.com",
	"nejm.org",
	"bmj.com",
	"jamanetwork.com",
}

// NewspaperDomains lists domain keywords that mark a URL as a newspaper
// or news-wire source.
var NewspaperDomains = []string{
	"nytimes.com",
	"washingtonpost.com",
	"wsj.com",
	"theguardian.com",
	"latimes.com",
	"chicagotribune.com",
	"bostonglobe.com",
	"usatoday.com",
	"reuters.com",
	"apnews.com",
	"bloomberg.com",
	"ft.com",
	"economist.com",
	"bbc.com",
	"bbc.co.uk",
	"npr.org",
	"politico.com",
	"theatlantic.com",
	"newyorker.com",
}

// AgencyKeywords marks named-agency phrasing in non-URL text as a
// government source.
var AgencyKeywords = []string{
	"department of",
	"bureau of",
	"environmental protection agency",
	"federal register",
	"general accounting office",
	"government accountability office",
	"congressional budget office",
	"census bureau",
	"internal revenue service",
	"u.s. congress",
	"house of representatives",
	"u.s. senate",
}

// LegalDomains marks URLs hosted by case-law services as legal sources.
var LegalDomains = []string{
	"courtlistener.com",
	"oyez.org",
	"case.law",
	"justia.com",
	"supremecourt.gov",
	"law.cornell.edu",
	"findlaw.com",
}

var (
	reporterRe  *regexp.Regexp
	westlawRe   = regexp.MustCompile(`\b(\d{4})\s+WL\s+(\d+)\b`)
	caseNameRe  = regexp.MustCompile(`^(.{2,}?)\s+(?:v|vs|versus)\.?\s+(.+)$`)
	ukNeutralRe = regexp.MustCompile(`\[(\d{4})\]\s+([A-Za-z]+(?:\s+[A-Za-z]+)?)\s+(\d+)`)

	// Generic reporter shape for series outside the closed set, e.g.
	// "66 Mich. 568". Single capitalized token with trailing period and
	// optional series ordinal.
	genericReporterRe = regexp.MustCompile(`^\s*(\d+)\s+([A-Z][A-Za-z.]*\.(?:\s?[23]d)?)\s+(\d+)\s*$`)

	urlDateRes = []*regexp.Regexp{
		regexp.MustCompile(`/(\d{4})/(\d{2})/(\d{2})/`),
		regexp.MustCompile(`/(?:story/)?(\d{4})-(\d{2})-(\d{2})(?:/|$)`),
	}

	interviewRe    = regexp.MustCompile(`(?i)^interview with\s+([^,]+)`)
	personalCommRe = regexp.MustCompile(`(?i)\bpersonal communication\b`)

	doiRe  = regexp.MustCompile(`\b(10\.\d{4,9}/[^\s"<>]+)`)
	pmidRe = regexp.MustCompile(`(?i)\b(?:pmid|pubmed)[:\s]*(\d{6,9})\b`)
	isbnRe = regexp.MustCompile(`\b(?:ISBN[-:\s]*)?((?:97[89][-\s]?)?(?:\d[-\s]?){9}[\dX])\b`)

	// <Author>, "Title," <Journal> <volume> (<year>)
	journalShapeRe = regexp.MustCompile(`^(.+?),\s*[“"]([^”"]+?)[,.]?[”"],?\s+(.+?)\s+(\d+)\s*\((\d{4})\)`)

	// <Author>, <Title> (<Place>: <Publisher>, <year>)
	bookShapeRe = regexp.MustCompile(`^(.+?),\s+(.+?)\s+\(([^:()]+):\s*([^,()]+),\s*(\d{4})\)`)

	parenYearRe = regexp.MustCompile(`\((\d{4})\)`)

	urlRe = regexp.MustCompile(`(?i)^(?:https?://|www\.)`)
)

func init() {
	alts := make([]string, len(Reporters))
	for i, r := range Reporters {
		alts[i] = regexp.QuoteMeta(r)
	}
	reporterRe = regexp.MustCompile(`\b(\d+)\s+(` + strings.Join(alts, "|") + `)\s+(\d+)\b`)
}

// IsURL reports whether the string looks like a web address.
func IsURL(s string) bool {
	return urlRe.MatchString(strings.TrimSpace(s))
}

// MatchReporter extracts a volume-reporter-page citation from s using the
// closed reporter set, falling back to the generic single-token shape.
func MatchReporter(s string) (volume, reporter, page string, ok bool) {
	if m := reporterRe.FindStringSubmatch(s); m != nil {
		return m[1], m[2], m[3], true
	}
	if m := genericReporterRe.FindStringSubmatch(s); m != nil {
		return m[1], m[2], m[3], true
	}
	return "", "", "", false
}

// MatchWestlaw extracts a Westlaw identifier ("2024 WL 123456").
func MatchWestlaw(s string) (year, number string, ok bool) {
	if m := westlawRe.FindStringSubmatch(s); m != nil {
		return m[1], m[2], true
	}
	return "", "", false
}

// MatchCaseName splits "<Party> v. <Party>" input into its parties. The
// second party keeps any trailing citation text; callers strip it.
func MatchCaseName(s string) (plaintiff, defendant string, ok bool) {
	if m := caseNameRe.FindStringSubmatch(strings.TrimSpace(s)); m != nil {
		return strings.TrimSpace(m[1]), strings.TrimSpace(m[2]), true
	}
	return "", "", false
}

// MatchUKNeutral extracts a UK neutral citation ("[2020] UKSC 1").
func MatchUKNeutral(s string) (year, court, number string, ok bool) {
	if m := ukNeutralRe.FindStringSubmatch(s); m != nil {
		return m[1], strings.ToUpper(m[2]), m[3], true
	}
	return "", "", "", false
}

// IsMedical reports whether s mentions a domain from the medical list.
// Checked before the generic government rule, so medical .gov hosts
// never classify as Government.
func IsMedical(s string) bool {
	lower := strings.ToLower(s)
	for _, d := range MedicalDomains {
		if strings.Contains(lower, d) {
			return true
		}
	}
	return false
}

// IsGovernment reports whether s carries a .gov/.mil domain or a named
// agency keyword. Medical matches are expected to have been claimed
// already.
func IsGovernment(s string) bool {
	lower := strings.ToLower(s)
	if strings.Contains(lower, ".gov") || strings.Contains(lower, ".mil") {
		return true
	}
	for _, kw := range AgencyKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// IsNewspaper reports whether s mentions a known newspaper domain.
func IsNewspaper(s string) bool {
	lower := strings.ToLower(s)
	for _, d := range NewspaperDomains {
		if strings.Contains(lower, d) {
			return true
		}
	}
	return false
}

// IsLegalDomain reports whether s points at a case-law service.
func IsLegalDomain(s string) bool {
	lower := strings.ToLower(s)
	for _, d := range LegalDomains {
		if strings.Contains(lower, d) {
			return true
		}
	}
	return false
}

// MatchURLDate extracts an article date from a URL path. Recognizes
// /YYYY/MM/DD/, /YYYY-MM-DD/ and /story/YYYY-MM-DD/ forms. Returns the
// date in YYYY-MM-DD form.
func MatchURLDate(s string) (date string, ok bool) {
	for _, re := range urlDateRes {
		if m := re.FindStringSubmatch(s); m != nil {
			return m[1] + "-" + m[2] + "-" + m[3], true
		}
	}
	return "", false
}

// MatchInterview recognizes "Interview with <Name>" and "personal
// communication" phrasing. The returned name may be empty for the
// personal-communication form.
func MatchInterview(s string) (interviewee string, ok bool) {
	if m := interviewRe.FindStringSubmatch(strings.TrimSpace(s)); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	if personalCommRe.MatchString(s) {
		return "", true
	}
	return "", false
}

// FindDOI returns the first DOI in s, stripped of trailing punctuation,
// or "".
func FindDOI(s string) string {
	if m := doiRe.FindStringSubmatch(s); m != nil {
		return strings.TrimRight(m[1], ".,;")
	}
	return ""
}

// FindPMID returns an explicit PubMed identifier ("PMID: 12345678"), or "".
func FindPMID(s string) string {
	if m := pmidRe.FindStringSubmatch(s); m != nil {
		return m[1]
	}
	return ""
}

// FindISBN returns the first ISBN-shaped token in s with separators
// stripped, or "". Only 10- and 13-digit forms are accepted.
func FindISBN(s string) string {
	for _, m := range isbnRe.FindAllStringSubmatch(s, -1) {
		clean := strings.Map(func(r rune) rune {
			if r == '-' || r == ' ' {
				return -1
			}
			return r
		}, m[1])
		if len(clean) == 10 || len(clean) == 13 {
			return strings.ToUpper(clean)
		}
	}
	return ""
}

// MatchJournalShape recognizes the textual journal-article form
// `Author, "Title," Journal <volume> (<year>)`.
func MatchJournalShape(s string) (authors, title, journal, volume, year string, ok bool) {
	if m := journalShapeRe.FindStringSubmatch(strings.TrimSpace(s)); m != nil {
		return m[1], m[2], m[3], m[4], m[5], true
	}
	return "", "", "", "", "", false
}

// MatchBookShape recognizes the bibliographic book form
// `Author, Title (Place: Publisher, <year>)`.
func MatchBookShape(s string) (authors, title, place, publisher, year string, ok bool) {
	if m := bookShapeRe.FindStringSubmatch(strings.TrimSpace(s)); m != nil {
		return m[1], m[2], strings.TrimSpace(m[3]), strings.TrimSpace(m[4]), m[5], true
	}
	return "", "", "", "", "", false
}

// FindParenYear returns the first parenthesized four-digit year in s,
// or 0.
func FindParenYear(s string) int {
	if m := parenYearRe.FindStringSubmatch(s); m != nil {
		y := 0
		for _, r := range m[1] {
			y = y*10 + int(r-'0')
		}
		return y
	}
	return 0
}
