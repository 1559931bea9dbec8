// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package refdata holds static reference tables used during enrichment:
// publisher places, government agency names, and newspaper display names.
// Everything here resolves locally; no table requires a network call.
package refdata

import (
	"sort"
	"strings"
)

// publisherPlaces maps publisher names to their conventional place of
// publication, used when no provider returned a city.
var publisherPlaces = map[string]string{
	// US academic presses.
	"Harvard University Press":           "Cambridge, MA",
	"MIT Press":                          "Cambridge, MA",
	"Yale University Press":              "New Haven",
	"Princeton University Press":         "Princeton",
	"Stanford University Press":          "Stanford",
	"University of California Press":     "Berkeley",
	"University of Chicago Press":        "Chicago",
	"Columbia University Press":          "New York",
	"Cornell University Press":           "Ithaca",
	"University of Pennsylvania Press":   "Philadelphia",
	"Johns Hopkins University Press":     "Baltimore",
	"Duke University Press":              "Durham, NC",
	"University of North Carolina Press": "Chapel Hill",
	"University of Virginia Press":       "Charlottesville",
	"University of Michigan Press":       "Ann Arbor",
	"University of Wisconsin Press":      "Madison",
	"University of Illinois Press":       "Urbana",
	"Indiana University Press":           "Bloomington",
	"University of Texas Press":          "Austin",
	"University of Washington Press":     "Seattle",

	// UK academic presses.
	"Oxford University Press":    "Oxford",
	"Cambridge University Press": "Cambridge",
	"Routledge":                  "London",
	"Bloomsbury":                 "London",
	"Palgrave Macmillan":         "London",

	// Trade publishers.
	"Penguin":                   "New York",
	"Random House":              "New York",
	"HarperCollins":             "New York",
	"Simon & Schuster":          "New York",
	"Farrar, Straus and Giroux": "New York",
	"W. W. Norton":              "New York",
	"Knopf":                     "New York",
	"Basic Books":               "New York",
	"Free Press":                "New York",
	"Vintage":                   "New York",
	"Doubleday":                 "New York",
	"Scribner":                  "New York",
	"Little, Brown":             "Boston",
	"Beacon Press":              "Boston",
	"Houghton Mifflin":          "Boston",
}

// publisherLookupOrder holds publisherPlaces keys sorted longest-first
// so "Penguin Random House" resolves to Random House, not Penguin, and
// lookups are deterministic.
var publisherLookupOrder = func() []string {
	keys := make([]string, 0, len(publisherPlaces))
	for k := range publisherPlaces {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	return keys
}()

// ResolvePlace returns current when it is already set, otherwise the
// conventional place for the publisher. Matching is a case-insensitive
// substring check so "Penguin Books" still resolves to New York.
func ResolvePlace(publisher, current string) string {
	if current != "" {
		return current
	}
	if publisher == "" {
		return ""
	}
	lower := strings.ToLower(publisher)
	for _, name := range publisherLookupOrder {
		if strings.Contains(lower, strings.ToLower(name)) {
			return publisherPlaces[name]
		}
	}
	return ""
}

// MatchPublisher returns the known publisher name mentioned in the
// text, or "". Used by the detector's book rule.
func MatchPublisher(text string) string {
	lower := strings.ToLower(text)
	for _, name := range publisherLookupOrder {
		if strings.Contains(lower, strings.ToLower(name)) {
			return name
		}
	}
	return ""
}

// agencyDomains maps government host fragments to agency display names.
// Lookup walks fragments longest-first so "nimh.nih.gov" wins over
// "nih.gov".
var agencyDomains = map[string]string{
	"nimh.nih.gov":        "National Institute of Mental Health",
	"nida.nih.gov":        "National Institute on Drug Abuse",
	"niaid.nih.gov":       "National Institute of Allergy and Infectious Diseases",
	"nih.gov":             "National Institutes of Health",
	"cdc.gov":             "Centers for Disease Control and Prevention",
	"fda.gov":             "Food and Drug Administration",
	"epa.gov":             "Environmental Protection Agency",
	"justice.gov":         "Department of Justice",
	"state.gov":           "Department of State",
	"treasury.gov":        "Department of the Treasury",
	"defense.gov":         "Department of Defense",
	"ed.gov":              "Department of Education",
	"energy.gov":          "Department of Energy",
	"hhs.gov":             "Department of Health and Human Services",
	"dhs.gov":             "Department of Homeland Security",
	"hud.gov":             "Department of Housing and Urban Development",
	"doi.gov":             "Department of the Interior",
	"dol.gov":             "Department of Labor",
	"transportation.gov":  "Department of Transportation",
	"va.gov":              "Department of Veterans Affairs",
	"usda.gov":            "Department of Agriculture",
	"commerce.gov":        "Department of Commerce",
	"irs.gov":             "Internal Revenue Service",
	"census.gov":          "Census Bureau",
	"bls.gov":             "Bureau of Labor Statistics",
	"gao.gov":             "Government Accountability Office",
	"cbo.gov":             "Congressional Budget Office",
	"federalregister.gov": "Federal Register",
	"congress.gov":        "U.S. Congress",
	"senate.gov":          "U.S. Senate",
	"house.gov":           "U.S. House of Representatives",
	"whitehouse.gov":      "The White House",
	"sec.gov":             "Securities and Exchange Commission",
	"ftc.gov":             "Federal Trade Commission",
	"fcc.gov":             "Federal Communications Commission",
	"nasa.gov":            "National Aeronautics and Space Administration",
	"noaa.gov":            "National Oceanic and Atmospheric Administration",
	"nist.gov":            "National Institute of Standards and Technology",
	"nsf.gov":             "National Science Foundation",
	"uscis.gov":           "U.S. Citizenship and Immigration Services",
}

// agencyLookupOrder holds agencyDomains keys sorted longest-first, so
// subdomain entries are tried before their parent domains.
var agencyLookupOrder = func() []string {
	keys := make([]string, 0, len(agencyDomains))
	for k := range agencyDomains {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	return keys
}()

// AgencyForURL returns the agency display name for a government URL, or
// "" when the host is not in the table.
func AgencyForURL(url string) string {
	lower := strings.ToLower(url)
	for _, domain := range agencyLookupOrder {
		if strings.Contains(lower, domain) {
			return agencyDomains[domain]
		}
	}
	return ""
}

// newspaperNames maps newspaper domains to display names for the
// Publication field.
var newspaperNames = map[string]string{
	"nytimes.com":        "The New York Times",
	"washingtonpost.com": "The Washington Post",
	"wsj.com":            "The Wall Street Journal",
	"theguardian.com":    "The Guardian",
	"latimes.com":        "Los Angeles Times",
	"chicagotribune.com": "Chicago Tribune",
	"bostonglobe.com":    "The Boston Globe",
	"usatoday.com":       "USA Today",
	"reuters.com":        "Reuters",
	"apnews.com":         "Associated Press",
	"bloomberg.com":      "Bloomberg",
	"ft.com":             "Financial Times",
	"economist.com":      "The Economist",
	"bbc.com":            "BBC News",
	"bbc.co.uk":          "BBC News",
	"npr.org":            "NPR",
	"politico.com":       "Politico",
	"theatlantic.com":    "The Atlantic",
	"newyorker.com":      "The New Yorker",
}

// newspaperLookupOrder holds newspaperNames keys sorted longest-first,
// so overlapping domains resolve the same way on every call.
var newspaperLookupOrder = func() []string {
	keys := make([]string, 0, len(newspaperNames))
	for k := range newspaperNames {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	return keys
}()

// NewspaperForURL returns the publication display name for a newspaper
// URL, or "" when the domain is not in the table.
func NewspaperForURL(url string) string {
	lower := strings.ToLower(url)
	for _, domain := range newspaperLookupOrder {
		if strings.Contains(lower, domain) {
			return newspaperNames[domain]
		}
	}
	return ""
}
