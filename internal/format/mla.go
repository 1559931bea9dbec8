// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package format

import (
	"strings"
	"time"

	"github.com/caplane/citeflex/pkg/types"
)

// MLA (9th ed.) works-cited form.

// mlaAuthors renders "Last, First", two as "Last, First, and First
// Last", three or more as "Last, First, et al."
func mlaAuthors(authors []string) string {
	if len(authors) == 0 {
		return ""
	}
	given, family := splitName(authors[0])
	first := family
	if given != "" {
		first = family + ", " + given
	}
	switch len(authors) {
	case 1:
		return first
	case 2:
		return first + ", and " + authors[1]
	default:
		return first + ", et al."
	}
}

// mlaJournal renders
// `Author. "Title." Journal, vol. 12, no. 3, 2015, pp. 44-59.`
func mlaJournal(c types.Citation) string {
	var parts []string
	if a := mlaAuthors(c.Authors); a != "" {
		parts = append(parts, ensurePeriod(a))
	}
	if c.Title != "" {
		parts = append(parts, `"`+ensurePeriod(c.Title)+`"`)
	}
	var tail []string
	if c.Publication != "" {
		tail = append(tail, ital(c.Publication))
	}
	if c.Volume != "" {
		tail = append(tail, "vol. "+c.Volume)
	}
	if c.Issue != "" {
		tail = append(tail, "no. "+c.Issue)
	}
	if y := yearString(c); y != "" {
		tail = append(tail, y)
	}
	if c.Pages != "" {
		tail = append(tail, "pp. "+c.Pages)
	}
	if len(tail) > 0 {
		parts = append(parts, ensurePeriod(strings.Join(tail, ", ")))
	}
	if c.DOI != "" {
		parts = append(parts, "https://doi.org/"+c.DOI)
	}
	return ensurePeriod(strings.Join(parts, " "))
}

// mlaBook renders `Author. Title. Edition, Publisher, Year.`
func mlaBook(c types.Citation) string {
	var parts []string
	if a := mlaAuthors(c.Authors); a != "" {
		parts = append(parts, ensurePeriod(a))
	}
	if c.Title != "" {
		parts = append(parts, ensurePeriod(ital(c.Title)))
	}
	if tail := joinClean(", ", c.Edition, c.Publisher, yearString(c)); tail != "" {
		parts = append(parts, ensurePeriod(tail))
	}
	return ensurePeriod(strings.Join(parts, " "))
}

// mlaLegal renders `Case Name. Citation. Court, Year.`
func mlaLegal(c types.Citation) string {
	var parts []string
	if c.CaseName != "" {
		parts = append(parts, ensurePeriod(ital(c.CaseName)))
	}
	if cite := legalCite(c); cite != "" {
		parts = append(parts, ensurePeriod(cite))
	}
	if tail := joinClean(", ", c.Court, yearString(c)); tail != "" {
		parts = append(parts, ensurePeriod(tail))
	}
	return ensurePeriod(strings.Join(parts, " "))
}

// mlaNewspaper renders `Author. "Title." Publication, 14 May 2023, URL.`
func mlaNewspaper(c types.Citation) string {
	var parts []string
	if a := mlaAuthors(c.Authors); a != "" {
		parts = append(parts, ensurePeriod(a))
	}
	if c.Title != "" {
		parts = append(parts, `"`+ensurePeriod(c.Title)+`"`)
	}
	if tail := joinClean(", ", ital(c.Publication), mlaDate(c), c.URL); tail != "" && c.Publication != "" {
		parts = append(parts, tail)
	} else if tail := joinClean(", ", mlaDate(c), c.URL); tail != "" {
		parts = append(parts, tail)
	}
	return ensurePeriod(strings.Join(parts, " "))
}

// mlaGovernment renders `Agency. Title. Year. URL.`
func mlaGovernment(c types.Citation) string {
	var parts []string
	if c.Agency != "" {
		parts = append(parts, ensurePeriod(c.Agency))
	}
	if c.Title != "" {
		parts = append(parts, ensurePeriod(ital(c.Title)))
	}
	if y := yearString(c); y != "" {
		parts = append(parts, ensurePeriod(y))
	}
	if c.URL != "" {
		parts = append(parts, c.URL)
	}
	return ensurePeriod(strings.Join(parts, " "))
}

// mlaInterview renders `Interviewee. Interview. By Interviewer. Year.`
func mlaInterview(c types.Citation) string {
	var parts []string
	if c.Interviewee != "" {
		parts = append(parts, ensurePeriod(c.Interviewee))
	}
	parts = append(parts, "Interview.")
	if c.Interviewer != "" {
		parts = append(parts, ensurePeriod("By "+c.Interviewer))
	}
	if d := firstNonEmpty(c.Date, yearString(c)); d != "" {
		parts = append(parts, ensurePeriod(d))
	}
	return ensurePeriod(strings.Join(parts, " "))
}

// mlaUnknown renders `"Title." URL. Accessed Date.`
func mlaUnknown(c types.Citation) string {
	var parts []string
	if c.Title != "" {
		parts = append(parts, `"`+ensurePeriod(c.Title)+`"`)
	}
	if c.URL != "" {
		parts = append(parts, ensurePeriod(c.URL))
	}
	if c.AccessedDate != "" {
		parts = append(parts, ensurePeriod("Accessed "+c.AccessedDate))
	}
	return ensurePeriod(strings.Join(parts, " "))
}

// mlaDate renders "14 May 2023" from an ISO date, degrading to the
// bare year.
func mlaDate(c types.Citation) string {
	if c.Date != "" {
		if t, err := time.Parse("2006-01-02", c.Date); err == nil {
			return t.Format("2 January 2006")
		}
	}
	return yearString(c)
}
