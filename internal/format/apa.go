// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package format

import (
	"fmt"
	"strings"
	"time"

	"github.com/caplane/citeflex/pkg/types"
)

// APA (7th ed.) reference-list form.

// apaAuthors renders inverted names with initials: "Smith, J. Q.",
// two joined with "&", four or more truncated to "et al."
func apaAuthors(authors []string) string {
	var names []string
	for _, a := range authors {
		given, family := splitName(a)
		if given == "" {
			names = append(names, family)
			continue
		}
		names = append(names, family+", "+initials(given))
	}
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	case 2:
		return names[0] + ", & " + names[1]
	case 3:
		return names[0] + ", " + names[1] + ", & " + names[2]
	default:
		return names[0] + " et al."
	}
}

// apaJournal renders
// `Author, A. (2015). Title. Journal, 12(3), 44-59. https://doi.org/...`
func apaJournal(c types.Citation) string {
	var parts []string
	parts = appendAPAHead(parts, c)
	if c.Title != "" {
		parts = append(parts, ensurePeriod(c.Title))
	}
	if c.Publication != "" {
		j := ital(c.Publication)
		if c.Volume != "" {
			j += ", " + ital(c.Volume)
			if c.Issue != "" {
				j += "(" + c.Issue + ")"
			}
		}
		if c.Pages != "" {
			j += ", " + c.Pages
		}
		parts = append(parts, j+".")
	}
	if c.DOI != "" {
		parts = append(parts, "https://doi.org/"+c.DOI)
	} else if c.URL != "" {
		parts = append(parts, c.URL)
	}
	return ensurePeriod(strings.Join(parts, " "))
}

// apaBook renders `Author, A. (Year). Title (Edition). Publisher.`
func apaBook(c types.Citation) string {
	var parts []string
	parts = appendAPAHead(parts, c)
	if c.Title != "" {
		t := ital(c.Title)
		if c.Edition != "" {
			t += " (" + c.Edition + ")"
		}
		parts = append(parts, ensurePeriod(t))
	}
	if c.Publisher != "" {
		parts = append(parts, ensurePeriod(c.Publisher))
	}
	if c.URL != "" {
		parts = append(parts, c.URL)
	}
	return ensurePeriod(strings.Join(parts, " "))
}

// apaLegal renders `Name v. Name, Citation (Court Year).` with the
// case name italicized.
func apaLegal(c types.Citation) string {
	var parts []string
	if c.CaseName != "" {
		parts = append(parts, ital(c.CaseName)+",")
	}
	if cite := legalCite(c); cite != "" {
		parts = append(parts, cite)
	}
	if cy := joinClean(" ", c.Court, yearString(c)); cy != "" {
		parts = append(parts, "("+cy+")")
	}
	return ensurePeriod(strings.TrimSuffix(strings.Join(parts, " "), ","))
}

// apaNewspaper renders
// `Author, A. (2023, May 14). Title. Publication. URL`
func apaNewspaper(c types.Citation) string {
	var parts []string
	if a := apaAuthors(c.Authors); a != "" {
		parts = append(parts, a)
	}
	if d := apaDate(c); d != "" {
		parts = append(parts, "("+d+").")
	}
	if c.Title != "" {
		parts = append(parts, ensurePeriod(c.Title))
	}
	if c.Publication != "" {
		parts = append(parts, ensurePeriod(ital(c.Publication)))
	}
	if c.URL != "" {
		parts = append(parts, c.URL)
	}
	return ensurePeriod(strings.Join(parts, " "))
}

// apaGovernment renders `Agency. (Year). Title. URL`
func apaGovernment(c types.Citation) string {
	var parts []string
	if c.Agency != "" {
		parts = append(parts, ensurePeriod(c.Agency))
	}
	if c.Year != 0 {
		parts = append(parts, fmt.Sprintf("(%d).", c.Year))
	}
	if c.Title != "" {
		parts = append(parts, ensurePeriod(ital(c.Title)))
	}
	if c.URL != "" {
		parts = append(parts, c.URL)
	}
	return ensurePeriod(strings.Join(parts, " "))
}

// apaInterview renders the personal-communication form.
func apaInterview(c types.Citation) string {
	return ensurePeriod(joinClean(", ",
		c.Interviewee,
		"personal communication",
		firstNonEmpty(c.Date, yearString(c))))
}

// apaUnknown renders `Title. (n.d.). URL`
func apaUnknown(c types.Citation) string {
	var parts []string
	if c.Title != "" {
		parts = append(parts, ensurePeriod(c.Title))
	}
	if c.Year != 0 {
		parts = append(parts, fmt.Sprintf("(%d).", c.Year))
	}
	if c.URL != "" {
		parts = append(parts, c.URL)
	}
	return ensurePeriod(strings.Join(parts, " "))
}

// appendAPAHead appends the "Author, A. (Year)." head segment.
func appendAPAHead(parts []string, c types.Citation) []string {
	a := apaAuthors(c.Authors)
	switch {
	case a != "" && c.Year != 0:
		return append(parts, fmt.Sprintf("%s (%d).", a, c.Year))
	case a != "":
		return append(parts, ensurePeriod(a))
	case c.Year != 0:
		return append(parts, fmt.Sprintf("(%d).", c.Year))
	}
	return parts
}

// apaDate renders "2023, May 14" from an ISO date, degrading to the
// bare year.
func apaDate(c types.Citation) string {
	if c.Date != "" {
		if t, err := time.Parse("2006-01-02", c.Date); err == nil {
			return t.Format("2006, January 2")
		}
	}
	return yearString(c)
}
