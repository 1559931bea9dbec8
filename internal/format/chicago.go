// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package format

import (
	"fmt"
	"strings"

	"github.com/caplane/citeflex/pkg/types"
)

// Chicago Manual of Style (17th ed.), notes-bibliography form.

// chicagoAuthors renders "First Last", "A and B", "A, B, and C", or
// "A et al." for four or more.
func chicagoAuthors(authors []string) string {
	switch len(authors) {
	case 0:
		return ""
	case 1:
		return authors[0]
	case 2:
		return authors[0] + " and " + authors[1]
	case 3:
		return authors[0] + ", " + authors[1] + ", and " + authors[2]
	default:
		return authors[0] + " et al."
	}
}

// chicagoJournal renders
// `Author, "Title," Journal 12, no. 3 (2015): 44-59, DOI.`
func chicagoJournal(c types.Citation) string {
	var parts []string
	if a := chicagoAuthors(c.Authors); a != "" {
		parts = append(parts, a+",")
	}
	if c.Title != "" {
		parts = append(parts, `"`+c.Title+`,"`)
	}
	if c.Publication != "" {
		j := ital(c.Publication)
		if c.Volume != "" {
			j += " " + c.Volume
		}
		if c.Issue != "" {
			j += ", no. " + c.Issue
		}
		if c.Year != 0 {
			j += fmt.Sprintf(" (%d)", c.Year)
		}
		if c.Pages != "" {
			j += ": " + c.Pages
		}
		parts = append(parts, j+",")
	}
	if c.DOI != "" {
		parts = append(parts, "https://doi.org/"+c.DOI)
	} else if c.URL != "" {
		parts = append(parts, c.URL)
	}
	return ensurePeriod(strings.TrimSuffix(strings.Join(parts, " "), ","))
}

// chicagoBook renders `Author, Title (Place: Publisher, Year).`
func chicagoBook(c types.Citation) string {
	var parts []string
	if a := chicagoAuthors(c.Authors); a != "" {
		parts = append(parts, a+",")
	}
	if c.Title != "" {
		parts = append(parts, ital(c.Title))
	}
	if pub := chicagoImprint(c); pub != "" {
		parts = append(parts, "("+pub+")")
	}
	return ensurePeriod(strings.Join(parts, " "))
}

// chicagoImprint builds "Place: Publisher, Year" with whatever parts
// are present.
func chicagoImprint(c types.Citation) string {
	year := ""
	if c.Year != 0 {
		year = fmt.Sprintf("%d", c.Year)
	}
	switch {
	case c.Place != "" && c.Publisher != "":
		return joinClean(", ", c.Place+": "+c.Publisher, year)
	case c.Publisher != "":
		return joinClean(", ", c.Publisher, year)
	default:
		return year
	}
}

// chicagoLegal renders `Case Name, 347 U.S. 483 (Court, Year).`
func chicagoLegal(c types.Citation) string {
	var parts []string
	if c.CaseName != "" {
		parts = append(parts, ital(c.CaseName)+",")
	}
	if cite := legalCite(c); cite != "" {
		parts = append(parts, cite)
	}
	year := ""
	if c.Year != 0 {
		year = fmt.Sprintf("%d", c.Year)
	}
	if cy := joinClean(", ", c.Court, year); cy != "" {
		parts = append(parts, "("+cy+")")
	}
	return ensurePeriod(strings.TrimSuffix(strings.Join(parts, " "), ","))
}

// chicagoNewspaper renders `Author, "Title," Publication, Date, URL.`
func chicagoNewspaper(c types.Citation) string {
	date := firstNonEmpty(c.Date, yearString(c))
	var parts []string
	if a := chicagoAuthors(c.Authors); a != "" {
		parts = append(parts, a)
	}
	if c.Title != "" {
		parts = append(parts, `"`+c.Title+`"`)
	}
	if c.Publication != "" {
		parts = append(parts, ital(c.Publication))
	}
	return ensurePeriod(joinClean(", ", append(parts, date, c.URL)...))
}

// chicagoGovernment renders `Agency, "Title," URL, accessed Date.`
func chicagoGovernment(c types.Citation) string {
	title := ""
	if c.Title != "" {
		title = `"` + c.Title + `"`
	}
	accessed := ""
	if c.AccessedDate != "" {
		accessed = "accessed " + c.AccessedDate
	}
	return ensurePeriod(joinClean(", ", c.Agency, title, c.URL, accessed))
}

// chicagoInterview renders `Interviewee, interview by Interviewer, Date.`
func chicagoInterview(c types.Citation) string {
	var parts []string
	if c.Interviewee != "" {
		parts = append(parts, c.Interviewee)
	}
	if c.Interviewer != "" {
		parts = append(parts, "interview by "+c.Interviewer)
	} else if c.Interviewee != "" {
		parts = append(parts, "interview")
	} else {
		parts = append(parts, "Personal communication")
	}
	return ensurePeriod(joinClean(", ", append(parts, firstNonEmpty(c.Date, yearString(c)))...))
}

// chicagoUnknown renders `"Title," URL, accessed Date.`
func chicagoUnknown(c types.Citation) string {
	title := ""
	if c.Title != "" {
		title = `"` + c.Title + `"`
	}
	accessed := ""
	if c.AccessedDate != "" {
		accessed = "accessed " + c.AccessedDate
	}
	return ensurePeriod(joinClean(", ", title, c.URL, accessed))
}

// legalCite returns the reporter citation with any pincite, falling
// back to a neutral citation.
func legalCite(c types.Citation) string {
	if cite := c.ReporterCite(); cite != "" {
		if c.Pincite != "" {
			return cite + ", " + c.Pincite
		}
		return cite
	}
	return c.NeutralCitation
}

func yearString(c types.Citation) string {
	if c.Year == 0 {
		return ""
	}
	return fmt.Sprintf("%d", c.Year)
}
