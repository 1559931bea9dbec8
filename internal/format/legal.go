// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package format

import (
	"fmt"
	"strings"

	"github.com/caplane/citeflex/pkg/types"
)

// Bluebook (21st ed.) and OSCOLA (4th ed.) legal citation forms.

// bluebookCase renders `Case Name, 347 U.S. 483 (1954).` The court
// abbreviation joins the year parenthetical except for Supreme Court
// decisions in the U.S. Reports, where the reporter already implies
// the court.
func bluebookCase(c types.Citation) string {
	var parts []string
	if c.CaseName != "" {
		parts = append(parts, ital(c.CaseName)+",")
	}
	cite := legalCite(c)
	if cite != "" {
		parts = append(parts, cite)
	}

	court := c.Court
	if c.Reporter == "U.S." && strings.Contains(court, "Supreme Court") {
		court = ""
	}
	if cy := joinClean(" ", court, yearString(c)); cy != "" && c.NeutralCitation == "" {
		parts = append(parts, "("+cy+")")
	}
	return ensurePeriod(strings.TrimSuffix(strings.Join(parts, " "), ","))
}

// bluebookOther renders non-case sources: books as
// `Author, Title (Year).`, articles as
// `Author, Title, 12 Journal 44 (2015).`
func bluebookOther(c types.Citation) string {
	var parts []string
	if a := chicagoAuthors(c.Authors); a != "" {
		parts = append(parts, a+",")
	}
	if c.Title != "" {
		if c.Type == types.TypeBook {
			parts = append(parts, ital(c.Title))
		} else {
			parts = append(parts, ital(c.Title)+",")
		}
	}
	if c.Publication != "" {
		if c.Volume != "" {
			parts = append(parts, joinClean(" ", c.Volume, c.Publication, c.Pages))
		} else {
			parts = append(parts, c.Publication)
		}
	}
	if c.Year != 0 {
		parts = append(parts, fmt.Sprintf("(%d)", c.Year))
	}
	return ensurePeriod(strings.TrimSuffix(strings.Join(parts, " "), ","))
}

// oscolaCase renders UK cases as `Case Name [2020] UKSC 1.` and US
// cases as `Case Name, 388 U.S. 1 (1967).` The neutral citation
// already carries the year, so no parenthetical is added after it.
func oscolaCase(c types.Citation) string {
	var parts []string
	if c.CaseName != "" {
		parts = append(parts, ital(c.CaseName))
	}
	if c.NeutralCitation != "" {
		parts = append(parts, c.NeutralCitation)
	} else if cite := c.ReporterCite(); cite != "" {
		if c.Pincite != "" {
			cite += ", " + c.Pincite
		}
		if len(parts) > 0 {
			parts[0] += ","
		}
		parts = append(parts, cite)
		if c.Year != 0 {
			parts = append(parts, fmt.Sprintf("(%d)", c.Year))
		}
	} else if c.Year != 0 {
		parts = append(parts, fmt.Sprintf("[%d]", c.Year))
	}
	return ensurePeriod(strings.Join(parts, " "))
}

// oscolaOther renders non-case sources: books as
// `Author, Title (Publisher Year).`, articles as
// `Author, 'Title' Journal 12, 44 (2015).`
func oscolaOther(c types.Citation) string {
	var parts []string
	if a := chicagoAuthors(c.Authors); a != "" {
		parts = append(parts, a+",")
	}
	if c.Title != "" {
		if c.Type == types.TypeBook {
			parts = append(parts, ital(c.Title))
		} else {
			parts = append(parts, "'"+c.Title+"'")
		}
	}
	if c.Type == types.TypeBook {
		if imprint := joinClean(" ", c.Publisher, yearString(c)); imprint != "" {
			parts = append(parts, "("+imprint+")")
		}
	} else {
		if j := joinClean(" ", c.Publication, c.Volume); j != "" {
			parts = append(parts, joinClean(", ", j, c.Pages))
		}
		if c.Year != 0 {
			parts = append(parts, fmt.Sprintf("(%d)", c.Year))
		}
	}
	return ensurePeriod(strings.TrimSuffix(strings.Join(parts, " "), ","))
}
