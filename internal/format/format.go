// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package format renders structured citations in five styles: Chicago,
// APA, MLA, Bluebook, and OSCOLA. One rendering strategy exists per
// (style, type) pair; each strategy is a pure function of the citation
// fields, omitting absent fields with clean punctuation. Italicized
// spans are wrapped in <i> markers for downstream presentation.
package format

import (
	"errors"
	"fmt"
	"strings"

	"github.com/caplane/citeflex/pkg/types"
)

// ErrUnsupportedStyle marks a style with no rendering strategies.
var ErrUnsupportedStyle = errors.New("unsupported citation style")

// renderFunc renders one citation in one (style, type) combination.
// Implementations never fail; missing fields are simply omitted.
type renderFunc func(c types.Citation) string

// strategies maps (style, type) to a rendering strategy. Medical
// citations render with the journal strategy in every style. A type
// with no entry falls back to the style's unknown-type strategy.
var strategies = map[types.CitationStyle]map[types.CitationType]renderFunc{
	types.StyleChicago: {
		types.TypeJournal:    chicagoJournal,
		types.TypeMedical:    chicagoJournal,
		types.TypeBook:       chicagoBook,
		types.TypeLegal:      chicagoLegal,
		types.TypeNewspaper:  chicagoNewspaper,
		types.TypeGovernment: chicagoGovernment,
		types.TypeInterview:  chicagoInterview,
		types.TypeUnknown:    chicagoUnknown,
	},
	types.StyleAPA: {
		types.TypeJournal:    apaJournal,
		types.TypeMedical:    apaJournal,
		types.TypeBook:       apaBook,
		types.TypeLegal:      apaLegal,
		types.TypeNewspaper:  apaNewspaper,
		types.TypeGovernment: apaGovernment,
		types.TypeInterview:  apaInterview,
		types.TypeUnknown:    apaUnknown,
	},
	types.StyleMLA: {
		types.TypeJournal:    mlaJournal,
		types.TypeMedical:    mlaJournal,
		types.TypeBook:       mlaBook,
		types.TypeLegal:      mlaLegal,
		types.TypeNewspaper:  mlaNewspaper,
		types.TypeGovernment: mlaGovernment,
		types.TypeInterview:  mlaInterview,
		types.TypeUnknown:    mlaUnknown,
	},
	types.StyleBluebook: {
		types.TypeLegal:   bluebookCase,
		types.TypeUnknown: bluebookOther,
	},
	types.StyleOSCOLA: {
		types.TypeLegal:   oscolaCase,
		types.TypeUnknown: oscolaOther,
	},
}

// Format renders cit in the given style. When prior refers to the same
// source as cit (immediately consecutive in the caller's session), the
// style's shorthand form is substituted for the full rendering.
//
// The only error condition is a style with no strategies; every type
// renders in every supported style, degrading to the style's generic
// strategy where no specific one exists.
func Format(cit types.Citation, style types.CitationStyle, prior *types.Citation) (types.FormattedCitation, error) {
	table, ok := strategies[style]
	if !ok {
		return types.FormattedCitation{}, fmt.Errorf("%w: %q", ErrUnsupportedStyle, style)
	}

	if prior != nil && cit.Type == prior.Type && cit.SameSource(*prior) {
		return types.FormattedCitation{
			Style:     style,
			Text:      shorthand(style, cit),
			Shorthand: true,
		}, nil
	}

	render := table[cit.Type]
	if render == nil {
		render = table[types.TypeUnknown]
	}
	text := render(cit)
	if text == "" || text == "." {
		// Nothing usable was parsed; fall back to the raw input.
		text = ensurePeriod(strings.TrimSpace(cit.Raw))
	}
	return types.FormattedCitation{Style: style, Text: text}, nil
}

// shorthand renders the style's consecutive-repeat form. Legal styles
// carry a pincite when the repeat cites a different page; author-date
// styles use a parenthetical. Shorthand forms define their own
// terminator, so ensurePeriod does not apply here.
func shorthand(style types.CitationStyle, c types.Citation) string {
	switch style {
	case types.StyleBluebook:
		if c.Pincite != "" {
			return "Id. at " + c.Pincite + "."
		}
		return "Id."
	case types.StyleOSCOLA:
		// OSCOLA's ibid takes no terminating period.
		if c.Pincite != "" {
			return "ibid " + c.Pincite
		}
		return "ibid"
	case types.StyleChicago:
		page := c.Pincite
		if page != "" {
			return "Ibid., " + page + "."
		}
		return "Ibid."
	case types.StyleAPA:
		if name := citeName(c); name != "" && c.Year != 0 {
			return fmt.Sprintf("(%s, %d)", name, c.Year)
		}
		return "Ibid."
	case types.StyleMLA:
		if name := citeName(c); name != "" {
			if page := firstNonEmpty(c.Pincite, c.Pages); page != "" {
				return fmt.Sprintf("(%s %s)", name, page)
			}
			return fmt.Sprintf("(%s)", name)
		}
		return "Ibid."
	}
	return "Ibid."
}

// citeName returns the short name used in parenthetical shorthand:
// first author's surname, or the first party of a case name.
func citeName(c types.Citation) string {
	if len(c.Authors) > 0 {
		return lastName(c.Authors[0])
	}
	if c.CaseName != "" {
		return firstParty(c.CaseName)
	}
	return ""
}

// ensurePeriod guarantees the citation ends with exactly one
// terminating period, leaving existing sentence punctuation alone.
func ensurePeriod(text string) string {
	text = strings.TrimRight(text, " \t")
	if text == "" {
		return ""
	}
	if strings.HasSuffix(text, ".") || strings.HasSuffix(text, "?") || strings.HasSuffix(text, "!") {
		return text
	}
	return text + "."
}

func ital(s string) string { return "<i>" + s + "</i>" }

// lastName returns the final token of a display name.
func lastName(full string) string {
	fields := strings.Fields(full)
	if len(fields) == 0 {
		return ""
	}
	// Already "Last, First" form.
	if strings.HasSuffix(fields[0], ",") {
		return strings.TrimSuffix(fields[0], ",")
	}
	return fields[len(fields)-1]
}

// firstParty returns the case name up to " v." for short forms,
// skipping procedural lead-ins like "United States v.".
func firstParty(caseName string) string {
	for _, lead := range []string{"In re ", "Ex parte ", "United States v. ", "State v. ", "People v. ", "Commonwealth v. ", "R v "} {
		if strings.HasPrefix(caseName, lead) {
			caseName = caseName[len(lead):]
			break
		}
	}
	for _, sep := range []string{" v. ", " v ", " vs. ", " vs "} {
		if i := strings.Index(caseName, sep); i >= 0 {
			return strings.TrimSpace(caseName[:i])
		}
	}
	return strings.TrimSpace(caseName)
}

// initials converts a given name to initials: "John Q" becomes "J. Q.".
func initials(given string) string {
	var out []string
	for _, f := range strings.Fields(given) {
		r := []rune(f)
		if len(r) == 0 {
			continue
		}
		out = append(out, string(r[0])+".")
	}
	return strings.Join(out, " ")
}

// splitName breaks "First Middle Last" into given and family parts.
func splitName(full string) (given, family string) {
	full = strings.TrimSpace(full)
	idx := strings.LastIndex(full, " ")
	if idx < 0 {
		return "", full
	}
	return full[:idx], full[idx+1:]
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

// joinClean joins non-empty parts with sep.
func joinClean(sep string, parts ...string) string {
	var kept []string
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
