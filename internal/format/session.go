// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package format

import (
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/caplane/citeflex/pkg/types"
)

// ibidRe recognizes explicit shorthand markers in user input: "Ibid.",
// "ibidem", "Id. at 652", "id., 652". The optional pincite is captured.
var ibidRe = regexp.MustCompile(`(?i)^(?:ibid\.?|ibidem\.?|id\.?)(?:\s*(?:,|at)?\s*(?:p{1,2}\.?\s*)?(\d+(?:[-–]\d+)?))?\.?$`)

// MatchIbid reports whether raw is an explicit shorthand marker and
// returns its pincite when present.
func MatchIbid(raw string) (pincite string, ok bool) {
	m := ibidRe.FindStringSubmatch(strings.TrimSpace(raw))
	if m == nil {
		return "", false
	}
	return m[1], true
}

// Session tracks the immediately preceding citation within one
// document, so consecutive repeats of a source render in the style's
// shorthand form. Sessions are not safe for concurrent use; give each
// document its own.
type Session struct {
	// ID identifies the session in logs and stored records.
	ID string

	style types.CitationStyle
	prev  *types.Citation
}

// NewSession starts a shorthand-tracking session for one style.
func NewSession(style types.CitationStyle) *Session {
	return &Session{ID: uuid.NewString(), style: style}
}

// Style returns the session's citation style.
func (s *Session) Style() types.CitationStyle { return s.style }

// Format renders cit with shorthand awareness. An input that is itself
// an explicit ibid marker ("Ibid.", "Id. at 652") re-renders the
// previous citation as shorthand with the marker's pincite. A marker
// with no preceding citation renders as the raw text.
func (s *Session) Format(cit types.Citation) (types.FormattedCitation, error) {
	if pincite, ok := MatchIbid(cit.Raw); ok {
		if s.prev == nil {
			return types.FormattedCitation{
				Style: s.style,
				Text:  ensurePeriod(strings.TrimSpace(cit.Raw)),
			}, nil
		}
		repeat := *s.prev
		repeat.Pincite = pincite
		out, err := Format(repeat, s.style, s.prev)
		// prev is unchanged: another marker keeps pointing at the same
		// source.
		return out, err
	}

	out, err := Format(cit, s.style, s.prev)
	if err != nil {
		return out, err
	}
	kept := cit
	s.prev = &kept
	return out, nil
}

// Reset clears the previous-citation state, e.g. at a section break.
func (s *Session) Reset() { s.prev = nil }
