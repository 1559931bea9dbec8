// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caplane/citeflex/pkg/types"
)

func TestMatchIbid(t *testing.T) {
	tests := []struct {
		in      string
		pincite string
		ok      bool
	}{
		{"Ibid.", "", true},
		{"ibid", "", true},
		{"Ibidem.", "", true},
		{"Id.", "", true},
		{"Id. at 652", "652", true},
		{"id., 652", "652", true},
		{"Ibid., p. 100", "100", true},
		{"Id. at 652-53", "652-53", true},
		{"  ibid  ", "", true},
		{"identify", "", false},
		{"Obergefell v. Hodges", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		pincite, ok := MatchIbid(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.pincite, pincite, tt.in)
	}
}

func TestSessionConsecutiveShorthand(t *testing.T) {
	s := NewSession(types.StyleBluebook)
	assert.NotEmpty(t, s.ID)

	out, err := s.Format(obergefell)
	require.NoError(t, err)
	assert.False(t, out.Shorthand)
	assert.Equal(t, "<i>Obergefell v. Hodges</i>, 576 U.S. 644 (2015).", out.Text)

	// Same source again: shorthand.
	out, err = s.Format(obergefell)
	require.NoError(t, err)
	assert.True(t, out.Shorthand)
	assert.Equal(t, "Id.", out.Text)
}

func TestSessionExplicitIbidMarker(t *testing.T) {
	s := NewSession(types.StyleBluebook)

	_, err := s.Format(obergefell)
	require.NoError(t, err)

	out, err := s.Format(types.Citation{Raw: "Id. at 652", Type: types.TypeUnknown})
	require.NoError(t, err)
	assert.True(t, out.Shorthand)
	assert.Equal(t, "Id. at 652.", out.Text)

	// A second marker still refers to the same source.
	out, err = s.Format(types.Citation{Raw: "Ibid.", Type: types.TypeUnknown})
	require.NoError(t, err)
	assert.Equal(t, "Id.", out.Text)
}

func TestSessionMarkerWithoutPrior(t *testing.T) {
	s := NewSession(types.StyleChicago)

	out, err := s.Format(types.Citation{Raw: "Ibid.", Type: types.TypeUnknown})
	require.NoError(t, err)
	assert.False(t, out.Shorthand)
	assert.Equal(t, "Ibid.", out.Text)
}

func TestSessionInterveningCitationBreaksShorthand(t *testing.T) {
	s := NewSession(types.StyleBluebook)

	_, err := s.Format(obergefell)
	require.NoError(t, err)

	loving := types.Citation{
		Raw:      "Loving v. Virginia, 388 U.S. 1 (1967)",
		Type:     types.TypeLegal,
		CaseName: "Loving v. Virginia",
		Volume:   "388",
		Reporter: "U.S.",
		Pages:    "1",
		Year:     1967,
	}
	out, err := s.Format(loving)
	require.NoError(t, err)
	assert.False(t, out.Shorthand)

	// Back to the first case: full form again, not shorthand.
	out, err = s.Format(obergefell)
	require.NoError(t, err)
	assert.False(t, out.Shorthand)
	assert.Contains(t, out.Text, "Obergefell")
}

func TestSessionChicagoIbid(t *testing.T) {
	s := NewSession(types.StyleChicago)

	_, err := s.Format(kuhn)
	require.NoError(t, err)

	out, err := s.Format(types.Citation{Raw: "Ibid., 42", Type: types.TypeUnknown})
	require.NoError(t, err)
	assert.Equal(t, "Ibid., 42.", out.Text)
}

func TestSessionReset(t *testing.T) {
	s := NewSession(types.StyleBluebook)

	_, err := s.Format(obergefell)
	require.NoError(t, err)
	s.Reset()

	out, err := s.Format(obergefell)
	require.NoError(t, err)
	assert.False(t, out.Shorthand)
}

func TestSessionsHaveDistinctIDs(t *testing.T) {
	a := NewSession(types.StyleChicago)
	b := NewSession(types.StyleChicago)
	assert.NotEqual(t, a.ID, b.ID)
}
