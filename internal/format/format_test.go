// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caplane/citeflex/pkg/types"
)

var obergefell = types.Citation{
	Raw:          "Obergefell v. Hodges, 576 U.S. 644 (2015)",
	Type:         types.TypeLegal,
	CaseName:     "Obergefell v. Hodges",
	Volume:       "576",
	Reporter:     "U.S.",
	Pages:        "644",
	Year:         2015,
	Court:        "Supreme Court of the United States",
	Jurisdiction: "US",
}

var shannon = types.Citation{
	Raw:         "shannon 1948",
	Type:        types.TypeJournal,
	Authors:     []string{"Claude Shannon"},
	Title:       "A Mathematical Theory of Communication",
	Publication: "Bell System Technical Journal",
	Volume:      "27",
	Issue:       "3",
	Pages:       "379-423",
	Year:        1948,
}

var kuhn = types.Citation{
	Raw:       "kuhn 1962",
	Type:      types.TypeBook,
	Authors:   []string{"Thomas Kuhn"},
	Title:     "The Structure of Scientific Revolutions",
	Place:     "Chicago",
	Publisher: "University of Chicago Press",
	Year:      1962,
}

func render(t *testing.T, cit types.Citation, style types.CitationStyle) string {
	t.Helper()
	out, err := Format(cit, style, nil)
	require.NoError(t, err)
	return out.Text
}

func TestBluebookSupremeCourtOmitsCourt(t *testing.T) {
	got := render(t, obergefell, types.StyleBluebook)
	assert.Equal(t, "<i>Obergefell v. Hodges</i>, 576 U.S. 644 (2015).", got)
}

func TestBluebookLowerCourtKeepsCourt(t *testing.T) {
	cit := types.Citation{
		Type:     types.TypeLegal,
		CaseName: "Kitzmiller v. Dover Area School Dist.",
		Volume:   "400",
		Reporter: "F. Supp. 2d",
		Pages:    "707",
		Court:    "M.D. Pa.",
		Year:     2005,
	}
	got := render(t, cit, types.StyleBluebook)
	assert.Equal(t, "<i>Kitzmiller v. Dover Area School Dist.</i>, 400 F. Supp. 2d 707 (M.D. Pa. 2005).", got)
}

func TestBluebookPincite(t *testing.T) {
	cit := obergefell
	cit.Pincite = "652"
	got := render(t, cit, types.StyleBluebook)
	assert.Equal(t, "<i>Obergefell v. Hodges</i>, 576 U.S. 644, 652 (2015).", got)
}

func TestChicagoJournal(t *testing.T) {
	got := render(t, shannon, types.StyleChicago)
	assert.Equal(t, `Claude Shannon, "A Mathematical Theory of Communication," <i>Bell System Technical Journal</i> 27, no. 3 (1948): 379-423.`, got)
}

func TestChicagoBook(t *testing.T) {
	got := render(t, kuhn, types.StyleChicago)
	assert.Equal(t, "Thomas Kuhn, <i>The Structure of Scientific Revolutions</i> (Chicago: University of Chicago Press, 1962).", got)
}

func TestChicagoLegal(t *testing.T) {
	got := render(t, obergefell, types.StyleChicago)
	assert.Equal(t, "<i>Obergefell v. Hodges</i>, 576 U.S. 644 (Supreme Court of the United States, 2015).", got)
}

func TestAPAJournal(t *testing.T) {
	got := render(t, shannon, types.StyleAPA)
	assert.Equal(t, "Shannon, C. (1948). A Mathematical Theory of Communication. <i>Bell System Technical Journal</i>, <i>27</i>(3), 379-423.", got)
}

func TestAPALegal(t *testing.T) {
	got := render(t, obergefell, types.StyleAPA)
	assert.Equal(t, "<i>Obergefell v. Hodges</i>, 576 U.S. 644 (Supreme Court of the United States 2015).", got)
}

func TestMLAJournal(t *testing.T) {
	got := render(t, shannon, types.StyleMLA)
	assert.Equal(t, `Shannon, Claude. "A Mathematical Theory of Communication." <i>Bell System Technical Journal</i>, vol. 27, no. 3, 1948, pp. 379-423.`, got)
}

func TestOSCOLAUKCase(t *testing.T) {
	cit := types.Citation{
		Type:            types.TypeLegal,
		CaseName:        "R (Miller) v The Prime Minister",
		NeutralCitation: "[2019] UKSC 41",
		Jurisdiction:    "UK",
		Year:            2019,
	}
	got := render(t, cit, types.StyleOSCOLA)
	assert.Equal(t, "<i>R (Miller) v The Prime Minister</i> [2019] UKSC 41.", got)
}

func TestOSCOLAUSCase(t *testing.T) {
	cit := types.Citation{
		Type:     types.TypeLegal,
		CaseName: "Loving v. Virginia",
		Volume:   "388",
		Reporter: "U.S.",
		Pages:    "1",
		Year:     1967,
	}
	got := render(t, cit, types.StyleOSCOLA)
	assert.Equal(t, "<i>Loving v. Virginia</i>, 388 U.S. 1 (1967).", got)
}

func TestLegalStylesRenderNonLegalTypes(t *testing.T) {
	// Bluebook and OSCOLA have no book strategy; the generic one applies.
	got := render(t, kuhn, types.StyleBluebook)
	assert.Contains(t, got, "<i>The Structure of Scientific Revolutions</i>")
	assert.Contains(t, got, "(1962)")

	got = render(t, kuhn, types.StyleOSCOLA)
	assert.Contains(t, got, "University of Chicago Press 1962")
}

func TestFormatNewspaper(t *testing.T) {
	cit := types.Citation{
		Type:        types.TypeNewspaper,
		Authors:     []string{"Jane Doe"},
		Title:       "Something Happened",
		Publication: "The New York Times",
		Date:        "2023-05-14",
		Year:        2023,
		URL:         "https://www.nytimes.com/2023/05/14/us/story.html",
	}
	chicago := render(t, cit, types.StyleChicago)
	assert.Contains(t, chicago, `"Something Happened"`)
	assert.Contains(t, chicago, "<i>The New York Times</i>")

	mla := render(t, cit, types.StyleMLA)
	assert.Contains(t, mla, "14 May 2023")

	apa := render(t, cit, types.StyleAPA)
	assert.Contains(t, apa, "(2023, May 14).")
}

func TestFormatUnknownFallsBackToRaw(t *testing.T) {
	cit := types.Citation{Raw: "some unstructured text", Type: types.TypeUnknown}
	for _, style := range []types.CitationStyle{
		types.StyleChicago, types.StyleAPA, types.StyleMLA, types.StyleBluebook, types.StyleOSCOLA,
	} {
		got := render(t, cit, style)
		assert.Equal(t, "some unstructured text.", got, string(style))
	}
}

func TestFormatUnsupportedStyle(t *testing.T) {
	_, err := Format(obergefell, types.CitationStyle("harvard"), nil)
	assert.ErrorIs(t, err, ErrUnsupportedStyle)
}

func TestFormatShorthandConsecutive(t *testing.T) {
	prior := obergefell

	out, err := Format(obergefell, types.StyleBluebook, &prior)
	require.NoError(t, err)
	assert.True(t, out.Shorthand)
	assert.Equal(t, "Id.", out.Text)

	repeat := obergefell
	repeat.Pincite = "652"
	out, err = Format(repeat, types.StyleBluebook, &prior)
	require.NoError(t, err)
	assert.Equal(t, "Id. at 652.", out.Text)

	out, err = Format(repeat, types.StyleChicago, &prior)
	require.NoError(t, err)
	assert.Equal(t, "Ibid., 652.", out.Text)

	out, err = Format(obergefell, types.StyleOSCOLA, &prior)
	require.NoError(t, err)
	assert.Equal(t, "ibid", out.Text)

	out, err = Format(obergefell, types.StyleAPA, &prior)
	require.NoError(t, err)
	assert.Equal(t, "(Obergefell, 2015)", out.Text)
}

func TestFormatNoShorthandForDifferentSource(t *testing.T) {
	prior := types.Citation{
		Type:     types.TypeLegal,
		CaseName: "Loving v. Virginia",
	}
	out, err := Format(obergefell, types.StyleBluebook, &prior)
	require.NoError(t, err)
	assert.False(t, out.Shorthand)
	assert.Contains(t, out.Text, "Obergefell")
}

func TestEnsurePeriod(t *testing.T) {
	assert.Equal(t, "abc.", ensurePeriod("abc"))
	assert.Equal(t, "abc.", ensurePeriod("abc."))
	assert.Equal(t, "abc?", ensurePeriod("abc?"))
	assert.Equal(t, "abc.", ensurePeriod("abc  "))
	assert.Equal(t, "", ensurePeriod(""))
}

func TestFirstParty(t *testing.T) {
	assert.Equal(t, "Obergefell", firstParty("Obergefell v. Hodges"))
	assert.Equal(t, "Nixon", firstParty("United States v. Nixon"))
	assert.Equal(t, "Quinlan", firstParty("In re Quinlan"))
	assert.Equal(t, "Miller", firstParty("Miller"))
}

func TestLastName(t *testing.T) {
	assert.Equal(t, "Shannon", lastName("Claude Shannon"))
	assert.Equal(t, "Shannon", lastName("Shannon, Claude"))
	assert.Equal(t, "Cher", lastName("Cher"))
}
