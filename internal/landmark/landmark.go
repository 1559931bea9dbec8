// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package landmark resolves well-known case names and their aliases to
// fully structured legal citations without any network lookup. The cache
// is built once at construction and read-only afterwards, so it is safe
// to share across goroutines without locking.
package landmark

import (
	"strings"

	"github.com/caplane/citeflex/internal/pattern"
	"github.com/caplane/citeflex/pkg/types"
)

const scotus = "Supreme Court of the United States"

// Entry describes one landmark case. Cite is the volume-reporter-page
// string; it is parsed into structured fields at cache construction.
type Entry struct {
	Name    string
	Aliases []string
	Cite    string
	Court   string
	Year    int
}

// Cache maps normalized case names and aliases to structured citations.
type Cache struct {
	index map[string]types.Citation
}

// New builds the cache from the built-in landmark table.
func New() *Cache {
	return NewFromEntries(entries)
}

// NewFromEntries builds a cache from an explicit entry list. Canonical
// names and aliases index the same record; construction order is
// irrelevant.
func NewFromEntries(list []Entry) *Cache {
	c := &Cache{index: make(map[string]types.Citation, 2*len(list))}
	for _, e := range list {
		cit := types.Citation{
			Type:         types.TypeLegal,
			CaseName:     e.Name,
			Court:        e.Court,
			Year:         e.Year,
			Jurisdiction: "US",
		}
		if vol, rep, page, ok := pattern.MatchReporter(e.Cite); ok {
			cit.Volume, cit.Reporter, cit.Pages = vol, rep, page
		}
		c.index[NormalizeKey(e.Name)] = cit
		for _, a := range e.Aliases {
			c.index[NormalizeKey(a)] = cit
		}
	}
	return c
}

// Lookup resolves a case name or alias to its structured citation.
// Matching is case-insensitive and punctuation-normalized, so
// "Brown v. Board of Education" and "brown v board of education"
// resolve to the same record.
func (c *Cache) Lookup(nameOrAlias string) (types.Citation, bool) {
	cit, ok := c.index[NormalizeKey(nameOrAlias)]
	return cit, ok
}

// Contains reports whether the text resolves to a cached case. Used by
// the detector to catch bare case names that no reporter pattern matches.
func (c *Cache) Contains(text string) bool {
	_, ok := c.index[NormalizeKey(text)]
	return ok
}

// Len returns the number of index keys (canonical names plus aliases).
func (c *Cache) Len() int { return len(c.index) }

// NormalizeKey lowercases, strips sentence punctuation, rewrites
// "vs"/"versus" to "v", and collapses whitespace.
func NormalizeKey(text string) string {
	s := strings.ToLower(text)
	s = strings.NewReplacer(".", "", ",", "", ":", "", ";", "").Replace(s)
	fields := strings.Fields(s)
	for i, f := range fields {
		if f == "vs" || f == "versus" {
			fields[i] = "v"
		}
	}
	return strings.Join(fields, " ")
}

// entries is the built-in landmark table. Cite strings use the exact
// reporter abbreviations from the pattern package's closed set.
var entries = []Entry{
	{Name: "Brown v. Board of Education", Aliases: []string{"brown v board"}, Cite: "347 U.S. 483", Court: scotus, Year: 1954},
	{Name: "Roe v. Wade", Cite: "410 U.S. 113", Court: scotus, Year: 1973},
	{Name: "Marbury v. Madison", Cite: "5 U.S. 137", Court: scotus, Year: 1803},
	{Name: "McCulloch v. Maryland", Cite: "17 U.S. 316", Court: scotus, Year: 1819},
	{Name: "Gibbons v. Ogden", Cite: "22 U.S. 1", Court: scotus, Year: 1824},
	{Name: "Dred Scott v. Sandford", Cite: "60 U.S. 393", Court: scotus, Year: 1857},
	{Name: "Plessy v. Ferguson", Cite: "163 U.S. 537", Court: scotus, Year: 1896},
	{Name: "Lochner v. New York", Cite: "198 U.S. 45", Court: scotus, Year: 1905},
	{Name: "Wickard v. Filburn", Cite: "317 U.S. 111", Court: scotus, Year: 1942},
	{Name: "Korematsu v. United States", Cite: "323 U.S. 214", Court: scotus, Year: 1944},
	{Name: "Shelley v. Kraemer", Cite: "334 U.S. 1", Court: scotus, Year: 1948},
	{Name: "Mapp v. Ohio", Cite: "367 U.S. 643", Court: scotus, Year: 1961},
	{Name: "Gideon v. Wainwright", Cite: "372 U.S. 335", Court: scotus, Year: 1963},
	{Name: "New York Times Co. v. Sullivan", Aliases: []string{"nyt v sullivan"}, Cite: "376 U.S. 254", Court: scotus, Year: 1964},
	{Name: "Heart of Atlanta Motel, Inc. v. United States", Aliases: []string{"heart of atlanta motel v united states"}, Cite: "379 U.S. 241", Court: scotus, Year: 1964},
	{Name: "Griswold v. Connecticut", Cite: "381 U.S. 479", Court: scotus, Year: 1965},
	{Name: "Miranda v. Arizona", Cite: "384 U.S. 436", Court: scotus, Year: 1966},
	{Name: "Loving v. Virginia", Cite: "388 U.S. 1", Court: scotus, Year: 1967},
	{Name: "Tinker v. Des Moines Indep. Community School Dist.", Aliases: []string{"tinker v des moines"}, Cite: "393 U.S. 503", Court: scotus, Year: 1969},
	{Name: "Brandenburg v. Ohio", Cite: "395 U.S. 444", Court: scotus, Year: 1969},
	{Name: "United States v. Nixon", Cite: "418 U.S. 683", Court: scotus, Year: 1974},
	{Name: "Regents of the University of California v. Bakke", Aliases: []string{"regents v bakke"}, Cite: "438 U.S. 265", Court: scotus, Year: 1978},
	{Name: "Chevron U.S.A. Inc. v. Natural Resources Defense Council, Inc.", Aliases: []string{"chevron v nrdc"}, Cite: "467 U.S. 837", Court: scotus, Year: 1984},
	{Name: "Cruzan v. Director, Missouri Department of Health", Aliases: []string{"cruzan v director"}, Cite: "497 U.S. 261", Court: scotus, Year: 1990},
	{Name: "Washington v. Glucksberg", Cite: "521 U.S. 702", Court: scotus, Year: 1997},
	{Name: "Bush v. Gore", Cite: "531 U.S. 98", Court: scotus, Year: 2000},
	{Name: "Grutter v. Bollinger", Cite: "539 U.S. 306", Court: scotus, Year: 2003},
	{Name: "District of Columbia v. Heller", Aliases: []string{"dc v heller"}, Cite: "554 U.S. 570", Court: scotus, Year: 2008},
	{Name: "Citizens United v. FEC", Cite: "558 U.S. 310", Court: scotus, Year: 2010},
	{Name: "Obergefell v. Hodges", Cite: "576 U.S. 644", Court: scotus, Year: 2015},
	{Name: "Dobbs v. Jackson Women's Health Organization", Aliases: []string{"dobbs v jackson"}, Cite: "597 U.S. 215", Court: scotus, Year: 2022},

	// Federal courts of appeals and district courts.
	{Name: "United States v. Carroll Towing Co.", Aliases: []string{"united states v carroll towing"}, Cite: "159 F.2d 169", Court: "2d Cir.", Year: 1947},
	{Name: "Buckley v. Valeo", Cite: "519 F.2d 821", Court: "D.C. Cir.", Year: 1975},
	{Name: "United States v. Microsoft Corp.", Aliases: []string{"united states v microsoft"}, Cite: "253 F.3d 34", Court: "D.C. Cir.", Year: 2001},
	{Name: "Newdow v. U.S. Congress", Cite: "292 F.3d 597", Court: "9th Cir.", Year: 2002},
	{Name: "Massachusetts v. EPA", Cite: "415 F.3d 50", Court: "D.C. Cir.", Year: 2005},
	{Name: "Viacom Int'l, Inc. v. YouTube, Inc.", Aliases: []string{"viacom v youtube"}, Cite: "676 F.3d 19", Court: "2d Cir.", Year: 2012},
	{Name: "Authors Guild v. Google, Inc.", Aliases: []string{"authors guild v google"}, Cite: "804 F.3d 202", Court: "2d Cir.", Year: 2015},
	{Name: "Lenz v. Universal Music Corp.", Aliases: []string{"lenz v universal music"}, Cite: "815 F.3d 1145", Court: "9th Cir.", Year: 2016},
	{Name: "State St. Bank & Trust Co. v. Signature Fin. Group", Aliases: []string{"state street bank v signature financial"}, Cite: "149 F.3d 1368", Court: "Fed. Cir.", Year: 1998},
	{Name: "A&M Records, Inc. v. Napster, Inc.", Aliases: []string{"a&m records v napster"}, Cite: "114 F. Supp. 2d 896", Court: "N.D. Cal.", Year: 2000},
	{Name: "Kitzmiller v. Dover Area School Dist.", Aliases: []string{"kitzmiller", "kitzmiller v dover"}, Cite: "400 F. Supp. 2d 707", Court: "M.D. Pa.", Year: 2005},
	{Name: "Floyd v. City of New York", Cite: "959 F. Supp. 2d 540", Court: "S.D.N.Y.", Year: 2013},
	{Name: "Jones v. Clinton", Cite: "990 F. Supp. 657", Court: "E.D. Ark.", Year: 1998},
	{Name: "United States v. North", Aliases: []string{"united states v oliver north"}, Cite: "708 F. Supp. 380", Court: "D.D.C.", Year: 1988},

	// State courts.
	{Name: "Palsgraf v. Long Island R.R. Co.", Aliases: []string{"palsgraf v long island", "palsgraf lirr"}, Cite: "248 N.Y. 339", Court: "N.Y.", Year: 1928},
	{Name: "MacPherson v. Buick Motor Co.", Aliases: []string{"macpherson v buick"}, Cite: "217 N.Y. 382", Court: "N.Y.", Year: 1916},
	{Name: "People v. Goetz", Cite: "68 N.Y.2d 96", Court: "N.Y.", Year: 1986},
	{Name: "Jacob & Youngs, Inc. v. Kent", Aliases: []string{"jacob and youngs v kent"}, Cite: "230 N.Y. 239", Court: "N.Y.", Year: 1921},
	{Name: "Tarasoff v. Regents of the University of California", Aliases: []string{"tarasoff v regents"}, Cite: "17 Cal. 3d 425", Court: "Cal.", Year: 1976},
	{Name: "Grimshaw v. Ford Motor Co.", Aliases: []string{"grimshaw v ford motor co"}, Cite: "119 Cal. App. 3d 757", Court: "Cal. Ct. App.", Year: 1981},
	{Name: "Hawkins v. McGee", Cite: "84 N.H. 114", Court: "N.H.", Year: 1929},
	{Name: "Lucy v. Zehmer", Cite: "196 Va. 493", Court: "Va.", Year: 1954},
	{Name: "Greenspan v. Osheroff", Cite: "232 Va. 388", Court: "Supreme Court of Virginia", Year: 1986},
	{Name: "Sherwood v. Walker", Cite: "66 Mich. 568", Court: "Mich.", Year: 1887},
	{Name: "In re Quinlan", Cite: "355 A.2d 647", Court: "N.J.", Year: 1976},
	{Name: "In re Baby M", Cite: "537 A.2d 1227", Court: "N.J.", Year: 1988},
	{Name: "Commonwealth v. Hunt", Cite: "45 Mass. 111", Court: "Mass.", Year: 1842},
	{Name: "Osheroff v. Chestnut Lodge", Cite: "490 A.2d 720", Court: "Md. Ct. Spec. App.", Year: 1985},
}
