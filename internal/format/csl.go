// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package format

import (
	"io"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/caplane/citeflex/pkg/types"
)

// CSLItem represents a bibliographic entry in CSL (Citation Style
// Language) format. The field names follow the CSL-JSON/CSL-YAML
// schema so that output is consumable by Pandoc and reference
// managers.
type CSLItem struct {
	ID             string    `yaml:"id"`
	Type           string    `yaml:"type"`
	Title          string    `yaml:"title,omitempty"`
	Author         []CSLName `yaml:"author,omitempty"`
	ContainerTitle string    `yaml:"container-title,omitempty"`
	Volume         string    `yaml:"volume,omitempty"`
	Issue          string    `yaml:"issue,omitempty"`
	Page           string    `yaml:"page,omitempty"`
	Publisher      string    `yaml:"publisher,omitempty"`
	PublisherPlace string    `yaml:"publisher-place,omitempty"`
	Issued         *CSLDate  `yaml:"issued,omitempty"`
	DOI            string    `yaml:"DOI,omitempty"`
	PMID           string    `yaml:"PMID,omitempty"`
	ISBN           string    `yaml:"ISBN,omitempty"`
	URL            string    `yaml:"url,omitempty"`
	CaseName       string    `yaml:"case-name,omitempty"`
	Authority      string    `yaml:"authority,omitempty"`
}

// CSLName represents a person's name in CSL format.
type CSLName struct {
	Family  string `yaml:"family,omitempty"`
	Given   string `yaml:"given,omitempty"`
	Literal string `yaml:"literal,omitempty"`
}

// CSLDate represents a date in CSL format using date-parts.
type CSLDate struct {
	DateParts [][]int `yaml:"date-parts"`
}

// cslTypes maps citation types to CSL item types.
var cslTypes = map[types.CitationType]string{
	types.TypeJournal:    "article-journal",
	types.TypeMedical:    "article-journal",
	types.TypeBook:       "book",
	types.TypeLegal:      "legal_case",
	types.TypeNewspaper:  "article-newspaper",
	types.TypeGovernment: "report",
	types.TypeInterview:  "interview",
	types.TypeUnknown:    "document",
}

// WriteCSL writes citations as a CSL-YAML list to w.
func WriteCSL(cits []types.Citation, w io.Writer) error {
	items := make([]CSLItem, len(cits))
	for i, c := range cits {
		items[i] = ToCSLItem(c)
	}
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(items)
}

// ToCSLItem converts a citation to a CSL item. The item ID is the
// citation's source key so repeated sources share an entry ID.
func ToCSLItem(c types.Citation) CSLItem {
	item := CSLItem{
		ID:             c.Key(),
		Type:           cslTypes[c.Type],
		Title:          c.Title,
		ContainerTitle: c.Publication,
		Volume:         c.Volume,
		Issue:          c.Issue,
		Page:           c.Pages,
		Publisher:      c.Publisher,
		PublisherPlace: c.Place,
		DOI:            c.DOI,
		PMID:           c.PMID,
		ISBN:           c.ISBN,
		URL:            c.URL,
		CaseName:       c.CaseName,
		Authority:      c.Court,
	}
	if item.ID == "" {
		item.ID = "raw:" + strings.Join(strings.Fields(strings.ToLower(c.Raw)), " ")
	}
	if item.Type == "" {
		item.Type = "document"
	}
	if c.Type == types.TypeLegal && item.Title == "" {
		item.Title = c.CaseName
	}
	for _, a := range c.Authors {
		item.Author = append(item.Author, cslName(a))
	}
	if c.Year != 0 {
		item.Issued = &CSLDate{DateParts: [][]int{{c.Year}}}
	}
	return item
}

// cslName splits a display name into CSL family/given parts. Single
// token names use the literal field.
func cslName(name string) CSLName {
	given, family := splitName(name)
	if given == "" {
		return CSLName{Literal: family}
	}
	return CSLName{Given: given, Family: family}
}
