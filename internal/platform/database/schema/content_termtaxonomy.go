package schema

// ContentTermTaxonomyTable represents the 'content.termtaxonomy' table
type ContentTermTaxonomyTable struct {
	Table       string
	ID          string
	TermID      string
	Taxonomy    string
	Description string
}

// ContentTermTaxonomy is the schema definition for content.termtaxonomy
var ContentTermTaxonomy = ContentTermTaxonomyTable{
	Table:       "content.termtaxonomy",
	ID:          "id",
	TermID:      "termid",
	Taxonomy:    "taxonomy",
	Description: "description",
}
