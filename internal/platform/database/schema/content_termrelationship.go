package schema

// ContentTermRelationshipTable represents the 'content.termrelationship' table
type ContentTermRelationshipTable struct {
	Table          string
	ObjectID       string
	TermTaxonomyID string
	TermOrder      string
}

// ContentTermRelationship is the schema definition for content.termrelationship
var ContentTermRelationship = ContentTermRelationshipTable{
	Table:          "content.termrelationship",
	ObjectID:       "objectid",
	TermTaxonomyID: "termtaxonomyid",
	TermOrder:      "termorder",
}
