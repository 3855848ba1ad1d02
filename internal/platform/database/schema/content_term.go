package schema

// ContentTermTable represents the 'content.term' table
type ContentTermTable struct {
	Table string
	ID    string
	Name  string
	Slug  string
}

// ContentTerm is the schema definition for content.term
var ContentTerm = ContentTermTable{
	Table: "content.term",
	ID:    "id",
	Name:  "name",
	Slug:  "slug",
}
