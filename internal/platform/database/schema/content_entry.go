package schema

// ContentEntryTable represents the 'content.entry' table
type ContentEntryTable struct {
	Table         string
	ID            string
	AuthorID      string
	Title         string
	Slug          string
	Status        string
	Type          string
	Content       string
	CreatedAt     string
	CreatedAtGMT  string
	ModifiedAt    string
	ModifiedAtGMT string
}

// ContentEntry is the schema definition for content.entry
var ContentEntry = ContentEntryTable{
	Table:         "content.entry",
	ID:            "id",
	AuthorID:      "authorid",
	Title:         "title",
	Slug:          "slug",
	Status:        "status",
	Type:          "type",
	Content:       "content",
	CreatedAt:     "createdat",
	CreatedAtGMT:  "createdatgmt",
	ModifiedAt:    "modifiedat",
	ModifiedAtGMT: "modifiedatgmt",
}
