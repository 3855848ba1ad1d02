package schema

// ContentEntryMetaTable represents the 'content.entrymeta' table
type ContentEntryMetaTable struct {
	Table   string
	ID      string
	EntryID string
	Key     string
	Value   string
}

// ContentEntryMeta is the schema definition for content.entrymeta
var ContentEntryMeta = ContentEntryMetaTable{
	Table:   "content.entrymeta",
	ID:      "id",
	EntryID: "entryid",
	Key:     "metakey",
	Value:   "metavalue",
}
