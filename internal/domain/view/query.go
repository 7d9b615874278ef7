package view

import "golang.org/x/text/language"

// SortField names the key items are ordered by.
type SortField string

const (
	SortByName       SortField = "name"
	SortByType       SortField = "type"
	SortByModifiedAt SortField = "modified_at"
	SortBySize       SortField = "size"
)

// Direction is the sort direction.
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// Query selects and orders the items of one folder.
type Query struct {
	FolderID  *string // nil = root
	TagIDs    []string
	Search    string
	SortField SortField // unknown or empty sorts by name
	Direction Direction // empty is ascending
	// Locale drives name collation. language.Und means the service default.
	Locale language.Tag
}
