package catalog

// Record is one product release. The name is the key and lives outside
// the record in both stores.
type Record struct {
	// free text as it appears on the page, e.g. "1983" or "January 24, 1984"
	ReleaseDate string   `json:"release date"`
	Category    Category `json:"category"`
	// the label a cached record carried when it is not one of the known
	// labels. empty for records built from the page.
	RawLabel string `json:"-"`
}

// CategoryLabel is the label the record is stored and mirrored under.
func (r Record) CategoryLabel() string {
	if r.Category == Unknown && r.RawLabel != "" {
		return r.RawLabel
	}
	return r.Category.String()
}

// NamedRecord pairs a Record with its product name.
type NamedRecord struct {
	Name string
	Record
}
