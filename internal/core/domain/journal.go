package domain

// Journal is a travel journal entry. It is tagged with both the owning
// username and the trip, redundantly enforcing ownership without a join.
type Journal struct {
	JournalID string  `json:"journalID"`
	Username  string  `json:"username"`
	TripID    string  `json:"tripID"`
	Comments  string  `json:"comments"`
	Images    []Image `json:"images,omitempty"`
	AuditFields
}

// Image is an uploaded photo. It may be referenced by several journals through
// the journal_images join and is only deleted once unreferenced.
type Image struct {
	ImageID string `json:"imageID"`
	URL     string `json:"url"`
	Caption string `json:"caption,omitempty"`
}
