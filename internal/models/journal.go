package models

// Journal is the persistence model for the journals table.
type Journal struct {
	JournalID string `db:"journal_id"`
	Username  string `db:"username"`
	TripID    string `db:"trip_id"`
	Comments  string `db:"comments"`
	AuditFields
}

// Image is the persistence model for the images table.
type Image struct {
	ImageID string `db:"image_id"`
	URL     string `db:"url"`
	Caption string `db:"caption"`
}

// JournalImage is the persistence model for the journal_images join table.
type JournalImage struct {
	JournalID string `db:"journal_id"`
	ImageID   string `db:"image_id"`
	Position  int    `db:"position"`
}
