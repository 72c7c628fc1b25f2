package dto

import "github.com/wayfarerhq/wayfarer_backend/internal/core/domain"

// ImageResponse is the public view of an uploaded photo.
type ImageResponse struct {
	ImageID string `json:"imageID"`
	URL     string `json:"url"`
	Caption string `json:"caption,omitempty"`
}

// FailedUpload reports a photo that could not be stored. The journal itself
// is unaffected by individual photo failures.
type FailedUpload struct {
	Filename string `json:"filename"`
	Reason   string `json:"reason"`
}

// JournalResponse is the public view of a journal entry with its images in
// upload order.
type JournalResponse struct {
	JournalID string          `json:"journalID"`
	Username  string          `json:"username"`
	TripID    string          `json:"tripID"`
	Comments  string          `json:"comments"`
	Images    []ImageResponse `json:"images"`
}

// CreateJournalResponse is returned from journal creation and edit. Failed
// lists photos that were rejected by the storage backend.
type CreateJournalResponse struct {
	Journal JournalResponse `json:"journal"`
	Failed  []FailedUpload  `json:"failedUploads,omitempty"`
}

// ListJournalsResponse wraps the journals of one trip.
type ListJournalsResponse struct {
	Journals []JournalResponse `json:"journals"`
}

// ToJournalResponse converts a domain.Journal to its public representation.
func ToJournalResponse(j *domain.Journal) JournalResponse {
	images := make([]ImageResponse, len(j.Images))
	for i, img := range j.Images {
		images[i] = ImageResponse{ImageID: img.ImageID, URL: img.URL, Caption: img.Caption}
	}
	return JournalResponse{
		JournalID: j.JournalID,
		Username:  j.Username,
		TripID:    j.TripID,
		Comments:  j.Comments,
		Images:    images,
	}
}

// ToListJournalsResponse converts a slice of domain.Journal to ListJournalsResponse.
func ToListJournalsResponse(journals []domain.Journal) ListJournalsResponse {
	resp := ListJournalsResponse{Journals: make([]JournalResponse, len(journals))}
	for i := range journals {
		resp.Journals[i] = ToJournalResponse(&journals[i])
	}
	return resp
}
