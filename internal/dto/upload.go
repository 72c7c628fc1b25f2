package dto

import "io"

// PhotoUpload carries one uploaded photo from the handler to the journal
// service. Content is consumed exactly once when the file is stored.
type PhotoUpload struct {
	Filename string
	Caption  string
	Content  io.Reader
}
