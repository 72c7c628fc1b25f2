// Package storage abstracts where uploaded photo files live. The pgsql layer
// records paths returned from Store; Delete takes those same paths back.
package storage

import (
	"context"
	"io"
)

// FileStore is the photo file backend.
type FileStore interface {
	// Store writes the content under a backend-chosen path derived from
	// suggestedName and returns that path.
	Store(ctx context.Context, content io.Reader, suggestedName string) (string, error)
	// Delete removes a previously stored file. Deleting an unknown path is
	// not an error.
	Delete(ctx context.Context, path string) error
}
