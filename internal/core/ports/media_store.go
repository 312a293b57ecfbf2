package ports

import (
	"context"
	"io"
)

// MediaStore turns an uploaded file into a stable image reference that can
// later be served back, e.g. "/uploads/V1StGXR8_Z5jdHi6B-myT.jpg".
type MediaStore interface {
	Save(ctx context.Context, filename string, content io.Reader) (string, error)

	// Delete removes the file behind a reference returned by Save. A missing
	// file is not an error.
	Delete(ctx context.Context, ref string) error
}
