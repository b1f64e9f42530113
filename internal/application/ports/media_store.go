package ports

import (
	"context"
	"io"

	"content-manager-api/internal/domain/attachment"
)

type (
	// Upload is one file on its way to the media store. Key is the
	// pre-generated storage path, Kind the store-side category the object
	// must be filed (and later deleted) under.
	Upload struct {
		Key      string
		FileName string
		MimeType string
		Size     int64
		Kind     attachment.ResourceKind
		Body     io.Reader
	}

	// StoredObject is the stable external reference of an uploaded file.
	// PublicID is the deletion handle and is never derived from URL.
	StoredObject struct {
		URL      string
		PublicID string
		Kind     attachment.ResourceKind
	}
)

// MediaStore is the storage backend boundary. Implementations: the remote
// media store and the legacy local-disk backend serving /uploads.
type MediaStore interface {
	Put(ctx context.Context, up Upload) (StoredObject, error)
	Delete(ctx context.Context, publicID string, kind attachment.ResourceKind) error
}
