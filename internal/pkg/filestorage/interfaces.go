package filestorage

import (
	"mime/multipart"
)

// FileStorage defines the interface for upload storage operations.
// Order rows reference stored files only through the opaque path
// strings this interface returns.
type FileStorage interface {
	// SaveFile saves an uploaded file and returns the reference path it
	// is addressable by from then on
	SaveFile(fileHeader *multipart.FileHeader) (string, error)

	// Exists reports whether a previously returned reference still
	// resolves to a file on disk
	Exists(fileRef string) bool

	// GetFullPath returns the full filesystem path for a stored reference
	GetFullPath(fileRef string) string

	// DeleteFile removes a file from storage
	DeleteFile(fileRef string) error
}
