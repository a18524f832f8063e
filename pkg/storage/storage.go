// Package storage provides the object-storage abstraction behind catalog
// asset uploads.
//
// Two drivers are available out of the box:
//   - "local": local filesystem (default, development)
//   - "s3": S3-compatible object storage (AWS S3, MinIO, R2, Spaces)
//
// Quick start:
//
//	// boot once (in internal/server):
//	storage.Connect()
//
//	// upload a product image and get its public URL
//	url, err := storage.Upload("products/image/", name, contentType, data)
package storage

import "io"

// Disk is the filesystem driver interface. Every driver must implement this.
type Disk interface {
	// Put writes content to path, creating parent directories as needed.
	Put(path string, content []byte) error

	// PutFile writes content to path with an explicit content type, so the
	// object is served back with the right MIME type.
	PutFile(path string, content []byte, contentType string) error

	// Get returns the full content of the file at path.
	Get(path string) ([]byte, error)

	// GetStream returns a ReadCloser for the file. Caller must close it.
	GetStream(path string) (io.ReadCloser, error)

	// Exists reports whether a file exists at path.
	Exists(path string) bool

	// Size returns the byte size of the file.
	Size(path string) (int64, error)

	// URL returns the publicly resolvable URL for path.
	URL(path string) string

	// Delete removes a file. Returns nil if the file did not exist.
	Delete(path string) error

	// Files lists filenames directly inside directory.
	Files(directory string) ([]string, error)
}
