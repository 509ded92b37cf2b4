// Package storage defines the documentation-tree file-system abstraction.
package storage

import "github.com/starford/ansuz/internal/models"

// Provider is the interface for documentation file operations.
type Provider interface {
	// List returns metadata for every .md file under dir (relative to the docs root).
	List(dir string) ([]models.PageMetadata, error)
	// Exists reports whether a file exists at path (relative to the docs root).
	Exists(path string) (bool, error)
	// Read returns the raw bytes of the file at path (relative to the docs root).
	Read(path string) ([]byte, error)
	// Write atomically writes content to path (relative to the docs root).
	Write(path string, content []byte) error
}
