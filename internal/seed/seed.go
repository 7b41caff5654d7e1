// Package seed bootstraps an empty helados table from gzipped JSON-lines
// catalogue files, read from S3 or the local file system.
package seed

import (
	"context"

	"heladeria/internal/model"
)

// Loader defines the interface for loading catalogue seed files.
type Loader interface {
	// Load reads a gzipped JSON-lines seed file and returns its helados.
	// IDs in the file are ignored.
	Load(ctx context.Context, path string) ([]model.Helado, error)
}

// Store is the subset of the helado repository the seeder writes through.
type Store interface {
	Count(ctx context.Context) (int64, error)
	CreateMany(ctx context.Context, helados []model.Helado) (int, error)
}
