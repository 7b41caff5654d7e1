package repository

import (
	"context"

	"heladeria/internal/model"
)

// HeladoRepository defines the interface for helado data access operations.
type HeladoRepository interface {
	// EnsureSchema creates the helados table if it does not already exist.
	EnsureSchema(ctx context.Context) error

	// Create inserts a new helado and returns the store-assigned ID.
	Create(ctx context.Context, sabor, precio string) (int32, error)

	// CreateMany inserts helados in one transaction and returns the number
	// of rows inserted. On error nothing is committed.
	CreateMany(ctx context.Context, helados []model.Helado) (int, error)

	// GetByID retrieves a single helado by its ID.
	// Returns nil without error when no row matches.
	GetByID(ctx context.Context, id int32) (*model.Helado, error)

	// GetAll retrieves every helado. The result is never nil.
	GetAll(ctx context.Context) ([]model.Helado, error)

	// Update replaces sabor and precio of the helado with the given ID
	// and returns the number of rows affected.
	Update(ctx context.Context, id int32, sabor, precio string) (int64, error)

	// Delete removes the helado with the given ID and returns the number of rows affected.
	Delete(ctx context.Context, id int32) (int64, error)

	// Count returns the number of stored helados.
	Count(ctx context.Context) (int64, error)

	// Ping checks that the store is reachable.
	Ping(ctx context.Context) error
}
