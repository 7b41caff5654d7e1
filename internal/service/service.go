package service

import (
	"context"

	"heladeria/internal/model"
)

// HeladoService defines the CRUD operations over helados.
type HeladoService interface {
	// Create stores a new helado. The assigned ID is not surfaced to clients.
	Create(ctx context.Context, sabor, precio string) error

	// GetByID retrieves a single helado by ID.
	// Returns model.ErrHeladoNotFound when no row matches.
	GetByID(ctx context.Context, id int32) (*model.Helado, error)

	// GetAll retrieves every helado; an empty store yields an empty slice.
	GetAll(ctx context.Context) ([]model.Helado, error)

	// Update replaces sabor and precio of a helado.
	// A missing ID is not reported as an error.
	Update(ctx context.Context, id int32, sabor, precio string) error

	// Delete removes a helado. Returns model.ErrHeladoNotFound when nothing was deleted.
	Delete(ctx context.Context, id int32) error

	// Ready reports whether the backing store is reachable.
	Ready(ctx context.Context) error
}
