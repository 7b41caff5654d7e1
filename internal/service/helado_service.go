package service

import (
	"context"
	"fmt"

	"heladeria/internal/model"
	"heladeria/internal/repository"

	"github.com/rs/zerolog"
)

// heladoService implements HeladoService.
type heladoService struct {
	repo   repository.HeladoRepository
	logger zerolog.Logger
}

// NewHeladoService creates a new helado service.
func NewHeladoService(repo repository.HeladoRepository, logger zerolog.Logger) HeladoService {
	return &heladoService{
		repo:   repo,
		logger: logger.With().Str("service", "helado").Logger(),
	}
}

// Create stores a new helado.
func (s *heladoService) Create(ctx context.Context, sabor, precio string) error {
	id, err := s.repo.Create(ctx, sabor, precio)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create helado")
		return fmt.Errorf("failed to create helado: %w", err)
	}

	s.logger.Info().Int32("helado_id", id).Str("sabor", sabor).Msg("helado created")

	return nil
}

// GetByID retrieves a single helado by ID.
func (s *heladoService) GetByID(ctx context.Context, id int32) (*model.Helado, error) {
	helado, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int32("helado_id", id).Msg("failed to get helado by ID")
		return nil, fmt.Errorf("failed to get helado: %w", err)
	}

	if helado == nil {
		return nil, model.ErrHeladoNotFound
	}

	return helado, nil
}

// GetAll retrieves every helado.
func (s *heladoService) GetAll(ctx context.Context) ([]model.Helado, error) {
	helados, err := s.repo.GetAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to get all helados")
		return nil, fmt.Errorf("failed to get helados: %w", err)
	}

	if helados == nil {
		helados = []model.Helado{}
	}

	s.logger.Debug().Int("count", len(helados)).Msg("retrieved helados")

	return helados, nil
}

// Update replaces sabor and precio of a helado.
func (s *heladoService) Update(ctx context.Context, id int32, sabor, precio string) error {
	affected, err := s.repo.Update(ctx, id, sabor, precio)
	if err != nil {
		s.logger.Error().Err(err).Int32("helado_id", id).Msg("failed to update helado")
		return fmt.Errorf("failed to update helado: %w", err)
	}

	// Updating a missing helado still reports success to the caller.
	if affected == 0 {
		s.logger.Warn().Int32("helado_id", id).Msg("update matched no helado")
	}

	return nil
}

// Delete removes a helado.
func (s *heladoService) Delete(ctx context.Context, id int32) error {
	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int32("helado_id", id).Msg("failed to delete helado")
		return fmt.Errorf("failed to delete helado: %w", err)
	}

	if affected == 0 {
		return model.ErrHeladoNotFound
	}

	s.logger.Info().Int32("helado_id", id).Msg("helado deleted")

	return nil
}

// Ready reports whether the backing store is reachable.
func (s *heladoService) Ready(ctx context.Context) error {
	return s.repo.Ping(ctx)
}
