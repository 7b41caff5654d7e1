package seed

import (
	"context"
	"fmt"
	"sync"

	"heladeria/internal/model"

	"github.com/rs/zerolog"
)

// Seeder populates an empty helados table from one or more seed files.
type Seeder struct {
	loader Loader
	store  Store
	paths  []string
	logger zerolog.Logger
}

// NewSeeder creates a seeder for the given seed file paths.
func NewSeeder(loader Loader, store Store, paths []string, logger zerolog.Logger) *Seeder {
	return &Seeder{
		loader: loader,
		store:  store,
		paths:  paths,
		logger: logger.With().Str("component", "seeder").Logger(),
	}
}

// Seed loads every seed file concurrently and inserts their helados in file
// order as one atomic batch, so a failed seed leaves the table empty and the
// next start retries. It does nothing when no paths are configured or the
// table already holds rows. It returns the number of helados inserted.
func (s *Seeder) Seed(ctx context.Context) (int, error) {
	if len(s.paths) == 0 {
		return 0, nil
	}

	count, err := s.store.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count helados: %w", err)
	}
	if count > 0 {
		s.logger.Info().Int64("existing", count).Msg("helados table not empty, skipping seed")
		return 0, nil
	}

	batches, err := s.loadAll(ctx)
	if err != nil {
		return 0, err
	}

	var helados []model.Helado
	for _, batch := range batches {
		helados = append(helados, batch...)
	}

	inserted, err := s.store.CreateMany(ctx, helados)
	if err != nil {
		return 0, fmt.Errorf("failed to seed helados: %w", err)
	}

	s.logger.Info().
		Int("files", len(s.paths)).
		Int("inserted", inserted).
		Msg("helados seeded")

	return inserted, nil
}

// loadAll loads all seed files concurrently, returning batches in path order.
func (s *Seeder) loadAll(ctx context.Context) ([][]model.Helado, error) {
	type loadResult struct {
		index   int
		helados []model.Helado
		err     error
	}

	resultChan := make(chan loadResult, len(s.paths))
	var wg sync.WaitGroup

	for i, path := range s.paths {
		wg.Add(1)
		go func(index int, path string) {
			defer wg.Done()

			helados, err := s.loader.Load(ctx, path)
			resultChan <- loadResult{index: index, helados: helados, err: err}
		}(i, path)
	}

	wg.Wait()
	close(resultChan)

	results := make([]loadResult, len(s.paths))
	for result := range resultChan {
		results[result.index] = result
	}

	batches := make([][]model.Helado, len(s.paths))
	for i, result := range results {
		if result.err != nil {
			return nil, fmt.Errorf("failed to load seed file %s: %w", s.paths[i], result.err)
		}
		batches[i] = result.helados
	}

	return batches, nil
}
