package repository

import (
	"context"
	"errors"
	"fmt"

	"heladeria/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

const schema = `
	CREATE TABLE IF NOT EXISTS helados (
		id SERIAL PRIMARY KEY,
		sabor VARCHAR NOT NULL,
		precio VARCHAR NOT NULL
	)
`

// heladoRepository implements the HeladoRepository interface using PostgreSQL.
type heladoRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewHeladoRepository creates a new PostgreSQL-backed helado repository.
func NewHeladoRepository(pool *pgxpool.Pool, logger zerolog.Logger) HeladoRepository {
	return &heladoRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "helado").Logger(),
	}
}

// withConn acquires a pooled connection for the duration of fn and always releases it.
func (r *heladoRepository) withConn(ctx context.Context, fn func(conn *pgxpool.Conn) error) error {
	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to acquire database connection")
		return fmt.Errorf("failed to acquire connection: %w", err)
	}
	defer conn.Release()

	return fn(conn)
}

// EnsureSchema creates the helados table if it does not already exist.
func (r *heladoRepository) EnsureSchema(ctx context.Context) error {
	return r.withConn(ctx, func(conn *pgxpool.Conn) error {
		if _, err := conn.Exec(ctx, schema); err != nil {
			r.logger.Error().Err(err).Msg("failed to create helados table")
			return fmt.Errorf("failed to create schema: %w", err)
		}
		r.logger.Info().Msg("helados table ready")
		return nil
	})
}

// Create inserts a new helado and returns the store-assigned ID.
func (r *heladoRepository) Create(ctx context.Context, sabor, precio string) (int32, error) {
	query := `
		INSERT INTO helados (sabor, precio)
		VALUES ($1, $2)
		RETURNING id
	`

	var id int32
	err := r.withConn(ctx, func(conn *pgxpool.Conn) error {
		return conn.QueryRow(ctx, query, sabor, precio).Scan(&id)
	})
	if err != nil {
		r.logger.Error().Err(err).Str("sabor", sabor).Msg("failed to insert helado")
		return 0, fmt.Errorf("failed to insert helado: %w", err)
	}

	r.logger.Debug().Int32("helado_id", id).Msg("helado created")

	return id, nil
}

// CreateMany inserts helados in order inside one transaction. Either every
// row is committed or none is. It returns the number of rows inserted.
func (r *heladoRepository) CreateMany(ctx context.Context, helados []model.Helado) (int, error) {
	if len(helados) == 0 {
		return 0, nil
	}

	query := `
		INSERT INTO helados (sabor, precio)
		VALUES ($1, $2)
	`

	err := r.withConn(ctx, func(conn *pgxpool.Conn) error {
		tx, err := conn.Begin(ctx)
		if err != nil {
			return fmt.Errorf("failed to begin transaction: %w", err)
		}
		// No-op once the transaction has committed
		defer func() { _ = tx.Rollback(ctx) }()

		batch := &pgx.Batch{}
		for _, h := range helados {
			batch.Queue(query, h.Sabor, h.Precio)
		}

		results := tx.SendBatch(ctx, batch)
		for i := range helados {
			if _, err := results.Exec(); err != nil {
				_ = results.Close()
				return fmt.Errorf("row %d: %w", i, err)
			}
		}
		if err := results.Close(); err != nil {
			return err
		}

		return tx.Commit(ctx)
	})
	if err != nil {
		r.logger.Error().Err(err).Int("count", len(helados)).Msg("failed to insert helados")
		return 0, fmt.Errorf("failed to insert helados: %w", err)
	}

	r.logger.Debug().Int("count", len(helados)).Msg("helados created")

	return len(helados), nil
}

// GetByID retrieves a single helado by its ID.
func (r *heladoRepository) GetByID(ctx context.Context, id int32) (*model.Helado, error) {
	query := `
		SELECT id, sabor, precio
		FROM helados
		WHERE id = $1
	`

	var h model.Helado
	err := r.withConn(ctx, func(conn *pgxpool.Conn) error {
		return conn.QueryRow(ctx, query, id).Scan(&h.ID, &h.Sabor, &h.Precio)
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Int32("helado_id", id).Msg("helado not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Int32("helado_id", id).Msg("failed to query helado")
		return nil, fmt.Errorf("failed to query helado: %w", err)
	}

	return &h, nil
}

// GetAll retrieves every helado ordered by ID.
func (r *heladoRepository) GetAll(ctx context.Context) ([]model.Helado, error) {
	query := `
		SELECT id, sabor, precio
		FROM helados
		ORDER BY id
	`

	helados := make([]model.Helado, 0)
	err := r.withConn(ctx, func(conn *pgxpool.Conn) error {
		rows, err := conn.Query(ctx, query)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var h model.Helado
			if err := rows.Scan(&h.ID, &h.Sabor, &h.Precio); err != nil {
				return fmt.Errorf("failed to scan helado: %w", err)
			}
			helados = append(helados, h)
		}

		return rows.Err()
	})
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query helados")
		return nil, fmt.Errorf("failed to query helados: %w", err)
	}

	return helados, nil
}

// Update replaces sabor and precio of the helado with the given ID.
func (r *heladoRepository) Update(ctx context.Context, id int32, sabor, precio string) (int64, error) {
	query := `
		UPDATE helados
		SET sabor = $1, precio = $2
		WHERE id = $3
	`

	var affected int64
	err := r.withConn(ctx, func(conn *pgxpool.Conn) error {
		tag, err := conn.Exec(ctx, query, sabor, precio, id)
		if err != nil {
			return err
		}
		affected = tag.RowsAffected()
		return nil
	})
	if err != nil {
		r.logger.Error().Err(err).Int32("helado_id", id).Msg("failed to update helado")
		return 0, fmt.Errorf("failed to update helado: %w", err)
	}

	return affected, nil
}

// Delete removes the helado with the given ID.
func (r *heladoRepository) Delete(ctx context.Context, id int32) (int64, error) {
	query := `DELETE FROM helados WHERE id = $1`

	var affected int64
	err := r.withConn(ctx, func(conn *pgxpool.Conn) error {
		tag, err := conn.Exec(ctx, query, id)
		if err != nil {
			return err
		}
		affected = tag.RowsAffected()
		return nil
	})
	if err != nil {
		r.logger.Error().Err(err).Int32("helado_id", id).Msg("failed to delete helado")
		return 0, fmt.Errorf("failed to delete helado: %w", err)
	}

	return affected, nil
}

// Count returns the number of stored helados.
func (r *heladoRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.withConn(ctx, func(conn *pgxpool.Conn) error {
		return conn.QueryRow(ctx, `SELECT COUNT(*) FROM helados`).Scan(&count)
	})
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to count helados")
		return 0, fmt.Errorf("failed to count helados: %w", err)
	}

	return count, nil
}

// Ping checks that the store is reachable.
func (r *heladoRepository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}
