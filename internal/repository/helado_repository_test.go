package repository

import (
	"context"
	"testing"

	"heladeria/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeladoRepository_EnsureSchemaIsIdempotent(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewHeladoRepository(pool, zerolog.Nop())

	// setupTestDB already created the table once
	require.NoError(t, repo.EnsureSchema(context.Background()))
}

func TestHeladoRepository_CreateAndGetByID(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewHeladoRepository(pool, zerolog.Nop())
	ctx := context.Background()

	id, err := repo.Create(ctx, "vanilla", "3.50")
	require.NoError(t, err)
	assert.Positive(t, id)

	tests := []struct {
		name      string
		id        int32
		expectNil bool
	}{
		{
			name:      "Helado exists",
			id:        id,
			expectNil: false,
		},
		{
			name:      "Helado does not exist",
			id:        id + 1000,
			expectNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			helado, err := repo.GetByID(ctx, tt.id)

			require.NoError(t, err)
			if tt.expectNil {
				assert.Nil(t, helado)
				return
			}
			require.NotNil(t, helado)
			assert.Equal(t, tt.id, helado.ID)
			assert.Equal(t, "vanilla", helado.Sabor)
			assert.Equal(t, "3.50", helado.Precio)
		})
	}
}

func TestHeladoRepository_CreateMany(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewHeladoRepository(pool, zerolog.Nop())
	ctx := context.Background()

	t.Run("Empty batch is a no-op", func(t *testing.T) {
		inserted, err := repo.CreateMany(ctx, nil)
		require.NoError(t, err)
		assert.Equal(t, 0, inserted)
	})

	t.Run("Failing row rolls back the whole batch", func(t *testing.T) {
		// PostgreSQL rejects NUL bytes in text values
		inserted, err := repo.CreateMany(ctx, []model.Helado{
			{Sabor: "vanilla", Precio: "3.50"},
			{Sabor: "bad\x00sabor", Precio: "1.00"},
			{Sabor: "fresa", Precio: "3.00"},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to insert helados")
		assert.Equal(t, 0, inserted)

		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(0), count)
	})

	t.Run("Inserts every row in order", func(t *testing.T) {
		inserted, err := repo.CreateMany(ctx, []model.Helado{
			{Sabor: "vanilla", Precio: "3.50"},
			{Sabor: "fresa", Precio: "3.00"},
		})
		require.NoError(t, err)
		assert.Equal(t, 2, inserted)

		helados, err := repo.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, helados, 2)
		assert.Equal(t, "vanilla", helados[0].Sabor)
		assert.Equal(t, "fresa", helados[1].Sabor)
	})
}

func TestHeladoRepository_GetAll(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewHeladoRepository(pool, zerolog.Nop())
	ctx := context.Background()

	helados, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.NotNil(t, helados)
	assert.Empty(t, helados)

	for _, sabor := range []string{"fresa", "chocolate", "limon"} {
		_, err := repo.Create(ctx, sabor, "2.00")
		require.NoError(t, err)
	}

	helados, err = repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, helados, 3)

	// Ordered by ID, which follows insertion order
	assert.Equal(t, "fresa", helados[0].Sabor)
	assert.Equal(t, "chocolate", helados[1].Sabor)
	assert.Equal(t, "limon", helados[2].Sabor)
	for i := 1; i < len(helados); i++ {
		assert.Less(t, helados[i-1].ID, helados[i].ID)
	}
}

func TestHeladoRepository_Update(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewHeladoRepository(pool, zerolog.Nop())
	ctx := context.Background()

	id, err := repo.Create(ctx, "mango", "4.00")
	require.NoError(t, err)

	affected, err := repo.Update(ctx, id, "mango biche", "4.25")
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	helado, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, helado)
	assert.Equal(t, id, helado.ID)
	assert.Equal(t, "mango biche", helado.Sabor)
	assert.Equal(t, "4.25", helado.Precio)

	affected, err = repo.Update(ctx, id+1000, "nada", "0")
	require.NoError(t, err)
	assert.Equal(t, int64(0), affected)
}

func TestHeladoRepository_Delete(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewHeladoRepository(pool, zerolog.Nop())
	ctx := context.Background()

	id, err := repo.Create(ctx, "coco", "3.00")
	require.NoError(t, err)

	affected, err := repo.Delete(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	affected, err = repo.Delete(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(0), affected)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestHeladoRepository_ParameterizedInput(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewHeladoRepository(pool, zerolog.Nop())
	ctx := context.Background()

	sabor := "x'); DROP TABLE helados; --"
	id, err := repo.Create(ctx, sabor, "1.00")
	require.NoError(t, err)

	helado, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, helado)
	assert.Equal(t, sabor, helado.Sabor)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestHeladoRepository_ClosedPool(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewHeladoRepository(pool, zerolog.Nop())
	ctx := context.Background()

	pool.Close()

	_, err := repo.GetAll(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to query helados")

	_, err = repo.GetByID(ctx, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to query helado")
}
