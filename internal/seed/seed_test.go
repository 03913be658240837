package seed_test

import (
	"context"
	"testing"

	"github.com/SantinoArroyo/SistemaMobile-Ventas/internal/infra"
	"github.com/SantinoArroyo/SistemaMobile-Ventas/internal/repository"
	"github.com/SantinoArroyo/SistemaMobile-Ventas/internal/seed"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEsIdempotente(t *testing.T) {
	db, err := infra.NewDatabase(":memory:")
	require.NoError(t, err)
	productoRepo := repository.NewProductoRepository(db)
	clienteRepo := repository.NewClienteRepository(db)
	ctx := context.Background()

	require.NoError(t, seed.Load(ctx, productoRepo, clienteRepo))

	productos, err := productoRepo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, productos, 5)
	clientes, err := clienteRepo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, clientes, 5)

	// A second run must not duplicate rows.
	require.NoError(t, seed.Load(ctx, productoRepo, clienteRepo))

	productos, err = productoRepo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, productos, 5)
	clientes, err = clienteRepo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, clientes, 5)
}
