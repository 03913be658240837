package service_test

import (
	"context"
	"testing"

	"github.com/SantinoArroyo/SistemaMobile-Ventas/internal/dto"
	"github.com/SantinoArroyo/SistemaMobile-Ventas/internal/model"
	"github.com/SantinoArroyo/SistemaMobile-Ventas/internal/service"
	"github.com/SantinoArroyo/SistemaMobile-Ventas/internal/state"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type inventarioFixture struct {
	svc          service.InventarioService
	productoRepo *stubProductoRepo
	movRepo      *stubMovRepo
	productos    *state.Productos
	movimientos  *state.Movimientos
}

func newInventarioFixture(t *testing.T) *inventarioFixture {
	t.Helper()
	productoRepo := newStubProductoRepo()
	movRepo := &stubMovRepo{}
	productosState := state.NewProductos(productoRepo)
	movimientosState := state.NewMovimientos(movRepo)
	return &inventarioFixture{
		svc:          service.NewInventarioService(productoRepo, movRepo, productosState, movimientosState),
		productoRepo: productoRepo,
		movRepo:      movRepo,
		productos:    productosState,
		movimientos:  movimientosState,
	}
}

func (f *inventarioFixture) addProducto(t *testing.T, nombre string, stock, minStock int) *model.Producto {
	t.Helper()
	p := &model.Producto{
		Nombre:      nombre,
		Precio:      decimal.NewFromFloat(25.50),
		Stock:       stock,
		StockMinimo: minStock,
		Categoria:   "Accesorios",
	}
	require.NoError(t, f.productoRepo.Create(context.Background(), p))
	return p
}

func TestAjustarStock_Ingreso(t *testing.T) {
	f := newInventarioFixture(t)
	p := f.addProducto(t, "Mouse Inalámbrico", 5, 10)

	resp, err := f.svc.AjustarStock(context.Background(), dto.AjustarStockRequest{
		ProductoID: p.ID.String(),
		Tipo:       model.MovimientoIngreso,
		Cantidad:   30,
		Motivo:     "Reposición proveedor",
	})
	require.NoError(t, err)
	assert.Equal(t, model.MovimientoIngreso, resp.Tipo)
	assert.Equal(t, 30, resp.Cantidad)

	got, _ := f.productoRepo.FindByID(context.Background(), p.ID)
	assert.Equal(t, 35, got.Stock)
	require.Len(t, f.movRepo.movimientos, 1)
	assert.Equal(t, "Reposición proveedor", f.movRepo.movimientos[0].Motivo)
}

func TestAjustarStock_EgresoClampaEnCero(t *testing.T) {
	// OUT of 8 against stock 5: stock floors at 0, the ledger keeps 8.
	f := newInventarioFixture(t)
	p := f.addProducto(t, "Teclado Mecánico", 5, 2)

	_, err := f.svc.AjustarStock(context.Background(), dto.AjustarStockRequest{
		ProductoID: p.ID.String(),
		Tipo:       model.MovimientoEgreso,
		Cantidad:   8,
		Motivo:     "Rotura en depósito",
	})
	require.NoError(t, err)

	got, _ := f.productoRepo.FindByID(context.Background(), p.ID)
	assert.Equal(t, 0, got.Stock)
	require.Len(t, f.movRepo.movimientos, 1)
	assert.Equal(t, 8, f.movRepo.movimientos[0].Cantidad)
}

func TestAjustarStock_ProductoDesconocido(t *testing.T) {
	f := newInventarioFixture(t)

	_, err := f.svc.AjustarStock(context.Background(), dto.AjustarStockRequest{
		ProductoID: uuid.NewString(),
		Tipo:       model.MovimientoIngreso,
		Cantidad:   1,
		Motivo:     "Ajuste",
	})
	var rechazo *service.ErrValidacion
	require.ErrorAs(t, err, &rechazo)
	assert.Empty(t, f.movRepo.movimientos)
}

func TestAjustarStock_RefrescaContenedores(t *testing.T) {
	f := newInventarioFixture(t)
	p := f.addProducto(t, "Monitor 24\"", 8, 2)
	require.NoError(t, f.productos.Fetch(context.Background()))

	_, err := f.svc.AjustarStock(context.Background(), dto.AjustarStockRequest{
		ProductoID: p.ID.String(),
		Tipo:       model.MovimientoEgreso,
		Cantidad:   3,
		Motivo:     "Venta mostrador sin registrar",
	})
	require.NoError(t, err)

	snap := f.productos.Snapshot()
	require.Len(t, snap.Items, 1)
	assert.Equal(t, 5, snap.Items[0].Stock)
	assert.Len(t, f.movimientos.Snapshot().Items, 1)
}

func TestListarMovimientos_Filtros(t *testing.T) {
	f := newInventarioFixture(t)
	a := f.addProducto(t, "Cable HDMI", 100, 20)
	b := f.addProducto(t, "Cable USB-C", 40, 10)

	for _, req := range []dto.AjustarStockRequest{
		{ProductoID: a.ID.String(), Tipo: model.MovimientoIngreso, Cantidad: 10, Motivo: "Reposición"},
		{ProductoID: a.ID.String(), Tipo: model.MovimientoEgreso, Cantidad: 2, Motivo: "Muestra gratis"},
		{ProductoID: b.ID.String(), Tipo: model.MovimientoIngreso, Cantidad: 5, Motivo: "Reposición"},
	} {
		_, err := f.svc.AjustarStock(context.Background(), req)
		require.NoError(t, err)
	}

	todos, err := f.svc.ListarMovimientos(context.Background(), dto.MovimientoFilter{})
	require.NoError(t, err)
	assert.Len(t, todos, 3)

	deA, err := f.svc.ListarMovimientos(context.Background(), dto.MovimientoFilter{ProductoID: a.ID.String()})
	require.NoError(t, err)
	assert.Len(t, deA, 2)

	ingresos, err := f.svc.ListarMovimientos(context.Background(), dto.MovimientoFilter{Tipo: model.MovimientoIngreso})
	require.NoError(t, err)
	assert.Len(t, ingresos, 2)

	_, err = f.svc.ListarMovimientos(context.Background(), dto.MovimientoFilter{ProductoID: "no-es-uuid"})
	require.Error(t, err)
}

func TestObtenerAlertas(t *testing.T) {
	f := newInventarioFixture(t)
	f.addProducto(t, "Mouse Inalámbrico", 50, 10)
	bajo := f.addProducto(t, "Monitor 24\"", 2, 2) // at threshold counts as low
	agotado := f.addProducto(t, "Teclado Mecánico", 0, 5)

	alertas, err := f.svc.ObtenerAlertas(context.Background())
	require.NoError(t, err)
	require.Len(t, alertas, 2)

	ids := []string{alertas[0].ProductoID, alertas[1].ProductoID}
	assert.Contains(t, ids, bajo.ID.String())
	assert.Contains(t, ids, agotado.ID.String())
}
