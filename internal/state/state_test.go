package state_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SantinoArroyo/SistemaMobile-Ventas/internal/model"
	"github.com/SantinoArroyo/SistemaMobile-Ventas/internal/repository"
	"github.com/SantinoArroyo/SistemaMobile-Ventas/internal/state"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeProductoRepo drives the Productos container with togglable failures.
type fakeProductoRepo struct {
	productos  []model.Producto
	failList   bool
	failCreate bool
	failUpdate bool
	failDelete bool
}

func (r *fakeProductoRepo) List(_ context.Context) ([]model.Producto, error) {
	if r.failList {
		return nil, errors.New("store unavailable")
	}
	out := make([]model.Producto, len(r.productos))
	copy(out, r.productos)
	return out, nil
}

func (r *fakeProductoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Producto, error) {
	for i := range r.productos {
		if r.productos[i].ID == id {
			return &r.productos[i], nil
		}
	}
	return nil, errors.New("not found")
}

func (r *fakeProductoRepo) Create(_ context.Context, p *model.Producto) error {
	if r.failCreate {
		return errors.New("store unavailable")
	}
	p.ID = uuid.New()
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now
	r.productos = append(r.productos, *p)
	return nil
}

func (r *fakeProductoRepo) Update(_ context.Context, p *model.Producto) error {
	if r.failUpdate {
		return errors.New("store unavailable")
	}
	p.UpdatedAt = time.Now()
	for i := range r.productos {
		if r.productos[i].ID == p.ID {
			r.productos[i] = *p
		}
	}
	return nil
}

func (r *fakeProductoRepo) Delete(_ context.Context, id uuid.UUID) error {
	if r.failDelete {
		return errors.New("store unavailable")
	}
	kept := r.productos[:0]
	for _, p := range r.productos {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	r.productos = kept
	return nil
}

func (r *fakeProductoRepo) ListBajoStock(_ context.Context) ([]model.Producto, error) {
	return nil, nil
}

func (r *fakeProductoRepo) FindByIDTx(_ *gorm.DB, id uuid.UUID) (*model.Producto, error) {
	return r.FindByID(context.Background(), id)
}

func (r *fakeProductoRepo) AjustarStockTx(_ *gorm.DB, _ uuid.UUID, _ int) error { return nil }
func (r *fakeProductoRepo) DB() *gorm.DB                                        { return nil }

var _ repository.ProductoRepository = (*fakeProductoRepo)(nil)

func producto(nombre string, stock int) model.Producto {
	return model.Producto{
		Nombre:      nombre,
		Precio:      decimal.NewFromFloat(12.99),
		Stock:       stock,
		StockMinimo: 5,
		Categoria:   "Cables",
	}
}

func TestProductos_FetchReemplazaColeccion(t *testing.T) {
	repo := &fakeProductoRepo{productos: []model.Producto{
		producto("Cable HDMI", 100),
		producto("Cable USB-C", 40),
	}}
	st := state.NewProductos(repo)

	require.NoError(t, st.Fetch(context.Background()))
	snap := st.Snapshot()
	assert.Len(t, snap.Items, 2)
	assert.False(t, snap.Cargando)
	assert.Empty(t, snap.Error)
}

func TestProductos_FetchErrorRegistraMensaje(t *testing.T) {
	repo := &fakeProductoRepo{failList: true}
	st := state.NewProductos(repo)

	require.Error(t, st.Fetch(context.Background()))
	snap := st.Snapshot()
	assert.Equal(t, "Error al cargar productos", snap.Error)
	assert.False(t, snap.Cargando, "loading flag must clear on failure")

	// Error cleared on the next successful fetch.
	repo.failList = false
	require.NoError(t, st.Fetch(context.Background()))
	assert.Empty(t, st.Snapshot().Error)
}

func TestProductos_AddReconcilia(t *testing.T) {
	repo := &fakeProductoRepo{}
	st := state.NewProductos(repo)

	p := producto("Monitor 24\"", 8)
	require.NoError(t, st.Add(context.Background(), &p))
	assert.NotEqual(t, uuid.Nil, p.ID, "repository assigns identity")

	snap := st.Snapshot()
	require.Len(t, snap.Items, 1)
	assert.Equal(t, p.ID, snap.Items[0].ID)
	assert.False(t, snap.Items[0].CreatedAt.IsZero())
}

func TestProductos_AddErrorNoMutaColeccion(t *testing.T) {
	repo := &fakeProductoRepo{failCreate: true}
	st := state.NewProductos(repo)

	p := producto("Monitor 24\"", 8)
	require.Error(t, st.Add(context.Background(), &p))

	snap := st.Snapshot()
	assert.Empty(t, snap.Items)
	assert.Equal(t, "Error al agregar producto", snap.Error)
}

func TestProductos_UpdateReemplazaPorID(t *testing.T) {
	repo := &fakeProductoRepo{}
	st := state.NewProductos(repo)

	p := producto("Teclado Mecánico", 15)
	require.NoError(t, st.Add(context.Background(), &p))

	p.Stock = 20
	p.Precio = decimal.NewFromFloat(94.99)
	require.NoError(t, st.Update(context.Background(), &p))

	snap := st.Snapshot()
	require.Len(t, snap.Items, 1)
	assert.Equal(t, 20, snap.Items[0].Stock)
	assert.True(t, snap.Items[0].Precio.Equal(decimal.NewFromFloat(94.99)))
}

func TestProductos_DeleteFiltra(t *testing.T) {
	repo := &fakeProductoRepo{}
	st := state.NewProductos(repo)

	a := producto("Cable HDMI", 100)
	b := producto("Cable USB-C", 40)
	require.NoError(t, st.Add(context.Background(), &a))
	require.NoError(t, st.Add(context.Background(), &b))

	require.NoError(t, st.Delete(context.Background(), a.ID))

	snap := st.Snapshot()
	require.Len(t, snap.Items, 1)
	assert.Equal(t, b.ID, snap.Items[0].ID)
}

func TestProductos_SnapshotEsCopia(t *testing.T) {
	repo := &fakeProductoRepo{}
	st := state.NewProductos(repo)

	p := producto("Mouse Inalámbrico", 50)
	require.NoError(t, st.Add(context.Background(), &p))

	snap := st.Snapshot()
	snap.Items[0].Stock = -999

	assert.Equal(t, 50, st.Snapshot().Items[0].Stock)
}

// fakeVentaRepo backs the Ventas container.
type fakeVentaRepo struct {
	ventas   []model.Venta
	failList bool
}

func (r *fakeVentaRepo) Create(_ context.Context, _ *gorm.DB, v *model.Venta) error {
	r.ventas = append(r.ventas, *v)
	return nil
}

func (r *fakeVentaRepo) FindByID(_ context.Context, _ uuid.UUID) (*model.Venta, error) {
	return nil, errors.New("not found")
}

func (r *fakeVentaRepo) List(_ context.Context) ([]model.Venta, error) {
	if r.failList {
		return nil, errors.New("store unavailable")
	}
	out := make([]model.Venta, len(r.ventas))
	copy(out, r.ventas)
	return out, nil
}

func (r *fakeVentaRepo) ListByMes(_ context.Context, mes string) ([]model.Venta, error) {
	var out []model.Venta
	for _, v := range r.ventas {
		if v.Mes == mes {
			out = append(out, v)
		}
	}
	return out, nil
}

func (r *fakeVentaRepo) DB() *gorm.DB { return nil }

var _ repository.VentaRepository = (*fakeVentaRepo)(nil)

func TestVentas_FetchMesFiltra(t *testing.T) {
	repo := &fakeVentaRepo{ventas: []model.Venta{
		{ID: uuid.New(), Mes: "2025-07", Total: decimal.NewFromInt(100)},
		{ID: uuid.New(), Mes: "2025-08", Total: decimal.NewFromInt(200)},
	}}
	st := state.NewVentas(repo)

	require.NoError(t, st.FetchMes(context.Background(), "2025-08"))
	snap := st.Snapshot()
	require.Len(t, snap.Items, 1)
	assert.Equal(t, "2025-08", snap.Items[0].Mes)

	require.NoError(t, st.Fetch(context.Background()))
	assert.Len(t, st.Snapshot().Items, 2)
}

func TestVentas_PrependVaAlFrente(t *testing.T) {
	repo := &fakeVentaRepo{ventas: []model.Venta{
		{ID: uuid.New(), Mes: "2025-07"},
	}}
	st := state.NewVentas(repo)
	require.NoError(t, st.Fetch(context.Background()))

	nueva := model.Venta{ID: uuid.New(), Mes: "2025-08"}
	st.Prepend(nueva)

	snap := st.Snapshot()
	require.Len(t, snap.Items, 2)
	assert.Equal(t, nueva.ID, snap.Items[0].ID)
}

func TestVentas_FetchErrorRegistraMensaje(t *testing.T) {
	st := state.NewVentas(&fakeVentaRepo{failList: true})
	require.Error(t, st.Fetch(context.Background()))
	assert.Equal(t, "Error al cargar ventas", st.Snapshot().Error)
}

// fakeMovRepo backs the Movimientos container.
type fakeMovRepo struct {
	movimientos []model.MovimientoStock
	failList    bool
}

func (r *fakeMovRepo) Create(_ context.Context, m *model.MovimientoStock) error {
	r.movimientos = append(r.movimientos, *m)
	return nil
}

func (r *fakeMovRepo) CreateTx(_ *gorm.DB, m *model.MovimientoStock) error {
	r.movimientos = append(r.movimientos, *m)
	return nil
}

func (r *fakeMovRepo) List(_ context.Context, _ repository.MovimientoFilter) ([]model.MovimientoStock, error) {
	if r.failList {
		return nil, errors.New("store unavailable")
	}
	out := make([]model.MovimientoStock, len(r.movimientos))
	copy(out, r.movimientos)
	return out, nil
}

var _ repository.MovimientoStockRepository = (*fakeMovRepo)(nil)

func TestMovimientos_PrependLote(t *testing.T) {
	repo := &fakeMovRepo{movimientos: []model.MovimientoStock{
		{ID: uuid.New(), Tipo: model.MovimientoIngreso, Cantidad: 10},
	}}
	st := state.NewMovimientos(repo)
	require.NoError(t, st.Fetch(context.Background()))

	a := model.MovimientoStock{ID: uuid.New(), Tipo: model.MovimientoEgreso, Cantidad: 2}
	b := model.MovimientoStock{ID: uuid.New(), Tipo: model.MovimientoEgreso, Cantidad: 5}
	st.Prepend(a, b)

	snap := st.Snapshot()
	require.Len(t, snap.Items, 3)
	assert.Equal(t, a.ID, snap.Items[0].ID)
	assert.Equal(t, b.ID, snap.Items[1].ID)
}

func TestMovimientos_FetchErrorRegistraMensaje(t *testing.T) {
	st := state.NewMovimientos(&fakeMovRepo{failList: true})
	require.Error(t, st.Fetch(context.Background()))
	assert.Equal(t, "Error al cargar movimientos de stock", st.Snapshot().Error)
}
