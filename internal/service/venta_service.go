package service

import (
	"context"
	"fmt"
	"time"

	"github.com/SantinoArroyo/SistemaMobile-Ventas/internal/dto"
	"github.com/SantinoArroyo/SistemaMobile-Ventas/internal/model"
	"github.com/SantinoArroyo/SistemaMobile-Ventas/internal/repository"
	"github.com/SantinoArroyo/SistemaMobile-Ventas/internal/state"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ErrValidacion marks a user-correctable rejection: the message is surfaced
// verbatim to the screen and no store writes have happened.
type ErrValidacion struct{ Msg string }

func (e *ErrValidacion) Error() string { return e.Msg }

func rechazo(format string, args ...interface{}) error {
	return &ErrValidacion{Msg: fmt.Sprintf(format, args...)}
}

type VentaService interface {
	RegistrarVenta(ctx context.Context, req dto.RegistrarVentaRequest) (*dto.VentaResponse, error)
}

type ventaService struct {
	repo         repository.VentaRepository
	productoRepo repository.ProductoRepository
	clienteRepo  repository.ClienteRepository
	movRepo      repository.MovimientoStockRepository

	// Refreshed after a committed sale so the screens' cached stock matches
	// the store. Nil in unit tests.
	productosState   *state.Productos
	movimientosState *state.Movimientos
	ventasState      *state.Ventas

	reportes ReporteService // nilable — cache invalidation only
}

func NewVentaService(
	repo repository.VentaRepository,
	productoRepo repository.ProductoRepository,
	clienteRepo repository.ClienteRepository,
	movRepo repository.MovimientoStockRepository,
	productosState *state.Productos,
	movimientosState *state.Movimientos,
	ventasState *state.Ventas,
	reportes ReporteService,
) VentaService {
	return &ventaService{
		repo:             repo,
		productoRepo:     productoRepo,
		clienteRepo:      clienteRepo,
		movRepo:          movRepo,
		productosState:   productosState,
		movimientosState: movimientosState,
		ventasState:      ventasState,
		reportes:         reportes,
	}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// ── RegistrarVenta ────────────────────────────────────────────────────────────
// The one multi-step business procedure:
//  1. Reject when the customer is unknown or the item list is empty.
//  2. Re-read every product's stock from the store (in-memory stock can be
//     stale relative to another screen session) and reject on any shortfall.
//  3. subtotal, global discount (porcentaje or monto, floored at zero), total.
//  4. Build the sale with customer nombre/cuil snapshots and the month bucket.
//  5. One transaction: sale + items + stock decrements + one OUT movement per
//     line item. Stock is re-read inside the transaction before each
//     decrement, closing the window between the screen-side check and the
//     write (two line items of the same product are caught here). Commit or
//     nothing.
//  6. Refresh the product and movement containers, prepend the sale.

func (s *ventaService) RegistrarVenta(ctx context.Context, req dto.RegistrarVentaRequest) (*dto.VentaResponse, error) {
	if req.ClienteID == "" || len(req.Items) == 0 {
		return nil, rechazo("Por favor selecciona un cliente y al menos un producto")
	}
	clienteID, err := uuid.Parse(req.ClienteID)
	if err != nil {
		return nil, rechazo("Cliente invalido")
	}
	cliente, err := s.clienteRepo.FindByID(ctx, clienteID)
	if err != nil {
		return nil, rechazo("Cliente no encontrado")
	}

	// Re-validate stock against the latest persisted product state.
	type resolvedItem struct {
		productoID uuid.UUID
		nombre     string
		cantidad   int
		precio     decimal.Decimal
		total      decimal.Decimal
	}
	resolved := make([]resolvedItem, 0, len(req.Items))
	subtotal := decimal.Zero

	for _, item := range req.Items {
		pid, err := uuid.Parse(item.ProductoID)
		if err != nil {
			return nil, rechazo("Producto invalido")
		}
		p, err := s.productoRepo.FindByID(ctx, pid)
		if err != nil {
			return nil, rechazo("Stock insuficiente para %q. Stock actual: 0", item.ProductoID)
		}
		if p.Stock < item.Cantidad {
			return nil, rechazo("Stock insuficiente para %q. Stock actual: %d", p.Nombre, p.Stock)
		}
		lineTotal := item.PrecioUnitario.Mul(decimal.NewFromInt(int64(item.Cantidad)))
		subtotal = subtotal.Add(lineTotal)
		resolved = append(resolved, resolvedItem{
			productoID: pid,
			nombre:     p.Nombre,
			cantidad:   item.Cantidad,
			precio:     item.PrecioUnitario,
			total:      lineTotal,
		})
	}

	descuento := calcularDescuento(subtotal, req.Descuento)
	total := subtotal.Sub(descuento)
	if total.IsNegative() {
		total = decimal.Zero
	}

	now := time.Now()
	venta := model.Venta{
		ClienteID:     cliente.ID,
		ClienteNombre: cliente.Nombre,
		ClienteCUIL:   cliente.CUIL,
		Total:         total,
		Fecha:         now,
		Mes:           now.Format("2006-01"),
		Anio:          now.Year(),
	}
	for _, r := range resolved {
		venta.Items = append(venta.Items, model.VentaItem{
			ProductoID:     r.productoID,
			ProductoNombre: r.nombre,
			Cantidad:       r.cantidad,
			PrecioUnitario: r.precio,
			Total:          r.total,
		})
	}

	movimientos := make([]model.MovimientoStock, 0, len(resolved))
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.Create(ctx, tx, &venta); err != nil {
			return err
		}
		for _, r := range resolved {
			// Re-read under the transaction: the pre-check above ran outside
			// it, and earlier iterations may have drained the same product.
			p, err := s.productoRepo.FindByIDTx(tx, r.productoID)
			if err != nil {
				return err
			}
			if p.Stock < r.cantidad {
				return rechazo("Stock insuficiente para %q. Stock actual: %d", p.Nombre, p.Stock)
			}
			// Clamped decrement: committed stock never goes below zero.
			if err := s.productoRepo.AjustarStockTx(tx, r.productoID, -r.cantidad); err != nil {
				return fmt.Errorf("descontando stock de %s: %w", r.nombre, err)
			}
			mov := model.MovimientoStock{
				ProductoID:     r.productoID,
				ProductoNombre: r.nombre,
				Tipo:           model.MovimientoEgreso,
				Cantidad:       r.cantidad,
				Motivo:         "Venta",
				Fecha:          now,
			}
			if err := s.movRepo.CreateTx(tx, &mov); err != nil {
				return err
			}
			movimientos = append(movimientos, mov)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	s.afterCommit(ctx, venta, movimientos)

	resp := VentaToResponse(&venta)
	resp.Subtotal = subtotal
	resp.Descuento = descuento
	return resp, nil
}

// afterCommit resynchronizes the screens' cached copies. The sale is already
// durable; refresh errors are logged, never propagated.
func (s *ventaService) afterCommit(ctx context.Context, venta model.Venta, movs []model.MovimientoStock) {
	if s.productosState != nil {
		if err := s.productosState.Fetch(ctx); err != nil {
			log.Warn().Err(err).Msg("refresh productos after sale")
		}
	}
	if s.movimientosState != nil {
		s.movimientosState.Prepend(movs...)
	}
	if s.ventasState != nil {
		s.ventasState.Prepend(venta)
	}
	if s.reportes != nil {
		s.reportes.InvalidarMes(ctx, venta.Mes)
	}
}

// calcularDescuento applies the global discount to the pre-tax subtotal.
// porcentaje: subtotal × valor/100. monto: min(valor, subtotal).
func calcularDescuento(subtotal decimal.Decimal, d *dto.DescuentoRequest) decimal.Decimal {
	if d == nil || d.Valor.IsZero() {
		return decimal.Zero
	}
	if d.Tipo == "porcentaje" {
		return subtotal.Mul(d.Valor).Div(decimal.NewFromInt(100))
	}
	if d.Valor.GreaterThan(subtotal) {
		return subtotal
	}
	return d.Valor
}

// VentaToResponse maps a committed sale. Subtotal is derived from the line
// items; the persisted total already has the discount applied.
func VentaToResponse(v *model.Venta) *dto.VentaResponse {
	items := make([]dto.ItemVentaResponse, 0, len(v.Items))
	subtotal := decimal.Zero
	for _, item := range v.Items {
		subtotal = subtotal.Add(item.Total)
		items = append(items, dto.ItemVentaResponse{
			ID:             item.ID.String(),
			ProductoID:     item.ProductoID.String(),
			Producto:       item.ProductoNombre,
			Cantidad:       item.Cantidad,
			PrecioUnitario: item.PrecioUnitario,
			Total:          item.Total,
		})
	}
	return &dto.VentaResponse{
		ID:            v.ID.String(),
		ClienteID:     v.ClienteID.String(),
		ClienteNombre: v.ClienteNombre,
		ClienteCUIL:   v.ClienteCUIL,
		Items:         items,
		Subtotal:      subtotal,
		Descuento:     subtotal.Sub(v.Total),
		Total:         v.Total,
		Fecha:         v.Fecha.Format(time.RFC3339),
		Mes:           v.Mes,
		Anio:          v.Anio,
		CreatedAt:     v.CreatedAt.Format(time.RFC3339),
	}
}
