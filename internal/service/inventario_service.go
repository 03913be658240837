package service

import (
	"context"
	"time"

	"github.com/SantinoArroyo/SistemaMobile-Ventas/internal/dto"
	"github.com/SantinoArroyo/SistemaMobile-Ventas/internal/model"
	"github.com/SantinoArroyo/SistemaMobile-Ventas/internal/repository"
	"github.com/SantinoArroyo/SistemaMobile-Ventas/internal/state"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// InventarioService covers the stock operations outside the sale workflow:
// manual adjustments, ledger listing, and low-stock alerts.
type InventarioService interface {
	AjustarStock(ctx context.Context, req dto.AjustarStockRequest) (*dto.MovimientoResponse, error)
	ListarMovimientos(ctx context.Context, filter dto.MovimientoFilter) ([]dto.MovimientoResponse, error)
	ObtenerAlertas(ctx context.Context) ([]dto.AlertaStockResponse, error)
}

type inventarioService struct {
	productoRepo repository.ProductoRepository
	movRepo      repository.MovimientoStockRepository

	productosState   *state.Productos
	movimientosState *state.Movimientos
}

func NewInventarioService(
	productoRepo repository.ProductoRepository,
	movRepo repository.MovimientoStockRepository,
	productosState *state.Productos,
	movimientosState *state.Movimientos,
) InventarioService {
	return &inventarioService{
		productoRepo:     productoRepo,
		movRepo:          movRepo,
		productosState:   productosState,
		movimientosState: movimientosState,
	}
}

// AjustarStock writes the product's stock and the ledger entry in one
// transaction. An OUT larger than the current stock leaves stock at zero; the
// ledger keeps the requested quantity.
func (s *inventarioService) AjustarStock(ctx context.Context, req dto.AjustarStockRequest) (*dto.MovimientoResponse, error) {
	pid, err := uuid.Parse(req.ProductoID)
	if err != nil {
		return nil, rechazo("Producto invalido")
	}
	p, err := s.productoRepo.FindByID(ctx, pid)
	if err != nil {
		return nil, rechazo("Producto no encontrado")
	}

	delta := req.Cantidad
	if req.Tipo == model.MovimientoEgreso {
		delta = -req.Cantidad
	}

	mov := model.MovimientoStock{
		ProductoID:     p.ID,
		ProductoNombre: p.Nombre,
		Tipo:           req.Tipo,
		Cantidad:       req.Cantidad,
		Motivo:         req.Motivo,
		Fecha:          time.Now(),
	}
	txErr := runTx(ctx, s.productoRepo.DB(), func(tx *gorm.DB) error {
		if err := s.productoRepo.AjustarStockTx(tx, p.ID, delta); err != nil {
			return err
		}
		return s.movRepo.CreateTx(tx, &mov)
	})
	if txErr != nil {
		return nil, txErr
	}

	if s.productosState != nil {
		if err := s.productosState.Fetch(ctx); err != nil {
			log.Warn().Err(err).Msg("refresh productos after adjustment")
		}
	}
	if s.movimientosState != nil {
		s.movimientosState.Prepend(mov)
	}

	return movimientoToResponse(&mov), nil
}

func (s *inventarioService) ListarMovimientos(ctx context.Context, filter dto.MovimientoFilter) ([]dto.MovimientoResponse, error) {
	repoFilter := repository.MovimientoFilter{Tipo: filter.Tipo}
	if filter.ProductoID != "" {
		pid, err := uuid.Parse(filter.ProductoID)
		if err != nil {
			return nil, rechazo("Producto invalido")
		}
		repoFilter.ProductoID = &pid
	}
	movs, err := s.movRepo.List(ctx, repoFilter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovimientoResponse, 0, len(movs))
	for i := range movs {
		out = append(out, *movimientoToResponse(&movs[i]))
	}
	return out, nil
}

// ObtenerAlertas lists products at or below their reorder threshold.
func (s *inventarioService) ObtenerAlertas(ctx context.Context) ([]dto.AlertaStockResponse, error) {
	productos, err := s.productoRepo.ListBajoStock(ctx)
	if err != nil {
		return nil, err
	}
	alertas := make([]dto.AlertaStockResponse, 0, len(productos))
	for _, p := range productos {
		alertas = append(alertas, dto.AlertaStockResponse{
			ProductoID:  p.ID.String(),
			Nombre:      p.Nombre,
			Stock:       p.Stock,
			StockMinimo: p.StockMinimo,
			Categoria:   p.Categoria,
		})
	}
	return alertas, nil
}

func movimientoToResponse(m *model.MovimientoStock) *dto.MovimientoResponse {
	return &dto.MovimientoResponse{
		ID:         m.ID.String(),
		ProductoID: m.ProductoID.String(),
		Producto:   m.ProductoNombre,
		Tipo:       m.Tipo,
		Cantidad:   m.Cantidad,
		Motivo:     m.Motivo,
		Fecha:      m.Fecha.Format(time.RFC3339),
		CreatedAt:  m.CreatedAt.Format(time.RFC3339),
	}
}
