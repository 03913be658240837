package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/SantinoArroyo/SistemaMobile-Ventas/internal/apierror"
	"github.com/SantinoArroyo/SistemaMobile-Ventas/internal/dto"
	"github.com/SantinoArroyo/SistemaMobile-Ventas/internal/model"
	"github.com/SantinoArroyo/SistemaMobile-Ventas/internal/service"
	"github.com/SantinoArroyo/SistemaMobile-Ventas/internal/state"

	"github.com/gin-gonic/gin"
)

type MovimientosHandler struct {
	svc service.InventarioService
	st  *state.Movimientos
}

func NewMovimientosHandler(svc service.InventarioService, st *state.Movimientos) *MovimientosHandler {
	return &MovimientosHandler{svc: svc, st: st}
}

func (h *MovimientosHandler) Listar(c *gin.Context) {
	var filter dto.MovimientoFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}

	// Filtered reads go straight to the ledger; the unfiltered listing is the
	// screens' cached collection.
	if filter.ProductoID != "" || filter.Tipo != "" {
		data, err := h.svc.ListarMovimientos(c.Request.Context(), filter)
		if err != nil {
			var rechazo *service.ErrValidacion
			if errors.As(err, &rechazo) {
				c.JSON(http.StatusBadRequest, apierror.New(rechazo.Msg))
				return
			}
			c.JSON(http.StatusInternalServerError, apierror.New("Error al cargar movimientos de stock"))
			return
		}
		c.JSON(http.StatusOK, dto.MovimientoListResponse{Data: data, Total: len(data)})
		return
	}

	if err := h.st.Fetch(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al cargar movimientos de stock"))
		return
	}
	snap := h.st.Snapshot()
	data := make([]dto.MovimientoResponse, 0, len(snap.Items))
	for i := range snap.Items {
		data = append(data, *movimientoSnapshotToResponse(&snap.Items[i]))
	}
	c.JSON(http.StatusOK, dto.MovimientoListResponse{
		Data:     data,
		Total:    len(data),
		Cargando: snap.Cargando,
		Error:    snap.Error,
	})
}

// Ajustar applies a manual stock adjustment and appends its ledger entry.
func (h *MovimientosHandler) Ajustar(c *gin.Context) {
	var req dto.AjustarStockRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AjustarStock(c.Request.Context(), req)
	if err != nil {
		var rechazo *service.ErrValidacion
		if errors.As(err, &rechazo) {
			c.JSON(http.StatusUnprocessableEntity, apierror.New(rechazo.Msg))
			return
		}
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, apierror.New("Error al agregar movimiento de stock"))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func movimientoSnapshotToResponse(m *model.MovimientoStock) *dto.MovimientoResponse {
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
