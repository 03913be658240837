package handler

import (
	"errors"
	"net/http"

	"github.com/SantinoArroyo/SistemaMobile-Ventas/internal/apierror"
	"github.com/SantinoArroyo/SistemaMobile-Ventas/internal/dto"
	"github.com/SantinoArroyo/SistemaMobile-Ventas/internal/repository"
	"github.com/SantinoArroyo/SistemaMobile-Ventas/internal/service"
	"github.com/SantinoArroyo/SistemaMobile-Ventas/internal/state"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type VentasHandler struct {
	svc  service.VentaService
	st   *state.Ventas
	repo repository.VentaRepository
}

func NewVentasHandler(svc service.VentaService, st *state.Ventas, repo repository.VentaRepository) *VentasHandler {
	return &VentasHandler{svc: svc, st: st, repo: repo}
}

// Registrar is the sale workflow's single entry point. A validation rejection
// carries its message back to the screen; any persistence failure maps to one
// generic message.
func (h *VentasHandler) Registrar(c *gin.Context) {
	var req dto.RegistrarVentaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.RegistrarVenta(c.Request.Context(), req)
	if err != nil {
		var rechazo *service.ErrValidacion
		if errors.As(err, &rechazo) {
			c.JSON(http.StatusUnprocessableEntity, apierror.New(rechazo.Msg))
			return
		}
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, apierror.New("Error al guardar la venta"))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *VentasHandler) Listar(c *gin.Context) {
	var filter dto.VentaFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}

	var err error
	if filter.Mes != "" {
		err = h.st.FetchMes(c.Request.Context(), filter.Mes)
	} else {
		err = h.st.Fetch(c.Request.Context())
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al cargar ventas"))
		return
	}

	snap := h.st.Snapshot()
	data := make([]dto.VentaResponse, 0, len(snap.Items))
	for i := range snap.Items {
		data = append(data, *service.VentaToResponse(&snap.Items[i]))
	}
	c.JSON(http.StatusOK, dto.VentaListResponse{
		Data:     data,
		Total:    len(data),
		Cargando: snap.Cargando,
		Error:    snap.Error,
	})
}

func (h *VentasHandler) ObtenerPorID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	v, err := h.repo.FindByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Venta no encontrada"))
		return
	}
	c.JSON(http.StatusOK, service.VentaToResponse(v))
}
