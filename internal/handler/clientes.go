package handler

import (
	"net/http"
	"time"

	"github.com/SantinoArroyo/SistemaMobile-Ventas/internal/apierror"
	"github.com/SantinoArroyo/SistemaMobile-Ventas/internal/dto"
	"github.com/SantinoArroyo/SistemaMobile-Ventas/internal/model"
	"github.com/SantinoArroyo/SistemaMobile-Ventas/internal/repository"
	"github.com/SantinoArroyo/SistemaMobile-Ventas/internal/state"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ClientesHandler struct {
	st   *state.Clientes
	repo repository.ClienteRepository
}

func NewClientesHandler(st *state.Clientes, repo repository.ClienteRepository) *ClientesHandler {
	return &ClientesHandler{st: st, repo: repo}
}

func (h *ClientesHandler) Listar(c *gin.Context) {
	if err := h.st.Fetch(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al cargar clientes"))
		return
	}
	snap := h.st.Snapshot()
	data := make([]dto.ClienteResponse, 0, len(snap.Items))
	for i := range snap.Items {
		data = append(data, *clienteToResponse(&snap.Items[i]))
	}
	c.JSON(http.StatusOK, dto.ClienteListResponse{
		Data:     data,
		Total:    len(data),
		Cargando: snap.Cargando,
		Error:    snap.Error,
	})
}

func (h *ClientesHandler) ObtenerPorID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	cl, err := h.repo.FindByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Cliente no encontrado"))
		return
	}
	c.JSON(http.StatusOK, clienteToResponse(cl))
}

func (h *ClientesHandler) ObtenerPorCUIL(c *gin.Context) {
	cl, err := h.repo.FindByCUIL(c.Request.Context(), c.Param("cuil"))
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Cliente no encontrado"))
		return
	}
	c.JSON(http.StatusOK, clienteToResponse(cl))
}

func (h *ClientesHandler) Crear(c *gin.Context) {
	var req dto.CrearClienteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	// The store enforces CUIL uniqueness; checking first gives the screen a
	// specific message instead of a raw constraint error.
	if _, err := h.repo.FindByCUIL(c.Request.Context(), req.CUIL); err == nil {
		c.JSON(http.StatusConflict, apierror.New("Ya existe un cliente con ese CUIL"))
		return
	}
	cl := &model.Cliente{
		Nombre:    req.Nombre,
		CUIL:      req.CUIL,
		Telefono:  req.Telefono,
		Email:     req.Email,
		Direccion: req.Direccion,
	}
	if err := h.st.Add(c.Request.Context(), cl); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Error al agregar cliente"))
		return
	}
	c.JSON(http.StatusCreated, clienteToResponse(cl))
}

func (h *ClientesHandler) Actualizar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	var req dto.ActualizarClienteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	cl, err := h.repo.FindByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Cliente no encontrado"))
		return
	}
	if req.Nombre != nil {
		cl.Nombre = *req.Nombre
	}
	if req.CUIL != nil {
		cl.CUIL = *req.CUIL
	}
	if req.Telefono != nil {
		cl.Telefono = req.Telefono
	}
	if req.Email != nil {
		cl.Email = req.Email
	}
	if req.Direccion != nil {
		cl.Direccion = req.Direccion
	}
	if err := h.st.Update(c.Request.Context(), cl); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Error al actualizar cliente"))
		return
	}
	c.JSON(http.StatusOK, clienteToResponse(cl))
}

func (h *ClientesHandler) Eliminar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	if err := h.st.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Error al eliminar cliente"))
		return
	}
	c.Status(http.StatusNoContent)
}

func clienteToResponse(cl *model.Cliente) *dto.ClienteResponse {
	return &dto.ClienteResponse{
		ID:        cl.ID.String(),
		Nombre:    cl.Nombre,
		CUIL:      cl.CUIL,
		Telefono:  cl.Telefono,
		Email:     cl.Email,
		Direccion: cl.Direccion,
		CreatedAt: cl.CreatedAt.Format(time.RFC3339),
		UpdatedAt: cl.UpdatedAt.Format(time.RFC3339),
	}
}
