package handler

import (
	"net/http"
	"time"

	"github.com/SantinoArroyo/SistemaMobile-Ventas/internal/apierror"
	"github.com/SantinoArroyo/SistemaMobile-Ventas/internal/dto"
	"github.com/SantinoArroyo/SistemaMobile-Ventas/internal/model"
	"github.com/SantinoArroyo/SistemaMobile-Ventas/internal/repository"
	"github.com/SantinoArroyo/SistemaMobile-Ventas/internal/service"
	"github.com/SantinoArroyo/SistemaMobile-Ventas/internal/state"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ProductosHandler struct {
	st   *state.Productos
	repo repository.ProductoRepository
	inv  service.InventarioService
}

func NewProductosHandler(st *state.Productos, repo repository.ProductoRepository, inv service.InventarioService) *ProductosHandler {
	return &ProductosHandler{st: st, repo: repo, inv: inv}
}

func (h *ProductosHandler) Listar(c *gin.Context) {
	if err := h.st.Fetch(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al cargar productos"))
		return
	}
	snap := h.st.Snapshot()
	data := make([]dto.ProductoResponse, 0, len(snap.Items))
	for i := range snap.Items {
		data = append(data, *productoToResponse(&snap.Items[i]))
	}
	c.JSON(http.StatusOK, dto.ProductoListResponse{
		Data:     data,
		Total:    len(data),
		Cargando: snap.Cargando,
		Error:    snap.Error,
	})
}

func (h *ProductosHandler) ObtenerPorID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	p, err := h.repo.FindByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Producto no encontrado"))
		return
	}
	c.JSON(http.StatusOK, productoToResponse(p))
}

func (h *ProductosHandler) Crear(c *gin.Context) {
	var req dto.CrearProductoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	p := &model.Producto{
		Nombre:      req.Nombre,
		Descripcion: req.Descripcion,
		Precio:      req.Precio,
		Stock:       req.Stock,
		StockMinimo: req.StockMinimo,
		Categoria:   req.Categoria,
	}
	if err := h.st.Add(c.Request.Context(), p); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Error al agregar producto"))
		return
	}
	c.JSON(http.StatusCreated, productoToResponse(p))
}

func (h *ProductosHandler) Actualizar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	var req dto.ActualizarProductoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	p, err := h.repo.FindByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Producto no encontrado"))
		return
	}
	if req.Nombre != nil {
		p.Nombre = *req.Nombre
	}
	if req.Descripcion != nil {
		p.Descripcion = req.Descripcion
	}
	if req.Precio != nil {
		p.Precio = *req.Precio
	}
	if req.Stock != nil {
		p.Stock = *req.Stock
	}
	if req.StockMinimo != nil {
		p.StockMinimo = *req.StockMinimo
	}
	if req.Categoria != nil {
		p.Categoria = *req.Categoria
	}
	if err := h.st.Update(c.Request.Context(), p); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Error al actualizar producto"))
		return
	}
	c.JSON(http.StatusOK, productoToResponse(p))
}

func (h *ProductosHandler) Eliminar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	if err := h.st.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Error al eliminar producto"))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ProductosHandler) Alertas(c *gin.Context) {
	alertas, err := h.inv.ObtenerAlertas(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al cargar alertas de stock"))
		return
	}
	c.JSON(http.StatusOK, alertas)
}

func productoToResponse(p *model.Producto) *dto.ProductoResponse {
	return &dto.ProductoResponse{
		ID:          p.ID.String(),
		Nombre:      p.Nombre,
		Descripcion: p.Descripcion,
		Precio:      p.Precio,
		Stock:       p.Stock,
		StockMinimo: p.StockMinimo,
		Categoria:   p.Categoria,
		CreatedAt:   p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   p.UpdatedAt.Format(time.RFC3339),
	}
}
