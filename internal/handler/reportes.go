package handler

import (
	"net/http"
	"regexp"

	"github.com/SantinoArroyo/SistemaMobile-Ventas/internal/apierror"
	"github.com/SantinoArroyo/SistemaMobile-Ventas/internal/service"

	"github.com/gin-gonic/gin"
)

var mesRe = regexp.MustCompile(`^\d{4}-\d{2}$`)

type ReportesHandler struct {
	svc service.ReporteService
}

func NewReportesHandler(svc service.ReporteService) *ReportesHandler {
	return &ReportesHandler{svc: svc}
}

func (h *ReportesHandler) Mensual(c *gin.Context) {
	mes := c.Param("mes")
	if !mesRe.MatchString(mes) {
		c.JSON(http.StatusBadRequest, apierror.New("Mes invalido: se espera YYYY-MM"))
		return
	}
	reporte, err := h.svc.VentasPorMes(c.Request.Context(), mes)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al cargar ventas del mes"))
		return
	}
	c.JSON(http.StatusOK, reporte)
}
