package handler

import (
	"errors"
	"net/http"

	"github.com/gabovieira/ali300-consultores/internal/apierror"
	"github.com/gabovieira/ali300-consultores/internal/dto"
	"github.com/gabovieira/ali300-consultores/internal/middleware"
	"github.com/gabovieira/ali300-consultores/internal/service"

	"github.com/gin-gonic/gin"
)

type ReportesHandler struct {
	reportes    service.ReporteService
	actividades service.ActividadService
}

func NewReportesHandler(reportes service.ReporteService, actividades service.ActividadService) *ReportesHandler {
	return &ReportesHandler{reportes: reportes, actividades: actividades}
}

// Dashboard godoc
// @Summary Vista principal: entradas recientes y resumen de 7 días
// @Tags reportes
// @Produce json
// @Success 200 {object} dto.DashboardResponse
// @Router /v1/dashboard [get]
func (h *ReportesHandler) Dashboard(c *gin.Context) {
	usuarioID, ok := middleware.UsuarioID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, apierror.New("Autenticación requerida"))
		return
	}

	resp, err := h.reportes.Dashboard(c.Request.Context(), usuarioID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al generar el dashboard"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Listar godoc
// @Summary Reporte de actividades filtrado por fechas y tipo
// @Tags reportes
// @Produce json
// @Param fecha_desde query string false "YYYY-MM-DD (inclusive)"
// @Param fecha_hasta query string false "YYYY-MM-DD (inclusive)"
// @Param tipo query string false "requerimiento | incidencia"
// @Success 200 {object} dto.ReporteResponse
// @Router /v1/reportes [get]
func (h *ReportesHandler) Listar(c *gin.Context) {
	usuarioID, ok := middleware.UsuarioID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, apierror.New("Autenticación requerida"))
		return
	}

	filter := dto.ActividadFilter{
		FechaDesde: c.Query("fecha_desde"),
		FechaHasta: c.Query("fecha_hasta"),
		Tipo:       c.Query("tipo"),
	}

	resp, err := h.actividades.ListarFiltradas(c.Request.Context(), usuarioID, filter)
	if err != nil {
		if errors.Is(err, service.ErrFiltroInvalido) {
			c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("Error al generar el reporte"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Exportar enqueues async PDF generation; the report arrives by email.
func (h *ReportesHandler) Exportar(c *gin.Context) {
	usuarioID, ok := middleware.UsuarioID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, apierror.New("Autenticación requerida"))
		return
	}

	var req dto.ExportarReporteRequest
	if !bindAndValidate(c, &req) {
		return
	}

	if err := h.reportes.Exportar(c.Request.Context(), usuarioID, req); err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al encolar el reporte"))
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"detail": "Reporte en proceso. Llegará por correo."})
}
