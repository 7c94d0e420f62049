package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gabovieira/ali300-consultores/internal/apierror"
	"github.com/gabovieira/ali300-consultores/internal/dto"
	"github.com/gabovieira/ali300-consultores/internal/middleware"
	"github.com/gabovieira/ali300-consultores/internal/service"

	"github.com/gin-gonic/gin"
)

type ActividadesHandler struct{ svc service.ActividadService }

func NewActividadesHandler(svc service.ActividadService) *ActividadesHandler {
	return &ActividadesHandler{svc: svc}
}

// Registrar godoc
// @Summary Registrar una actividad (requerimiento o incidencia)
// @Tags actividades
// @Accept json
// @Produce json
// @Param body body dto.RegistrarActividadRequest true "Actividad"
// @Success 201 {object} dto.RegistrarActividadResponse
// @Failure 422 {object} apierror.APIError
// @Router /v1/actividades [post]
func (h *ActividadesHandler) Registrar(c *gin.Context) {
	usuarioID, ok := middleware.UsuarioID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, apierror.New("Autenticación requerida"))
		return
	}

	var req dto.RegistrarActividadRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, err := h.svc.Registrar(c.Request.Context(), usuarioID, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrLimiteDiarioExcedido):
			c.JSON(http.StatusUnprocessableEntity, apierror.New(err.Error()))
		case errors.Is(err, service.ErrUsuarioNoEncontrado):
			c.JSON(http.StatusUnauthorized, apierror.New(err.Error()))
		default:
			c.JSON(http.StatusInternalServerError, apierror.New("Error al registrar actividad"))
		}
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Listar returns the user's most recent activities (default 5, ?limit=N).
func (h *ActividadesHandler) Listar(c *gin.Context) {
	usuarioID, ok := middleware.UsuarioID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, apierror.New("Autenticación requerida"))
		return
	}

	limit := 5
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 100 {
			c.JSON(http.StatusBadRequest, apierror.New("limit inválido"))
			return
		}
		limit = n
	}

	resp, err := h.svc.ListarRecientes(c.Request.Context(), usuarioID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar actividades"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
