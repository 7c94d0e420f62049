package handler

import (
	"net/http"
	"strconv"

	"github.com/gabovieira/ali300-consultores/internal/apierror"
	"github.com/gabovieira/ali300-consultores/internal/dto"
	"github.com/gabovieira/ali300-consultores/internal/middleware"
	"github.com/gabovieira/ali300-consultores/internal/service"

	"github.com/gin-gonic/gin"
)

type DescuentosHandler struct{ svc service.DescuentoService }

func NewDescuentosHandler(svc service.DescuentoService) *DescuentosHandler {
	return &DescuentosHandler{svc: svc}
}

// Registrar godoc
// @Summary Registrar un descuento (falta o impuntualidad)
// @Tags descuentos
// @Accept json
// @Produce json
// @Param body body dto.RegistrarDescuentoRequest true "Descuento"
// @Success 201 {object} dto.DescuentoResponse
// @Router /v1/descuentos [post]
func (h *DescuentosHandler) Registrar(c *gin.Context) {
	usuarioID, ok := middleware.UsuarioID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, apierror.New("Autenticación requerida"))
		return
	}

	var req dto.RegistrarDescuentoRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, err := h.svc.Registrar(c.Request.Context(), usuarioID, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al registrar descuento"))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *DescuentosHandler) Listar(c *gin.Context) {
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
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar descuentos"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
