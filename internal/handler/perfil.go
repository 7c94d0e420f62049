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

type PerfilHandler struct{ svc service.PerfilService }

func NewPerfilHandler(svc service.PerfilService) *PerfilHandler {
	return &PerfilHandler{svc: svc}
}

func (h *PerfilHandler) Obtener(c *gin.Context) {
	usuarioID, ok := middleware.UsuarioID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, apierror.New("Autenticación requerida"))
		return
	}

	resp, err := h.svc.Obtener(c.Request.Context(), usuarioID)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PerfilHandler) Actualizar(c *gin.Context) {
	usuarioID, ok := middleware.UsuarioID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, apierror.New("Autenticación requerida"))
		return
	}

	var req dto.ActualizarPerfilRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, err := h.svc.Actualizar(c.Request.Context(), usuarioID, req)
	if err != nil {
		if errors.Is(err, service.ErrUsuarioNoEncontrado) {
			c.JSON(http.StatusNotFound, apierror.New(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("Error al actualizar el perfil"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
