package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/gabovieira/ali300-consultores/internal/dto"
	"github.com/gabovieira/ali300-consultores/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeReporteService struct {
	dashboard *dto.DashboardResponse
	exportErr error
}

func (f *fakeReporteService) ResumenDiario(context.Context, uuid.UUID, int) (map[string]dto.ResumenDia, error) {
	return nil, nil
}

func (f *fakeReporteService) Dashboard(context.Context, uuid.UUID) (*dto.DashboardResponse, error) {
	return f.dashboard, nil
}

func (f *fakeReporteService) Exportar(context.Context, uuid.UUID, dto.ExportarReporteRequest) error {
	return f.exportErr
}

func newReportesRouter(reportes service.ReporteService, actividades service.ActividadService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewReportesHandler(reportes, actividades)
	grp := r.Group("/v1", fakeAuth(uuid.NewString()))
	grp.GET("/dashboard", h.Dashboard)
	grp.GET("/reportes", h.Listar)
	grp.POST("/reportes/export", h.Exportar)
	return r
}

func TestListarReporteHandler(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		r := newReportesRouter(&fakeReporteService{}, &fakeActividadService{
			listado: []dto.ActividadResponse{{Titulo: "a"}},
		})
		w := doJSON(t, r, http.MethodGet, "/v1/reportes?fecha_desde=2026-08-01", "")

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("filtro invalido devuelve 400", func(t *testing.T) {
		r := newReportesRouter(&fakeReporteService{}, &fakeActividadService{
			listarErr: fmt.Errorf("%w: fecha_desde debe ser YYYY-MM-DD", service.ErrFiltroInvalido),
		})
		w := doJSON(t, r, http.MethodGet, "/v1/reportes?fecha_desde=01-08-2026", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "fecha_desde")
	})

	t.Run("falla interna devuelve 500 sin detalles", func(t *testing.T) {
		r := newReportesRouter(&fakeReporteService{}, &fakeActividadService{
			listarErr: errors.New("pq: connection refused"),
		})
		w := doJSON(t, r, http.MethodGet, "/v1/reportes", "")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "connection refused")
	})
}

func TestExportarReporteHandler(t *testing.T) {
	t.Run("encolado", func(t *testing.T) {
		r := newReportesRouter(&fakeReporteService{}, &fakeActividadService{})
		w := doJSON(t, r, http.MethodPost, "/v1/reportes/export", `{"fecha_desde":"2026-08-01","fecha_hasta":"2026-08-31"}`)

		assert.Equal(t, http.StatusAccepted, w.Code)
	})

	t.Run("falla al encolar devuelve 500", func(t *testing.T) {
		r := newReportesRouter(&fakeReporteService{exportErr: errors.New("redis down")}, &fakeActividadService{})
		w := doJSON(t, r, http.MethodPost, "/v1/reportes/export", `{}`)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
