package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/gabovieira/ali300-consultores/internal/dto"
	"github.com/gabovieira/ali300-consultores/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReporteFixture(t *testing.T) (*stubActividadRepo, *stubDescuentoRepo, uuid.UUID, ReporteService) {
	t.Helper()
	usuarioRepo := newStubUsuarioRepo()
	u := &model.Usuario{ID: uuid.New(), Username: "gabo", Email: "gabo@example.com"}
	usuarioRepo.users[u.ID] = u

	actRepo := &stubActividadRepo{}
	descRepo := &stubDescuentoRepo{}
	svc := NewReporteService(actRepo, descRepo, usuarioRepo, nil, nil)
	return actRepo, descRepo, u.ID, svc
}

func TestResumenDiario(t *testing.T) {
	actRepo, descRepo, usuarioID, svc := newReporteFixture(t)

	hoy := time.Now().UTC()
	dia := hoy.Format("2006-01-02")

	actRepo.acts = append(actRepo.acts,
		model.Actividad{ID: uuid.New(), UsuarioID: usuarioID, Tipo: model.TipoRequerimiento, Titulo: "a", Horas: dec("3"), Fecha: hoy},
		model.Actividad{ID: uuid.New(), UsuarioID: usuarioID, Tipo: model.TipoRequerimiento, Titulo: "b", Horas: dec("2"), Fecha: hoy},
	)
	descRepo.descuentos = append(descRepo.descuentos,
		model.Descuento{ID: uuid.New(), UsuarioID: usuarioID, Motivo: model.MotivoFalta, Horas: dec("1"), Fecha: hoy},
	)

	resumen, err := svc.ResumenDiario(context.Background(), usuarioID, 7)
	require.NoError(t, err)
	require.Contains(t, resumen, dia)

	d := resumen[dia]
	assert.True(t, d.HorasDesarrollo.Equal(dec("5")), "desarrollo=%s", d.HorasDesarrollo)
	assert.True(t, d.HorasAdiestramiento.Equal(dec("1")), "20%% de 5 horas")
	assert.True(t, d.HorasDescuento.Equal(dec("1")))
}

func TestResumenDiarioExcluyeIncidencias(t *testing.T) {
	actRepo, _, usuarioID, svc := newReporteFixture(t)

	hoy := time.Now().UTC()
	actRepo.acts = append(actRepo.acts,
		model.Actividad{ID: uuid.New(), UsuarioID: usuarioID, Tipo: model.TipoIncidencia, Titulo: "incidente", Horas: dec("4"), Fecha: hoy},
	)

	resumen, err := svc.ResumenDiario(context.Background(), usuarioID, 7)
	require.NoError(t, err)
	assert.Empty(t, resumen, "las incidencias no suman al desarrollo")
}

func TestResumenDiarioMapaDisperso(t *testing.T) {
	actRepo, _, usuarioID, svc := newReporteFixture(t)

	hoy := time.Now().UTC()
	anteayer := hoy.AddDate(0, 0, -2)
	actRepo.acts = append(actRepo.acts,
		model.Actividad{ID: uuid.New(), UsuarioID: usuarioID, Tipo: model.TipoRequerimiento, Titulo: "a", Horas: dec("6"), Fecha: hoy},
		model.Actividad{ID: uuid.New(), UsuarioID: usuarioID, Tipo: model.TipoRequerimiento, Titulo: "b", Horas: dec("2"), Fecha: anteayer},
	)

	resumen, err := svc.ResumenDiario(context.Background(), usuarioID, 7)
	require.NoError(t, err)
	// Solo los días con registros aparecen
	assert.Len(t, resumen, 2)
	assert.NotContains(t, resumen, hoy.AddDate(0, 0, -1).Format("2006-01-02"))
}

func TestResumenDiarioIgnoraFueraDeVentana(t *testing.T) {
	actRepo, _, usuarioID, svc := newReporteFixture(t)

	actRepo.acts = append(actRepo.acts,
		model.Actividad{ID: uuid.New(), UsuarioID: usuarioID, Tipo: model.TipoRequerimiento, Titulo: "vieja", Horas: dec("8"), Fecha: time.Now().UTC().AddDate(0, 0, -10)},
	)

	resumen, err := svc.ResumenDiario(context.Background(), usuarioID, 7)
	require.NoError(t, err)
	assert.Empty(t, resumen)
}

func TestDashboard(t *testing.T) {
	actRepo, descRepo, usuarioID, svc := newReporteFixture(t)

	hoy := time.Now().UTC()
	// Siete actividades; solo las cinco mas recientes deben aparecer
	for i := 0; i < 7; i++ {
		actRepo.acts = append(actRepo.acts, model.Actividad{
			ID: uuid.New(), UsuarioID: usuarioID, Tipo: model.TipoRequerimiento,
			Titulo: fmt.Sprintf("tarea %d", i), Horas: dec("1"),
			Fecha: hoy.Add(-time.Duration(i) * time.Hour),
		})
	}
	descRepo.descuentos = append(descRepo.descuentos, model.Descuento{
		ID: uuid.New(), UsuarioID: usuarioID, Motivo: model.MotivoImpuntualidad, Horas: dec("0.5"), Fecha: hoy,
	})

	resp, err := svc.Dashboard(context.Background(), usuarioID)
	require.NoError(t, err)

	require.Len(t, resp.Actividades, 5)
	assert.Equal(t, "tarea 0", resp.Actividades[0].Titulo, "orden descendente por fecha")
	assert.Len(t, resp.Descuentos, 1)
	require.Contains(t, resp.Resumen, hoy.Format("2006-01-02"))
}

func TestDashboardSinRegistros(t *testing.T) {
	_, _, usuarioID, svc := newReporteFixture(t)

	resp, err := svc.Dashboard(context.Background(), usuarioID)
	require.NoError(t, err)
	assert.Empty(t, resp.Actividades)
	assert.Empty(t, resp.Descuentos)
	assert.Empty(t, resp.Resumen)
}

func TestExportarUsuarioDesconocido(t *testing.T) {
	_, _, _, svc := newReporteFixture(t)

	req := dto.ExportarReporteRequest{FechaDesde: "2026-08-01", FechaHasta: "2026-08-31"}
	err := svc.Exportar(context.Background(), uuid.New(), req)
	assert.ErrorIs(t, err, ErrUsuarioNoEncontrado)
}
