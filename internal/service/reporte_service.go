package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gabovieira/ali300-consultores/internal/dto"
	"github.com/gabovieira/ali300-consultores/internal/model"
	"github.com/gabovieira/ali300-consultores/internal/repository"
	"github.com/gabovieira/ali300-consultores/internal/worker"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

const (
	dashboardCacheTTL    = time.Minute
	dashboardRecientes   = 5
	dashboardVentanaDias = 7
)

// tasaAdiestramientoDashboard is the fixed 20% estimate the dashboard uses.
// It is intentionally NOT the per-user quota ratio applied when recording an
// activity; product has not decided which of the two formulas wins, so both
// stay as they are.
var tasaAdiestramientoDashboard = decimal.NewFromFloat(0.2)

type ReporteService interface {
	ResumenDiario(ctx context.Context, usuarioID uuid.UUID, ventanaDias int) (map[string]dto.ResumenDia, error)
	Dashboard(ctx context.Context, usuarioID uuid.UUID) (*dto.DashboardResponse, error)
	Exportar(ctx context.Context, usuarioID uuid.UUID, req dto.ExportarReporteRequest) error
}

type reporteService struct {
	actividadRepo repository.ActividadRepository
	descuentoRepo repository.DescuentoRepository
	usuarioRepo   repository.UsuarioRepository
	dispatcher    *worker.Dispatcher
	rdb           *redis.Client // nil disables the dashboard cache (tests)
}

func NewReporteService(
	actividadRepo repository.ActividadRepository,
	descuentoRepo repository.DescuentoRepository,
	usuarioRepo repository.UsuarioRepository,
	dispatcher *worker.Dispatcher,
	rdb *redis.Client,
) ReporteService {
	return &reporteService{
		actividadRepo: actividadRepo,
		descuentoRepo: descuentoRepo,
		usuarioRepo:   usuarioRepo,
		dispatcher:    dispatcher,
		rdb:           rdb,
	}
}

// ResumenDiario buckets the last ventanaDias of both ledgers by UTC calendar
// day. Only "requerimiento" activities count toward development hours; the
// training estimate is the fixed 20% heuristic. Days with no entries are
// absent from the map.
func (s *reporteService) ResumenDiario(ctx context.Context, usuarioID uuid.UUID, ventanaDias int) (map[string]dto.ResumenDia, error) {
	desde := time.Now().UTC().AddDate(0, 0, -ventanaDias)

	actividades, err := s.actividadRepo.ListSince(ctx, usuarioID, desde)
	if err != nil {
		return nil, err
	}
	descuentos, err := s.descuentoRepo.ListSince(ctx, usuarioID, desde)
	if err != nil {
		return nil, err
	}

	resumen := make(map[string]dto.ResumenDia)

	for _, a := range actividades {
		if a.Tipo != model.TipoRequerimiento {
			continue
		}
		dia := a.Fecha.UTC().Format("2006-01-02")
		d := resumen[dia]
		d.HorasDesarrollo = d.HorasDesarrollo.Add(a.Horas)
		d.HorasAdiestramiento = d.HorasAdiestramiento.Add(a.Horas.Mul(tasaAdiestramientoDashboard))
		resumen[dia] = d
	}

	for _, desc := range descuentos {
		dia := desc.Fecha.UTC().Format("2006-01-02")
		d := resumen[dia]
		d.HorasDescuento = d.HorasDescuento.Add(desc.Horas)
		resumen[dia] = d
	}

	return resumen, nil
}

// Dashboard assembles the landing view: five most recent entries of each
// ledger plus the 7-day summary. Cache-aside over redis with a short TTL;
// recording an activity or a deduction invalidates the key.
func (s *reporteService) Dashboard(ctx context.Context, usuarioID uuid.UUID) (*dto.DashboardResponse, error) {
	cacheKey := dashboardCacheKey(usuarioID)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Bytes(); err == nil {
			var resp dto.DashboardResponse
			if jsonErr := json.Unmarshal(cached, &resp); jsonErr == nil {
				return &resp, nil
			}
		}
	}

	actividades, err := s.actividadRepo.ListRecent(ctx, usuarioID, dashboardRecientes)
	if err != nil {
		return nil, err
	}
	descuentos, err := s.descuentoRepo.ListRecent(ctx, usuarioID, dashboardRecientes)
	if err != nil {
		return nil, err
	}
	resumen, err := s.ResumenDiario(ctx, usuarioID, dashboardVentanaDias)
	if err != nil {
		return nil, err
	}

	resp := &dto.DashboardResponse{
		Actividades: actividadesToResponse(actividades),
		Descuentos:  descuentosToResponse(descuentos),
		Resumen:     resumen,
	}

	// Populate cache — best effort, ignore errors
	if s.rdb != nil {
		if b, jsonErr := json.Marshal(resp); jsonErr == nil {
			_ = s.rdb.Set(ctx, cacheKey, b, dashboardCacheTTL).Err()
		}
	}

	return resp, nil
}

// Exportar enqueues the async PDF report job. The HTTP layer returns 202; the
// worker pool does the heavy lifting.
func (s *reporteService) Exportar(ctx context.Context, usuarioID uuid.UUID, req dto.ExportarReporteRequest) error {
	usuario, err := s.usuarioRepo.FindByID(ctx, usuarioID)
	if err != nil {
		return ErrUsuarioNoEncontrado
	}

	to := req.Email
	if to == "" {
		to = usuario.Email
	}
	job := worker.ReporteJobPayload{
		UsuarioID:  usuario.ID.String(),
		FechaDesde: req.FechaDesde,
		FechaHasta: req.FechaHasta,
		Tipo:       req.Tipo,
		ToEmail:    to,
	}
	return s.dispatcher.EnqueueReporte(ctx, job)
}

func dashboardCacheKey(usuarioID uuid.UUID) string {
	return "dashboard:" + usuarioID.String()
}

// invalidarDashboard drops the cached dashboard after a ledger write.
func invalidarDashboard(ctx context.Context, rdb *redis.Client, usuarioID uuid.UUID) {
	if rdb == nil {
		return
	}
	_ = rdb.Del(ctx, dashboardCacheKey(usuarioID)).Err()
}
