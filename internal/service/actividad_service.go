package service

import (
	"context"
	"fmt"
	"time"

	"github.com/gabovieira/ali300-consultores/internal/dto"
	"github.com/gabovieira/ali300-consultores/internal/model"
	"github.com/gabovieira/ali300-consultores/internal/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

type ActividadService interface {
	Registrar(ctx context.Context, usuarioID uuid.UUID, req dto.RegistrarActividadRequest) (*dto.RegistrarActividadResponse, error)
	ListarRecientes(ctx context.Context, usuarioID uuid.UUID, limit int) ([]dto.ActividadResponse, error)
	ListarFiltradas(ctx context.Context, usuarioID uuid.UUID, f dto.ActividadFilter) (*dto.ReporteResponse, error)
	// PuedeRegistrar is the daily-limit check: today's logged hours plus the
	// proposed amount must stay at or under the user's quota.
	PuedeRegistrar(ctx context.Context, usuario *model.Usuario, horas decimal.Decimal) (bool, error)
}

type actividadService struct {
	repo        repository.ActividadRepository
	usuarioRepo repository.UsuarioRepository
	rdb         *redis.Client // nil disables dashboard cache invalidation (tests)
}

func NewActividadService(repo repository.ActividadRepository, usuarioRepo repository.UsuarioRepository, rdb *redis.Client) ActividadService {
	return &actividadService{repo: repo, usuarioRepo: usuarioRepo, rdb: rdb}
}

// inicioDiaUTC returns today's midnight in UTC — the lower bound of the
// daily-limit window. There is deliberately no upper bound: backdated entries
// recorded later today still count toward the limit.
func inicioDiaUTC(now time.Time) time.Time {
	y, m, d := now.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (s *actividadService) PuedeRegistrar(ctx context.Context, usuario *model.Usuario, horas decimal.Decimal) (bool, error) {
	if usuario.HorasDesarrollo == nil {
		return true, nil // sin límite configurado
	}
	total, err := s.repo.SumHorasSince(ctx, usuario.ID, inicioDiaUTC(time.Now()))
	if err != nil {
		return false, err
	}
	return total.Add(horas).LessThanOrEqual(*usuario.HorasDesarrollo), nil
}

func (s *actividadService) Registrar(ctx context.Context, usuarioID uuid.UUID, req dto.RegistrarActividadRequest) (*dto.RegistrarActividadResponse, error) {
	usuario, err := s.usuarioRepo.FindByID(ctx, usuarioID)
	if err != nil {
		return nil, ErrUsuarioNoEncontrado
	}

	ok, err := s.PuedeRegistrar(ctx, usuario, req.Horas)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrLimiteDiarioExcedido
	}

	actividad := &model.Actividad{
		UsuarioID:   usuarioID,
		Tipo:        req.Tipo,
		Titulo:      req.Titulo,
		Descripcion: req.Descripcion,
		Horas:       req.Horas,
		Fecha:       time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, actividad); err != nil {
		return nil, err
	}

	invalidarDashboard(ctx, s.rdb, usuarioID)

	return &dto.RegistrarActividadResponse{
		Actividad:           actividadToResponse(actividad),
		HorasAdiestramiento: usuario.CalcularAdiestramiento(req.Horas),
	}, nil
}

func (s *actividadService) ListarRecientes(ctx context.Context, usuarioID uuid.UUID, limit int) ([]dto.ActividadResponse, error) {
	acts, err := s.repo.ListRecent(ctx, usuarioID, limit)
	if err != nil {
		return nil, err
	}
	return actividadesToResponse(acts), nil
}

func (s *actividadService) ListarFiltradas(ctx context.Context, usuarioID uuid.UUID, f dto.ActividadFilter) (*dto.ReporteResponse, error) {
	filter, err := parseActividadFilter(f)
	if err != nil {
		return nil, err
	}

	acts, err := s.repo.ListFiltered(ctx, usuarioID, filter)
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	for _, a := range acts {
		total = total.Add(a.Horas)
	}
	return &dto.ReporteResponse{
		Actividades: actividadesToResponse(acts),
		Total:       total,
	}, nil
}

// parseActividadFilter converts the query-string filter into repository terms.
// An inclusive fecha_hasta expands to the following midnight.
func parseActividadFilter(f dto.ActividadFilter) (repository.ActividadFilter, error) {
	var filter repository.ActividadFilter
	if f.FechaDesde != "" {
		t, err := time.Parse("2006-01-02", f.FechaDesde)
		if err != nil {
			return filter, fmt.Errorf("%w: fecha_desde debe ser YYYY-MM-DD", ErrFiltroInvalido)
		}
		filter.Desde = &t
	}
	if f.FechaHasta != "" {
		t, err := time.Parse("2006-01-02", f.FechaHasta)
		if err != nil {
			return filter, fmt.Errorf("%w: fecha_hasta debe ser YYYY-MM-DD", ErrFiltroInvalido)
		}
		hasta := t.Add(24 * time.Hour)
		filter.Hasta = &hasta
	}
	filter.Tipo = f.Tipo
	return filter, nil
}

func actividadToResponse(a *model.Actividad) dto.ActividadResponse {
	return dto.ActividadResponse{
		ID:          a.ID.String(),
		Tipo:        a.Tipo,
		Titulo:      a.Titulo,
		Descripcion: a.Descripcion,
		Horas:       a.Horas,
		Fecha:       a.Fecha.UTC().Format(time.RFC3339),
	}
}

func actividadesToResponse(acts []model.Actividad) []dto.ActividadResponse {
	resp := make([]dto.ActividadResponse, len(acts))
	for i := range acts {
		resp[i] = actividadToResponse(&acts[i])
	}
	return resp
}
