package service

import (
	"context"
	"time"

	"github.com/gabovieira/ali300-consultores/internal/dto"
	"github.com/gabovieira/ali300-consultores/internal/model"
	"github.com/gabovieira/ali300-consultores/internal/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type DescuentoService interface {
	Registrar(ctx context.Context, usuarioID uuid.UUID, req dto.RegistrarDescuentoRequest) (*dto.DescuentoResponse, error)
	ListarRecientes(ctx context.Context, usuarioID uuid.UUID, limit int) ([]dto.DescuentoResponse, error)
}

type descuentoService struct {
	repo repository.DescuentoRepository
	rdb  *redis.Client
}

func NewDescuentoService(repo repository.DescuentoRepository, rdb *redis.Client) DescuentoService {
	return &descuentoService{repo: repo, rdb: rdb}
}

// Registrar appends a deduction entry. No quota check applies to deductions.
func (s *descuentoService) Registrar(ctx context.Context, usuarioID uuid.UUID, req dto.RegistrarDescuentoRequest) (*dto.DescuentoResponse, error) {
	descuento := &model.Descuento{
		UsuarioID:   usuarioID,
		Motivo:      req.Motivo,
		Descripcion: req.Descripcion,
		Horas:       req.Horas,
		Fecha:       time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, descuento); err != nil {
		return nil, err
	}

	invalidarDashboard(ctx, s.rdb, usuarioID)

	resp := descuentoToResponse(descuento)
	return &resp, nil
}

func (s *descuentoService) ListarRecientes(ctx context.Context, usuarioID uuid.UUID, limit int) ([]dto.DescuentoResponse, error) {
	ds, err := s.repo.ListRecent(ctx, usuarioID, limit)
	if err != nil {
		return nil, err
	}
	return descuentosToResponse(ds), nil
}

func descuentoToResponse(d *model.Descuento) dto.DescuentoResponse {
	return dto.DescuentoResponse{
		ID:          d.ID.String(),
		Motivo:      d.Motivo,
		Descripcion: d.Descripcion,
		Horas:       d.Horas,
		Fecha:       d.Fecha.UTC().Format(time.RFC3339),
	}
}

func descuentosToResponse(ds []model.Descuento) []dto.DescuentoResponse {
	resp := make([]dto.DescuentoResponse, len(ds))
	for i := range ds {
		resp[i] = descuentoToResponse(&ds[i])
	}
	return resp
}
