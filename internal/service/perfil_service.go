package service

import (
	"context"

	"github.com/gabovieira/ali300-consultores/internal/dto"
	"github.com/gabovieira/ali300-consultores/internal/repository"

	"github.com/google/uuid"
)

type PerfilService interface {
	Obtener(ctx context.Context, usuarioID uuid.UUID) (*dto.UsuarioResponse, error)
	Actualizar(ctx context.Context, usuarioID uuid.UUID, req dto.ActualizarPerfilRequest) (*dto.UsuarioResponse, error)
}

type perfilService struct {
	repo repository.UsuarioRepository
}

func NewPerfilService(repo repository.UsuarioRepository) PerfilService {
	return &perfilService{repo: repo}
}

func (s *perfilService) Obtener(ctx context.Context, usuarioID uuid.UUID) (*dto.UsuarioResponse, error) {
	user, err := s.repo.FindByID(ctx, usuarioID)
	if err != nil {
		return nil, ErrUsuarioNoEncontrado
	}
	resp := usuarioToResponse(user)
	return &resp, nil
}

// Actualizar mutates level and daily quotas. Setting a quota to null (via the
// borrar flags) means "sin límite" / "sin cálculo derivado".
func (s *perfilService) Actualizar(ctx context.Context, usuarioID uuid.UUID, req dto.ActualizarPerfilRequest) (*dto.UsuarioResponse, error) {
	user, err := s.repo.FindByID(ctx, usuarioID)
	if err != nil {
		return nil, ErrUsuarioNoEncontrado
	}

	if req.Nivel != nil {
		user.Nivel = *req.Nivel
	}
	switch {
	case req.BorrarHorasDesarrollo:
		user.HorasDesarrollo = nil
	case req.HorasDesarrollo != nil:
		user.HorasDesarrollo = req.HorasDesarrollo
	}
	switch {
	case req.BorrarHorasAdiestramiento:
		user.HorasAdiestramiento = nil
	case req.HorasAdiestramiento != nil:
		user.HorasAdiestramiento = req.HorasAdiestramiento
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	resp := usuarioToResponse(user)
	return &resp, nil
}
