package service

// In-memory repository stubs shared across the service tests. They reproduce
// the query semantics of the real repositories over plain slices/maps.

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/gabovieira/ali300-consultores/internal/model"
	"github.com/gabovieira/ali300-consultores/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ── Usuario stub ──────────────────────────────────────────────────────────────

type stubUsuarioRepo struct {
	users map[uuid.UUID]*model.Usuario
}

func newStubUsuarioRepo() *stubUsuarioRepo {
	return &stubUsuarioRepo{users: make(map[uuid.UUID]*model.Usuario)}
}

func (r *stubUsuarioRepo) Create(_ context.Context, u *model.Usuario) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	r.users[u.ID] = u
	return nil
}

func (r *stubUsuarioRepo) FindByUsername(_ context.Context, username string) (*model.Usuario, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, errors.New("record not found")
}

func (r *stubUsuarioRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Usuario, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return u, nil
}

func (r *stubUsuarioRepo) ExistsUsername(_ context.Context, username string) (bool, error) {
	for _, u := range r.users {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubUsuarioRepo) ExistsEmail(_ context.Context, email string) (bool, error) {
	for _, u := range r.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubUsuarioRepo) Update(_ context.Context, u *model.Usuario) error {
	r.users[u.ID] = u
	return nil
}

// ── Actividad stub ────────────────────────────────────────────────────────────

type stubActividadRepo struct {
	acts []model.Actividad
}

func (r *stubActividadRepo) Create(_ context.Context, a *model.Actividad) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	r.acts = append(r.acts, *a)
	return nil
}

func (r *stubActividadRepo) ListRecent(_ context.Context, usuarioID uuid.UUID, limit int) ([]model.Actividad, error) {
	var out []model.Actividad
	for _, a := range r.acts {
		if a.UsuarioID == usuarioID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Fecha.After(out[j].Fecha) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *stubActividadRepo) ListFiltered(_ context.Context, usuarioID uuid.UUID, f repository.ActividadFilter) ([]model.Actividad, error) {
	var out []model.Actividad
	for _, a := range r.acts {
		if a.UsuarioID != usuarioID {
			continue
		}
		if f.Desde != nil && a.Fecha.Before(*f.Desde) {
			continue
		}
		if f.Hasta != nil && !a.Fecha.Before(*f.Hasta) {
			continue
		}
		if f.Tipo != "" && a.Tipo != f.Tipo {
			continue
		}
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Fecha.After(out[j].Fecha) })
	return out, nil
}

func (r *stubActividadRepo) ListSince(_ context.Context, usuarioID uuid.UUID, desde time.Time) ([]model.Actividad, error) {
	var out []model.Actividad
	for _, a := range r.acts {
		if a.UsuarioID == usuarioID && !a.Fecha.Before(desde) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *stubActividadRepo) SumHorasSince(_ context.Context, usuarioID uuid.UUID, desde time.Time) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, a := range r.acts {
		if a.UsuarioID == usuarioID && !a.Fecha.Before(desde) {
			total = total.Add(a.Horas)
		}
	}
	return total, nil
}

// ── Descuento stub ────────────────────────────────────────────────────────────

type stubDescuentoRepo struct {
	descuentos []model.Descuento
}

func (r *stubDescuentoRepo) Create(_ context.Context, d *model.Descuento) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	r.descuentos = append(r.descuentos, *d)
	return nil
}

func (r *stubDescuentoRepo) ListRecent(_ context.Context, usuarioID uuid.UUID, limit int) ([]model.Descuento, error) {
	var out []model.Descuento
	for _, d := range r.descuentos {
		if d.UsuarioID == usuarioID {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Fecha.After(out[j].Fecha) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *stubDescuentoRepo) ListSince(_ context.Context, usuarioID uuid.UUID, desde time.Time) ([]model.Descuento, error) {
	var out []model.Descuento
	for _, d := range r.descuentos {
		if d.UsuarioID == usuarioID && !d.Fecha.Before(desde) {
			out = append(out, d)
		}
	}
	return out, nil
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}
