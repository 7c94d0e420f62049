package repository

import (
	"context"
	"time"

	"github.com/gabovieira/ali300-consultores/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ActividadFilter narrows ListFiltered. Nil/empty fields are skipped; the
// remaining conditions combine with AND. Hasta is exclusive ([Desde, Hasta)),
// callers expand an inclusive end date to the following midnight.
type ActividadFilter struct {
	Desde *time.Time
	Hasta *time.Time
	Tipo  string
}

type ActividadRepository interface {
	Create(ctx context.Context, a *model.Actividad) error
	ListRecent(ctx context.Context, usuarioID uuid.UUID, limit int) ([]model.Actividad, error)
	ListFiltered(ctx context.Context, usuarioID uuid.UUID, f ActividadFilter) ([]model.Actividad, error)
	ListSince(ctx context.Context, usuarioID uuid.UUID, desde time.Time) ([]model.Actividad, error)
	// SumHorasSince returns SUM(horas) for entries dated at or after desde.
	// No upper bound: backdated same-day entries recorded later are counted,
	// future-dated ones too.
	SumHorasSince(ctx context.Context, usuarioID uuid.UUID, desde time.Time) (decimal.Decimal, error)
}

type actividadRepo struct{ db *gorm.DB }

func NewActividadRepository(db *gorm.DB) ActividadRepository { return &actividadRepo{db: db} }

func (r *actividadRepo) Create(ctx context.Context, a *model.Actividad) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *actividadRepo) ListRecent(ctx context.Context, usuarioID uuid.UUID, limit int) ([]model.Actividad, error) {
	var acts []model.Actividad
	err := r.db.WithContext(ctx).
		Where("usuario_id = ?", usuarioID).
		Order("fecha DESC").
		Limit(limit).
		Find(&acts).Error
	return acts, err
}

func (r *actividadRepo) ListFiltered(ctx context.Context, usuarioID uuid.UUID, f ActividadFilter) ([]model.Actividad, error) {
	q := r.db.WithContext(ctx).Where("usuario_id = ?", usuarioID)
	if f.Desde != nil {
		q = q.Where("fecha >= ?", *f.Desde)
	}
	if f.Hasta != nil {
		q = q.Where("fecha < ?", *f.Hasta)
	}
	if f.Tipo != "" {
		q = q.Where("tipo = ?", f.Tipo)
	}
	var acts []model.Actividad
	err := q.Order("fecha DESC").Find(&acts).Error
	return acts, err
}

func (r *actividadRepo) ListSince(ctx context.Context, usuarioID uuid.UUID, desde time.Time) ([]model.Actividad, error) {
	var acts []model.Actividad
	err := r.db.WithContext(ctx).
		Where("usuario_id = ? AND fecha >= ?", usuarioID, desde).
		Find(&acts).Error
	return acts, err
}

func (r *actividadRepo) SumHorasSince(ctx context.Context, usuarioID uuid.UUID, desde time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.WithContext(ctx).
		Raw("SELECT COALESCE(SUM(horas), 0) FROM actividades WHERE usuario_id = ? AND fecha >= ?", usuarioID, desde).
		Scan(&total).Error
	return total, err
}
