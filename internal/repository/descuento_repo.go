package repository

import (
	"context"
	"time"

	"github.com/gabovieira/ali300-consultores/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DescuentoRepository interface {
	Create(ctx context.Context, d *model.Descuento) error
	ListRecent(ctx context.Context, usuarioID uuid.UUID, limit int) ([]model.Descuento, error)
	ListSince(ctx context.Context, usuarioID uuid.UUID, desde time.Time) ([]model.Descuento, error)
}

type descuentoRepo struct{ db *gorm.DB }

func NewDescuentoRepository(db *gorm.DB) DescuentoRepository { return &descuentoRepo{db: db} }

func (r *descuentoRepo) Create(ctx context.Context, d *model.Descuento) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *descuentoRepo) ListRecent(ctx context.Context, usuarioID uuid.UUID, limit int) ([]model.Descuento, error) {
	var ds []model.Descuento
	err := r.db.WithContext(ctx).
		Where("usuario_id = ?", usuarioID).
		Order("fecha DESC").
		Limit(limit).
		Find(&ds).Error
	return ds, err
}

func (r *descuentoRepo) ListSince(ctx context.Context, usuarioID uuid.UUID, desde time.Time) ([]model.Descuento, error) {
	var ds []model.Descuento
	err := r.db.WithContext(ctx).
		Where("usuario_id = ? AND fecha >= ?", usuarioID, desde).
		Find(&ds).Error
	return ds, err
}
