package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MotivoFalta / MotivoImpuntualidad are the two deduction reasons.
const (
	MotivoFalta         = "falta"
	MotivoImpuntualidad = "impuntualidad"
)

// Descuento is an immutable entry in the deductions ledger (absences and
// tardiness). No quota applies to deductions.
type Descuento struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UsuarioID   uuid.UUID       `gorm:"type:uuid;index;not null"`
	Motivo      string          `gorm:"type:varchar(64);not null"`
	Descripcion string          `gorm:"type:text"`
	Horas       decimal.Decimal `gorm:"type:decimal(6,2);not null"`
	Fecha       time.Time       `gorm:"index;not null"`
	CreatedAt   time.Time
}

func (Descuento) TableName() string { return "descuentos" }
