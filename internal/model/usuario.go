package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Usuario is a consultant account. Nivel is a free-text level label
// ("consultor", "trainer", ...). The two quota fields drive the daily limit
// and the derived training-hours calculation; a nil quota means the feature
// is disabled for that user (no cap / no derivation).
type Usuario struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Username     string    `gorm:"uniqueIndex;not null"`
	Email        string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	Nivel        string    `gorm:"type:varchar(64);not null;default:'consultor'"`
	// HorasDesarrollo is the daily development-hours quota; nil = sin limite
	HorasDesarrollo *decimal.Decimal `gorm:"type:decimal(5,2)"`
	// HorasAdiestramiento is the daily training-hours quota; nil = sin calculo derivado
	HorasAdiestramiento *decimal.Decimal `gorm:"type:decimal(5,2)"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName pins the table name — gorm's default pluralization mangles
// Spanish nouns.
func (Usuario) TableName() string { return "usuarios" }

// CalcularAdiestramiento returns the training-hours credit derived from the
// given development hours: (adiestramiento/desarrollo) * horas.
// Returns zero when either quota is unset or the development quota is zero —
// a deliberate degrade-to-zero policy, not an error.
func (u *Usuario) CalcularAdiestramiento(horasDesarrollo decimal.Decimal) decimal.Decimal {
	if u.HorasDesarrollo == nil || u.HorasAdiestramiento == nil || u.HorasDesarrollo.IsZero() {
		return decimal.Zero
	}
	return u.HorasAdiestramiento.Div(*u.HorasDesarrollo).Mul(horasDesarrollo)
}
