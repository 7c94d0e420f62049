package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TipoRequerimiento / TipoIncidencia are the two activity types.
const (
	TipoRequerimiento = "requerimiento"
	TipoIncidencia    = "incidencia"
)

// Actividad is an immutable entry in the work ledger. Entries are NEVER
// modified or deleted once recorded — there are no update/delete endpoints.
type Actividad struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UsuarioID   uuid.UUID       `gorm:"type:uuid;index;not null"`
	Tipo        string          `gorm:"type:varchar(64);not null"`
	Titulo      string          `gorm:"type:varchar(128);not null"`
	Descripcion string          `gorm:"type:text"`
	Horas       decimal.Decimal `gorm:"type:decimal(6,2);not null"`
	// Fecha defaults to the creation instant in UTC
	Fecha     time.Time `gorm:"index;not null"`
	CreatedAt time.Time
}

func (Actividad) TableName() string { return "actividades" }
