package dto

import "github.com/shopspring/decimal"

type RegistrarActividadRequest struct {
	Tipo        string `json:"tipo"   validate:"required,oneof=requerimiento incidencia"`
	Titulo      string `json:"titulo" validate:"required,min=1,max=128"`
	Descripcion string `json:"descripcion"`
	// Horas has no sign constraint: zero and negative values are accepted,
	// corrections are entered as negative rows
	Horas decimal.Decimal `json:"horas"`
}

type ActividadResponse struct {
	ID          string          `json:"id"`
	Tipo        string          `json:"tipo"`
	Titulo      string          `json:"titulo"`
	Descripcion string          `json:"descripcion"`
	Horas       decimal.Decimal `json:"horas"`
	Fecha       string          `json:"fecha"` // RFC 3339, UTC
}

// RegistrarActividadResponse echoes the stored entry plus the training-hours
// credit derived from the user's quota ratio (zero when not configured).
type RegistrarActividadResponse struct {
	Actividad           ActividadResponse `json:"actividad"`
	HorasAdiestramiento decimal.Decimal   `json:"horas_adiestramiento"`
}

// ActividadFilter carries the optional report filters. All are combinable
// with AND semantics; date bounds are inclusive.
type ActividadFilter struct {
	FechaDesde string // YYYY-MM-DD
	FechaHasta string // YYYY-MM-DD
	Tipo       string
}
