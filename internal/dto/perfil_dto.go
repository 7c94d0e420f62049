package dto

import "github.com/shopspring/decimal"

// ActualizarPerfilRequest mutates the user's level and daily quotas.
// Sending null for a quota removes it (sin limite / sin calculo derivado);
// omitted fields keep their current value.
type ActualizarPerfilRequest struct {
	Nivel               *string          `json:"nivel" validate:"omitempty,min=1,max=64"`
	HorasDesarrollo     *decimal.Decimal `json:"horas_desarrollo"`
	HorasAdiestramiento *decimal.Decimal `json:"horas_adiestramiento"`
	// BorrarHorasDesarrollo / BorrarHorasAdiestramiento distinguish "leave as
	// is" from "set to null" — JSON cannot express that with a single pointer.
	BorrarHorasDesarrollo     bool `json:"borrar_horas_desarrollo"`
	BorrarHorasAdiestramiento bool `json:"borrar_horas_adiestramiento"`
}
