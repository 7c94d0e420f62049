package dto

import "github.com/shopspring/decimal"

type RegistrarDescuentoRequest struct {
	Motivo      string          `json:"motivo" validate:"required,oneof=falta impuntualidad"`
	Descripcion string          `json:"descripcion"`
	Horas       decimal.Decimal `json:"horas"`
}

type DescuentoResponse struct {
	ID          string          `json:"id"`
	Motivo      string          `json:"motivo"`
	Descripcion string          `json:"descripcion"`
	Horas       decimal.Decimal `json:"horas"`
	Fecha       string          `json:"fecha"` // RFC 3339, UTC
}
