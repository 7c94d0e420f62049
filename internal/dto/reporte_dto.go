package dto

import "github.com/shopspring/decimal"

// ResumenDia aggregates one calendar day (UTC) of the dashboard summary.
type ResumenDia struct {
	HorasDesarrollo     decimal.Decimal `json:"horas_desarrollo"`
	HorasAdiestramiento decimal.Decimal `json:"horas_adiestramiento"`
	HorasDescuento      decimal.Decimal `json:"horas_descuento"`
}

// DashboardResponse is the payload behind GET /v1/dashboard: the five most
// recent entries of each ledger plus the day-bucketed summary of the last
// seven days. Days with no entries are absent from the map (sparse).
type DashboardResponse struct {
	Actividades []ActividadResponse   `json:"actividades"`
	Descuentos  []DescuentoResponse   `json:"descuentos"`
	Resumen     map[string]ResumenDia `json:"resumen"` // key: YYYY-MM-DD
}

type ReporteResponse struct {
	Actividades []ActividadResponse `json:"actividades"`
	Total       decimal.Decimal     `json:"total_horas"`
}

// ExportarReporteRequest asks for the filtered activity report to be rendered
// as a PDF and sent to the given address (defaults to the account email).
type ExportarReporteRequest struct {
	FechaDesde string `json:"fecha_desde" validate:"omitempty,datetime=2006-01-02"`
	FechaHasta string `json:"fecha_hasta" validate:"omitempty,datetime=2006-01-02"`
	Tipo       string `json:"tipo"        validate:"omitempty,oneof=requerimiento incidencia"`
	Email      string `json:"email"       validate:"omitempty,email"`
}
