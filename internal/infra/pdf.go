package infra

// pdf.go — Activity report rendering using go-pdf/fpdf.
// Produces an A4 report with a header (consultant, period, type filter),
// one row per activity and a totals line. The file is written to
// storagePath/reporte_{username}_{timestamp}.pdf.

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gabovieira/ali300-consultores/internal/model"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
)

// GenerarReportePDF renders the filtered activity list for a user and returns
// the absolute path of the generated file. periodo and tipo are display
// strings; empty strings render as "todas".
func GenerarReportePDF(usuario *model.Usuario, actividades []model.Actividad, periodo, tipo, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("reporte_%s_%d.pdf", usuario.Username, time.Now().UTC().Unix())
	filePath := filepath.Join(storagePath, fileName)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 9, "ALI300 Consultores", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(contentW, 6, "Reporte de actividades", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	if periodo == "" {
		periodo = "todas las fechas"
	}
	if tipo == "" {
		tipo = "todas"
	}
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 5, fmt.Sprintf("Consultor: %s (%s)", usuario.Username, usuario.Nivel), "", 1, "L", false, 0, "")
	pdf.CellFormat(contentW, 5, "Periodo: "+periodo, "", 1, "L", false, 0, "")
	pdf.CellFormat(contentW, 5, "Tipo: "+tipo, "", 1, "L", false, 0, "")
	pdf.Ln(3)

	// ── Table header ─────────────────────────────────────────────────────────
	col1 := contentW * 0.16 // fecha
	col2 := contentW * 0.18 // tipo
	col3 := contentW * 0.54 // titulo
	col4 := contentW * 0.12 // horas

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(col1, 6, "Fecha", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 6, "Tipo", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col3, 6, "Titulo", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col4, 6, "Horas", "B", 1, "R", false, 0, "")

	// ── Rows ─────────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "", 9)
	total := decimal.Zero
	for _, a := range actividades {
		titulo := a.Titulo
		if len(titulo) > 48 {
			titulo = titulo[:47] + "…"
		}
		pdf.CellFormat(col1, 6, a.Fecha.Format("02/01/2006"), "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 6, a.Tipo, "", 0, "L", false, 0, "")
		pdf.CellFormat(col3, 6, titulo, "", 0, "L", false, 0, "")
		pdf.CellFormat(col4, 6, a.Horas.StringFixed(2), "", 1, "R", false, 0, "")
		total = total.Add(a.Horas)
	}

	pdf.Ln(2)
	pdf.Line(15, pdf.GetY(), pageW-15, pdf.GetY())
	pdf.Ln(2)

	// ── Totals ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(col1+col2+col3, 7, "TOTAL:", "", 0, "L", false, 0, "")
	pdf.CellFormat(col4, 7, total.StringFixed(2), "", 1, "R", false, 0, "")

	adiestramiento := usuario.CalcularAdiestramiento(total)
	if !adiestramiento.IsZero() {
		pdf.SetFont("Helvetica", "", 9)
		pdf.CellFormat(col1+col2+col3, 6, "Horas de adiestramiento derivadas:", "", 0, "L", false, 0, "")
		pdf.CellFormat(col4, 6, adiestramiento.StringFixed(2), "", 1, "R", false, 0, "")
	}

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}

	return filePath, nil
}
