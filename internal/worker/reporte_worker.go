package worker

// reporte_worker.go
// Processes report-export jobs from QueueReporte: queries the activity ledger
// with the requested filters, renders the PDF and enqueues an email job with
// the file attached.

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gabovieira/ali300-consultores/internal/infra"
	"github.com/gabovieira/ali300-consultores/internal/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// ReporteJobPayload is the job envelope sent to QueueReporte.
type ReporteJobPayload struct {
	UsuarioID  string `json:"usuario_id"`
	FechaDesde string `json:"fecha_desde,omitempty"` // YYYY-MM-DD
	FechaHasta string `json:"fecha_hasta,omitempty"` // YYYY-MM-DD
	Tipo       string `json:"tipo,omitempty"`
	ToEmail    string `json:"to_email"`
}

// ReporteWorker renders requested activity reports as PDF files.
type ReporteWorker struct {
	usuarioRepo   repository.UsuarioRepository
	actividadRepo repository.ActividadRepository
	dispatcher    *Dispatcher
	rdb           *redis.Client
	storagePath   string
}

func NewReporteWorker(
	usuarioRepo repository.UsuarioRepository,
	actividadRepo repository.ActividadRepository,
	dispatcher *Dispatcher,
	rdb *redis.Client,
	storagePath string,
) *ReporteWorker {
	return &ReporteWorker{
		usuarioRepo:   usuarioRepo,
		actividadRepo: actividadRepo,
		dispatcher:    dispatcher,
		rdb:           rdb,
		storagePath:   storagePath,
	}
}

// Process generates one report. Failures go to the DLQ — the HTTP request
// that enqueued the job has long since returned 202.
func (w *ReporteWorker) Process(ctx context.Context, raw json.RawMessage) {
	var payload ReporteJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("reporte_worker: invalid payload")
		return
	}

	uid, err := uuid.Parse(payload.UsuarioID)
	if err != nil {
		log.Error().Err(err).Str("usuario_id", payload.UsuarioID).Msg("reporte_worker: bad usuario_id")
		return
	}

	usuario, err := w.usuarioRepo.FindByID(ctx, uid)
	if err != nil {
		SendToDLQ(ctx, w.rdb, QueueReporte, "reporte", raw, "usuario no encontrado")
		return
	}

	filter, periodo, err := buildFilter(payload)
	if err != nil {
		SendToDLQ(ctx, w.rdb, QueueReporte, "reporte", raw, err.Error())
		return
	}

	actividades, err := w.actividadRepo.ListFiltered(ctx, uid, filter)
	if err != nil {
		SendToDLQ(ctx, w.rdb, QueueReporte, "reporte", raw, err.Error())
		return
	}

	pdfPath, err := infra.GenerarReportePDF(usuario, actividades, periodo, payload.Tipo, w.storagePath)
	if err != nil {
		SendToDLQ(ctx, w.rdb, QueueReporte, "reporte", raw, err.Error())
		return
	}

	emailJob := EmailJobPayload{
		ToEmail:        payload.ToEmail,
		Subject:        "Reporte de actividades — ALI300 Consultores",
		Body:           fmt.Sprintf("Adjunto reporte de actividades (%s).", periodo),
		AttachmentPath: pdfPath,
	}
	if err := w.dispatcher.EnqueueEmail(ctx, emailJob); err != nil {
		log.Error().Err(err).Msg("reporte_worker: failed to enqueue email job")
		return
	}

	log.Info().
		Str("usuario", usuario.Username).
		Str("pdf", pdfPath).
		Int("actividades", len(actividades)).
		Msg("reporte_worker: report generated")
}

func buildFilter(p ReporteJobPayload) (repository.ActividadFilter, string, error) {
	var f repository.ActividadFilter
	periodo := "todas las fechas"

	if p.FechaDesde != "" {
		t, err := time.Parse("2006-01-02", p.FechaDesde)
		if err != nil {
			return f, "", fmt.Errorf("fecha_desde inválida: %w", err)
		}
		f.Desde = &t
	}
	if p.FechaHasta != "" {
		t, err := time.Parse("2006-01-02", p.FechaHasta)
		if err != nil {
			return f, "", fmt.Errorf("fecha_hasta inválida: %w", err)
		}
		// Inclusive end date: cover the whole day
		hasta := t.Add(24 * time.Hour)
		f.Hasta = &hasta
	}
	f.Tipo = p.Tipo

	if p.FechaDesde != "" || p.FechaHasta != "" {
		periodo = fmt.Sprintf("%s — %s", orAll(p.FechaDesde), orAll(p.FechaHasta))
	}
	return f, periodo, nil
}

func orAll(s string) string {
	if s == "" {
		return "…"
	}
	return s
}
