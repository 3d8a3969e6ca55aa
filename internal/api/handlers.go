package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/hedgeops/posrecon/internal/alert"
	"github.com/hedgeops/posrecon/internal/domain"
	"github.com/hedgeops/posrecon/internal/ingestion"
	"github.com/hedgeops/posrecon/internal/reconciliation"
	"github.com/hedgeops/posrecon/internal/report"
)

// Handlers groups all HTTP handler methods and their dependencies. The
// service is stateless: every request carries both snapshots and the
// response carries the full break list.
type Handlers struct {
	engine *reconciliation.Engine
	log    *zap.SugaredLogger
}

// --- helpers ---

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.S().Errorw("encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// reconcileAndRespond runs the engine over the decoded snapshots and writes
// the standard response envelope: run counts, the break list in break-ID
// order, and summaries folded by severity and type.
func (h *Handlers) reconcileAndRespond(w http.ResponseWriter, source, target []domain.Position) {
	result, err := h.engine.Reconcile(source, target)
	if err != nil {
		var dup *domain.DuplicateKeyError
		var val *domain.ValidationError
		if errors.As(err, &dup) || errors.As(err, &val) {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"source_count":  result.SourceCount,
		"target_count":  result.TargetCount,
		"matched_count": result.MatchedCount,
		"break_count":   len(result.Breaks),
		"breaks":        result.Breaks,
		"summary": map[string]any{
			"by_severity":          report.CountBySeverity(result.Breaks),
			"by_type":              report.CountByType(result.Breaks),
			"actionable_count":     len(alert.Actionable(result.Breaks)),
			"total_value_variance": report.TotalValueVariance(result.Breaks),
		},
	})
}

// --- Reconcile ---

type reconcileRequest struct {
	Source []domain.Position `json:"source"`
	Target []domain.Position `json:"target"`
}

// Reconcile accepts both snapshots as JSON and returns the break list.
func (h *Handlers) Reconcile(w http.ResponseWriter, r *http.Request) {
	var req reconcileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	h.reconcileAndRespond(w, req.Source, req.Target)
}

// --- ReconcileUpload ---

// ReconcileUpload accepts both snapshots as multipart file uploads. Form
// fields: source, target (files), format (csv or json, default csv).
func (h *Handlers) ReconcileUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form: "+err.Error())
		return
	}

	format := r.FormValue("format")
	if format == "" {
		format = ingestion.FormatCSV
	}

	source, err := h.readSnapshotFile(r, "source", format)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	target, err := h.readSnapshotFile(r, "target", format)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	h.log.Infow("snapshot upload",
		"format", format,
		"source_positions", len(source),
		"target_positions", len(target),
	)

	h.reconcileAndRespond(w, source, target)
}

func (h *Handlers) readSnapshotFile(r *http.Request, field, format string) ([]domain.Position, error) {
	file, _, err := r.FormFile(field)
	if err != nil {
		return nil, errors.New(field + " file field is required: " + err.Error())
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, errors.New("read " + field + ": " + err.Error())
	}

	positions, err := ingestion.ParseSnapshot(data, format)
	if err != nil {
		return nil, errors.New("parse " + field + ": " + err.Error())
	}
	return positions, nil
}

// --- Health ---

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
