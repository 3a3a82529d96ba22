// Package handler is the HTTP layer over the audit log. It keeps the wire
// contract of the aid-logger clients: POST /logAid and GET /logs, plus a CSV
// export of the filtered log.
package handler

import (
	"context"
	"encoding/csv"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"aidproof/internal/auditlog"
	"aidproof/pkg/platform/httputil"
)

// Service defines the audit-log operations the handler needs.
type Service interface {
	Submit(ctx context.Context, req auditlog.SubmitRequest) (auditlog.Event, error)
	List(ctx context.Context, filter auditlog.Filter) ([]auditlog.Event, error)
}

// Handler wires audit-log endpoints to the event service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a Handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts the endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/logAid", h.HandleLogAid)
	r.Get("/logs", h.HandleListLogs)
	r.Get("/logs/export", h.HandleExportCSV)
}

// LogAidResponse is the success envelope for POST /logAid.
type LogAidResponse struct {
	Success bool   `json:"success"`
	FileID  string `json:"fileId"`
}

// HandleLogAid handles POST /logAid requests.
func (h *Handler) HandleLogAid(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetReqID(ctx)
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[LogAidRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	event, err := h.service.Submit(ctx, auditlog.SubmitRequest{
		BeneficiaryID: req.BeneficiaryID,
		AidType:       req.AidType,
		Location:      req.Location,
		Timestamp:     req.Timestamp,
		ClientDigest:  req.AidDataHash,
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "aid event submission failed",
			"request_id", requestID,
			"error", err.Error(),
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "aid event recorded",
		"request_id", requestID,
		"anchor_id", event.AnchorID,
		"aid_type", event.AidType,
		"location", event.Location,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusOK, LogAidResponse{Success: true, FileID: event.AnchorID})
}

// HandleListLogs handles GET /logs requests. Filters come from query params
// and combine with AND; no params returns the full log in append order.
func (h *Handler) HandleListLogs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	events, err := h.service.List(ctx, filterFromQuery(r))
	if err != nil {
		h.logger.ErrorContext(ctx, "audit log read failed",
			"request_id", middleware.GetReqID(ctx),
			"error", err.Error(),
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, events)
}

// HandleExportCSV handles GET /logs/export, streaming the filtered log as a
// CSV download.
func (h *Handler) HandleExportCSV(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	events, err := h.service.List(ctx, filterFromQuery(r))
	if err != nil {
		h.logger.ErrorContext(ctx, "audit log export failed",
			"request_id", middleware.GetReqID(ctx),
			"error", err.Error(),
		)
		httputil.WriteError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="aid_logs.csv"`)

	cw := csv.NewWriter(w)
	_ = cw.Write([]string{"Beneficiary ID", "Aid Type", "Location", "Timestamp", "File ID"})
	for _, e := range events {
		_ = cw.Write([]string{e.BeneficiaryID, e.AidType, e.Location, e.Timestamp, e.AnchorID})
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		h.logger.ErrorContext(ctx, "csv export write failed", "error", err.Error())
	}
}

func filterFromQuery(r *http.Request) auditlog.Filter {
	q := r.URL.Query()
	return auditlog.Filter{
		Location:      q.Get("location"),
		Date:          q.Get("date"),
		AidType:       q.Get("aidType"),
		BeneficiaryID: q.Get("beneficiaryId"),
	}
}
