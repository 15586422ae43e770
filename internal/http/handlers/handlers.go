package handlers

import (
	"context"
	"errors"
	"log/slog"
	nethttp "net/http"

	"github.com/go-chi/chi/v5"

	"scoreboard-service/internal/aggregate"
	"scoreboard-service/internal/app/scoreboard"
	domaingames "scoreboard-service/internal/domain/games"
	"scoreboard-service/internal/refresher"
)

// ScoreboardService is the slice of the application service the HTTP layer
// consumes.
type ScoreboardService interface {
	View() domaingames.View
	Refresh(ctx context.Context) (domaingames.View, error)
	ShowMore(category domaingames.Category) (domaingames.View, error)
}

// Handler wires HTTP routes to the scoreboard service.
type Handler struct {
	svc      ScoreboardService
	logger   *slog.Logger
	statusFn func() refresher.Status
}

// NewHandler constructs a Handler.
func NewHandler(svc ScoreboardService, logger *slog.Logger, statusFn func() refresher.Status) *Handler {
	return &Handler{svc: svc, logger: logger, statusFn: statusFn}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic (e.g., for Kubernetes probes).
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if h.statusFn == nil {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	if h.statusFn().IsReady() {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	writeError(w, nethttp.StatusServiceUnavailable, "not ready", h.logger)
}

// Scoreboard returns the current paginated, categorized view without
// touching the network.
func (h *Handler) Scoreboard(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeJSON(w, nethttp.StatusOK, h.svc.View(), h.logger)
}

// Refresh triggers a full aggregation run and returns the fresh view.
// Overlapping refreshes are rejected so runs never overlap.
func (h *Handler) Refresh(w nethttp.ResponseWriter, r *nethttp.Request) {
	view, err := h.svc.Refresh(r.Context())
	if err != nil {
		if errors.Is(err, aggregate.ErrRunInFlight) {
			writeError(w, nethttp.StatusConflict, "refresh already in progress", h.logger)
			return
		}
		// Catastrophic failure: present a single terse message, never a
		// partial render.
		writeError(w, nethttp.StatusInternalServerError, "unable to load scores", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, view, h.logger)
}

// ShowMore raises one category's display limit and returns the re-rendered
// view; no fetch happens.
func (h *Handler) ShowMore(w nethttp.ResponseWriter, r *nethttp.Request) {
	category := domaingames.Category(chi.URLParam(r, "category"))
	view, err := h.svc.ShowMore(category)
	if err != nil {
		if errors.Is(err, scoreboard.ErrUnknownCategory) {
			writeError(w, nethttp.StatusBadRequest, "unknown category", h.logger)
			return
		}
		writeError(w, nethttp.StatusInternalServerError, "unable to update view", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, view, h.logger)
}
