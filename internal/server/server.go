package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/ogulcanaydogan/smartstock/pkg/catalog"
	"github.com/ogulcanaydogan/smartstock/pkg/feed"
	"github.com/ogulcanaydogan/smartstock/pkg/model"
	"github.com/ogulcanaydogan/smartstock/pkg/simulation"
	"github.com/ogulcanaydogan/smartstock/pkg/storage"
	"github.com/ogulcanaydogan/smartstock/pkg/tasks"
)

// attentionLimit matches the number of cards on the manager dashboard.
const attentionLimit = 6

// Deps are the components the API exposes.
type Deps struct {
	Engine    *simulation.Engine
	Feed      *feed.Buffer
	Journal   storage.Journal
	Catalog   *catalog.Catalog
	Restocker *catalog.Restocker
	Tasks     *tasks.Board
}

// Server provides the dashboard JSON API.
type Server struct {
	deps   Deps
	mux    *http.ServeMux
	logger *slog.Logger
}

// NewServer creates an API server.
func NewServer(deps Deps, logger *slog.Logger) *Server {
	s := &Server{
		deps:   deps,
		mux:    http.NewServeMux(),
		logger: logger,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mux.HandleFunc("GET /healthz", s.handleHealth)

	s.mux.HandleFunc("GET /api/v1/simulation", s.handleSimulation)
	s.mux.HandleFunc("PUT /api/v1/simulation", s.handleSetSimulation)
	s.mux.HandleFunc("POST /api/v1/simulation/reset", s.handleResetSimulation)

	s.mux.HandleFunc("GET /api/v1/alerts", s.handleAlerts)
	s.mux.HandleFunc("GET /api/v1/alerts/history", s.handleAlertHistory)
	s.mux.HandleFunc("GET /api/v1/alerts/summary", s.handleAlertSummary)

	s.mux.HandleFunc("GET /api/v1/catalog", s.handleCatalog)
	s.mux.HandleFunc("GET /api/v1/catalog/attention", s.handleAttention)
	s.mux.HandleFunc("GET /api/v1/catalog/restock", s.handleRestock)
	s.mux.HandleFunc("GET /api/v1/catalog/deliveries", s.handleDeliveries)
	s.mux.HandleFunc("GET /api/v1/catalog/forecast", s.handleForecast)
	s.mux.HandleFunc("POST /api/v1/catalog/{id}/restock", s.handleRestockItem)

	s.mux.HandleFunc("GET /api/v1/tasks", s.handleTasks)
	s.mux.HandleFunc("PATCH /api/v1/tasks/{id}", s.handleUpdateTask)
}

// Handler returns the HTTP handler for this server.
func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleSimulation(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.deps.Engine.Status())
}

type setSimulationRequest struct {
	Active *bool `json:"active"`
}

func (s *Server) handleSetSimulation(w http.ResponseWriter, r *http.Request) {
	var req setSimulationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Active == nil {
		http.Error(w, `body must be {"active": true|false}`, http.StatusBadRequest)
		return
	}

	s.deps.Engine.SetActive(*req.Active)
	writeJSON(w, http.StatusOK, s.deps.Engine.Status())
}

func (s *Server) handleResetSimulation(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := s.deps.Engine.Reset(ctx); err != nil {
		s.logger.Error("reset simulation", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, s.deps.Engine.Status())
}

type alertsResponse struct {
	Generated int64              `json:"generated"`
	Alerts    []model.AlertEvent `json:"alerts"`
}

func (s *Server) handleAlerts(w http.ResponseWriter, _ *http.Request) {
	events, count := s.deps.Feed.View()
	writeJSON(w, http.StatusOK, alertsResponse{Generated: count, Alerts: events})
}

func (s *Server) handleAlertHistory(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	filter, ok := parseAlertFilter(w, r)
	if !ok {
		return
	}

	events, err := s.deps.Journal.QueryAlerts(ctx, filter)
	if err != nil {
		s.logger.Error("query alerts", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if events == nil {
		events = []model.AlertEvent{}
	}
	writeJSON(w, http.StatusOK, events)
}

func (s *Server) handleAlertSummary(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	filter, ok := parseAlertFilter(w, r)
	if !ok {
		return
	}

	summary, err := s.deps.Journal.AggregateAlerts(ctx, filter)
	if err != nil {
		s.logger.Error("aggregate alerts", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func parseAlertFilter(w http.ResponseWriter, r *http.Request) (model.AlertFilter, bool) {
	q := r.URL.Query()
	filter := model.AlertFilter{
		Kind:     model.AlertKind(q.Get("kind")),
		ItemName: q.Get("item"),
	}

	if filter.Kind != "" && !filter.Kind.Valid() {
		http.Error(w, "unknown alert kind", http.StatusBadRequest)
		return filter, false
	}
	if raw := q.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			http.Error(w, "limit must be a non-negative integer", http.StatusBadRequest)
			return filter, false
		}
		filter.Limit = limit
	}
	return filter, true
}

type catalogEntry struct {
	model.InventoryItem
	StockStatus string `json:"stock_status"`
}

func entries(items []model.InventoryItem) []catalogEntry {
	out := make([]catalogEntry, len(items))
	for i, item := range items {
		out[i] = catalogEntry{InventoryItem: item, StockStatus: catalog.StockStatus(item)}
	}
	return out
}

func (s *Server) handleCatalog(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, entries(s.deps.Catalog.Items()))
}

func (s *Server) handleAttention(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, entries(s.deps.Catalog.NeedsAttention(attentionLimit)))
}

func (s *Server) handleRestock(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, entries(s.deps.Catalog.RestockSuggestions()))
}

type deliveryEntry struct {
	model.InventoryItem
	ETADisplay string `json:"eta_display"`
}

func (s *Server) handleDeliveries(w http.ResponseWriter, _ *http.Request) {
	items := s.deps.Catalog.Deliveries()
	out := make([]deliveryEntry, len(items))
	for i, item := range items {
		out[i] = deliveryEntry{InventoryItem: item, ETADisplay: catalog.ETADisplay(item)}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleForecast(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, entries(s.deps.Catalog.DemandForecast()))
}

type tasksResponse struct {
	Summary tasks.Summary       `json:"summary"`
	Tasks   []model.RestockTask `json:"tasks"`
}

func (s *Server) handleTasks(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, tasksResponse{
		Summary: s.deps.Tasks.Summary(),
		Tasks:   s.deps.Tasks.List(),
	})
}

type updateTaskRequest struct {
	Status model.TaskStatus `json:"status"`
}

func (s *Server) handleUpdateTask(w http.ResponseWriter, r *http.Request) {
	var req updateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	task, err := s.deps.Tasks.Update(r.Context(), r.PathValue("id"), req.Status)
	switch {
	case errors.Is(err, tasks.ErrTaskNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	case errors.Is(err, tasks.ErrInvalidStatus):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case err != nil:
		s.logger.Error("update task", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, task)
}

type restockRequest struct {
	Amount int `json:"amount"`
}

func (s *Server) handleRestockItem(w http.ResponseWriter, r *http.Request) {
	var req restockRequest
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
	}

	order, err := s.deps.Restocker.Restock(r.Context(), r.PathValue("id"), req.Amount)
	switch {
	case errors.Is(err, catalog.ErrItemNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	case errors.Is(err, catalog.ErrInvalidAmount):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case err != nil:
		s.logger.Error("restock item", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusAccepted, order)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
