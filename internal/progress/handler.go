package progress

import (
	"encoding/json"
	"net/http"

	"github.com/Kryloss/Dashboard-sub001/internal/telemetry/tracing"
	"github.com/Kryloss/Dashboard-sub001/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type Handler struct {
	calculator *Calculator
}

func NewHandler(calculator *Calculator) *Handler {
	return &Handler{
		calculator: calculator,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/progress", h.HandleGet).Methods("GET", "OPTIONS").Name("get-progress")
	r.HandleFunc("/progress/refresh", h.HandleRefresh).Methods("POST", "OPTIONS").Name("refresh-progress")
	r.HandleFunc("/progress/date/{date}", h.HandleGetForDate).Methods("GET", "OPTIONS").Name("get-progress-for-date")
	r.HandleFunc("/progress/cache", h.HandleInvalidateCache).Methods("DELETE", "OPTIONS").Name("invalidate-progress-cache")
}

type GetProgressResponse struct {
	// Progress is null when no goals are configured yet
	Progress *DailyGoalProgress `json:"progress"`
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.get")
	defer span.End()

	force := r.URL.Query().Get("force") == "true"
	live := r.URL.Query().Get("live") == "true"

	dailyProgress, err := h.calculator.DailyProgress(ctx, force, live)
	if err != nil {
		log.Errorf("get daily progress: %s", err)
		http.Error(w, "failed to get daily progress", http.StatusInternalServerError)
		return
	}

	h.writeProgress(w, dailyProgress)
}

func (h *Handler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.refresh")
	defer span.End()

	dailyProgress, err := h.calculator.RefreshProgress(ctx)
	if err != nil {
		log.Errorf("refresh daily progress: %s", err)
		http.Error(w, "failed to refresh daily progress", http.StatusInternalServerError)
		return
	}

	h.writeProgress(w, dailyProgress)
}

func (h *Handler) HandleGetForDate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.getForDate")
	defer span.End()

	vars := mux.Vars(r)
	date := vars["date"]
	if date == "" {
		http.Error(w, "date is required", http.StatusBadRequest)
		return
	}

	dailyProgress, err := h.calculator.ProgressForDate(ctx, date)
	if err != nil {
		log.Errorf("get progress for date %s: %s", date, err)
		http.Error(w, "failed to get progress", http.StatusInternalServerError)
		return
	}

	h.writeProgress(w, dailyProgress)
}

func (h *Handler) HandleInvalidateCache(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.invalidateCache")
	defer span.End()

	h.calculator.InvalidateCache()
	pkg.WriteJSONResponseOK(w, `{"invalidated": true}`)
}

func (h *Handler) writeProgress(w http.ResponseWriter, dailyProgress *DailyGoalProgress) {
	respJson, err := json.Marshal(GetProgressResponse{Progress: dailyProgress})
	if err != nil {
		log.Errorf("failed to marshal progress response: %s", err)
		http.Error(w, "failed to marshal response", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSONResponseOK(w, string(respJson))
}
