package livestate

import (
	"encoding/json"
	"net/http"

	"github.com/Kryloss/Dashboard-sub001/internal/telemetry/tracing"
	"github.com/Kryloss/Dashboard-sub001/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type Handler struct {
	manager *Manager
}

func NewHandler(manager *Manager) *Handler {
	return &Handler{
		manager: manager,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/state", h.HandleGetState).Methods("GET", "OPTIONS").Name("get-state")
	r.HandleFunc("/state/stream", h.HandleStateStream).Methods("GET").Name("stream-state")
	r.HandleFunc("/state/refresh", h.HandleRefresh).Methods("POST", "OPTIONS").Name("refresh-state")
	r.HandleFunc("/tracking/start", h.HandleStartTracking).Methods("POST", "OPTIONS").Name("start-tracking")
	r.HandleFunc("/tracking/stop", h.HandleStopTracking).Methods("POST", "OPTIONS").Name("stop-tracking")
}

func (h *Handler) HandleGetState(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.livestate.get")
	defer span.End()

	stateJson, err := json.Marshal(h.manager.CurrentState())
	if err != nil {
		log.Errorf("failed to marshal state: %s", err)
		http.Error(w, "failed to marshal state", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSONResponseOK(w, string(stateJson))
}

// HandleStateStream pushes every state change to the client as
// server-sent events, via the manager's subscribe mechanism.
func (h *Handler) HandleStateStream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	updates := make(chan State, 8)
	unsubscribe := h.manager.Subscribe(func(s State) {
		select {
		case updates <- s:
		default:
			// slow client, drop the update; the next one supersedes it
		}
	})
	defer unsubscribe()

	for {
		select {
		case <-r.Context().Done():
			return
		case state := <-updates:
			stateJson, err := json.Marshal(state)
			if err != nil {
				log.Errorf("state stream: marshal state: %s", err)
				continue
			}
			if _, err := w.Write([]byte("data: ")); err != nil {
				return
			}
			if _, err := w.Write(stateJson); err != nil {
				return
			}
			if _, err := w.Write([]byte("\n\n")); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}

func (h *Handler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.livestate.refresh")
	defer span.End()

	force := r.URL.Query().Get("force") == "true"
	live := r.URL.Query().Get("live") == "true"

	if err := h.manager.RefreshAll(ctx, force, live); err != nil {
		log.Errorf("refresh state: %s", err)
		http.Error(w, "failed to refresh state", http.StatusInternalServerError)
		return
	}

	stateJson, err := json.Marshal(h.manager.CurrentState())
	if err != nil {
		log.Errorf("failed to marshal state: %s", err)
		http.Error(w, "failed to marshal state", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSONResponseOK(w, string(stateJson))
}

func (h *Handler) HandleStartTracking(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.livestate.startTracking")
	defer span.End()

	h.manager.StartOngoingWorkoutTracking()
	pkg.WriteJSONResponseOK(w, `{"tracking": true}`)
}

func (h *Handler) HandleStopTracking(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.livestate.stopTracking")
	defer span.End()

	h.manager.StopOngoingWorkoutTracking()
	pkg.WriteJSONResponseOK(w, `{"tracking": false}`)
}
