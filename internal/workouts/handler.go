package workouts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/Kryloss/Dashboard-sub001/internal/telemetry/tracing"
	"github.com/Kryloss/Dashboard-sub001/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=workouts_test

type workoutsRepo interface {
	Save(ctx context.Context, activity ActivitySummary) (*ActivitySummary, error)
	Update(ctx context.Context, activity ActivitySummary) error
	Delete(ctx context.Context, id string) error
	ListRecentActivities(ctx context.Context, limit, offset int, workoutType string) ([]ActivitySummary, error)
}

// stateNotifier is the broadcaster's event surface: every workout mutation
// goes through it so all subscribed views stay consistent.
type stateNotifier interface {
	HandleWorkoutCompleted(ctx context.Context, source string) error
	HandleWorkoutDeleted(ctx context.Context) error
	HandleWorkoutUpdated(ctx context.Context) error
	StartOngoingWorkoutTracking()
	StopOngoingWorkoutTracking()
}

type Handler struct {
	repo     workoutsRepo
	tracker  *Tracker
	notifier stateNotifier
}

func NewHandler(repo workoutsRepo, tracker *Tracker, notifier stateNotifier) *Handler {
	return &Handler{
		repo:     repo,
		tracker:  tracker,
		notifier: notifier,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/workouts", h.HandleList).Methods("GET", "OPTIONS").Name("list-workouts")
	r.HandleFunc("/workouts", h.HandleSave).Methods("POST", "OPTIONS").Name("save-workout")
	r.HandleFunc("/workouts/{id}", h.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-workout")
	r.HandleFunc("/workouts/{id}", h.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-workout")

	r.HandleFunc("/workouts/ongoing", h.HandleGetOngoing).Methods("GET", "OPTIONS").Name("get-ongoing")
	r.HandleFunc("/workouts/ongoing/start", h.HandleStartOngoing).Methods("POST", "OPTIONS").Name("start-ongoing")
	r.HandleFunc("/workouts/ongoing/pause", h.HandlePauseOngoing).Methods("POST", "OPTIONS").Name("pause-ongoing")
	r.HandleFunc("/workouts/ongoing/resume", h.HandleResumeOngoing).Methods("POST", "OPTIONS").Name("resume-ongoing")
	r.HandleFunc("/workouts/ongoing/finish", h.HandleFinishOngoing).Methods("POST", "OPTIONS").Name("finish-ongoing")
	r.HandleFunc("/workouts/ongoing/discard", h.HandleDiscardOngoing).Methods("POST", "OPTIONS").Name("discard-ongoing")
}

type ListResponse struct {
	Activities []ActivitySummary `json:"activities"`
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.list")
	defer span.End()

	limit := 20
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed <= 0 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = parsed
	}
	offset := 0
	if offsetStr := r.URL.Query().Get("offset"); offsetStr != "" {
		parsed, err := strconv.Atoi(offsetStr)
		if err != nil || parsed < 0 {
			http.Error(w, "invalid offset", http.StatusBadRequest)
			return
		}
		offset = parsed
	}
	workoutType := r.URL.Query().Get("type")

	activities, err := h.repo.ListRecentActivities(ctx, limit, offset, workoutType)
	if err != nil {
		log.Errorf("list workouts: %s", err)
		http.Error(w, "failed to list workouts", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(ListResponse{Activities: activities})
	if err != nil {
		log.Errorf("failed to marshal workouts list: %s", err)
		http.Error(w, "failed to marshal response", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSONResponseOK(w, string(respJson))
}

func (h *Handler) HandleSave(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.save")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var activity ActivitySummary
	if err := json.NewDecoder(r.Body).Decode(&activity); err != nil {
		log.Errorf("save workout, unmarshal json params: %s", err)
		http.Error(w, "save workout failed", http.StatusBadRequest)
		return
	}

	saved, err := h.repo.Save(ctx, activity)
	if err != nil {
		log.Errorf("save workout: %s", err)
		http.Error(w, "save workout failed", http.StatusInternalServerError)
		return
	}

	if err := h.notifier.HandleWorkoutCompleted(ctx, "api"); err != nil {
		log.Warnf("workout completed notification: %s", err)
	}

	savedJson, err := json.Marshal(saved)
	if err != nil {
		log.Errorf("failed to marshal saved workout: %s", err)
		http.Error(w, "error, failed to save workout", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	pkg.WriteJSONResponseBytes(w, savedJson)
}

func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.update")
	defer span.End()

	vars := mux.Vars(r)
	id := vars["id"]

	var activity ActivitySummary
	if err := json.NewDecoder(r.Body).Decode(&activity); err != nil {
		log.Errorf("update workout, unmarshal json params: %s", err)
		http.Error(w, "update workout failed", http.StatusBadRequest)
		return
	}
	activity.ID = id

	if err := h.repo.Update(ctx, activity); err != nil {
		if errors.Is(err, ErrActivityNotFound) {
			http.Error(w, "workout not found", http.StatusNotFound)
			return
		}
		log.Errorf("update workout %s: %s", id, err)
		http.Error(w, "update workout failed", http.StatusInternalServerError)
		return
	}

	if err := h.notifier.HandleWorkoutUpdated(ctx); err != nil {
		log.Warnf("workout updated notification: %s", err)
	}

	pkg.WriteJSONResponseOK(w, `{"updatedId": "`+id+`"}`)
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.delete")
	defer span.End()

	vars := mux.Vars(r)
	id := vars["id"]

	if err := h.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrActivityNotFound) {
			http.Error(w, "workout not found", http.StatusNotFound)
			return
		}
		log.Errorf("delete workout %s: %s", id, err)
		http.Error(w, "delete workout failed", http.StatusInternalServerError)
		return
	}

	if err := h.notifier.HandleWorkoutDeleted(ctx); err != nil {
		log.Warnf("workout deleted notification: %s", err)
	}

	pkg.WriteJSONResponseOK(w, `{"deletedId": "`+id+`"}`)
}

func (h *Handler) HandleGetOngoing(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.getOngoing")
	defer span.End()

	ongoing, err := h.tracker.GetOngoingWorkout(ctx)
	if err != nil {
		log.Errorf("get ongoing workout: %s", err)
		http.Error(w, "failed to get ongoing workout", http.StatusInternalServerError)
		return
	}

	resp := struct {
		Ongoing        *OngoingWorkout `json:"ongoing"`
		LiveElapsedSec int             `json:"liveElapsedSeconds"`
	}{
		Ongoing:        ongoing,
		LiveElapsedSec: h.tracker.LiveElapsedSeconds(),
	}

	respJson, err := json.Marshal(resp)
	if err != nil {
		log.Errorf("failed to marshal ongoing workout: %s", err)
		http.Error(w, "failed to marshal response", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSONResponseOK(w, string(respJson))
}

type StartOngoingParams struct {
	WorkoutType string `json:"workoutType"`
}

func (h *Handler) HandleStartOngoing(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.startOngoing")
	defer span.End()

	var params StartOngoingParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		log.Errorf("start ongoing workout, unmarshal json params: %s", err)
		http.Error(w, "start workout failed", http.StatusBadRequest)
		return
	}
	if params.WorkoutType == "" {
		http.Error(w, "workoutType is required", http.StatusBadRequest)
		return
	}

	ongoing, err := h.tracker.Start(params.WorkoutType)
	if err != nil {
		if errors.Is(err, ErrOngoingExists) {
			http.Error(w, "an ongoing workout already exists", http.StatusConflict)
			return
		}
		log.Errorf("start ongoing workout: %s", err)
		http.Error(w, "start workout failed", http.StatusInternalServerError)
		return
	}

	// keep live progress fresh while the workout runs
	h.notifier.StartOngoingWorkoutTracking()

	h.writeOngoing(w, ongoing, http.StatusCreated)
}

func (h *Handler) HandlePauseOngoing(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.pauseOngoing")
	defer span.End()

	ongoing, err := h.tracker.Pause()
	if err != nil {
		h.writeOngoingErr(w, "pause", err)
		return
	}
	h.writeOngoing(w, ongoing, http.StatusOK)
}

func (h *Handler) HandleResumeOngoing(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.resumeOngoing")
	defer span.End()

	ongoing, err := h.tracker.Resume()
	if err != nil {
		h.writeOngoingErr(w, "resume", err)
		return
	}

	h.notifier.StartOngoingWorkoutTracking()

	h.writeOngoing(w, ongoing, http.StatusOK)
}

func (h *Handler) HandleFinishOngoing(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.finishOngoing")
	defer span.End()

	activity, err := h.tracker.Finish()
	if err != nil {
		h.writeOngoingErr(w, "finish", err)
		return
	}

	saved, err := h.repo.Save(ctx, *activity)
	if err != nil {
		log.Errorf("save finished workout: %s", err)
		http.Error(w, "failed to save finished workout", http.StatusInternalServerError)
		return
	}

	if err := h.notifier.HandleWorkoutCompleted(ctx, "ongoing-finish"); err != nil {
		log.Warnf("workout completed notification: %s", err)
	}

	savedJson, err := json.Marshal(saved)
	if err != nil {
		log.Errorf("failed to marshal finished workout: %s", err)
		http.Error(w, "failed to marshal response", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	pkg.WriteJSONResponseBytes(w, savedJson)
}

func (h *Handler) HandleDiscardOngoing(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.discardOngoing")
	defer span.End()

	h.tracker.Discard()
	h.notifier.StopOngoingWorkoutTracking()

	pkg.WriteJSONResponseOK(w, `{"discarded": true}`)
}

func (h *Handler) writeOngoing(w http.ResponseWriter, ongoing *OngoingWorkout, status int) {
	ongoingJson, err := json.Marshal(ongoing)
	if err != nil {
		log.Errorf("failed to marshal ongoing workout: %s", err)
		http.Error(w, "failed to marshal response", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(status)
	pkg.WriteJSONResponseBytes(w, ongoingJson)
}

func (h *Handler) writeOngoingErr(w http.ResponseWriter, op string, err error) {
	if errors.Is(err, ErrNoOngoing) {
		http.Error(w, "no ongoing workout", http.StatusNotFound)
		return
	}
	log.Errorf("%s ongoing workout: %s", op, err)
	http.Error(w, op+" workout failed", http.StatusInternalServerError)
}
