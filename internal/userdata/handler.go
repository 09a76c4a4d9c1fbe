package userdata

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/Kryloss/Dashboard-sub001/internal/daytime"
	"github.com/Kryloss/Dashboard-sub001/internal/telemetry/tracing"
	"github.com/Kryloss/Dashboard-sub001/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=userdata_test

type userDataRepo interface {
	GetGoals(ctx context.Context) (*Goals, error)
	UpsertGoals(ctx context.Context, goals Goals) error
	GetSleepRecord(ctx context.Context, date string) (*SleepRecord, error)
	UpsertSleepRecord(ctx context.Context, record SleepRecord) error
}

type Handler struct {
	repo userDataRepo
}

func NewHandler(repo userDataRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/goals", h.HandleGetGoals).Methods("GET", "OPTIONS").Name("get-goals")
	r.HandleFunc("/goals", h.HandleUpsertGoals).Methods("PUT", "OPTIONS").Name("upsert-goals")
	r.HandleFunc("/sleep/{date}", h.HandleGetSleep).Methods("GET", "OPTIONS").Name("get-sleep")
	r.HandleFunc("/sleep/{date}", h.HandleUpsertSleep).Methods("PUT", "OPTIONS").Name("upsert-sleep")
}

func (h *Handler) HandleGetGoals(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.userdata.getGoals")
	defer span.End()

	goals, err := h.repo.GetGoals(ctx)
	if err != nil {
		log.Errorf("get goals: %s", err)
		http.Error(w, "failed to get goals", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(struct {
		Goals *Goals `json:"goals"`
	}{Goals: goals})
	if err != nil {
		log.Errorf("failed to marshal goals: %s", err)
		http.Error(w, "failed to marshal response", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSONResponseOK(w, string(respJson))
}

func (h *Handler) HandleUpsertGoals(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.userdata.upsertGoals")
	defer span.End()

	var goals Goals
	if err := json.NewDecoder(r.Body).Decode(&goals); err != nil {
		log.Errorf("upsert goals, unmarshal json params: %s", err)
		http.Error(w, "upsert goals failed", http.StatusBadRequest)
		return
	}

	if goals.DailyExerciseMinutes < 0 || goals.CalorieTarget < 0 || goals.SleepHours < 0 {
		http.Error(w, "goal targets must not be negative", http.StatusBadRequest)
		return
	}

	if err := h.repo.UpsertGoals(ctx, goals); err != nil {
		log.Errorf("upsert goals: %s", err)
		http.Error(w, "upsert goals failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, `{"saved": true}`)
}

func (h *Handler) HandleGetSleep(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.userdata.getSleep")
	defer span.End()

	date := mux.Vars(r)["date"]
	if !validDayKey(date) {
		http.Error(w, "invalid date format (expected YYYY-MM-DD)", http.StatusBadRequest)
		return
	}

	record, err := h.repo.GetSleepRecord(ctx, date)
	if err != nil {
		log.Errorf("get sleep record for %s: %s", date, err)
		http.Error(w, "failed to get sleep record", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(struct {
		Record *SleepRecord `json:"record"`
	}{Record: record})
	if err != nil {
		log.Errorf("failed to marshal sleep record: %s", err)
		http.Error(w, "failed to marshal response", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSONResponseOK(w, string(respJson))
}

func (h *Handler) HandleUpsertSleep(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.userdata.upsertSleep")
	defer span.End()

	date := mux.Vars(r)["date"]
	if !validDayKey(date) {
		http.Error(w, "invalid date format (expected YYYY-MM-DD)", http.StatusBadRequest)
		return
	}

	var record SleepRecord
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		log.Errorf("upsert sleep record, unmarshal json params: %s", err)
		http.Error(w, "upsert sleep record failed", http.StatusBadRequest)
		return
	}
	record.Date = date

	if record.TotalMinutes < 0 {
		http.Error(w, "totalMinutes must not be negative", http.StatusBadRequest)
		return
	}

	if err := h.repo.UpsertSleepRecord(ctx, record); err != nil {
		log.Errorf("upsert sleep record for %s: %s", date, err)
		http.Error(w, "upsert sleep record failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, `{"saved": true}`)
}

func validDayKey(date string) bool {
	_, _, err := daytime.DayBounds(date)
	return err == nil
}
