package progress

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/2beens/fitgenius/internal/telemetry/tracing"
	"github.com/2beens/fitgenius/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/progress", handler.HandleGetOverview).Methods("GET", "OPTIONS").Name("get-progress")
	router.HandleFunc("/progress", handler.HandleClearLedger).Methods("DELETE", "OPTIONS").Name("clear-progress")
	router.HandleFunc("/progress/summary", handler.HandleGetSummary).Methods("GET", "OPTIONS").Name("get-progress-summary")
	router.HandleFunc("/progress/day/{day}/exercise/{ex}/toggle", handler.HandleToggleExercise).Methods("POST", "OPTIONS").Name("toggle-exercise")
	router.HandleFunc("/progress/day/{day}/rest/toggle", handler.HandleToggleRestDay).Methods("POST", "OPTIONS").Name("toggle-rest-day")
	router.HandleFunc("/progress/day/{day}/toggle", handler.HandleToggleDay).Methods("POST", "OPTIONS").Name("toggle-day")

	router.HandleFunc("/today", handler.HandleGetToday).Methods("GET", "OPTIONS").Name("get-today")
	router.HandleFunc("/today/meals/{slot}/toggle", handler.HandleToggleMeal).Methods("POST", "OPTIONS").Name("toggle-meal")
	router.HandleFunc("/today/hydration", handler.HandleAdjustHydration).Methods("POST", "OPTIONS").Name("adjust-hydration")

	router.HandleFunc("/weight", handler.HandleGetWeight).Methods("GET", "OPTIONS").Name("get-weight")
	router.HandleFunc("/weight", handler.HandleAddWeight).Methods("POST", "OPTIONS").Name("add-weight")

	router.HandleFunc("/records", handler.HandleGetRecords).Methods("GET", "OPTIONS").Name("get-records")
	router.HandleFunc("/records", handler.HandleAddRecord).Methods("POST", "OPTIONS").Name("add-record")
	router.HandleFunc("/records/{id}", handler.HandleDeleteRecord).Methods("DELETE", "OPTIONS").Name("delete-record")
}

func dayIndexVar(r *http.Request) (int, error) {
	return strconv.Atoi(mux.Vars(r)["day"])
}

func writeToggleResult(w http.ResponseWriter, ledger Ledger, err error) {
	if err != nil {
		switch {
		case errors.Is(err, ErrNoWorkoutPlan):
			http.Error(w, err.Error(), http.StatusConflict)
		case errors.Is(err, ErrInvalidIndex), errors.Is(err, ErrInvalidInput):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			log.Errorf("ledger toggle failed: %s", err)
			http.Error(w, "toggle failed", http.StatusInternalServerError)
		}
		return
	}

	respJson, err := json.Marshal(ledger)
	if err != nil {
		log.Errorf("failed to marshal ledger: %s", err)
		http.Error(w, "toggle failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}

func (handler *Handler) HandleToggleExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.toggleExercise")
	defer span.End()

	dayIndex, err := dayIndexVar(r)
	if err != nil {
		http.Error(w, "invalid day index", http.StatusBadRequest)
		return
	}
	exerciseIndex, err := strconv.Atoi(mux.Vars(r)["ex"])
	if err != nil {
		http.Error(w, "invalid exercise index", http.StatusBadRequest)
		return
	}

	ledger, err := handler.service.ToggleExercise(ctx, dayIndex, exerciseIndex)
	writeToggleResult(w, ledger, err)
}

func (handler *Handler) HandleToggleRestDay(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.toggleRestDay")
	defer span.End()

	dayIndex, err := dayIndexVar(r)
	if err != nil {
		http.Error(w, "invalid day index", http.StatusBadRequest)
		return
	}

	ledger, err := handler.service.ToggleRestDay(ctx, dayIndex)
	writeToggleResult(w, ledger, err)
}

func (handler *Handler) HandleToggleDay(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.toggleDay")
	defer span.End()

	dayIndex, err := dayIndexVar(r)
	if err != nil {
		http.Error(w, "invalid day index", http.StatusBadRequest)
		return
	}

	ledger, err := handler.service.ToggleDay(ctx, dayIndex)
	writeToggleResult(w, ledger, err)
}

func (handler *Handler) HandleGetOverview(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.getOverview")
	defer span.End()

	overview, err := handler.service.Overview(ctx)
	if err != nil {
		log.Errorf("failed to get progress overview: %s", err)
		http.Error(w, "get progress failed", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(overview)
	if err != nil {
		log.Errorf("failed to marshal progress overview: %s", err)
		http.Error(w, "get progress failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}

func (handler *Handler) HandleClearLedger(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.clearLedger")
	defer span.End()

	if err := handler.service.ClearLedger(ctx); err != nil {
		log.Errorf("failed to clear progress ledger: %s", err)
		http.Error(w, "clear progress failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteTextResponseOK(w, "progress cleared")
}

func (handler *Handler) HandleGetSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.getSummary")
	defer span.End()

	summary, err := handler.service.Summary(ctx)
	if err != nil {
		log.Errorf("failed to get progress summary: %s", err)
		http.Error(w, "get summary failed", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(summary)
	if err != nil {
		log.Errorf("failed to marshal progress summary: %s", err)
		http.Error(w, "get summary failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}

func (handler *Handler) HandleGetToday(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.getToday")
	defer span.End()

	today, err := handler.service.Today(ctx)
	if err != nil {
		log.Errorf("failed to get today view: %s", err)
		http.Error(w, "get today failed", http.StatusInternalServerError)
		return
	}
	handler.writeToday(w, today)
}

func (handler *Handler) HandleToggleMeal(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.toggleMeal")
	defer span.End()

	slot := mux.Vars(r)["slot"]
	today, err := handler.service.ToggleMeal(ctx, slot)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Errorf("failed to toggle meal [%s]: %s", slot, err)
		http.Error(w, "toggle meal failed", http.StatusInternalServerError)
		return
	}
	handler.writeToday(w, today)
}

type hydrationRequest struct {
	DeltaMl int `json:"deltaMl"`
}

func (handler *Handler) HandleAdjustHydration(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.adjustHydration")
	defer span.End()

	var req hydrationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	today, err := handler.service.AdjustHydration(ctx, req.DeltaMl)
	if err != nil {
		log.Errorf("failed to adjust hydration: %s", err)
		http.Error(w, "adjust hydration failed", http.StatusInternalServerError)
		return
	}
	handler.writeToday(w, today)
}

func (handler *Handler) writeToday(w http.ResponseWriter, today *Today) {
	respJson, err := json.Marshal(today)
	if err != nil {
		log.Errorf("failed to marshal today view: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}

type weightRequest struct {
	WeightKg float64 `json:"weight"`
}

func (handler *Handler) HandleAddWeight(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.addWeight")
	defer span.End()

	var req weightRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	summary, err := handler.service.AddWeightEntry(ctx, req.WeightKg)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Errorf("failed to add weight entry: %s", err)
		http.Error(w, "add weight failed", http.StatusInternalServerError)
		return
	}
	handler.writeWeightSummary(w, summary)
}

func (handler *Handler) HandleGetWeight(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.getWeight")
	defer span.End()

	summary, err := handler.service.WeightSummary(ctx)
	if err != nil {
		log.Errorf("failed to get weight summary: %s", err)
		http.Error(w, "get weight failed", http.StatusInternalServerError)
		return
	}
	handler.writeWeightSummary(w, summary)
}

func (handler *Handler) writeWeightSummary(w http.ResponseWriter, summary WeightSummary) {
	respJson, err := json.Marshal(summary)
	if err != nil {
		log.Errorf("failed to marshal weight summary: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}

type recordRequest struct {
	Exercise string  `json:"exercise"`
	WeightKg float64 `json:"weight"`
	Reps     int     `json:"reps"`
}

func (handler *Handler) HandleAddRecord(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.addRecord")
	defer span.End()

	var req recordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	records, err := handler.service.AddPersonalRecord(ctx, req.Exercise, req.WeightKg, req.Reps)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Errorf("failed to add personal record: %s", err)
		http.Error(w, "add record failed", http.StatusInternalServerError)
		return
	}
	handler.writeRecords(w, records, http.StatusCreated)
}

func (handler *Handler) HandleGetRecords(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.getRecords")
	defer span.End()

	records, err := handler.service.PersonalRecords(ctx)
	if err != nil {
		log.Errorf("failed to get personal records: %s", err)
		http.Error(w, "get records failed", http.StatusInternalServerError)
		return
	}
	handler.writeRecords(w, records, http.StatusOK)
}

func (handler *Handler) HandleDeleteRecord(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.deleteRecord")
	defer span.End()

	records, err := handler.service.DeletePersonalRecord(ctx, mux.Vars(r)["id"])
	if err != nil {
		log.Errorf("failed to delete personal record: %s", err)
		http.Error(w, "delete record failed", http.StatusInternalServerError)
		return
	}
	handler.writeRecords(w, records, http.StatusOK)
}

func (handler *Handler) writeRecords(w http.ResponseWriter, records []PersonalRecord, statusCode int) {
	respJson, err := json.Marshal(records)
	if err != nil {
		log.Errorf("failed to marshal personal records: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, statusCode)
}
