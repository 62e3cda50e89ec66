package plans

import (
	"encoding/json"
	"net/http"

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
	router.HandleFunc("/plans/workout", handler.HandleGetWorkout).Methods("GET", "OPTIONS").Name("get-workout-plan")
	router.HandleFunc("/plans/nutrition", handler.HandleGetNutrition).Methods("GET", "OPTIONS").Name("get-nutrition-plan")
	router.HandleFunc("/plans/{type}/retry", handler.HandleRetry).Methods("POST", "OPTIONS").Name("retry-plan")
	router.HandleFunc("/plans/nutrition/targets", handler.HandleOverrideTargets).Methods("PUT", "OPTIONS").Name("override-targets")
	router.HandleFunc("/plans/nutrition/targets", handler.HandleResetTargets).Methods("DELETE", "OPTIONS").Name("reset-targets")
}

type WorkoutPlanResponse struct {
	State
	Plan *WorkoutPlan `json:"plan,omitempty"`
}

type NutritionPlanResponse struct {
	State
	Plan       *NutritionPlan `json:"plan,omitempty"`
	Targets    *MacroSplit    `json:"targets,omitempty"`
	Overridden bool           `json:"overridden"`
}

func (handler *Handler) HandleGetWorkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.getWorkout")
	defer span.End()

	plan, state, err := handler.service.Workout(ctx)
	if err != nil {
		log.Errorf("failed to get workout plan: %s", err)
		http.Error(w, "get workout plan failed", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(WorkoutPlanResponse{
		State: state,
		Plan:  plan,
	})
	if err != nil {
		log.Errorf("failed to marshal workout plan: %s", err)
		http.Error(w, "get workout plan failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}

func (handler *Handler) HandleGetNutrition(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.getNutrition")
	defer span.End()

	plan, state, err := handler.service.Nutrition(ctx)
	if err != nil {
		log.Errorf("failed to get nutrition plan: %s", err)
		http.Error(w, "get nutrition plan failed", http.StatusInternalServerError)
		return
	}

	targets, overridden, err := handler.service.EffectiveTargets(ctx)
	if err != nil {
		log.Errorf("failed to get effective targets: %s", err)
		http.Error(w, "get nutrition plan failed", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(NutritionPlanResponse{
		State:      state,
		Plan:       plan,
		Targets:    targets,
		Overridden: overridden,
	})
	if err != nil {
		log.Errorf("failed to marshal nutrition plan: %s", err)
		http.Error(w, "get nutrition plan failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}

func (handler *Handler) HandleRetry(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.retry")
	defer span.End()

	vars := mux.Vars(r)
	planType, err := ParseType(vars["type"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := handler.service.Retry(planType); err != nil {
		log.Errorf("failed to retry plan [%s]: %s", planType, err)
		http.Error(w, "retry failed", http.StatusConflict)
		return
	}

	pkg.WriteResponse(w, pkg.ContentType.Text, "retry started", http.StatusAccepted)
}

func (handler *Handler) HandleOverrideTargets(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.overrideTargets")
	defer span.End()

	var split MacroSplit
	if err := json.NewDecoder(r.Body).Decode(&split); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	if err := handler.service.OverrideTargets(ctx, split); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	pkg.WriteTextResponseOK(w, "targets overridden")
}

func (handler *Handler) HandleResetTargets(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.resetTargets")
	defer span.End()

	if err := handler.service.ClearTargetsOverride(ctx); err != nil {
		log.Errorf("failed to reset targets: %s", err)
		http.Error(w, "reset targets failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteTextResponseOK(w, "targets reset")
}
