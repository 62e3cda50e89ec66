package profile

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/2beens/fitgenius/internal/telemetry/tracing"
	"github.com/2beens/fitgenius/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=profile_test

type profileRepo interface {
	Get(ctx context.Context) (*UserProfile, error)
	Set(ctx context.Context, p *UserProfile) error
	ActiveTab(ctx context.Context) (string, error)
	SetActiveTab(ctx context.Context, tab string) error
	ClearAll(ctx context.Context) error
}

// planGenerator kicks off the two independent AI plan generations
// after onboarding, and resets their states on a full app reset.
type planGenerator interface {
	GenerateAll(p *UserProfile)
	Reset()
}

var validTabs = map[string]bool{
	"workout":   true,
	"nutrition": true,
	"progress":  true,
	"coach":     true,
}

type Handler struct {
	repo  profileRepo
	plans planGenerator
}

func NewHandler(repo profileRepo, plans planGenerator) *Handler {
	return &Handler{
		repo:  repo,
		plans: plans,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/profile", handler.HandleOnboardingComplete).Methods("POST", "OPTIONS").Name("new-profile")
	router.HandleFunc("/profile", handler.HandleGet).Methods("GET", "OPTIONS").Name("get-profile")
	router.HandleFunc("/app", handler.HandleFullReset).Methods("DELETE", "OPTIONS").Name("full-reset")
	router.HandleFunc("/tab", handler.HandleGetActiveTab).Methods("GET", "OPTIONS").Name("get-tab")
	router.HandleFunc("/tab", handler.HandleSetActiveTab).Methods("PUT", "OPTIONS").Name("set-tab")
}

// HandleOnboardingComplete stores the profile and fires both plan
// generations without waiting on either of them.
func (handler *Handler) HandleOnboardingComplete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.new")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var p UserProfile
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		log.Tracef("new profile, unmarshal json params: %s", err)
		http.Error(w, "add profile failed", http.StatusBadRequest)
		return
	}

	if err := p.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if _, err := handler.repo.Get(ctx); err == nil {
		// profile is immutable once onboarded; full reset is the only way out
		http.Error(w, "profile exists, reset the app first", http.StatusConflict)
		return
	} else if !errors.Is(err, ErrProfileNotFound) {
		log.Errorf("new profile, check existing: %s", err)
		http.Error(w, "add profile failed", http.StatusInternalServerError)
		return
	}

	if err := handler.repo.Set(ctx, &p); err != nil {
		log.Errorf("failed to store new profile: %s", err)
		http.Error(w, "add profile failed", http.StatusInternalServerError)
		return
	}

	handler.plans.GenerateAll(&p)

	log.Debugf("new profile stored: %s, goal [%s]", p.Name, p.Goal)

	profileJson, err := json.Marshal(p)
	if err != nil {
		log.Errorf("failed to marshal new profile: %s", err)
		http.Error(w, "add profile failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, profileJson, http.StatusCreated)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.get")
	defer span.End()

	p, err := handler.repo.Get(ctx)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			http.Error(w, "profile not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get profile: %s", err)
		http.Error(w, "get profile failed", http.StatusInternalServerError)
		return
	}

	profileJson, err := json.Marshal(p)
	if err != nil {
		log.Errorf("failed to marshal profile: %s", err)
		http.Error(w, "get profile failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, profileJson)
}

// HandleFullReset clears every stored record and restarts onboarding.
// Destructive, so it is gated behind an explicit confirm parameter.
func (handler *Handler) HandleFullReset(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.fullReset")
	defer span.End()

	if r.URL.Query().Get("confirm") != "true" {
		http.Error(w, "confirm parameter required", http.StatusBadRequest)
		return
	}

	if err := handler.repo.ClearAll(ctx); err != nil {
		log.Errorf("full app reset: %s", err)
		http.Error(w, "reset failed", http.StatusInternalServerError)
		return
	}

	handler.plans.Reset()

	log.Warnln("full app reset done")
	pkg.WriteTextResponseOK(w, "app reset")
}

func (handler *Handler) HandleGetActiveTab(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.getTab")
	defer span.End()

	tab, err := handler.repo.ActiveTab(ctx)
	if err != nil {
		log.Errorf("failed to get active tab: %s", err)
		http.Error(w, "get tab failed", http.StatusInternalServerError)
		return
	}
	if tab == "" {
		tab = "workout"
	}

	pkg.WriteJSONResponseOK(w, `{"tab":"`+tab+`"}`)
}

func (handler *Handler) HandleSetActiveTab(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.setTab")
	defer span.End()

	var req struct {
		Tab string `json:"tab"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if !validTabs[req.Tab] {
		http.Error(w, "unknown tab", http.StatusBadRequest)
		return
	}

	if err := handler.repo.SetActiveTab(ctx, req.Tab); err != nil {
		log.Errorf("failed to set active tab: %s", err)
		http.Error(w, "set tab failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteTextResponseOK(w, "ok")
}
