package plans

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/2beens/fitgenius/internal/profile"
	"github.com/2beens/fitgenius/internal/telemetry/metrics"
	"github.com/2beens/fitgenius/internal/telemetry/tracing"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=plans

// Gateway is the AI service boundary: given a profile it produces a
// complete plan, or an error - never a partial plan.
type Gateway interface {
	GenerateWorkoutPlan(ctx context.Context, p *profile.UserProfile) (*WorkoutPlan, error)
	GenerateNutritionPlan(ctx context.Context, p *profile.UserProfile) (*NutritionPlan, error)
}

type plansRepo interface {
	WorkoutPlan(ctx context.Context) (*WorkoutPlan, error)
	SetWorkoutPlan(ctx context.Context, p *WorkoutPlan) error
	NutritionPlan(ctx context.Context) (*NutritionPlan, error)
	SetNutritionPlan(ctx context.Context, p *NutritionPlan) error
	TargetsOverride(ctx context.Context) (*MacroSplit, error)
	SetTargetsOverride(ctx context.Context, split *MacroSplit) error
	ClearTargetsOverride(ctx context.Context) error
}

type profileSource interface {
	Get(ctx context.Context) (*profile.UserProfile, error)
}

type planState struct {
	status Status
	errMsg string
	// epoch increases on every new generation request; a finished request
	// applies its result only if its epoch is still the latest, so a
	// superseded in-flight request can never overwrite a newer result
	epoch uint64
	// serializes the stale-check + persist of finished generations;
	// epochs bump before any newer persist can enter that section, so a
	// stale result can never reach the repo
	persistMu sync.Mutex
}

type State struct {
	Status Status `json:"status"`
	ErrMsg string `json:"error,omitempty"`
}

// Service runs the per-plan generation state machines. The two plan
// types are fully independent: one failing does not affect the other.
type Service struct {
	// root context for the fire-and-forget generation goroutines,
	// outliving any single http request
	ctx            context.Context
	gateway        Gateway
	repo           plansRepo
	profiles       profileSource
	metricsManager *metrics.Manager

	// called after a plan is applied, e.g. to refresh the daily snapshot
	onPlanApplied func(ctx context.Context)

	mu     sync.Mutex
	states map[Type]*planState

	// signals a finished generation attempt, for tests
	generationDone chan Type
}

func NewService(
	ctx context.Context,
	gateway Gateway,
	repo plansRepo,
	profiles profileSource,
	metricsManager *metrics.Manager,
) *Service {
	s := &Service{
		ctx:            ctx,
		gateway:        gateway,
		repo:           repo,
		profiles:       profiles,
		metricsManager: metricsManager,
		states: map[Type]*planState{
			TypeWorkout:   {status: StatusIdle},
			TypeNutrition: {status: StatusIdle},
		},
	}

	// plans stored from a previous run mean the generation succeeded
	if p, err := repo.WorkoutPlan(ctx); err != nil {
		log.Errorf("plans service: restore workout plan state: %s", err)
	} else if p != nil {
		s.states[TypeWorkout].status = StatusSuccess
	}
	if p, err := repo.NutritionPlan(ctx); err != nil {
		log.Errorf("plans service: restore nutrition plan state: %s", err)
	} else if p != nil {
		s.states[TypeNutrition].status = StatusSuccess
	}

	return s
}

func (s *Service) SetOnPlanApplied(f func(ctx context.Context)) {
	s.onPlanApplied = f
}

// GenerateAll fires both plan generations back to back, without
// blocking on either of them.
func (s *Service) GenerateAll(p *profile.UserProfile) {
	s.generate(TypeWorkout, p)
	s.generate(TypeNutrition, p)
}

// Retry re-invokes the generation for one plan type with the stored
// profile. It is user triggered - there are no automatic retries.
func (s *Service) Retry(planType Type) error {
	p, err := s.profiles.Get(s.ctx)
	if err != nil {
		if errors.Is(err, profile.ErrProfileNotFound) {
			return errors.New("no profile, nothing to retry")
		}
		return fmt.Errorf("get profile: %w", err)
	}

	s.generate(planType, p)
	return nil
}

func (s *Service) generate(planType Type, p *profile.UserProfile) {
	s.mu.Lock()
	state := s.states[planType]
	state.epoch++
	state.status = StatusLoading
	state.errMsg = ""
	epoch := state.epoch
	s.mu.Unlock()

	log.Debugf("plan generation [%s] started, epoch %d", planType, epoch)

	go func() {
		ctx, span := tracing.GlobalTracer.Start(s.ctx, "plans.generate")
		span.SetAttributes(attribute.String("plan.type", string(planType)))

		var genErr error
		var workoutPlan *WorkoutPlan
		var nutritionPlan *NutritionPlan
		switch planType {
		case TypeWorkout:
			workoutPlan, genErr = s.gateway.GenerateWorkoutPlan(ctx, p)
		case TypeNutrition:
			nutritionPlan, genErr = s.gateway.GenerateNutritionPlan(ctx, p)
		}

		state.persistMu.Lock()
		s.mu.Lock()
		stale := state.epoch != epoch
		s.mu.Unlock()
		if genErr == nil && !stale {
			// persist before flipping the status, so a crash in between
			// leaves us in error, never in success-without-plan
			switch planType {
			case TypeWorkout:
				genErr = s.repo.SetWorkoutPlan(ctx, workoutPlan)
			case TypeNutrition:
				genErr = s.repo.SetNutritionPlan(ctx, nutritionPlan)
			}
		}
		state.persistMu.Unlock()

		s.mu.Lock()
		stale = state.epoch != epoch
		if !stale {
			if genErr != nil {
				state.status = StatusError
				state.errMsg = genErr.Error()
			} else {
				state.status = StatusSuccess
			}
		}
		s.mu.Unlock()

		if stale {
			log.Warnf("plan generation [%s] epoch %d superseded, result dropped", planType, epoch)
			tracing.EndSpanWithErrCheck(span, nil)
			s.notifyGenerationDone(planType)
			return
		}

		outcome := "success"
		if genErr != nil {
			outcome = "error"
			log.Errorf("plan generation [%s] failed: %s", planType, genErr)
		} else {
			log.Debugf("plan generation [%s] done, epoch %d", planType, epoch)
		}

		if s.metricsManager != nil {
			s.metricsManager.CounterPlanGenerations.With(prometheus.Labels{
				"plan":    string(planType),
				"outcome": outcome,
			}).Inc()
		}

		if genErr == nil && s.onPlanApplied != nil {
			s.onPlanApplied(ctx)
		}

		tracing.EndSpanWithErrCheck(span, genErr)
		s.notifyGenerationDone(planType)
	}()
}

func (s *Service) notifyGenerationDone(planType Type) {
	if s.generationDone != nil {
		s.generationDone <- planType
	}
}

// State returns the current lifecycle state of one plan type.
func (s *Service) State(planType Type) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	state := s.states[planType]
	return State{
		Status: state.status,
		ErrMsg: state.errMsg,
	}
}

// Reset puts both state machines back to idle and invalidates any
// in-flight generation. Used by the full app reset.
func (s *Service) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, state := range s.states {
		state.epoch++
		state.status = StatusIdle
		state.errMsg = ""
	}
}

func (s *Service) Workout(ctx context.Context) (*WorkoutPlan, State, error) {
	p, err := s.repo.WorkoutPlan(ctx)
	if err != nil {
		return nil, State{}, err
	}
	return p, s.State(TypeWorkout), nil
}

func (s *Service) Nutrition(ctx context.Context) (*NutritionPlan, State, error) {
	p, err := s.repo.NutritionPlan(ctx)
	if err != nil {
		return nil, State{}, err
	}
	return p, s.State(TypeNutrition), nil
}

// EffectiveTargets layers the user's override on top of the AI-produced
// daily targets. Returns nil when no nutrition plan exists yet.
func (s *Service) EffectiveTargets(ctx context.Context) (_ *MacroSplit, overridden bool, err error) {
	override, err := s.repo.TargetsOverride(ctx)
	if err != nil {
		return nil, false, err
	}
	if override != nil {
		return override, true, nil
	}

	p, err := s.repo.NutritionPlan(ctx)
	if err != nil {
		return nil, false, err
	}
	if p == nil {
		return nil, false, nil
	}
	targets := p.DailyTargets
	return &targets, false, nil
}

func (s *Service) OverrideTargets(ctx context.Context, split MacroSplit) error {
	if split.Calories <= 0 || split.Protein < 0 || split.Carbs < 0 || split.Fats < 0 {
		return errors.New("invalid targets")
	}
	return s.repo.SetTargetsOverride(ctx, &split)
}

// ClearTargetsOverride reverts to the AI-produced targets.
func (s *Service) ClearTargetsOverride(ctx context.Context) error {
	return s.repo.ClearTargetsOverride(ctx)
}
