package plans

import (
	"context"
	"fmt"

	"github.com/2beens/fitgenius/internal/store"
	"github.com/2beens/fitgenius/internal/telemetry/tracing"
)

type Repo struct {
	store *store.Store
}

func NewRepo(s *store.Store) *Repo {
	return &Repo{
		store: s,
	}
}

// WorkoutPlan returns the stored plan, or nil when no plan was generated yet.
func (r *Repo) WorkoutPlan(ctx context.Context) (_ *WorkoutPlan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "plans.repo.getWorkout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var p WorkoutPlan
	found, err := r.store.GetJSON(ctx, store.KeyWorkoutPlan, &p)
	if err != nil {
		return nil, fmt.Errorf("get workout plan: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &p, nil
}

func (r *Repo) SetWorkoutPlan(ctx context.Context, p *WorkoutPlan) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "plans.repo.setWorkout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := r.store.SetJSON(ctx, store.KeyWorkoutPlan, p); err != nil {
		return fmt.Errorf("set workout plan: %w", err)
	}
	return nil
}

func (r *Repo) NutritionPlan(ctx context.Context) (_ *NutritionPlan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "plans.repo.getNutrition")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var p NutritionPlan
	found, err := r.store.GetJSON(ctx, store.KeyNutritionPlan, &p)
	if err != nil {
		return nil, fmt.Errorf("get nutrition plan: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &p, nil
}

func (r *Repo) SetNutritionPlan(ctx context.Context, p *NutritionPlan) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "plans.repo.setNutrition")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := r.store.SetJSON(ctx, store.KeyNutritionPlan, p); err != nil {
		return fmt.Errorf("set nutrition plan: %w", err)
	}
	return nil
}

// TargetsOverride returns the user's local macro targets override,
// or nil when the AI-produced targets are in effect.
func (r *Repo) TargetsOverride(ctx context.Context) (*MacroSplit, error) {
	var split MacroSplit
	found, err := r.store.GetJSON(ctx, store.KeyTargetsOverride, &split)
	if err != nil {
		return nil, fmt.Errorf("get targets override: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &split, nil
}

func (r *Repo) SetTargetsOverride(ctx context.Context, split *MacroSplit) error {
	if err := r.store.SetJSON(ctx, store.KeyTargetsOverride, split); err != nil {
		return fmt.Errorf("set targets override: %w", err)
	}
	return nil
}

func (r *Repo) ClearTargetsOverride(ctx context.Context) error {
	if err := r.store.Delete(ctx, store.KeyTargetsOverride); err != nil {
		return fmt.Errorf("clear targets override: %w", err)
	}
	return nil
}
