package progress

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

func (r *Repo) Ledger(ctx context.Context) (_ Ledger, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "progress.repo.getLedger")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	ledger := Ledger{}
	if _, err := r.store.GetJSON(ctx, store.KeyWorkoutProgress, &ledger); err != nil {
		return nil, fmt.Errorf("get workout progress: %w", err)
	}
	return ledger, nil
}

// SetLedger persists the whole ledger map, overwriting the previous
// snapshot.
func (r *Repo) SetLedger(ctx context.Context, ledger Ledger) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "progress.repo.setLedger")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := r.store.SetJSON(ctx, store.KeyWorkoutProgress, ledger); err != nil {
		return fmt.Errorf("set workout progress: %w", err)
	}
	return nil
}

func (r *Repo) ClearLedger(ctx context.Context) error {
	if err := r.store.Delete(ctx, store.KeyWorkoutProgress); err != nil {
		return fmt.Errorf("clear workout progress: %w", err)
	}
	return nil
}

func (r *Repo) MealLog(ctx context.Context) (MealLog, error) {
	var mealLog MealLog
	found, err := r.store.GetJSON(ctx, store.KeyMealLog, &mealLog)
	if err != nil {
		return MealLog{}, fmt.Errorf("get meal log: %w", err)
	}
	if !found {
		return MealLog{}, nil
	}
	return mealLog, nil
}

func (r *Repo) SetMealLog(ctx context.Context, mealLog MealLog) error {
	if err := r.store.SetJSON(ctx, store.KeyMealLog, mealLog); err != nil {
		return fmt.Errorf("set meal log: %w", err)
	}
	return nil
}

func (r *Repo) Hydration(ctx context.Context) (Hydration, error) {
	var hydration Hydration
	found, err := r.store.GetJSON(ctx, store.KeyHydration, &hydration)
	if err != nil {
		return Hydration{}, fmt.Errorf("get hydration: %w", err)
	}
	if !found {
		return Hydration{}, nil
	}
	return hydration, nil
}

func (r *Repo) SetHydration(ctx context.Context, hydration Hydration) error {
	if err := r.store.SetJSON(ctx, store.KeyHydration, hydration); err != nil {
		return fmt.Errorf("set hydration: %w", err)
	}
	return nil
}

func (r *Repo) WeightHistory(ctx context.Context) ([]WeightEntry, error) {
	var entries []WeightEntry
	if _, err := r.store.GetJSON(ctx, store.KeyWeightHistory, &entries); err != nil {
		return nil, fmt.Errorf("get weight history: %w", err)
	}
	return entries, nil
}

func (r *Repo) SetWeightHistory(ctx context.Context, entries []WeightEntry) error {
	if err := r.store.SetJSON(ctx, store.KeyWeightHistory, entries); err != nil {
		return fmt.Errorf("set weight history: %w", err)
	}
	return nil
}

func (r *Repo) PersonalRecords(ctx context.Context) ([]PersonalRecord, error) {
	var records []PersonalRecord
	if _, err := r.store.GetJSON(ctx, store.KeyPersonalRecords, &records); err != nil {
		return nil, fmt.Errorf("get personal records: %w", err)
	}
	return records, nil
}

func (r *Repo) SetPersonalRecords(ctx context.Context, records []PersonalRecord) error {
	if err := r.store.SetJSON(ctx, store.KeyPersonalRecords, records); err != nil {
		return fmt.Errorf("set personal records: %w", err)
	}
	return nil
}

func (r *Repo) History(ctx context.Context) (History, error) {
	var history History
	if _, err := r.store.GetJSON(ctx, store.KeyDailyHistory, &history); err != nil {
		return nil, fmt.Errorf("get daily history: %w", err)
	}
	return history, nil
}

func (r *Repo) SetHistory(ctx context.Context, history History) error {
	if err := r.store.SetJSON(ctx, store.KeyDailyHistory, history); err != nil {
		return fmt.Errorf("set daily history: %w", err)
	}
	return nil
}
