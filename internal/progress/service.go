package progress

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/fitgenius/internal/plans"
	"github.com/2beens/fitgenius/internal/telemetry/metrics"
	"github.com/2beens/fitgenius/internal/telemetry/tracing"
)

var (
	ErrNoWorkoutPlan = errors.New("no workout plan")
	ErrInvalidIndex  = errors.New("invalid schedule index")
	ErrInvalidInput  = errors.New("invalid input")
)

type planSource interface {
	WorkoutPlan(ctx context.Context) (*plans.WorkoutPlan, error)
	NutritionPlan(ctx context.Context) (*plans.NutritionPlan, error)
}

// Service owns the progress ledger, the daily meal/hydration trackers
// and everything derived from them: today's intake totals, the daily
// history snapshots, streak and adherence.
type Service struct {
	repo           *Repo
	plans          planSource
	metricsManager *metrics.Manager
	now            func() time.Time
}

func NewService(
	repo *Repo,
	plansRepo planSource,
	metricsManager *metrics.Manager,
) *Service {
	return &Service{
		repo:           repo,
		plans:          plansRepo,
		metricsManager: metricsManager,
		now:            time.Now,
	}
}

func (s *Service) workoutDay(ctx context.Context, dayIndex int) (*plans.WorkoutDay, error) {
	plan, err := s.plans.WorkoutPlan(ctx)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, ErrNoWorkoutPlan
	}
	if dayIndex < 0 || dayIndex >= len(plan.Schedule) {
		return nil, fmt.Errorf("%w: day %d", ErrInvalidIndex, dayIndex)
	}
	return &plan.Schedule[dayIndex], nil
}

func (s *Service) ToggleExercise(ctx context.Context, dayIndex, exerciseIndex int) (_ Ledger, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "progress.toggleExercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	day, err := s.workoutDay(ctx, dayIndex)
	if err != nil {
		return nil, err
	}
	if exerciseIndex < 0 || exerciseIndex >= len(day.Exercises) {
		return nil, fmt.Errorf("%w: day %d, exercise %d", ErrInvalidIndex, dayIndex, exerciseIndex)
	}

	return s.mutateLedger(ctx, func(ledger Ledger) {
		ledger.ToggleExercise(dayIndex, exerciseIndex)
	})
}

func (s *Service) ToggleRestDay(ctx context.Context, dayIndex int) (_ Ledger, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "progress.toggleRestDay")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	day, err := s.workoutDay(ctx, dayIndex)
	if err != nil {
		return nil, err
	}
	if !day.IsRestDay() {
		return nil, fmt.Errorf("%w: day %d is not a rest day", ErrInvalidInput, dayIndex)
	}

	return s.mutateLedger(ctx, func(ledger Ledger) {
		ledger.ToggleRestDay(dayIndex)
	})
}

func (s *Service) ToggleDay(ctx context.Context, dayIndex int) (_ Ledger, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "progress.toggleDay")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	day, err := s.workoutDay(ctx, dayIndex)
	if err != nil {
		return nil, err
	}

	return s.mutateLedger(ctx, func(ledger Ledger) {
		ledger.ToggleDayComplete(dayIndex, day)
	})
}

func (s *Service) mutateLedger(ctx context.Context, mutate func(Ledger)) (Ledger, error) {
	ledger, err := s.repo.Ledger(ctx)
	if err != nil {
		return nil, err
	}
	mutate(ledger)
	if err := s.repo.SetLedger(ctx, ledger); err != nil {
		return nil, err
	}
	s.metricsManager.CounterLedgerToggles.Inc()
	return ledger, nil
}

func (s *Service) ClearLedger(ctx context.Context) error {
	return s.repo.ClearLedger(ctx)
}

// DayProgress is the per-day view over plan + ledger.
type DayProgress struct {
	Day             string `json:"day"`
	Focus           string `json:"focus"`
	RestDay         bool   `json:"restDay"`
	Complete        bool   `json:"complete"`
	PercentComplete int    `json:"percentComplete"`
}

type Overview struct {
	Ledger Ledger        `json:"ledger"`
	Days   []DayProgress `json:"days"`
}

func (s *Service) Overview(ctx context.Context) (_ *Overview, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "progress.overview")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	ledger, err := s.repo.Ledger(ctx)
	if err != nil {
		return nil, err
	}

	overview := &Overview{
		Ledger: ledger,
		Days:   []DayProgress{},
	}

	plan, err := s.plans.WorkoutPlan(ctx)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return overview, nil
	}

	for i := range plan.Schedule {
		day := &plan.Schedule[i]
		overview.Days = append(overview.Days, DayProgress{
			Day:             day.Day,
			Focus:           day.Focus,
			RestDay:         day.IsRestDay(),
			Complete:        ledger.IsDayComplete(i, day),
			PercentComplete: ledger.PercentComplete(i, day),
		})
	}
	return overview, nil
}

type Summary struct {
	AdherencePercent int     `json:"adherence"`
	Streak           int     `json:"streak"`
	TotalMinutes     int     `json:"totalMinutes"`
	History          History `json:"history"`
}

func (s *Service) Summary(ctx context.Context) (_ *Summary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "progress.summary")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	ledger, err := s.repo.Ledger(ctx)
	if err != nil {
		return nil, err
	}
	history, err := s.repo.History(ctx)
	if err != nil {
		return nil, err
	}
	if history == nil {
		history = History{}
	}

	summary := &Summary{
		Streak:  history.Streak(s.now()),
		History: history,
	}

	plan, err := s.plans.WorkoutPlan(ctx)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return summary, nil
	}

	completedDays := 0
	for i := range plan.Schedule {
		day := &plan.Schedule[i]
		if ledger.IsDayComplete(i, day) {
			completedDays++
			summary.TotalMinutes += day.DurationMinutes
		}
	}
	summary.AdherencePercent = int(math.Round(100 * float64(completedDays) / float64(len(plan.Schedule))))
	return summary, nil
}

// Today is the daily tracking view: which meals were eaten, how much
// water was logged, and the intake totals derived from the nutrition
// plan's sample day.
type Today struct {
	Date             string          `json:"date"`
	Meals            map[string]bool `json:"meals"`
	WaterMl          int             `json:"waterMl"`
	ConsumedCalories int             `json:"consumedCalories"`
	ConsumedProtein  int             `json:"consumedProtein"`
}

func (s *Service) Today(ctx context.Context) (_ *Today, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "progress.today")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	today := DateKey(s.now())

	mealLog, err := s.repo.MealLog(ctx)
	if err != nil {
		return nil, err
	}
	mealLog = mealLog.ForDay(today)

	hydration, err := s.repo.Hydration(ctx)
	if err != nil {
		return nil, err
	}
	hydration = hydration.ForDay(today)

	nutritionPlan, err := s.plans.NutritionPlan(ctx)
	if err != nil {
		return nil, err
	}
	calories, protein := consumedTotals(mealLog, nutritionPlan)

	return &Today{
		Date:             today,
		Meals:            mealLog.Eaten,
		WaterMl:          hydration.Ml,
		ConsumedCalories: calories,
		ConsumedProtein:  protein,
	}, nil
}

func (s *Service) ToggleMeal(ctx context.Context, slot string) (_ *Today, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "progress.toggleMeal")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if _, ok := (&plans.SampleDay{}).Meal(slot); !ok {
		return nil, fmt.Errorf("%w: unknown meal slot %s", ErrInvalidInput, slot)
	}

	today := DateKey(s.now())
	mealLog, err := s.repo.MealLog(ctx)
	if err != nil {
		return nil, err
	}
	mealLog = mealLog.ForDay(today)
	mealLog.Eaten[slot] = !mealLog.Eaten[slot]

	if err := s.repo.SetMealLog(ctx, mealLog); err != nil {
		return nil, err
	}
	if err := s.RefreshTodaySnapshot(ctx); err != nil {
		log.Errorf("refresh today snapshot after meal toggle: %s", err)
	}
	return s.Today(ctx)
}

func (s *Service) AdjustHydration(ctx context.Context, deltaMl int) (_ *Today, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "progress.adjustHydration")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	today := DateKey(s.now())
	hydration, err := s.repo.Hydration(ctx)
	if err != nil {
		return nil, err
	}
	hydration = hydration.ForDay(today).Adjust(deltaMl)

	if err := s.repo.SetHydration(ctx, hydration); err != nil {
		return nil, err
	}
	if err := s.RefreshTodaySnapshot(ctx); err != nil {
		log.Errorf("refresh today snapshot after hydration change: %s", err)
	}
	return s.Today(ctx)
}

// RefreshTodaySnapshot recomputes today's intake totals and upserts
// them into the daily history. Runs after every meal-log, hydration or
// plan change.
func (s *Service) RefreshTodaySnapshot(ctx context.Context) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "progress.refreshTodaySnapshot")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	today := DateKey(s.now())

	mealLog, err := s.repo.MealLog(ctx)
	if err != nil {
		return err
	}
	mealLog = mealLog.ForDay(today)

	hydration, err := s.repo.Hydration(ctx)
	if err != nil {
		return err
	}
	hydration = hydration.ForDay(today)

	nutritionPlan, err := s.plans.NutritionPlan(ctx)
	if err != nil {
		return err
	}
	calories, protein := consumedTotals(mealLog, nutritionPlan)

	history, err := s.repo.History(ctx)
	if err != nil {
		return err
	}
	history = history.Upsert(Snapshot{
		Date:     today,
		Calories: calories,
		Protein:  protein,
		Water:    hydration.Ml,
	})
	return s.repo.SetHistory(ctx, history)
}

func consumedTotals(mealLog MealLog, nutritionPlan *plans.NutritionPlan) (calories, protein int) {
	if nutritionPlan == nil {
		return 0, 0
	}
	for _, slot := range plans.MealSlots() {
		if !mealLog.Eaten[slot] {
			continue
		}
		meal, _ := nutritionPlan.SampleDay.Meal(slot)
		calories += meal.Calories
		protein += meal.Protein
	}
	return calories, protein
}

func (s *Service) AddWeightEntry(ctx context.Context, weightKg float64) (_ WeightSummary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "progress.addWeight")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if weightKg <= 0 {
		return WeightSummary{}, fmt.Errorf("%w: weight must be positive", ErrInvalidInput)
	}

	entries, err := s.repo.WeightHistory(ctx)
	if err != nil {
		return WeightSummary{}, err
	}
	entries = append(entries, WeightEntry{
		Date:     DateKey(s.now()),
		WeightKg: weightKg,
	})
	if err := s.repo.SetWeightHistory(ctx, entries); err != nil {
		return WeightSummary{}, err
	}
	return SummarizeWeight(entries), nil
}

func (s *Service) WeightSummary(ctx context.Context) (WeightSummary, error) {
	entries, err := s.repo.WeightHistory(ctx)
	if err != nil {
		return WeightSummary{}, err
	}
	return SummarizeWeight(entries), nil
}

func (s *Service) AddPersonalRecord(ctx context.Context, exercise string, weightKg float64, reps int) (_ []PersonalRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "progress.addRecord")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	record := NewPersonalRecord(exercise, weightKg, reps, s.now())
	if err := record.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	records, err := s.repo.PersonalRecords(ctx)
	if err != nil {
		return nil, err
	}
	records = PrependRecord(records, record)
	if err := s.repo.SetPersonalRecords(ctx, records); err != nil {
		return nil, err
	}
	return records, nil
}

func (s *Service) PersonalRecords(ctx context.Context) ([]PersonalRecord, error) {
	records, err := s.repo.PersonalRecords(ctx)
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = []PersonalRecord{}
	}
	return records, nil
}

func (s *Service) DeletePersonalRecord(ctx context.Context, id string) (_ []PersonalRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "progress.deleteRecord")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	records, err := s.repo.PersonalRecords(ctx)
	if err != nil {
		return nil, err
	}
	records = RemoveRecord(records, id)
	if err := s.repo.SetPersonalRecords(ctx, records); err != nil {
		return nil, err
	}
	if records == nil {
		records = []PersonalRecord{}
	}
	return records, nil
}
