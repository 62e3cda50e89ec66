package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/2beens/fitgenius/internal/gemini"
	"github.com/2beens/fitgenius/internal/plans"
	"github.com/2beens/fitgenius/internal/profile"
	"github.com/2beens/fitgenius/internal/telemetry/metrics"
	"github.com/2beens/fitgenius/internal/telemetry/tracing"
)

var (
	ErrNoProfile    = errors.New("no profile")
	ErrEmptyMessage = errors.New("empty message")
)

type coachGateway interface {
	Chat(
		ctx context.Context,
		history []gemini.ChatTurn,
		newMessage string,
		p *profile.UserProfile,
		workoutPlan *plans.WorkoutPlan,
		nutritionPlan *plans.NutritionPlan,
	) (string, error)
}

type profileSource interface {
	Get(ctx context.Context) (*profile.UserProfile, error)
}

type planSource interface {
	WorkoutPlan(ctx context.Context) (*plans.WorkoutPlan, error)
	NutritionPlan(ctx context.Context) (*plans.NutritionPlan, error)
}

// Service keeps the append-only coach conversation. The transcript
// always starts with a greeting seeded from the profile; resetting the
// chat reseeds it.
type Service struct {
	repo           *Repo
	gateway        coachGateway
	profiles       profileSource
	plans          planSource
	metricsManager *metrics.Manager
	now            func() time.Time
}

func NewService(
	repo *Repo,
	gateway coachGateway,
	profiles profileSource,
	plansRepo planSource,
	metricsManager *metrics.Manager,
) *Service {
	return &Service{
		repo:           repo,
		gateway:        gateway,
		profiles:       profiles,
		plans:          plansRepo,
		metricsManager: metricsManager,
		now:            time.Now,
	}
}

func (s *Service) userProfile(ctx context.Context) (*profile.UserProfile, error) {
	p, err := s.profiles.Get(ctx)
	if err != nil {
		if errors.Is(err, profile.ErrProfileNotFound) {
			return nil, ErrNoProfile
		}
		return nil, err
	}
	return p, nil
}

// Messages returns the transcript, seeding the greeting first if the
// conversation has not started yet.
func (s *Service) Messages(ctx context.Context) (_ []Message, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "chat.messages")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	messages, err := s.repo.Messages(ctx)
	if err != nil {
		return nil, err
	}
	if len(messages) > 0 {
		return messages, nil
	}

	p, err := s.userProfile(ctx)
	if err != nil {
		return nil, err
	}

	messages = []Message{Greeting(p, s.now())}
	if err := s.repo.SetMessages(ctx, messages); err != nil {
		return nil, err
	}
	return messages, nil
}

// SendMessage appends the user's turn, asks the coach, appends the
// reply and persists the whole transcript.
func (s *Service) SendMessage(ctx context.Context, text string) (_ []Message, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "chat.sendMessage")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyMessage
	}

	p, err := s.userProfile(ctx)
	if err != nil {
		return nil, err
	}

	messages, err := s.Messages(ctx)
	if err != nil {
		return nil, err
	}

	workoutPlan, err := s.plans.WorkoutPlan(ctx)
	if err != nil {
		return nil, err
	}
	nutritionPlan, err := s.plans.NutritionPlan(ctx)
	if err != nil {
		return nil, err
	}

	history := make([]gemini.ChatTurn, 0, len(messages))
	for _, m := range messages {
		history = append(history, gemini.ChatTurn{
			Role: m.Role,
			Text: m.Text,
		})
	}

	reply, err := s.gateway.Chat(ctx, history, text, p, workoutPlan, nutritionPlan)
	if err != nil {
		return nil, fmt.Errorf("coach gateway: %w", err)
	}

	now := s.now()
	messages = append(messages,
		Message{Role: RoleUser, Text: text, Timestamp: now},
		Message{Role: RoleModel, Text: reply, Timestamp: s.now()},
	)
	if err := s.repo.SetMessages(ctx, messages); err != nil {
		return nil, err
	}

	s.metricsManager.CounterChatMessages.Inc()
	return messages, nil
}

// Reset drops the transcript and reseeds the greeting.
func (s *Service) Reset(ctx context.Context) (_ []Message, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "chat.reset")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	p, err := s.userProfile(ctx)
	if err != nil {
		return nil, err
	}

	messages := []Message{Greeting(p, s.now())}
	if err := s.repo.SetMessages(ctx, messages); err != nil {
		return nil, err
	}
	return messages, nil
}
