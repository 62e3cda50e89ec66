package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/2beens/fitgenius/internal/telemetry/tracing"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

// Every logical record lives under its own key and is overwritten
// wholesale on each mutation. There are no cross-key transactions.
const (
	KeyProfile         = "fitgenius::profile"
	KeyWorkoutPlan     = "fitgenius::workout-plan"
	KeyNutritionPlan   = "fitgenius::nutrition-plan"
	KeyActiveTab       = "fitgenius::active-tab"
	KeyWorkoutProgress = "fitgenius::workout-progress"
	KeyMealLog         = "fitgenius::meal-log"
	KeyHydration       = "fitgenius::hydration"
	KeyTargetsOverride = "fitgenius::nutrition-targets-override"
	KeyWeightHistory   = "fitgenius::weight-history"
	KeyPersonalRecords = "fitgenius::personal-records"
	KeyDailyHistory    = "fitgenius::daily-history"
	KeyChatMessages    = "fitgenius::chat-messages"
)

// AllKeys lists every key the app writes, used by the full reset.
func AllKeys() []string {
	return []string{
		KeyProfile,
		KeyWorkoutPlan,
		KeyNutritionPlan,
		KeyActiveTab,
		KeyWorkoutProgress,
		KeyMealLog,
		KeyHydration,
		KeyTargetsOverride,
		KeyWeightHistory,
		KeyPersonalRecords,
		KeyDailyHistory,
		KeyChatMessages,
	}
}

// Store is the key-value persistence boundary. Values are stored as JSON
// text; reads of missing or malformed keys report "not found" instead of
// failing, so callers can fall back to the record's zero value.
type Store struct {
	redisClient *redis.Client
}

func New(redisClient *redis.Client) *Store {
	return &Store{
		redisClient: redisClient,
	}
}

func (s *Store) GetJSON(ctx context.Context, key string, dst interface{}) (found bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.getJson")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("key", key))

	cmd := s.redisClient.Get(ctx, key)
	if err := cmd.Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("redis get [%s]: %w", key, err)
	}

	if err := json.Unmarshal([]byte(cmd.Val()), dst); err != nil {
		// malformed stored value is treated as absent, never fatal
		log.Errorf("store: malformed value for key [%s], falling back to default: %s", key, err)
		return false, nil
	}

	return true, nil
}

func (s *Store) SetJSON(ctx context.Context, key string, value interface{}) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.setJson")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("key", key))

	valueBytes, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal value for [%s]: %w", key, err)
	}

	if err := s.redisClient.Set(ctx, key, string(valueBytes), 0).Err(); err != nil {
		return fmt.Errorf("redis set [%s]: %w", key, err)
	}

	return nil
}

func (s *Store) Delete(ctx context.Context, keys ...string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := s.redisClient.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

// ClearAll removes every stored record. Used by the full app reset.
func (s *Store) ClearAll(ctx context.Context) error {
	return s.Delete(ctx, AllKeys()...)
}
