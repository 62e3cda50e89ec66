package internal

import (
	"context"
	"encoding/csv"
	"net/http"
	"strings"
	"testing"

	"github.com/2beens/fitgenius/internal/chat"
	"github.com/2beens/fitgenius/internal/config"
	"github.com/2beens/fitgenius/internal/gemini"
	"github.com/2beens/fitgenius/internal/misc"
	"github.com/2beens/fitgenius/internal/plans"
	"github.com/2beens/fitgenius/internal/profile"
	"github.com/2beens/fitgenius/internal/progress"
	"github.com/2beens/fitgenius/internal/store"
	"github.com/2beens/fitgenius/internal/telemetry/metrics"

	"github.com/go-redis/redismock/v8"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		// INFO: https://github.com/go-redis/redis/issues/1029
		goleak.IgnoreTopFunction(
			"github.com/go-redis/redis/v8/internal/pool.(*ConnPool).reaper",
		),
	)
}

func newTestServer(t *testing.T) *Server {
	t.Helper()

	db, mock := redismock.NewClientMock()
	mock.ExpectGet(store.KeyWorkoutPlan).RedisNil()
	mock.ExpectGet(store.KeyNutritionPlan).RedisNil()

	dataStore := store.New(db)
	profileRepo := profile.NewRepo(dataStore)
	plansRepo := plans.NewRepo(dataStore)

	metricsManager, promRegistry := metrics.NewTestManagerAndRegistry()
	geminiClient := gemini.NewClient(gemini.DefaultBaseURL, "test-key", gemini.DefaultModel, http.DefaultClient)

	plansService := plans.NewService(context.Background(), geminiClient, plansRepo, profileRepo, metricsManager)
	progressService := progress.NewService(progress.NewRepo(dataStore), plansRepo, metricsManager)
	chatService := chat.NewService(chat.NewRepo(dataStore), geminiClient, profileRepo, plansRepo, metricsManager)

	quotesManager, err := misc.NewQuoteManager(csv.NewReader(strings.NewReader(
		"No pain, no gain.;Unknown;fitness\n",
	)))
	require.NoError(t, err)

	return &Server{
		config: &config.Config{
			ChatRateLimitAllowedPerMin: 10,
		},
		versionInfo: "test-version",
		redisClient: db,

		profileRepo:     profileRepo,
		plansService:    plansService,
		progressService: progressService,
		chatService:     chatService,
		quotesManager:   quotesManager,

		metricsManager: metricsManager,
		promRegistry:   promRegistry,
	}
}

func TestRouterSetup(t *testing.T) {
	server := newTestServer(t)
	defer func() {
		assert.NoError(t, server.redisClient.Close())
	}()

	router, err := server.routerSetup()
	require.NoError(t, err)
	require.NotNil(t, router)

	for caseName, route := range map[string]struct {
		name   string
		path   string
		method string
	}{
		"root": {
			name:   "root",
			path:   "/",
			method: "GET",
		},
		"version": {
			name:   "version",
			path:   "/version",
			method: "GET",
		},
		"new-profile": {
			name:   "new-profile",
			path:   "/profile",
			method: "POST",
		},
		"get-profile": {
			name:   "get-profile",
			path:   "/profile",
			method: "GET",
		},
		"full-reset": {
			name:   "full-reset",
			path:   "/app",
			method: "DELETE",
		},
		"get-tab": {
			name:   "get-tab",
			path:   "/tab",
			method: "GET",
		},
		"get-workout-plan": {
			name:   "get-workout-plan",
			path:   "/plans/workout",
			method: "GET",
		},
		"retry-plan": {
			name:   "retry-plan",
			path:   "/plans/workout/retry",
			method: "POST",
		},
		"override-targets": {
			name:   "override-targets",
			path:   "/plans/nutrition/targets",
			method: "PUT",
		},
		"get-progress": {
			name:   "get-progress",
			path:   "/progress",
			method: "GET",
		},
		"toggle-exercise": {
			name:   "toggle-exercise",
			path:   "/progress/day/0/exercise/1/toggle",
			method: "POST",
		},
		"get-today": {
			name:   "get-today",
			path:   "/today",
			method: "GET",
		},
		"adjust-hydration": {
			name:   "adjust-hydration",
			path:   "/today/hydration",
			method: "POST",
		},
		"add-weight": {
			name:   "add-weight",
			path:   "/weight",
			method: "POST",
		},
		"add-record": {
			name:   "add-record",
			path:   "/records",
			method: "POST",
		},
		"delete-record": {
			name:   "delete-record",
			path:   "/records/123",
			method: "DELETE",
		},
		"get-chat-messages": {
			name:   "get-chat-messages",
			path:   "/chat/messages",
			method: "GET",
		},
		"send-chat-message": {
			name:   "send-chat-message",
			path:   "/chat/message",
			method: "POST",
		},
		"quote": {
			name:   "quote",
			path:   "/quote/random",
			method: "GET",
		},
	} {
		t.Run(caseName, func(t *testing.T) {
			req, err := http.NewRequest(route.method, route.path, nil)
			require.NoError(t, err)

			routeMatch := &mux.RouteMatch{}
			muxRoute := router.Get(route.name)
			require.NotNil(t, muxRoute)
			isMatch := muxRoute.Match(req, routeMatch)
			assert.True(t, isMatch, caseName)
		})
	}
}
