package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/2beens/fitgenius/internal/plans"
	"github.com/2beens/fitgenius/internal/profile"
	"github.com/2beens/fitgenius/internal/telemetry/tracing"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const (
	DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	DefaultModel   = "gemini-3-flash-preview"

	oneHour = 60 * 60
	// plan generation for the same profile is deterministic enough to
	// cache, and retries with an unchanged profile are the common path
	planCacheExpire = oneHour * 1
)

// Client talks to the Gemini generateContent REST API.
type Client struct {
	baseURL    string
	apiKey     string
	model      string
	cache      *freecache.Cache
	httpClient *http.Client
}

func NewClient(baseURL, apiKey, model string, httpClient *http.Client) *Client {
	megabyte := 1024 * 1024
	cacheSize := 10 * megabyte

	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		model:      model,
		cache:      freecache.NewCache(cacheSize),
		httpClient: httpClient,
	}
}

type generateContentRequest struct {
	Contents          []content         `json:"contents"`
	SystemInstruction *content          `json:"systemInstruction,omitempty"`
	GenerationConfig  *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMimeType string `json:"responseMimeType,omitempty"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// GenerateWorkoutPlan must return a complete 7-day schedule; anything
// less is a gateway error, never a partial plan.
func (c *Client) GenerateWorkoutPlan(ctx context.Context, p *profile.UserProfile) (_ *plans.WorkoutPlan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "gemini.generateWorkoutPlan")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	respText, err := c.generateJSON(ctx, workoutPlanPrompt(p))
	if err != nil {
		return nil, err
	}

	var plan plans.WorkoutPlan
	if err := json.Unmarshal([]byte(respText), &plan); err != nil {
		return nil, fmt.Errorf("unmarshal workout plan response: %w", err)
	}
	if err := plan.Validate(); err != nil {
		return nil, fmt.Errorf("invalid workout plan from gateway: %w", err)
	}

	return &plan, nil
}

// GenerateNutritionPlan must return all four daily target fields and
// all four meal slots populated.
func (c *Client) GenerateNutritionPlan(ctx context.Context, p *profile.UserProfile) (_ *plans.NutritionPlan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "gemini.generateNutritionPlan")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	respText, err := c.generateJSON(ctx, nutritionPlanPrompt(p))
	if err != nil {
		return nil, err
	}

	var plan plans.NutritionPlan
	if err := json.Unmarshal([]byte(respText), &plan); err != nil {
		return nil, fmt.Errorf("unmarshal nutrition plan response: %w", err)
	}
	if err := plan.Validate(); err != nil {
		return nil, fmt.Errorf("invalid nutrition plan from gateway: %w", err)
	}

	return &plan, nil
}

// ChatTurn is one prior turn of the coach conversation.
type ChatTurn struct {
	Role string // "user" or "model"
	Text string
}

// Chat sends the conversation history plus the new message. Plans may
// be nil while still generating - the coach then answers with partial
// context instead of blocking.
func (c *Client) Chat(
	ctx context.Context,
	history []ChatTurn,
	newMessage string,
	p *profile.UserProfile,
	workoutPlan *plans.WorkoutPlan,
	nutritionPlan *plans.NutritionPlan,
) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "gemini.chat")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("history.len", len(history)))

	contents := make([]content, 0, len(history)+1)
	for _, turn := range history {
		contents = append(contents, content{
			Role:  turn.Role,
			Parts: []part{{Text: turn.Text}},
		})
	}
	contents = append(contents, content{
		Role:  "user",
		Parts: []part{{Text: newMessage}},
	})

	resp, err := c.generateContent(ctx, generateContentRequest{
		Contents: contents,
		SystemInstruction: &content{
			Parts: []part{{Text: coachSystemInstruction(p, workoutPlan, nutritionPlan)}},
		},
	})
	if err != nil {
		return "", err
	}

	return resp, nil
}

// generateJSON sends a single-prompt structured request, with the
// response cached per prompt.
func (c *Client) generateJSON(ctx context.Context, prompt string) (string, error) {
	cacheKey := []byte(prompt)
	if cached, err := c.cache.Get(cacheKey); err == nil {
		log.Tracef("gemini: found cached response for prompt (%d bytes)", len(cached))
		return string(cached), nil
	}

	respText, err := c.generateContent(ctx, generateContentRequest{
		Contents: []content{{
			Role:  "user",
			Parts: []part{{Text: prompt}},
		}},
		GenerationConfig: &generationConfig{
			ResponseMimeType: "application/json",
		},
	})
	if err != nil {
		return "", err
	}

	if err := c.cache.Set(cacheKey, []byte(respText), planCacheExpire); err != nil {
		log.Errorf("gemini: failed to cache response: %s", err)
	}

	return respText, nil
}

func (c *Client) generateContent(ctx context.Context, genReq generateContentRequest) (string, error) {
	reqBytes, err := json.Marshal(genReq)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	apiURL := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, "POST", apiURL, bytes.NewReader(reqBytes))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read gemini response bytes: %w", err)
	}

	var genResp generateContentResponse
	if err := json.Unmarshal(respBytes, &genResp); err != nil {
		return "", fmt.Errorf("unmarshal gemini response: %w", err)
	}

	if genResp.Error != nil {
		return "", fmt.Errorf("gemini api error [%d %s]: %s", genResp.Error.Code, genResp.Error.Status, genResp.Error.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini api status: %s", resp.Status)
	}
	if len(genResp.Candidates) == 0 {
		return "", fmt.Errorf("no response from AI")
	}

	var sb strings.Builder
	for _, p := range genResp.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("no response from AI")
	}

	return sb.String(), nil
}
