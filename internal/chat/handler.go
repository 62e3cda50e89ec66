package chat

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/2beens/fitgenius/internal/middleware"
	"github.com/2beens/fitgenius/internal/telemetry/metrics"
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

func (handler *Handler) SetupRoutes(
	router *mux.Router,
	rateLimiter middleware.RequestRateLimiter,
	metricsManager *metrics.Manager,
	sendAllowedPerMin int,
) {
	router.HandleFunc("/chat/messages", handler.HandleGetMessages).Methods("GET", "OPTIONS").Name("get-chat-messages")
	router.HandleFunc("/chat/messages", handler.HandleReset).Methods("DELETE", "OPTIONS").Name("reset-chat")

	// rate limit sending, each message costs an AI call
	sendSubrouter := router.PathPrefix("/chat/message").Subrouter()
	sendSubrouter.HandleFunc("", handler.HandleSendMessage).Methods("POST", "OPTIONS").Name("send-chat-message")
	sendSubrouter.Use(middleware.RateLimit(rateLimiter, "coach-chat", sendAllowedPerMin, metricsManager))
	sendSubrouter.Use(middleware.Cors())
}

func (handler *Handler) HandleGetMessages(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.chat.getMessages")
	defer span.End()

	messages, err := handler.service.Messages(ctx)
	if err != nil {
		if errors.Is(err, ErrNoProfile) {
			http.Error(w, "no profile", http.StatusConflict)
			return
		}
		log.Errorf("failed to get chat messages: %s", err)
		http.Error(w, "get messages failed", http.StatusInternalServerError)
		return
	}
	handler.writeMessages(w, messages, http.StatusOK)
}

type sendMessageRequest struct {
	Text string `json:"text"`
}

func (handler *Handler) HandleSendMessage(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.chat.sendMessage")
	defer span.End()

	var req sendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	messages, err := handler.service.SendMessage(ctx, req.Text)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyMessage):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, ErrNoProfile):
			http.Error(w, "no profile", http.StatusConflict)
		default:
			log.Errorf("failed to send chat message: %s", err)
			http.Error(w, "coach unavailable", http.StatusBadGateway)
		}
		return
	}
	handler.writeMessages(w, messages, http.StatusCreated)
}

func (handler *Handler) HandleReset(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.chat.reset")
	defer span.End()

	messages, err := handler.service.Reset(ctx)
	if err != nil {
		if errors.Is(err, ErrNoProfile) {
			http.Error(w, "no profile", http.StatusConflict)
			return
		}
		log.Errorf("failed to reset chat: %s", err)
		http.Error(w, "reset chat failed", http.StatusInternalServerError)
		return
	}
	handler.writeMessages(w, messages, http.StatusOK)
}

func (handler *Handler) writeMessages(w http.ResponseWriter, messages []Message, statusCode int) {
	respJson, err := json.Marshal(messages)
	if err != nil {
		log.Errorf("failed to marshal chat messages: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, statusCode)
}
