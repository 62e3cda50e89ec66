package misc

import (
	"encoding/json"
	"net/http"

	"github.com/2beens/fitgenius/internal/telemetry/tracing"
	"github.com/2beens/fitgenius/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type Handler struct {
	quotesManager *QuotesManager
	versionInfo   string
}

func NewHandler(
	quotesManager *QuotesManager,
	versionInfo string,
) *Handler {
	return &Handler{
		quotesManager: quotesManager,
		versionInfo:   versionInfo,
	}
}

func (handler *Handler) SetupRoutes(mainRouter *mux.Router) {
	mainRouter.HandleFunc("/", handler.handleRoot).Methods("GET", "POST", "OPTIONS").Name("root")
	mainRouter.HandleFunc("/quote/random", handler.handleGetRandomQuote).Methods("GET").Name("quote")
	mainRouter.HandleFunc("/quote/random/{genre}", handler.handleGetRandomQuoteByGenre).Methods("GET").Name("quote-by-genre")
	mainRouter.HandleFunc("/version", handler.handleGetVersionInfo).Methods("GET").Name("version")
}

func (handler *Handler) handleRoot(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, "I'm OK, thanks ;)")
}

func (handler *Handler) handleGetRandomQuote(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "miscHandler.quote")
	defer span.End()

	handler.writeQuote(w, handler.quotesManager.RandomQuote())
}

func (handler *Handler) handleGetRandomQuoteByGenre(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "miscHandler.quoteByGenre")
	defer span.End()

	vars := mux.Vars(r)
	q, ok := handler.quotesManager.RandomQuoteByGenre(vars["genre"])
	if !ok {
		http.Error(w, "genre not found", http.StatusNotFound)
		return
	}

	handler.writeQuote(w, q)
}

func (handler *Handler) writeQuote(w http.ResponseWriter, q *Quote) {
	qBytes, err := json.Marshal(q)
	if err != nil {
		http.Error(w, "", http.StatusInternalServerError)
		log.Errorf("marshal quote error: %s", err)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, qBytes)
}

func (handler *Handler) handleGetVersionInfo(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, handler.versionInfo)
}
