package i18n

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/2beens/rfatracker/internal/instrumentation"
	"github.com/2beens/rfatracker/internal/settings"
	"github.com/2beens/rfatracker/internal/telemetry/tracing"
	"github.com/2beens/rfatracker/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=i18n_test

type languageStore interface {
	Language() settings.Language
	Caches() Caches
	SwitchLanguage(ctx context.Context, language settings.Language) error
}

type StringsResponse struct {
	Language settings.Language `json:"language"`
	Caches
}

type SwitchLanguageRequest struct {
	Language string `json:"language"`
}

type Handler struct {
	store languageStore
	instr *instrumentation.Instrumentation
}

func NewHandler(store languageStore, instr *instrumentation.Instrumentation) *Handler {
	return &Handler{
		store: store,
		instr: instr,
	}
}

// HandleGetStrings returns all localized strings for the active language.
func (handler *Handler) HandleGetStrings(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.i18n.strings")
	defer span.End()

	respJson, err := json.Marshal(StringsResponse{
		Language: handler.store.Language(),
		Caches:   handler.store.Caches(),
	})
	if err != nil {
		log.Errorf("failed to marshal strings: %s", err)
		http.Error(w, "failed to get strings", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

func (handler *Handler) HandleGetLanguages(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.i18n.languages")
	defer span.End()

	respJson, err := json.Marshal(settings.AllLanguages())
	if err != nil {
		log.Errorf("failed to marshal languages: %s", err)
		http.Error(w, "failed to get languages", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

func (handler *Handler) HandleSwitchLanguage(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.i18n.switchLanguage")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req SwitchLanguageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("switch language, unmarshal json params: %s", err)
		http.Error(w, "switch language failed", http.StatusBadRequest)
		return
	}

	language, err := settings.ParseLanguage(req.Language)
	if err != nil {
		http.Error(w, "unknown language", http.StatusBadRequest)
		return
	}

	if err := handler.store.SwitchLanguage(ctx, language); err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		log.Errorf("failed to switch language to %s: %s", language, err)
		http.Error(w, "switch language failed", http.StatusInternalServerError)
		return
	}

	handler.instr.CounterLanguageSwitches.Inc()
	pkg.WriteResponse(w, pkg.ContentType.Text, "language set: "+language.String(), http.StatusOK)
}
