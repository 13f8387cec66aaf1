package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hritvik715/LanguageKeyboardCentral/internal/service"
	"github.com/hritvik715/LanguageKeyboardCentral/pkg/httputil"
)

// LanguageHandler handles HTTP requests for language catalog endpoints.
type LanguageHandler struct {
	service *service.CatalogService
	logger  *slog.Logger
}

// NewLanguageHandler creates a new language HTTP handler.
func NewLanguageHandler(svc *service.CatalogService, logger *slog.Logger) *LanguageHandler {
	return &LanguageHandler{
		service: svc,
		logger:  logger,
	}
}

// List handles GET /api/languages
func (h *LanguageHandler) List(w http.ResponseWriter, r *http.Request) {
	languages, err := h.service.ListLanguages(r.Context())
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, languages)
}

// GetByCode handles GET /api/languages/{code}
func (h *LanguageHandler) GetByCode(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	language, err := h.service.GetLanguageByCode(r.Context(), code)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, language)
}
