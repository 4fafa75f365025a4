package list_rules

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-VenueService/internal/api/handlers"
	"github.com/m04kA/SMC-VenueService/internal/service/rules"
)

const (
	msgInvalidKind = "некорректный тип правила, ожидается tax или fee"
)

type Handler struct {
	service RuleService
	logger  Logger
}

func NewHandler(service RuleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/rules
// Эндпоинт публичный - каталог правил нужен форме расчета стоимости до авторизации
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var kind *string
	if raw := r.URL.Query().Get("type"); raw != "" {
		kind = &raw
	}

	result, err := h.service.List(r.Context(), kind)
	if err != nil {
		switch {
		case errors.Is(err, rules.ErrInvalidInput):
			h.logger.Warn("GET /rules - Invalid rule kind: %v", err)
			handlers.RespondBadRequest(w, msgInvalidKind)

		default:
			h.logger.Error("GET /rules - Failed to list rules: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /rules - Retrieved %d rules", len(result.Rules))
	handlers.RespondJSON(w, http.StatusOK, result)
}
