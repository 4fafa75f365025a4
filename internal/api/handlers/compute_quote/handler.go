package compute_quote

import (
	"net/http"

	"github.com/m04kA/SMC-VenueService/internal/api/handlers"
	"github.com/m04kA/SMC-VenueService/internal/api/middleware"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
)

type Handler struct {
	useCase ComputeQuoteUseCase
	logger  Logger
}

func NewHandler(useCase ComputeQuoteUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/quotes
// Эндпоинт публичный: расчет стоимости не требует авторизации,
// userID используется только для логирования, если заголовок передан
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ComputeQuoteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /quotes - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	userID, _ := middleware.GetUserID(r.Context())

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(userID))
	if err != nil {
		h.logger.Error("POST /quotes - Failed to compute quote: user_id=%d, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /quotes - Quote computed successfully: user_id=%d, base=%s, total=%s",
		userID, response.BasePrice, response.Total)
	handlers.RespondJSON(w, http.StatusOK, response)
}
