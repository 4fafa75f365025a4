package detect_conflicts

import (
	"net/http"

	"github.com/m04kA/SMC-VenueService/internal/api/handlers"
	"github.com/m04kA/SMC-VenueService/internal/api/middleware"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
)

type Handler struct {
	useCase DetectConflictsUseCase
	logger  Logger
}

func NewHandler(useCase DetectConflictsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/conflicts
// Пустой набор залов и перевернутое окно не являются ошибкой:
// use case вернет пустой результат, проверять нечего
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req DetectConflictsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/conflicts - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings/conflicts - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(userID))
	if err != nil {
		h.logger.Error("POST /bookings/conflicts - Failed to detect conflicts: user_id=%d, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings/conflicts - Detected %d conflicting spaces for user_id=%d, spaces=%v",
		len(response.Conflicts), userID, req.SpaceIDs)
	handlers.RespondJSON(w, http.StatusOK, response)
}
