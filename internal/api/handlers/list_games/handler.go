package list_games

import (
	"net/http"

	"github.com/qnovavr/QNOVA-BookingService/internal/api/handlers"
	"github.com/qnovavr/QNOVA-BookingService/pkg/ptr"
)

type Handler struct {
	service GamesService
	logger  Logger
}

func NewHandler(service GamesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/games
// Query params: platform (optional, case-insensitive)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var platform *string
	if p := r.URL.Query().Get("platform"); p != "" {
		platform = ptr.Ptr(p)
	}

	result, err := h.service.List(r.Context(), platform)
	if err != nil {
		h.logger.Error("GET /games - Failed to list games: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
