package list_rooms

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/service/rooms"
	"github.com/m04kA/SMC-ReservationService/internal/service/rooms/models"
)

const (
	msgInvalidRoomType = "некорректный тип комнаты"
)

type Handler struct {
	service RoomService
	logger  Logger
}

func NewHandler(service RoomService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms
// Query params: type (опционально, meeting_room или practice_room)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем type из query параметров (опционально)
	var typePtr *string
	if roomType := r.URL.Query().Get("type"); roomType != "" {
		typePtr = &roomType
	}

	serviceReq := &models.ListRoomsRequest{Type: typePtr}

	// Получаем список комнат
	result, err := h.service.List(r.Context(), serviceReq)
	if err != nil {
		if errors.Is(err, rooms.ErrInvalidInput) {
			h.logger.Warn("GET /rooms - Invalid room type: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRoomType)
			return
		}
		h.logger.Error("GET /rooms - Failed to list rooms: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /rooms - Rooms retrieved successfully: count=%d", len(result.Rooms))
	handlers.RespondJSON(w, http.StatusOK, result)
}
