package create_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/api/middleware"
	"github.com/m04kA/SMC-ReservationService/internal/scheduling"
	createReservation "github.com/m04kA/SMC-ReservationService/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgRoomNotFound       = "комната не найдена"
	msgEmployeeNotFound   = "сотрудник не найден"
	msgInvalidRange       = "время начала должно быть строго раньше времени окончания"
	msgPastStart          = "нельзя бронировать время в прошлом"
	msgSlotConflict       = "интервал пересекается с существующим бронированием"
	msgInvalidInput       = "некорректные входные данные"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /reservations - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var conflictErr *scheduling.ConflictError

		switch {
		case errors.As(err, &conflictErr):
			h.logger.Warn("POST /reservations - Conflict with reservation id=%d: user_id=%d, room_id=%d",
				conflictErr.ExistingID, userID, req.RoomID)
			handlers.RespondJSON(w, http.StatusConflict, ConflictResponse{
				Error:                 msgSlotConflict,
				ExistingReservationID: conflictErr.ExistingID,
			})

		case errors.Is(err, createReservation.ErrSlotTaken):
			h.logger.Warn("POST /reservations - Slot taken: user_id=%d, room_id=%d", userID, req.RoomID)
			handlers.RespondError(w, http.StatusConflict, msgSlotConflict)

		case errors.Is(err, createReservation.ErrRoomNotFound):
			h.logger.Warn("POST /reservations - Room not found: room_id=%d", req.RoomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, createReservation.ErrEmployeeNotFound):
			h.logger.Warn("POST /reservations - Employee not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgEmployeeNotFound)

		case errors.Is(err, scheduling.ErrInvalidRange):
			h.logger.Warn("POST /reservations - Invalid time range: user_id=%d, room_id=%d", userID, req.RoomID)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, scheduling.ErrPastStart):
			h.logger.Warn("POST /reservations - Start time in the past: user_id=%d, room_id=%d", userID, req.RoomID)
			handlers.RespondBadRequest(w, msgPastStart)

		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: user_id=%d, room_id=%d, error=%v", userID, req.RoomID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: user_id=%d, room_id=%d, error=%v",
				userID, req.RoomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /reservations - Reservation created successfully: reservation_id=%d, user_id=%d, room_id=%d",
		result.ID, userID, req.RoomID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
