package update_reservation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/api/middleware"
	"github.com/m04kA/SMC-ReservationService/internal/scheduling"
	updateReservation "github.com/m04kA/SMC-ReservationService/internal/usecase/update_reservation"
)

const (
	msgInvalidReservationID = "некорректный ID бронирования"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidDateOrTime    = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgNotFound             = "бронирование не найдено"
	msgForbidden            = "доступ запрещен"
	msgAlreadyCanceled      = "бронирование уже отменено"
	msgInvalidRange         = "время начала должно быть строго раньше времени окончания"
	msgPastStart            = "нельзя переносить бронирование в прошлое"
	msgSlotConflict         = "интервал пересекается с существующим бронированием"
	msgInvalidInput         = "некорректные входные данные"
)

type Handler struct {
	useCase UpdateReservationUseCase
	logger  Logger
}

func NewHandler(useCase UpdateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/reservations/{reservationId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем reservationId из URL
	vars := mux.Vars(r)
	reservationIDStr := vars["reservationId"]

	reservationID, err := strconv.ParseInt(reservationIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PUT /reservations/{id} - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /reservations/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req UpdateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /reservations/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest(reservationID, userID)
	if err != nil {
		h.logger.Warn("PUT /reservations/{id} - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var conflictErr *scheduling.ConflictError

		switch {
		case errors.As(err, &conflictErr):
			h.logger.Warn("PUT /reservations/{id} - Conflict with reservation id=%d: reservation_id=%d, user_id=%d",
				conflictErr.ExistingID, reservationID, userID)
			handlers.RespondJSON(w, http.StatusConflict, ConflictResponse{
				Error:                 msgSlotConflict,
				ExistingReservationID: conflictErr.ExistingID,
			})

		case errors.Is(err, updateReservation.ErrSlotTaken):
			h.logger.Warn("PUT /reservations/{id} - Slot taken: reservation_id=%d, user_id=%d", reservationID, userID)
			handlers.RespondError(w, http.StatusConflict, msgSlotConflict)

		case errors.Is(err, updateReservation.ErrReservationNotFound):
			h.logger.Warn("PUT /reservations/{id} - Reservation not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, updateReservation.ErrNotOwner):
			h.logger.Warn("PUT /reservations/{id} - Access denied: reservation_id=%d, user_id=%d", reservationID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, updateReservation.ErrAlreadyCanceled):
			h.logger.Warn("PUT /reservations/{id} - Reservation already canceled: reservation_id=%d", reservationID)
			handlers.RespondError(w, http.StatusConflict, msgAlreadyCanceled)

		case errors.Is(err, scheduling.ErrInvalidRange):
			h.logger.Warn("PUT /reservations/{id} - Invalid time range: reservation_id=%d, user_id=%d", reservationID, userID)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, scheduling.ErrPastStart):
			h.logger.Warn("PUT /reservations/{id} - Start time in the past: reservation_id=%d, user_id=%d", reservationID, userID)
			handlers.RespondBadRequest(w, msgPastStart)

		case errors.Is(err, updateReservation.ErrInvalidInput):
			h.logger.Warn("PUT /reservations/{id} - Invalid input: reservation_id=%d, error=%v", reservationID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /reservations/{id} - Failed to update reservation: reservation_id=%d, user_id=%d, error=%v",
				reservationID, userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("PUT /reservations/{id} - Reservation updated successfully: reservation_id=%d, user_id=%d",
		reservationID, userID)
	handlers.RespondJSON(w, http.StatusOK, response)
}
