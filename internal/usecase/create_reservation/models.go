package create_reservation

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID    int64            // ID пользователя (владелец бронирования)
	RoomID    int64            // ID комнаты
	Date      time.Time        // Дата бронирования (без времени)
	StartTime types.TimeString // Время начала, включительно
	EndTime   types.TimeString // Время конца, исключительно
	Title     string           // Назначение брони
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID        int64
	RoomID    int64
	UserID    int64
	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString
	Title     string
	Status    string

	// Денормализованные данные
	UserName *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// fromDomain конвертирует domain модель в response
func fromDomain(r *domain.Reservation) *Response {
	return &Response{
		ID:        r.ID,
		RoomID:    r.RoomID,
		UserID:    r.UserID,
		Date:      r.Date,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		Title:     r.Title,
		Status:    string(r.Status),
		UserName:  r.UserName,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
