package update_reservation

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// Request модель запроса на перенос бронирования
type Request struct {
	ReservationID int64            // ID бронирования
	UserID        int64            // ID запрашивающего (должен быть владельцем)
	Date          time.Time        // Новая дата
	StartTime     types.TimeString // Новое время начала, включительно
	EndTime       types.TimeString // Новое время конца, исключительно
	Title         *string          // Новый заголовок (nil - оставить прежний)
}

// Response модель ответа с обновленным бронированием
type Response struct {
	ID        int64
	RoomID    int64
	UserID    int64
	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString
	Title     string
	Status    string
	UserName  *string
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
