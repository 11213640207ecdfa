package domain

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// ReservationStatus represents the lifecycle state of a reservation
type ReservationStatus string

const (
	StatusConfirmed ReservationStatus = "confirmed"
	StatusCanceled  ReservationStatus = "canceled"
)

// Reservation represents a single-room booking for a continuous time range
// within one day. ID = 0 means the reservation has not been persisted yet.
type Reservation struct {
	ID        int64
	RoomID    int64
	UserID    int64
	Date      time.Time        // дата бронирования (без времени)
	StartTime types.TimeString // включительно
	EndTime   types.TimeString // исключительно: интервал [StartTime, EndTime)
	Title     string
	Status    ReservationStatus

	// Denormalized data for history
	UserName *string

	CanceledAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the reservation participates in conflict checks
func (r *Reservation) IsActive() bool {
	return r.Status == StatusConfirmed
}

// IsCanceled returns true if the reservation has been canceled
// Canceled is a terminal state
func (r *Reservation) IsCanceled() bool {
	return r.Status == StatusCanceled
}

// CanBeUpdated returns true if the reservation range can still be changed
func (r *Reservation) CanBeUpdated() bool {
	return r.Status == StatusConfirmed
}

// IsOwnedBy returns true if userID is the owner of the reservation
// Only the owner may update or cancel it
func (r *Reservation) IsOwnedBy(userID int64) bool {
	return r.UserID == userID
}

// UserReservationsFilter фильтр для получения бронирований пользователя
type UserReservationsFilter struct {
	UserID   int64              // Обязательный параметр
	Status   *ReservationStatus // Фильтр по статусу (опционально)
	FromDate *time.Time         // Начало периода (опционально)
	ToDate   *time.Time         // Конец периода (опционально)
}
