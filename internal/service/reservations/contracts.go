package reservations

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	GetByRoomAndDate(ctx context.Context, roomID int64, date time.Time, onlyActive bool) ([]*domain.Reservation, error)
	GetByUserWithFilter(ctx context.Context, filter domain.UserReservationsFilter) ([]*domain.Reservation, error)
	Cancel(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
