package get_availability

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// Request модель запроса сетки занятости
type Request struct {
	RoomID int64     // ID комнаты
	Date   time.Time // Дата (без времени)
}

// Response модель ответа с почасовой сеткой занятости комнаты
type Response struct {
	RoomID   int64
	RoomName string
	RoomType string
	Date     time.Time
	Cells    []Cell

	// DayProgress доля прошедшей части суток (minutesSinceMidnight/1440),
	// заполняется только для сегодняшней даты
	DayProgress *float64
}

// Cell почасовая ячейка сетки: ячейка k покрывает [k:00, (k+1):00)
type Cell struct {
	Hour          int
	Occupied      bool
	ReservationID *int64
	Title         *string
	Selectable    bool
}

// fromDomainGrid конвертирует domain сетку в response
func fromDomainGrid(room *domain.Room, grid domain.AvailabilityGrid) *Response {
	cells := make([]Cell, len(grid.Cells))
	for i, c := range grid.Cells {
		cells[i] = Cell{
			Hour:          c.Hour,
			Occupied:      c.Occupied,
			ReservationID: c.ReservationID,
			Title:         c.Title,
			Selectable:    c.Selectable,
		}
	}

	return &Response{
		RoomID:      room.ID,
		RoomName:    room.Name,
		RoomType:    string(room.Type),
		Date:        grid.Date,
		Cells:       cells,
		DayProgress: grid.DayProgress,
	}
}
