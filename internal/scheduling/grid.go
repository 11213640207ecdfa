package scheduling

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// BuildGrid строит почасовую сетку занятости комнаты на дату
// из её подтвержденных бронирований
//
// Ячейка k покрывает [k:00, (k+1):00). Ячейка занята, если хотя бы одно
// активное бронирование пересекает этот час; бронирование через границу
// часа занимает обе соседние ячейки. Свободная ячейка доступна для выбора,
// только если она не в прошлом (дата сегодня и час не раньше текущего,
// либо будущая дата).
func BuildGrid(roomID int64, date time.Time, reservations []*domain.Reservation, now time.Time) domain.AvailabilityGrid {
	grid := domain.AvailabilityGrid{
		RoomID: roomID,
		Date:   date,
	}

	past := isDateInPast(date, now)
	today := isSameDay(date, now)

	for hour := 0; hour < domain.HoursPerDay; hour++ {
		hourStart := types.TimeString(fmt.Sprintf("%02d:00", hour))
		// Для последнего часа верхняя граница - "24:00"
		hourEnd := types.TimeString(fmt.Sprintf("%02d:00", hour+1))

		cell := domain.AvailabilityCell{Hour: hour}

		if occupant := FindConflict(hourStart, hourEnd, reservations, 0); occupant != nil {
			cell.Occupied = true
			cell.ReservationID = &occupant.ID
			cell.Title = &occupant.Title
		}

		// Прошедшие часы нельзя выбрать для нового бронирования
		switch {
		case past:
			cell.Selectable = false
		case today:
			cell.Selectable = !cell.Occupied && hour >= now.Hour()
		default:
			cell.Selectable = !cell.Occupied
		}

		grid.Cells[hour] = cell
	}

	// Индикатор текущего времени вычисляется только для сегодняшней даты
	if today {
		progress := DayProgress(now)
		grid.DayProgress = &progress
	}

	return grid
}

// DayProgress возвращает долю прошедшей части суток: minutesSinceMidnight/1440
// Чистая функция от now, используется для позиционирования live-индикатора
func DayProgress(now time.Time) float64 {
	return float64(now.Hour()*60+now.Minute()) / float64(domain.MinutesPerDay)
}
