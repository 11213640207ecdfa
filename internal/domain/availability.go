package domain

import "time"

// AvailabilityCell represents one hour-wide slot of a room's day:
// slot k covers [k:00, (k+1):00). Recomputed per query, never persisted.
type AvailabilityCell struct {
	Hour          int // 0..23
	Occupied      bool
	ReservationID *int64  // первое бронирование, занимающее этот час
	Title         *string // заголовок занимающего бронирования
	Selectable    bool    // можно ли выбрать ячейку для нового бронирования
}

// AvailabilityGrid represents the per-room hourly occupancy view for a date
type AvailabilityGrid struct {
	RoomID int64
	Date   time.Time
	Cells  [24]AvailabilityCell

	// DayProgress is minutesSinceMidnight/1440 for the requested date,
	// set only when the date is today; nil otherwise.
	DayProgress *float64
}

// OccupiedHours returns the number of occupied cells in the grid
func (g *AvailabilityGrid) OccupiedHours() int {
	count := 0
	for _, cell := range g.Cells {
		if cell.Occupied {
			count++
		}
	}
	return count
}
