package scheduling

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// TimeRange кандидатский интервал [Start, End) внутри одного дня
// Используется только для валидации и проверки конфликтов, не персистится
type TimeRange struct {
	Date  time.Time
	Start types.TimeString
	End   types.TimeString
}

// ValidateRange проверяет, что start строго раньше end в пределах одного дня
// Конец, численно меньший или равный началу, всегда ошибка: переноса
// на следующие сутки нет
func ValidateRange(start, end types.TimeString) error {
	if err := start.Validate(); err != nil {
		return ErrInvalidRange
	}
	if err := end.Validate(); err != nil {
		return ErrInvalidRange
	}
	if !start.IsBefore(end) {
		return ErrInvalidRange
	}
	return nil
}

// ValidateNotPast проверяет, что интервал не начинается в прошлом:
// дата раньше сегодняшней отклоняется целиком; для сегодняшней даты
// отклоняется начало раньше текущего wall-clock времени
func ValidateNotPast(date time.Time, start types.TimeString, now time.Time) error {
	if isDateInPast(date, now) {
		return ErrPastStart
	}

	if !isSameDay(date, now) {
		return nil
	}

	if start.IsBefore(types.NewTimeString(now)) {
		return ErrPastStart
	}

	return nil
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
