package scheduling

import (
	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// FindConflict ищет первое подтвержденное бронирование, пересекающееся
// с кандидатским интервалом [start, end). Возвращает nil, если конфликта нет.
//
// existing должен содержать бронирования одной комнаты на одну дату.
// excludeID исключает из проверки собственное бронирование кандидата
// (при переносе), 0 — ничего не исключать.
//
// Интервалы полуоткрытые: бронирование, начинающееся ровно там, где
// заканчивается другое, конфликтом НЕ считается.
//
// Примеры:
// - кандидат 10:30-11:30, существующее 10:00-11:00 → конфликт (10:30-11:00)
// - кандидат 11:00-12:00, существующее 10:00-11:00 → нет конфликта (граничат)
func FindConflict(start, end types.TimeString, existing []*domain.Reservation, excludeID int64) *domain.Reservation {
	for _, r := range existing {
		// Отмененные бронирования не занимают время
		if !r.IsActive() {
			continue
		}

		// При переносе собственное бронирование не конфликтует само с собой
		if excludeID != 0 && r.ID == excludeID {
			continue
		}

		// Проверяем реальное пересечение: строгие неравенства,
		// граничные случаи пересечением не считаются
		if r.StartTime.IsBefore(end) && r.EndTime.IsAfter(start) {
			return r
		}
	}

	return nil
}

// CheckConflict как FindConflict, но возвращает типизированную ошибку
// с ID существующего бронирования
func CheckConflict(start, end types.TimeString, existing []*domain.Reservation, excludeID int64) error {
	if conflict := FindConflict(start, end, existing, excludeID); conflict != nil {
		return NewConflictError(conflict.ID)
	}
	return nil
}
