package scheduling

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRange возвращается, когда начало интервала не строго раньше конца
	ErrInvalidRange = errors.New("scheduling: start time must be strictly before end time")

	// ErrPastStart возвращается, когда дата в прошлом или время начала уже прошло сегодня
	ErrPastStart = errors.New("scheduling: start is in the past")

	// ErrConflict возвращается, когда интервал пересекается с существующим бронированием
	ErrConflict = errors.New("scheduling: time range conflicts with an existing reservation")
)

// ConflictError ошибка конфликта с указанием существующего бронирования
// errors.Is(err, ErrConflict) возвращает true
type ConflictError struct {
	ExistingID int64
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%v: reservation id=%d", ErrConflict, e.ExistingID)
}

// Is позволяет сопоставлять ConflictError с сентинелом ErrConflict
func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}

// NewConflictError создает ошибку конфликта с существующим бронированием
func NewConflictError(existingID int64) error {
	return &ConflictError{ExistingID: existingID}
}
