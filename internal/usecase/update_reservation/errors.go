package update_reservation

import "errors"

// Ошибки валидации интервала приходят из пакета scheduling
// и пробрасываются без переупаковки
var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("update_reservation: reservation not found")

	// ErrNotOwner возвращается, когда запрашивающий не владелец бронирования
	ErrNotOwner = errors.New("update_reservation: requester is not the owner")

	// ErrAlreadyCanceled возвращается при попытке перенести отмененное бронирование
	ErrAlreadyCanceled = errors.New("update_reservation: reservation is canceled")

	// ErrSlotTaken возвращается, когда хранилище отклонило прошедший локальную
	// проверку интервал: слот успел занять конкурентный клиент
	ErrSlotTaken = errors.New("update_reservation: slot taken by concurrent reservation")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_reservation: invalid input data")

	// ErrStorage возвращается при ошибках хранилища
	ErrStorage = errors.New("update_reservation: storage error")
)
