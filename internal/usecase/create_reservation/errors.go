package create_reservation

import "errors"

// Ошибки валидации интервала (ErrInvalidRange, ErrPastStart, ErrConflict)
// приходят из пакета scheduling и пробрасываются без переупаковки:
// единые правила - единые ошибки для всех точек входа
var (
	// ErrRoomNotFound возвращается, когда комната не найдена
	ErrRoomNotFound = errors.New("create_reservation: room not found")

	// ErrEmployeeNotFound возвращается, когда пользователь отсутствует в справочнике
	ErrEmployeeNotFound = errors.New("create_reservation: employee not found")

	// ErrSlotTaken возвращается, когда хранилище отклонило прошедший локальную
	// проверку интервал: слот успел занять конкурентный клиент
	ErrSlotTaken = errors.New("create_reservation: slot taken by concurrent reservation")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrStorage возвращается при ошибках хранилища
	ErrStorage = errors.New("create_reservation: storage error")
)
