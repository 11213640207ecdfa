package staffservice

import "errors"

var (
	// ErrEmployeeNotFound возвращается, когда сотрудник не найден в справочнике
	ErrEmployeeNotFound = errors.New("staffservice: employee not found")

	// ErrInvalidResponse возвращается при некорректном ответе справочника
	ErrInvalidResponse = errors.New("staffservice: invalid response")

	// ErrServiceDegraded возвращается, когда справочник недоступен
	// и сервис продолжает работу без денормализованных данных
	ErrServiceDegraded = errors.New("staffservice: service unavailable, degraded mode")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("staffservice: internal error")
)
