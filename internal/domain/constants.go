package domain

// Business validation constants
const (
	MaxTitleLength = 200

	HoursPerDay   = 24
	MinutesPerDay = 24 * 60
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses список статусов, участвующих в проверке конфликтов
var ActiveStatuses = []ReservationStatus{
	StatusConfirmed,
}

// InactiveStatuses список терминальных статусов
var InactiveStatuses = []ReservationStatus{
	StatusCanceled,
}
