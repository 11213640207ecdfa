package get_availability

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	getAvailability "github.com/m04kA/SMC-ReservationService/internal/usecase/get_availability"
)

// AvailabilityResponse HTTP response model с почасовой сеткой занятости
type AvailabilityResponse struct {
	RoomID   int64  `json:"roomId"`
	RoomName string `json:"roomName"`
	RoomType string `json:"roomType"`
	Date     string `json:"date"`

	Cells []CellResponse `json:"cells"`

	// DayProgress доля прошедшей части суток, только для сегодняшней даты
	DayProgress *float64 `json:"dayProgress,omitempty"`
}

// CellResponse почасовая ячейка сетки
type CellResponse struct {
	Hour          int     `json:"hour"`
	Occupied      bool    `json:"occupied"`
	ReservationID *int64  `json:"reservationId,omitempty"`
	Title         *string `json:"title,omitempty"`
	Selectable    bool    `json:"selectable"`
}

// ToUseCaseRequest конвертирует параметры запроса в модель use case
func ToUseCaseRequest(roomID int64, dateStr string) (*getAvailability.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailability.Request{
		RoomID: roomID,
		Date:   date,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	cells := make([]CellResponse, len(resp.Cells))
	for i, c := range resp.Cells {
		cells[i] = CellResponse{
			Hour:          c.Hour,
			Occupied:      c.Occupied,
			ReservationID: c.ReservationID,
			Title:         c.Title,
			Selectable:    c.Selectable,
		}
	}

	return &AvailabilityResponse{
		RoomID:      resp.RoomID,
		RoomName:    resp.RoomName,
		RoomType:    resp.RoomType,
		Date:        resp.Date.Format(domain.DateFormat),
		Cells:       cells,
		DayProgress: resp.DayProgress,
	}
}
