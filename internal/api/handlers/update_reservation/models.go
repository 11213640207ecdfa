package update_reservation

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	updateReservation "github.com/m04kA/SMC-ReservationService/internal/usecase/update_reservation"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// UpdateReservationRequest HTTP request model
type UpdateReservationRequest struct {
	Date      string  `json:"date"`      // "2025-10-15"
	StartTime string  `json:"startTime"` // "10:00"
	EndTime   string  `json:"endTime"`   // "12:00"
	Title     *string `json:"title,omitempty"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID        int64   `json:"id"`
	RoomID    int64   `json:"roomId"`
	UserID    int64   `json:"userId"`
	Date      string  `json:"date"`
	StartTime string  `json:"startTime"`
	EndTime   string  `json:"endTime"`
	Title     string  `json:"title"`
	Status    string  `json:"status"`
	UserName  *string `json:"userName,omitempty"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
}

// ConflictResponse ответ при пересечении с существующим бронированием
type ConflictResponse struct {
	Error                 string `json:"error"`
	ExistingReservationID int64  `json:"existingReservationId,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateReservationRequest) ToUseCaseRequest(reservationID, userID int64) (*updateReservation.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, err
	}

	return &updateReservation.Request{
		ReservationID: reservationID,
		UserID:        userID,
		Date:          date,
		StartTime:     startTime,
		EndTime:       endTime,
		Title:         r.Title,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:        resp.ID,
		RoomID:    resp.RoomID,
		UserID:    resp.UserID,
		Date:      resp.Date.Format(domain.DateFormat),
		StartTime: resp.StartTime.String(),
		EndTime:   resp.EndTime.String(),
		Title:     resp.Title,
		Status:    resp.Status,
		UserName:  resp.UserName,
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt: resp.UpdatedAt.Format(time.RFC3339),
	}
}
