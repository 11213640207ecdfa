package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid reservation status")
)

// Request модели

// GetUserReservationsRequest запрос на получение бронирований пользователя
type GetUserReservationsRequest struct {
	UserID   int64      `json:"userId"`
	Status   *string    `json:"status,omitempty"`   // Фильтр по статусу (опционально)
	FromDate *time.Time `json:"fromDate,omitempty"` // Начало периода (опционально)
	ToDate   *time.Time `json:"toDate,omitempty"`   // Конец периода (опционально)
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetUserReservationsRequest) ToDomainFilter() (domain.UserReservationsFilter, error) {
	filter := domain.UserReservationsFilter{
		UserID:   r.UserID,
		FromDate: r.FromDate,
		ToDate:   r.ToDate,
	}

	if r.Status != nil {
		status, err := ToDomainReservationStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// GetRoomReservationsRequest запрос на получение бронирований комнаты на дату
type GetRoomReservationsRequest struct {
	RoomID          int64     `json:"roomId"`
	Date            time.Time `json:"date"`
	IncludeCanceled bool      `json:"includeCanceled,omitempty"`
}

// CancelReservationRequest запрос на отмену бронирования
type CancelReservationRequest struct {
	UserID int64 `json:"userId"`
}

// Response модели

// ReservationResponse ответ с данными бронирования
type ReservationResponse struct {
	ID        int64  `json:"id"`
	RoomID    int64  `json:"roomId"`
	UserID    int64  `json:"userId"`
	Date      string `json:"date"`      // "2025-10-15"
	StartTime string `json:"startTime"` // "10:00"
	EndTime   string `json:"endTime"`   // "12:00"
	Title     string `json:"title"`
	Status    string `json:"status"`

	// Денормализованные данные
	UserName *string `json:"userName,omitempty"`

	CanceledAt *string `json:"canceledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ReservationListResponse ответ со списком бронирований
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

// Методы конвертации

// FromDomainReservation конвертирует domain модель в DTO
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	if r == nil {
		return nil
	}

	resp := &ReservationResponse{
		ID:        r.ID,
		RoomID:    r.RoomID,
		UserID:    r.UserID,
		Date:      r.Date.Format(domain.DateFormat),
		StartTime: r.StartTime.String(),
		EndTime:   r.EndTime.String(),
		Title:     r.Title,
		Status:    string(r.Status),
		UserName:  r.UserName,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}

	if r.CanceledAt != nil {
		canceledAt := r.CanceledAt.Format(time.RFC3339)
		resp.CanceledAt = &canceledAt
	}

	return resp
}

// FromDomainReservationList конвертирует список domain моделей в DTO
func FromDomainReservationList(reservations []*domain.Reservation) *ReservationListResponse {
	result := make([]ReservationResponse, 0, len(reservations))
	for _, r := range reservations {
		if resp := FromDomainReservation(r); resp != nil {
			result = append(result, *resp)
		}
	}

	return &ReservationListResponse{Reservations: result}
}

// ToDomainReservationStatus конвертирует строку в domain статус
func ToDomainReservationStatus(status string) (domain.ReservationStatus, error) {
	switch domain.ReservationStatus(status) {
	case domain.StatusConfirmed:
		return domain.StatusConfirmed, nil
	case domain.StatusCanceled:
		return domain.StatusCanceled, nil
	default:
		return "", ErrInvalidStatus
	}
}
