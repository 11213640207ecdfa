package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

var (
	// ErrInvalidRoomType возвращается при некорректном типе комнаты
	ErrInvalidRoomType = errors.New("invalid room type")
)

// ListRoomsRequest запрос на получение списка комнат
type ListRoomsRequest struct {
	Type *string `json:"type,omitempty"` // Фильтр по типу комнаты (опционально)
}

// ToDomainRoomType конвертирует строку в domain тип комнаты
func ToDomainRoomType(t string) (domain.RoomType, error) {
	roomType := domain.RoomType(t)
	if !domain.IsValidRoomType(roomType) {
		return "", ErrInvalidRoomType
	}
	return roomType, nil
}

// RoomResponse ответ с данными комнаты
type RoomResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Capacity int    `json:"capacity"`
	Floor    int    `json:"floor"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// RoomListResponse ответ со списком комнат
type RoomListResponse struct {
	Rooms []RoomResponse `json:"rooms"`
}

// FromDomainRoom конвертирует domain модель в DTO
func FromDomainRoom(r *domain.Room) *RoomResponse {
	if r == nil {
		return nil
	}

	return &RoomResponse{
		ID:        r.ID,
		Name:      r.Name,
		Type:      string(r.Type),
		Capacity:  r.Capacity,
		Floor:     r.Floor,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// FromDomainRoomList конвертирует список domain моделей в DTO
func FromDomainRoomList(rooms []*domain.Room) *RoomListResponse {
	result := make([]RoomResponse, 0, len(rooms))
	for _, r := range rooms {
		if resp := FromDomainRoom(r); resp != nil {
			result = append(result, *resp)
		}
	}

	return &RoomListResponse{Rooms: result}
}
