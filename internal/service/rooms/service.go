package rooms

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	roomRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/room"
	"github.com/m04kA/SMC-ReservationService/internal/service/rooms/models"
)

// Service сервис для работы со справочником комнат
type Service struct {
	roomRepo RoomRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса комнат
func NewService(roomRepo RoomRepository, logger Logger) *Service {
	return &Service{
		roomRepo: roomRepo,
		logger:   logger,
	}
}

// GetByID получает комнату по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.RoomResponse, error) {
	s.logger.Info("GetByID: fetching room id=%d", id)

	room, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("GetByID: room id=%d not found", id)
			return nil, ErrRoomNotFound
		}
		s.logger.Error("GetByID: repository error for room id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainRoom(room), nil
}

// List получает список комнат, опционально фильтруя по типу
// Комнаты отсортированы по этажу и названию
func (s *Service) List(ctx context.Context, req *models.ListRoomsRequest) (*models.RoomListResponse, error) {
	s.logger.Info("List: fetching rooms, type=%v", req.Type)

	var roomType *domain.RoomType
	if req.Type != nil {
		t, err := models.ToDomainRoomType(*req.Type)
		if err != nil {
			s.logger.Warn("List: invalid room type=%s", *req.Type)
			return nil, fmt.Errorf("%w: invalid room type", ErrInvalidInput)
		}
		roomType = &t
	}

	rooms, err := s.roomRepo.List(ctx, roomType)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d rooms", len(rooms))
	return models.FromDomainRoomList(rooms), nil
}
