package get_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	roomRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/room"
	"github.com/m04kA/SMC-ReservationService/internal/scheduling"
)

// UseCase use case для получения почасовой сетки занятости комнаты
type UseCase struct {
	reservationRepo ReservationRepository
	roomRepo        RoomRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	roomRepo RoomRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		roomRepo:        roomRepo,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case построения сетки занятости
// Операция read-only: сетка пересчитывается на каждый запрос и не хранится
// Прошедшие даты допустимы для просмотра, их ячейки недоступны для выбора
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: room=%d, date=%s", req.RoomID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование комнаты
	room, err := uc.roomRepo.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			uc.logger.Warn("GetAvailability: room id=%d not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("GetAvailability: failed to get room id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrStorage, err)
	}

	// 3. Получаем активные бронирования комнаты на дату
	reservations, err := uc.reservationRepo.GetByRoomAndDate(ctx, req.RoomID, req.Date, true)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrStorage, err)
	}

	// 4. Строим сетку
	grid := scheduling.BuildGrid(req.RoomID, req.Date, reservations, uc.timeProvider.Now())

	uc.logger.Info("GetAvailability: room=%d, date=%s, occupied=%d/24",
		req.RoomID, req.Date.Format(domain.DateFormat), grid.OccupiedHours())

	return fromDomainGrid(room, grid), nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.RoomID <= 0 {
		return fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	return nil
}
