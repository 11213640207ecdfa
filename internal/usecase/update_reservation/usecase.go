package update_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-ReservationService/internal/scheduling"
)

// UseCase use case для переноса бронирования
type UseCase struct {
	reservationRepo ReservationRepository
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case переноса бронирования
//
// Порядок проверок фиксированный: существование → владелец → корректность
// интервала → не в прошлом → конфликт. Собственное бронирование исключается
// из кандидатов на конфликт, статус при переносе не меняется
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateReservation: id=%d, user=%d, date=%s, range=%s-%s",
		req.ReservationID, req.UserID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	var result *domain.Reservation

	// 3. Выполняем проверки и запись в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Существование бронирования
		current, err := uc.reservationRepo.GetByID(txCtx, req.ReservationID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				uc.logger.Warn("UpdateReservation: reservation id=%d not found", req.ReservationID)
				return ErrReservationNotFound
			}
			uc.logger.Error("UpdateReservation: failed to get reservation id=%d: %v", req.ReservationID, err)
			return fmt.Errorf("%w: failed to get reservation: %v", ErrStorage, err)
		}

		// 3.2. Перенести бронирование может только владелец
		if !current.IsOwnedBy(req.UserID) {
			uc.logger.Warn("UpdateReservation: user=%d is not the owner of reservation id=%d",
				req.UserID, req.ReservationID)
			return ErrNotOwner
		}

		// 3.3. Отмененное бронирование перенести нельзя
		if !current.CanBeUpdated() {
			uc.logger.Warn("UpdateReservation: reservation id=%d is canceled", req.ReservationID)
			return ErrAlreadyCanceled
		}

		// 3.4. Корректность нового интервала
		if err := scheduling.ValidateRange(req.StartTime, req.EndTime); err != nil {
			uc.logger.Warn("UpdateReservation: range validation failed: %v", err)
			return err
		}

		// 3.5. Новый интервал не в прошлом
		if err := scheduling.ValidateNotPast(req.Date, req.StartTime, now); err != nil {
			uc.logger.Warn("UpdateReservation: not-past validation failed: %v", err)
			return err
		}

		// 3.6. Получаем активные бронирования комнаты на новую дату с блокировкой
		existing, err := uc.reservationRepo.GetByRoomAndDate(txCtx, current.RoomID, req.Date, true)
		if err != nil {
			uc.logger.Error("UpdateReservation: failed to get reservations: %v", err)
			return fmt.Errorf("%w: failed to get reservations: %v", ErrStorage, err)
		}

		// 3.7. Конфликт с чужими бронированиями; собственный прежний
		// интервал из проверки исключается
		if err := scheduling.CheckConflict(req.StartTime, req.EndTime, existing, current.ID); err != nil {
			uc.logger.Warn("UpdateReservation: conflict detected: %v", err)
			return err
		}

		// 3.8. Заменяем интервал
		title := current.Title
		if req.Title != nil {
			title = *req.Title
		}

		if err := uc.reservationRepo.UpdateRange(txCtx, current.ID, req.Date, req.StartTime, req.EndTime, title); err != nil {
			if errors.Is(err, reservationRepo.ErrSlotTaken) {
				uc.logger.Warn("UpdateReservation: slot taken by concurrent write, reservation id=%d", current.ID)
				return ErrSlotTaken
			}
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			uc.logger.Error("UpdateReservation: failed to update reservation id=%d: %v", current.ID, err)
			return fmt.Errorf("%w: failed to update reservation: %v", ErrStorage, err)
		}

		current.Date = req.Date
		current.StartTime = req.StartTime
		current.EndTime = req.EndTime
		current.Title = title
		current.UpdatedAt = now

		result = current
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateReservation: successfully updated reservation id=%d", result.ID)

	return fromDomain(result), nil
}
