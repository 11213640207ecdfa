package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/reservation"
	roomRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/room"
	"github.com/m04kA/SMC-ReservationService/internal/integrations/staffservice"
	"github.com/m04kA/SMC-ReservationService/internal/scheduling"
)

// UseCase use case для создания бронирования комнаты
type UseCase struct {
	reservationRepo ReservationRepository
	roomRepo        RoomRepository
	staffClient     StaffServiceClient
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	roomRepo RoomRepository,
	staffClient StaffServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		roomRepo:        roomRepo,
		staffClient:     staffClient,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования
//
// Порядок проверок фиксированный: существование комнаты → корректность
// интервала → не в прошлом → конфликт. Первая провалившаяся проверка
// возвращает типизированную ошибку, запись в хранилище не выполняется.
// Read-check-write выполняется в сериализуемой транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: user=%d, room=%d, date=%s, range=%s-%s",
		req.UserID, req.RoomID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Проверяем существование комнаты
	if _, err := uc.roomRepo.GetByID(ctx, req.RoomID); err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			uc.logger.Warn("CreateReservation: room id=%d not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("CreateReservation: failed to get room id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrStorage, err)
	}

	// 4. Получаем имя сотрудника для денормализации (graceful degradation)
	var userName *string
	employee, err := uc.staffClient.GetEmployeeWithGracefulDegradation(ctx, req.UserID)
	switch {
	case err == nil:
		userName = &employee.Name
	case errors.Is(err, staffservice.ErrEmployeeNotFound):
		uc.logger.Warn("CreateReservation: employee id=%d not found", req.UserID)
		return nil, ErrEmployeeNotFound
	case errors.Is(err, staffservice.ErrServiceDegraded):
		// Справочник недоступен - создаем бронь без имени
		uc.logger.Warn("CreateReservation: staff directory degraded, creating without user name")
	default:
		uc.logger.Error("CreateReservation: staff client error: %v", err)
		return nil, fmt.Errorf("%w: failed to get employee: %v", ErrStorage, err)
	}

	var result *domain.Reservation

	// 5. Выполняем проверки интервала и запись в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Корректность интервала: start строго раньше end, без переноса на завтра
		if err := scheduling.ValidateRange(req.StartTime, req.EndTime); err != nil {
			uc.logger.Warn("CreateReservation: range validation failed: %v", err)
			return err
		}

		// 5.2. Интервал не в прошлом
		if err := scheduling.ValidateNotPast(req.Date, req.StartTime, now); err != nil {
			uc.logger.Warn("CreateReservation: not-past validation failed: %v", err)
			return err
		}

		// 5.3. Получаем активные бронирования комнаты на дату с блокировкой (FOR UPDATE)
		existing, err := uc.reservationRepo.GetByRoomAndDate(txCtx, req.RoomID, req.Date, true)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to get reservations: %v", err)
			return fmt.Errorf("%w: failed to get reservations: %v", ErrStorage, err)
		}

		// 5.4. Проверяем пересечение с существующими бронированиями
		if err := scheduling.CheckConflict(req.StartTime, req.EndTime, existing, 0); err != nil {
			uc.logger.Warn("CreateReservation: conflict detected: %v", err)
			return err
		}

		// 5.5. Создаем бронирование
		candidate := &domain.Reservation{
			RoomID:    req.RoomID,
			UserID:    req.UserID,
			Date:      req.Date,
			StartTime: req.StartTime,
			EndTime:   req.EndTime,
			Title:     req.Title,
			Status:    domain.StatusConfirmed,
			UserName:  userName,
		}

		created, err := uc.reservationRepo.Create(txCtx, candidate)
		if err != nil {
			// Гонка за слот: локальная проверка прошла, но хранилище
			// уже приняло конкурентную запись
			if errors.Is(err, reservationRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateReservation: slot taken by concurrent write, room=%d date=%s",
					req.RoomID, req.Date.Format(domain.DateFormat))
				return ErrSlotTaken
			}
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrStorage, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateReservation: successfully created reservation id=%d", result.ID)

	return fromDomain(result), nil
}
