package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/FarrierBookingService/internal/domain"
	bookingRepo "github.com/m04kA/FarrierBookingService/internal/infra/storage/booking"
	horseRepo "github.com/m04kA/FarrierBookingService/internal/infra/storage/horse"
	providerRepo "github.com/m04kA/FarrierBookingService/internal/infra/storage/provider"
	"github.com/m04kA/FarrierBookingService/pkg/txmanager"
)

// UseCase use case для создания бронирования на фиксированную дату
type UseCase struct {
	bookingRepo  BookingRepository
	providerRepo ProviderRepository
	horseRepo    HorseRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	providerRepo ProviderRepository,
	horseRepo HorseRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		providerRepo: providerRepo,
		horseRepo:    horseRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
// Использует сериализуемую транзакцию для предотвращения гонки данных
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: customer=%d, provider=%d, service=%d, date=%s, time=%s",
		req.CustomerID, req.ProviderID, req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	// 2. Провайдер и услуга
	if _, err := uc.providerRepo.GetByID(ctx, req.ProviderID); err != nil {
		if errors.Is(err, providerRepo.ErrProviderNotFound) {
			uc.logger.Warn("CreateBooking: provider id=%d not found", req.ProviderID)
			return nil, ErrProviderNotFound
		}
		uc.logger.Error("CreateBooking: failed to get provider id=%d: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: failed to get provider: %v", ErrInternal, err)
	}

	service, err := uc.providerRepo.GetService(ctx, req.ProviderID, req.ServiceID)
	if err != nil {
		if errors.Is(err, providerRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateBooking: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	if !service.IsActive {
		uc.logger.Warn("CreateBooking: service id=%d is inactive", req.ServiceID)
		return nil, ErrServiceInactive
	}

	// 3. Лошадь клиента
	horse, err := uc.resolveHorse(ctx, req)
	if err != nil {
		return nil, err
	}

	var result *domain.Booking

	// 4. Проверка и создание в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		config, err := uc.providerRepo.GetSlotsConfig(txCtx, req.ProviderID)
		if err != nil {
			if !errors.Is(err, providerRepo.ErrConfigNotFound) {
				uc.logger.Error("CreateBooking: failed to get config: %v", err)
				return fmt.Errorf("%w: failed to get config: %v", ErrInternal, err)
			}
			config = domain.DefaultSlotsConfig(req.ProviderID)
			uc.logger.Info("CreateBooking: using default config for provider=%d", req.ProviderID)
		}

		// 4.1. Дата
		if err := validateDate(req.Date, now, config); err != nil {
			uc.logger.Warn("CreateBooking: date validation failed: %v", err)
			return err
		}

		// 4.2. Рабочие часы на день недели
		stored, err := uc.providerRepo.GetSchedule(txCtx, req.ProviderID)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get schedule: %v", err)
			return fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
		}
		day := domain.BuildWeeklySchedule(stored).ForDate(req.Date)
		if !day.IsOpen {
			uc.logger.Warn("CreateBooking: provider=%d is closed on %s", req.ProviderID, req.Date.Format(domain.DateFormat))
			return ErrProviderClosed
		}

		// 4.3. Сетка слотов и минимальное время до начала
		duration := service.DurationMinutes
		if duration <= 0 {
			duration = config.SlotDurationMinutes
		}

		if err := validateTimeSlot(day, req.StartTime, config.SlotDurationMinutes, duration); err != nil {
			uc.logger.Warn("CreateBooking: time slot validation failed: %v", err)
			return err
		}

		if err := validateBookingTime(req.Date, req.StartTime, now, config.MinBookingNoticeMinutes); err != nil {
			uc.logger.Warn("CreateBooking: booking time validation failed: %v", err)
			return err
		}

		// 4.4. Активные бронирования на дату (FOR UPDATE внутри транзакции)
		bookings, err := uc.bookingRepo.GetByProviderWithFilter(txCtx, domain.ProviderBookingsFilter{
			ProviderID: req.ProviderID,
			StartDate:  &req.Date,
			EndDate:    &req.Date,
		})
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		overlapping := domain.CountOverlapping(bookings, req.StartTime, duration)
		if overlapping >= config.MaxConcurrentBookings {
			uc.logger.Warn("CreateBooking: slot not available, %d/%d spots taken",
				overlapping, config.MaxConcurrentBookings)
			return ErrSlotNotAvailable
		}

		uc.logger.Info("CreateBooking: slot available, %d/%d spots taken",
			overlapping, config.MaxConcurrentBookings)

		// 4.5. Создаем бронирование с денормализацией данных
		created, err := uc.bookingRepo.Create(txCtx, &domain.Booking{
			CustomerID:      req.CustomerID,
			ProviderID:      req.ProviderID,
			ServiceID:       req.ServiceID,
			HorseID:         horse.ID,
			BookingDate:     domain.DateOnly(req.Date),
			StartTime:       req.StartTime,
			DurationMinutes: duration,
			Status:          domain.StatusPending,
			ServiceName:     service.Name,
			ServicePrice:    service.Price,
			HorseName:       horse.Name,
			Notes:           req.Notes,
		})
		if err != nil {
			if errors.Is(err, bookingRepo.ErrConcurrentWrite) {
				uc.logger.Warn("CreateBooking: slot %s %s taken by a concurrent booking",
					req.Date.Format(domain.DateFormat), req.StartTime)
				return ErrSlotNotAvailable
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})
	if err != nil {
		// Конфликт при коммите означает, что слот заняли параллельно
		if errors.Is(err, txmanager.ErrSerializationFailure) {
			uc.logger.Warn("CreateBooking: serialization conflict for provider=%d: %v", req.ProviderID, err)
			return nil, ErrSlotNotAvailable
		}
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	return toResponse(result), nil
}

// resolveHorse возвращает лошадь для бронирования.
// Явно указанная лошадь должна принадлежать клиенту, без указания
// выбирается единственная лошадь клиента.
func (uc *UseCase) resolveHorse(ctx context.Context, req *Request) (*domain.Horse, error) {
	if req.HorseID != nil {
		horse, err := uc.horseRepo.GetByID(ctx, *req.HorseID)
		if err != nil {
			if errors.Is(err, horseRepo.ErrHorseNotFound) {
				uc.logger.Warn("CreateBooking: horse id=%d not found", *req.HorseID)
				return nil, ErrHorseNotFound
			}
			uc.logger.Error("CreateBooking: failed to get horse id=%d: %v", *req.HorseID, err)
			return nil, fmt.Errorf("%w: failed to get horse: %v", ErrInternal, err)
		}
		if horse.CustomerID != req.CustomerID {
			uc.logger.Warn("CreateBooking: horse id=%d does not belong to customer=%d", horse.ID, req.CustomerID)
			return nil, ErrHorseNotFound
		}
		return horse, nil
	}

	horses, err := uc.horseRepo.GetByCustomerID(ctx, req.CustomerID)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get horses of customer=%d: %v", req.CustomerID, err)
		return nil, fmt.Errorf("%w: failed to get horses: %v", ErrInternal, err)
	}
	if len(horses) != 1 {
		uc.logger.Warn("CreateBooking: customer=%d has %d horses, horse must be selected", req.CustomerID, len(horses))
		return nil, ErrHorseRequired
	}

	return horses[0], nil
}

func toResponse(b *domain.Booking) *Response {
	return &Response{
		ID:              b.ID,
		CustomerID:      b.CustomerID,
		ProviderID:      b.ProviderID,
		ServiceID:       b.ServiceID,
		HorseID:         b.HorseID,
		BookingDate:     b.BookingDate,
		StartTime:       b.StartTime,
		DurationMinutes: b.DurationMinutes,
		Status:          string(b.Status),
		ServiceName:     b.ServiceName,
		ServicePrice:    b.ServicePrice,
		HorseName:       b.HorseName,
		Notes:           b.Notes,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}
