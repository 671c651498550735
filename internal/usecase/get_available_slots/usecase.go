package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/FarrierBookingService/internal/domain"
	providerRepo "github.com/m04kA/FarrierBookingService/internal/infra/storage/provider"
)

// UseCase use case для получения доступных слотов для бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	providerRepo ProviderRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	providerRepo ProviderRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		providerRepo: providerRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: provider=%d, service=%d, date=%s",
		req.ProviderID, req.ServiceID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	// 2. Провайдер и услуга
	if _, err := uc.providerRepo.GetByID(ctx, req.ProviderID); err != nil {
		if errors.Is(err, providerRepo.ErrProviderNotFound) {
			uc.logger.Warn("GetAvailableSlots: provider id=%d not found", req.ProviderID)
			return nil, ErrProviderNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get provider id=%d: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: failed to get provider: %v", ErrInternal, err)
	}

	service, err := uc.providerRepo.GetService(ctx, req.ProviderID, req.ServiceID)
	if err != nil {
		if errors.Is(err, providerRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%d not found for provider id=%d", req.ServiceID, req.ProviderID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	if !service.IsActive {
		uc.logger.Warn("GetAvailableSlots: service id=%d is inactive", req.ServiceID)
		return nil, ErrServiceInactive
	}

	// 3. Конфигурация слотов, при отсутствии используем значения по умолчанию
	config, err := uc.providerRepo.GetSlotsConfig(ctx, req.ProviderID)
	if err != nil {
		if !errors.Is(err, providerRepo.ErrConfigNotFound) {
			uc.logger.Error("GetAvailableSlots: failed to get config: %v", err)
			return nil, fmt.Errorf("%w: failed to get config: %v", ErrInternal, err)
		}
		config = domain.DefaultSlotsConfig(req.ProviderID)
		uc.logger.Info("GetAvailableSlots: using default config for provider=%d", req.ProviderID)
	}

	// 4. Окно записи
	if err := checkBookingWindow(config, req.Date, now); err != nil {
		uc.logger.Warn("GetAvailableSlots: date validation failed: %v", err)
		return nil, err
	}

	// 5. Расписание на день недели
	stored, err := uc.providerRepo.GetSchedule(ctx, req.ProviderID)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get schedule: %v", err)
		return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
	}
	day := domain.BuildWeeklySchedule(stored).ForDate(req.Date)

	resp := &Response{
		Date:       req.Date,
		ProviderID: req.ProviderID,
		ServiceID:  req.ServiceID,
		IsOpen:     day.IsOpen,
		Slots:      []domain.AvailableSlot{},
	}

	if !day.IsOpen {
		uc.logger.Info("GetAvailableSlots: provider=%d is closed on %s", req.ProviderID, req.Date.Format(domain.DateFormat))
		return resp, nil
	}

	// 6. Генерируем временные слоты
	duration := serviceDuration(service, config)
	timeSlots, err := generateTimeSlots(day, config.SlotDurationMinutes, duration, req.Date, now, config.MinBookingNoticeMinutes)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate time slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate time slots: %v", ErrInternal, err)
	}

	if len(timeSlots) == 0 {
		return resp, nil
	}

	// 7. Активные бронирования на эту дату
	bookings, err := uc.bookingRepo.GetByProviderWithFilter(ctx, domain.ProviderBookingsFilter{
		ProviderID: req.ProviderID,
		StartDate:  &req.Date,
		EndDate:    &req.Date,
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 8. Вычисляем доступность для каждого слота
	resp.Slots = calculateAvailableSpots(timeSlots, duration, bookings, config.MaxConcurrentBookings)

	uc.logger.Info("GetAvailableSlots: generated %d slots for provider=%d, service=%d, date=%s",
		len(resp.Slots), req.ProviderID, req.ServiceID, req.Date.Format(domain.DateFormat))

	return resp, nil
}
