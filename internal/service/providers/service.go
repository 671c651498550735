package providers

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/FarrierBookingService/internal/domain"
	providerRepo "github.com/m04kA/FarrierBookingService/internal/infra/storage/provider"
	"github.com/m04kA/FarrierBookingService/internal/service/providers/models"
)

// Service сервис конфигурации слотов и расписания провайдера
type Service struct {
	providerRepo ProviderRepository
	txManager    TransactionManager
	logger       Logger
}

// NewService создает новый экземпляр сервиса конфигурации
func NewService(providerRepo ProviderRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		providerRepo: providerRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// GetConfig возвращает конфигурацию слотов и недельное расписание провайдера.
// Публичный метод. Если конфигурация не сохранена, возвращаются значения по умолчанию.
func (s *Service) GetConfig(ctx context.Context, providerID int64) (*models.ConfigResponse, error) {
	s.logger.Info("GetConfig: fetching config for provider=%d", providerID)

	if _, err := s.getProvider(ctx, "GetConfig", providerID); err != nil {
		return nil, err
	}

	config, week, err := s.load(ctx, "GetConfig", providerID)
	if err != nil {
		return nil, err
	}

	return models.FromDomain(config, week), nil
}

// UpdateConfig частично обновляет конфигурацию и/или заменяет расписание.
// Доступно только владельцу провайдера.
func (s *Service) UpdateConfig(ctx context.Context, providerID int64, req *models.UpdateConfigRequest) (*models.ConfigResponse, error) {
	s.logger.Info("UpdateConfig: updating config for provider=%d by user=%d", providerID, req.UserID)

	provider, err := s.getProvider(ctx, "UpdateConfig", providerID)
	if err != nil {
		return nil, err
	}

	if !provider.IsOwnedBy(req.UserID) {
		s.logger.Warn("UpdateConfig: user=%d does not own provider=%d", req.UserID, providerID)
		return nil, ErrAccessDenied
	}

	var schedule []domain.DaySchedule
	if req.Schedule != nil {
		schedule, err = req.ToDomainSchedule()
		if err != nil {
			s.logger.Warn("UpdateConfig: invalid schedule for provider=%d: %v", providerID, err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}

	var resp *models.ConfigResponse

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		config, _, err := s.load(txCtx, "UpdateConfig", providerID)
		if err != nil {
			return err
		}

		req.ApplyToConfig(config)
		if err := validateConfigData(config); err != nil {
			s.logger.Warn("UpdateConfig: validation failed for provider=%d: %v", providerID, err)
			return err
		}

		if _, err := s.providerRepo.UpsertSlotsConfig(txCtx, config); err != nil {
			s.logger.Error("UpdateConfig: failed to save config for provider=%d: %v", providerID, err)
			return fmt.Errorf("%w: UpdateConfig - save config: %v", ErrInternal, err)
		}

		if req.Schedule != nil {
			if err := s.providerRepo.ReplaceSchedule(txCtx, providerID, schedule); err != nil {
				s.logger.Error("UpdateConfig: failed to save schedule for provider=%d: %v", providerID, err)
				return fmt.Errorf("%w: UpdateConfig - save schedule: %v", ErrInternal, err)
			}
		}

		config, week, err := s.load(txCtx, "UpdateConfig", providerID)
		if err != nil {
			return err
		}
		resp = models.FromDomain(config, week)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("UpdateConfig: successfully updated config for provider=%d", providerID)
	return resp, nil
}

// Вспомогательные методы

func (s *Service) getProvider(ctx context.Context, op string, providerID int64) (*domain.Provider, error) {
	provider, err := s.providerRepo.GetByID(ctx, providerID)
	if err != nil {
		if errors.Is(err, providerRepo.ErrProviderNotFound) {
			s.logger.Warn("%s: provider id=%d not found", op, providerID)
			return nil, ErrProviderNotFound
		}
		s.logger.Error("%s: failed to get provider id=%d: %v", op, providerID, err)
		return nil, fmt.Errorf("%w: %s - failed to get provider: %v", ErrInternal, op, err)
	}
	return provider, nil
}

// load возвращает сохранённую конфигурацию (или значения по умолчанию) и расписание
func (s *Service) load(ctx context.Context, op string, providerID int64) (*domain.ProviderSlotsConfig, domain.WeeklySchedule, error) {
	config, err := s.providerRepo.GetSlotsConfig(ctx, providerID)
	if err != nil {
		if !errors.Is(err, providerRepo.ErrConfigNotFound) {
			s.logger.Error("%s: failed to get config for provider=%d: %v", op, providerID, err)
			return nil, domain.WeeklySchedule{}, fmt.Errorf("%w: %s - failed to get config: %v", ErrInternal, op, err)
		}
		config = domain.DefaultSlotsConfig(providerID)
	}

	stored, err := s.providerRepo.GetSchedule(ctx, providerID)
	if err != nil {
		s.logger.Error("%s: failed to get schedule for provider=%d: %v", op, providerID, err)
		return nil, domain.WeeklySchedule{}, fmt.Errorf("%w: %s - failed to get schedule: %v", ErrInternal, op, err)
	}

	return config, domain.BuildWeeklySchedule(stored), nil
}

// validateConfigData валидирует параметры конфигурации
func validateConfigData(c *domain.ProviderSlotsConfig) error {
	if c.SlotDurationMinutes < domain.MinSlotDurationMinutes || c.SlotDurationMinutes > domain.MaxSlotDurationMinutes {
		return fmt.Errorf("%w: slotDurationMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinSlotDurationMinutes, domain.MaxSlotDurationMinutes)
	}

	if c.MaxConcurrentBookings < domain.MinConcurrentBookings || c.MaxConcurrentBookings > domain.MaxConcurrentBookings {
		return fmt.Errorf("%w: maxConcurrentBookings must be between %d and %d",
			ErrInvalidInput, domain.MinConcurrentBookings, domain.MaxConcurrentBookings)
	}

	if c.AdvanceBookingDays < domain.MinAdvanceBookingDays || c.AdvanceBookingDays > domain.MaxAdvanceBookingDays {
		return fmt.Errorf("%w: advanceBookingDays must be between %d and %d",
			ErrInvalidInput, domain.MinAdvanceBookingDays, domain.MaxAdvanceBookingDays)
	}

	if c.MinBookingNoticeMinutes < domain.MinBookingNoticeMinutes || c.MinBookingNoticeMinutes > domain.MaxBookingNoticeMinutes {
		return fmt.Errorf("%w: minBookingNoticeMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinBookingNoticeMinutes, domain.MaxBookingNoticeMinutes)
	}

	return nil
}
