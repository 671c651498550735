package routeorders

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/m04kA/FarrierBookingService/internal/domain"
	providerRepo "github.com/m04kA/FarrierBookingService/internal/infra/storage/provider"
	routeOrderRepo "github.com/m04kA/FarrierBookingService/internal/infra/storage/routeorder"
	"github.com/m04kA/FarrierBookingService/internal/service/routeorders/models"
)

// Service сервис заказов на обслуживание в диапазоне дат
type Service struct {
	orderRepo    RouteOrderRepository
	providerRepo ProviderRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса заказов
func NewService(
	orderRepo RouteOrderRepository,
	providerRepo ProviderRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		orderRepo:    orderRepo,
		providerRepo: providerRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Create создает заказ в статусе pending
func (s *Service) Create(ctx context.Context, req *models.CreateRouteOrderRequest) (*models.RouteOrderResponse, error) {
	s.logger.Info("Create: customer=%d, provider=%d, range=%s..%s, horses=%d",
		req.CustomerID, req.ProviderID, req.DateFrom, req.DateTo, req.HorseCount)

	order, err := s.validateCreate(req)
	if err != nil {
		s.logger.Warn("Create: validation failed for customer=%d: %v", req.CustomerID, err)
		return nil, err
	}

	if _, err := s.providerRepo.GetByID(ctx, req.ProviderID); err != nil {
		if errors.Is(err, providerRepo.ErrProviderNotFound) {
			s.logger.Warn("Create: provider id=%d not found", req.ProviderID)
			return nil, ErrProviderNotFound
		}
		s.logger.Error("Create: failed to get provider id=%d: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: Create - failed to get provider: %v", ErrInternal, err)
	}

	created, err := s.orderRepo.Create(ctx, order)
	if err != nil {
		s.logger.Error("Create: repository error for customer=%d: %v", req.CustomerID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created route order id=%d", created.ID)
	return models.FromDomainRouteOrder(created), nil
}

// GetByID получает заказ по ID.
// Доступно клиенту, создавшему заказ, и владельцу провайдера.
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.RouteOrderResponse, error) {
	s.logger.Info("GetByID: fetching route order id=%d for user=%d", id, userID)

	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, routeOrderRepo.ErrRouteOrderNotFound) {
			s.logger.Warn("GetByID: route order id=%d not found", id)
			return nil, ErrRouteOrderNotFound
		}
		s.logger.Error("GetByID: repository error for route order id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if order.CustomerID != userID {
		isOwner, err := s.isProviderOwner(ctx, order.ProviderID, userID)
		if err != nil {
			return nil, err
		}
		if !isOwner {
			s.logger.Warn("GetByID: access denied for user=%d to route order id=%d", userID, id)
			return nil, ErrAccessDenied
		}
	}

	return models.FromDomainRouteOrder(order), nil
}

// UpdateStatus переводит заказ в новый статус.
// Клиент может только отменить свой заказ, владелец провайдера
// может выполнить любой допустимый переход.
func (s *Service) UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) (*models.RouteOrderResponse, error) {
	s.logger.Info("UpdateStatus: route order id=%d to status=%s by user=%d", id, req.Status, req.UserID)

	newStatus := domain.RouteOrderStatus(req.Status)
	if !domain.IsValidRouteOrderStatus(newStatus) {
		s.logger.Warn("UpdateStatus: invalid status=%s for route order id=%d", req.Status, id)
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, req.Status)
	}

	if req.Reason != nil && utf8.RuneCountInString(*req.Reason) > domain.MaxCancellationReasonLength {
		return nil, fmt.Errorf("%w: reason must be at most %d characters", ErrInvalidInput, domain.MaxCancellationReasonLength)
	}

	var updated *domain.RouteOrder

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		order, err := s.orderRepo.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, routeOrderRepo.ErrRouteOrderNotFound) {
				s.logger.Warn("UpdateStatus: route order id=%d not found", id)
				return ErrRouteOrderNotFound
			}
			s.logger.Error("UpdateStatus: repository error for route order id=%d: %v", id, err)
			return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
		}

		isOwner, err := s.isProviderOwner(txCtx, order.ProviderID, req.UserID)
		if err != nil {
			return err
		}

		isCustomer := order.CustomerID == req.UserID
		switch {
		case isOwner:
		case isCustomer && newStatus == domain.RouteStatusCancelled:
		default:
			s.logger.Warn("UpdateStatus: user=%d may not set status=%s on route order id=%d",
				req.UserID, newStatus, id)
			return ErrAccessDenied
		}

		if !domain.CanTransitionRoute(order.Status, newStatus) {
			s.logger.Warn("UpdateStatus: transition %s -> %s not allowed for route order id=%d",
				order.Status, newStatus, id)
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, order.Status, newStatus)
		}

		if err := s.orderRepo.UpdateStatus(txCtx, id, newStatus, req.Reason); err != nil {
			if errors.Is(err, routeOrderRepo.ErrRouteOrderNotFound) {
				return ErrRouteOrderNotFound
			}
			s.logger.Error("UpdateStatus: repository error for route order id=%d: %v", id, err)
			return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
		}

		order.Status = newStatus
		if newStatus == domain.RouteStatusCancelled {
			now := s.timeProvider.Now()
			order.CancellationReason = req.Reason
			order.CancelledAt = &now
		}
		updated = order
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("UpdateStatus: route order id=%d is now %s", id, updated.Status)
	return models.FromDomainRouteOrder(updated), nil
}

// Вспомогательные методы

func (s *Service) validateCreate(req *models.CreateRouteOrderRequest) (*domain.RouteOrder, error) {
	if req.CustomerID <= 0 {
		return nil, fmt.Errorf("%w: customerID must be positive", ErrInvalidInput)
	}
	if req.ProviderID <= 0 {
		return nil, fmt.Errorf("%w: providerId must be positive", ErrInvalidInput)
	}

	dateFrom, err := time.Parse(domain.DateFormat, req.DateFrom)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid dateFrom: %v", ErrInvalidInput, err)
	}
	dateTo, err := time.Parse(domain.DateFormat, req.DateTo)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid dateTo: %v", ErrInvalidInput, err)
	}

	if dateTo.Before(dateFrom) {
		return nil, fmt.Errorf("%w: dateFrom must not be after dateTo", ErrInvalidInput)
	}

	now := s.timeProvider.Now()
	if dateTo.Before(domain.DateOnly(now)) {
		return nil, fmt.Errorf("%w: dateTo is in the past", ErrInvalidInput)
	}

	if days := int(dateTo.Sub(dateFrom).Hours()/24) + 1; days > domain.MaxRouteOrderDays {
		return nil, fmt.Errorf("%w: range must be at most %d days", ErrInvalidInput, domain.MaxRouteOrderDays)
	}

	if req.HorseCount < 1 {
		return nil, fmt.Errorf("%w: horseCount must be at least 1", ErrInvalidInput)
	}

	location := strings.TrimSpace(req.Location)
	if location == "" {
		return nil, fmt.Errorf("%w: location is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(location) > domain.MaxLocationLength {
		return nil, fmt.Errorf("%w: location must be at most %d characters", ErrInvalidInput, domain.MaxLocationLength)
	}

	if req.Notes != nil && utf8.RuneCountInString(*req.Notes) > domain.MaxNotesLength {
		return nil, fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return &domain.RouteOrder{
		CustomerID: req.CustomerID,
		ProviderID: req.ProviderID,
		DateFrom:   dateFrom,
		DateTo:     dateTo,
		Status:     domain.RouteStatusPending,
		HorseCount: req.HorseCount,
		Location:   location,
		Notes:      req.Notes,
	}, nil
}

// isProviderOwner проверяет, что пользователь управляет провайдером
func (s *Service) isProviderOwner(ctx context.Context, providerID, userID int64) (bool, error) {
	provider, err := s.providerRepo.GetByID(ctx, providerID)
	if err != nil {
		if errors.Is(err, providerRepo.ErrProviderNotFound) {
			s.logger.Warn("isProviderOwner: provider id=%d not found", providerID)
			return false, nil
		}
		s.logger.Error("isProviderOwner: failed to get provider id=%d: %v", providerID, err)
		return false, fmt.Errorf("%w: isProviderOwner - failed to get provider: %v", ErrInternal, err)
	}
	return provider.IsOwnedBy(userID), nil
}
