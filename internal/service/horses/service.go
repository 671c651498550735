package horses

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/FarrierBookingService/internal/domain"
	horseRepo "github.com/m04kA/FarrierBookingService/internal/infra/storage/horse"
	"github.com/m04kA/FarrierBookingService/internal/service/horses/models"
)

// Service сервис лошадей клиента
type Service struct {
	horseRepo HorseRepository
	logger    Logger
}

func NewService(horseRepo HorseRepository, logger Logger) *Service {
	return &Service{
		horseRepo: horseRepo,
		logger:    logger,
	}
}

// Create добавляет лошадь клиенту
func (s *Service) Create(ctx context.Context, req *models.CreateHorseRequest) (*models.HorseResponse, error) {
	s.logger.Info("Create: adding horse for customer=%d", req.CustomerID)

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(name) > domain.MaxHorseNameLength {
		return nil, fmt.Errorf("%w: name must be at most %d characters", ErrInvalidInput, domain.MaxHorseNameLength)
	}
	if req.BirthYear != nil && *req.BirthYear <= 0 {
		return nil, fmt.Errorf("%w: birthYear must be positive", ErrInvalidInput)
	}
	if req.Notes != nil && utf8.RuneCountInString(*req.Notes) > domain.MaxNotesLength {
		return nil, fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	created, err := s.horseRepo.Create(ctx, &domain.Horse{
		CustomerID: req.CustomerID,
		Name:       name,
		Breed:      req.Breed,
		BirthYear:  req.BirthYear,
		Notes:      req.Notes,
	})
	if err != nil {
		s.logger.Error("Create: repository error for customer=%d: %v", req.CustomerID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: horse id=%d added for customer=%d", created.ID, req.CustomerID)
	return models.FromDomainHorse(created), nil
}

// List возвращает лошадей клиента
func (s *Service) List(ctx context.Context, customerID int64) (*models.HorseListResponse, error) {
	horses, err := s.horseRepo.GetByCustomerID(ctx, customerID)
	if err != nil {
		s.logger.Error("List: repository error for customer=%d: %v", customerID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainHorseList(horses), nil
}

// Delete удаляет лошадь клиента
func (s *Service) Delete(ctx context.Context, id, customerID int64) error {
	s.logger.Info("Delete: horse id=%d by customer=%d", id, customerID)

	if err := s.horseRepo.Delete(ctx, id, customerID); err != nil {
		switch {
		case errors.Is(err, horseRepo.ErrHorseNotFound):
			s.logger.Warn("Delete: horse id=%d not found for customer=%d", id, customerID)
			return ErrHorseNotFound
		case errors.Is(err, horseRepo.ErrHorseInUse):
			s.logger.Warn("Delete: horse id=%d has bookings", id)
			return ErrHorseInUse
		default:
			s.logger.Error("Delete: repository error for horse id=%d: %v", id, err)
			return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
		}
	}

	return nil
}
