package venues

import (
	"context"
	"errors"
	"fmt"

	venueRepo "github.com/m04kA/SMC-VenueService/internal/infra/storage/venue"
	"github.com/m04kA/SMC-VenueService/internal/service/venues/models"
)

// Service сервис для работы с площадками и залами
type Service struct {
	venueRepo VenueRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса площадок
func NewService(venueRepo VenueRepository, logger Logger) *Service {
	return &Service{
		venueRepo: venueRepo,
		logger:    logger,
	}
}

// ListSpaces возвращает залы площадки
// Эндпоинт публичный: список залов нужен форме бронирования до авторизации
func (s *Service) ListSpaces(ctx context.Context, venueID int64) (*models.SpaceListResponse, error) {
	s.logger.Info("ListSpaces: fetching spaces for venue=%d", venueID)

	// Проверяем существование площадки, чтобы отличить "нет залов" от "нет площадки"
	if _, err := s.venueRepo.GetByID(ctx, venueID); err != nil {
		if errors.Is(err, venueRepo.ErrVenueNotFound) {
			s.logger.Warn("ListSpaces: venue id=%d not found", venueID)
			return nil, ErrVenueNotFound
		}
		s.logger.Error("ListSpaces: failed to get venue id=%d: %v", venueID, err)
		return nil, fmt.Errorf("%w: ListSpaces - failed to get venue: %v", ErrInternal, err)
	}

	spaces, err := s.venueRepo.ListSpaces(ctx, venueID)
	if err != nil {
		s.logger.Error("ListSpaces: repository error for venue=%d: %v", venueID, err)
		return nil, fmt.Errorf("%w: ListSpaces - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListSpaces: successfully fetched %d spaces for venue=%d", len(spaces), venueID)
	return models.FromDomainSpaceList(spaces), nil
}
