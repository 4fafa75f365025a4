package rules

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-VenueService/internal/domain"
	ruleRepo "github.com/m04kA/SMC-VenueService/internal/infra/storage/rule"
	"github.com/m04kA/SMC-VenueService/internal/service/rules/models"
)

// Service сервис для управления каталогом правил ценообразования
type Service struct {
	ruleRepo RuleRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса правил
func NewService(ruleRepo RuleRepository, logger Logger) *Service {
	return &Service{
		ruleRepo: ruleRepo,
		logger:   logger,
	}
}

// List возвращает каталог правил, опционально отфильтрованный по типу
func (s *Service) List(ctx context.Context, kind *string) (*models.RuleListResponse, error) {
	s.logger.Info("List: fetching pricing rules, kind=%v", kind)

	var domainKind *domain.RuleKind
	if kind != nil {
		if !domain.IsValidRuleKind(*kind) {
			s.logger.Warn("List: invalid rule kind=%s", *kind)
			return nil, fmt.Errorf("%w: kind must be 'tax' or 'fee'", ErrInvalidInput)
		}
		k := domain.RuleKind(*kind)
		domainKind = &k
	}

	rules, err := s.ruleRepo.List(ctx, domainKind)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d pricing rules", len(rules))
	return models.FromDomainRuleList(rules), nil
}

// Create создает новое правило в каталоге
func (s *Service) Create(ctx context.Context, req *models.CreateRuleRequest) (*models.RuleResponse, error) {
	s.logger.Info("Create: creating pricing rule name=%s, kind=%s, calculation=%s, value=%s",
		req.Name, req.Kind, req.Calculation, req.Value)

	if err := validateCreateRequest(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	rule, err := s.ruleRepo.Create(ctx, req.ToDomainRule())
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created pricing rule id=%d", rule.ID)
	return models.FromDomainRule(rule), nil
}

// Delete удаляет правило из каталога
// Удаление не влияет на уже созданные бронирования - их стоимость зафиксирована
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting pricing rule id=%d", id)

	if err := s.ruleRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, ruleRepo.ErrRuleNotFound) {
			s.logger.Warn("Delete: pricing rule id=%d not found", id)
			return ErrRuleNotFound
		}
		s.logger.Error("Delete: repository error for rule id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted pricing rule id=%d", id)
	return nil
}

// validateCreateRequest валидирует запрос на создание правила
func validateCreateRequest(req *models.CreateRuleRequest) error {
	if req.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	if !domain.IsValidRuleKind(req.Kind) {
		return fmt.Errorf("%w: kind must be 'tax' or 'fee'", ErrInvalidInput)
	}

	if !domain.IsValidRuleCalculation(req.Calculation) {
		return fmt.Errorf("%w: calculation must be 'percentage' or 'fixed'", ErrInvalidInput)
	}

	if req.Value.IsNegative() {
		return fmt.Errorf("%w: value must not be negative", ErrInvalidInput)
	}

	return nil
}
