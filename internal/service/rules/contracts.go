package rules

import (
	"context"

	"github.com/m04kA/SMC-VenueService/internal/domain"
)

// RuleRepository интерфейс репозитория правил ценообразования
type RuleRepository interface {
	Create(ctx context.Context, rule *domain.Rule) (*domain.Rule, error)
	List(ctx context.Context, kind *domain.RuleKind) ([]*domain.Rule, error)
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
