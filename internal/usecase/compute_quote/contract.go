package compute_quote

import (
	"context"

	"github.com/m04kA/SMC-VenueService/internal/domain"
)

// RuleRepository интерфейс репозитория каталога налогов и сборов
type RuleRepository interface {
	// GetByIDs получает правила по набору id; отсутствующие id не возвращаются
	GetByIDs(ctx context.Context, ids []int64) ([]*domain.Rule, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
