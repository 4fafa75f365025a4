package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-VenueService/internal/domain"
	"github.com/m04kA/SMC-VenueService/internal/integrations/customerservice"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	// GetActiveBySpaces получает активные бронирования заказанных залов на дату
	GetActiveBySpaces(ctx context.Context, spaceIDs []int64, date time.Time) ([]*domain.Booking, error)
}

// RuleRepository интерфейс репозитория каталога налогов и сборов
type RuleRepository interface {
	GetByIDs(ctx context.Context, ids []int64) ([]*domain.Rule, error)
}

// VenueRepository интерфейс репозитория площадок
type VenueRepository interface {
	GetSpace(ctx context.Context, spaceID int64) (*domain.Space, error)
}

// CustomerServiceClient интерфейс клиента для CustomerService
type CustomerServiceClient interface {
	GetCustomer(ctx context.Context, customerID int64) (*customerservice.Customer, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
