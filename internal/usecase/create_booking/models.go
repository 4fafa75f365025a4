package create_booking

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-VenueService/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	CustomerID int64
	SpaceID    int64
	EventName  string
	EventDate  time.Time         // Дата мероприятия (без времени)
	Window     domain.TimeWindow // Время мероприятия в пределах даты
	GuestCount int
	BasePrice  decimal.Decimal // Нормализована на границе: мусор и отрицательные -> 0
	FeeIDs     []int64         // Выбранные сборы
	TaxIDs     []int64         // Выбранные налоги
	Notes      *string
}

// Response модель ответа с созданным бронированием и детализацией стоимости
type Response struct {
	Booking   *domain.Booking
	Breakdown *domain.PriceBreakdown
}
