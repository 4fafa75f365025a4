package compute_quote

import (
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-VenueService/internal/domain"
)

// Request модель запроса на расчет стоимости
type Request struct {
	UserID    int64           // ID пользователя (для логирования, не влияет на результат)
	BasePrice decimal.Decimal // Базовая цена (нормализована на границе: мусор и отрицательные -> 0)
	FeeIDs    []int64         // Выбранные сборы (набор, порядок не влияет на результат)
	TaxIDs    []int64         // Выбранные налоги (набор, порядок не влияет на результат)
}

// Response модель ответа с детализацией стоимости
type Response struct {
	Breakdown *domain.PriceBreakdown
}
