package compute_quote

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-VenueService/internal/domain"
)

// UseCase use case расчета стоимости по выбранным налогам и сборам
// Вызывается при каждом изменении базовой цены или выбранных правил -
// детализация пересчитывается с нуля и нигде не кешируется
type UseCase struct {
	ruleRepo RuleRepository
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(ruleRepo RuleRepository, logger Logger) *UseCase {
	return &UseCase{
		ruleRepo: ruleRepo,
		logger:   logger,
	}
}

// Execute выполняет расчет стоимости
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ComputeQuote: user=%d, base=%s, fees=%v, taxes=%v",
		req.UserID, req.BasePrice, req.FeeIDs, req.TaxIDs)

	// Один запрос за всеми выбранными правилами; отсутствующие id
	// репозиторий просто не вернет, и калькулятор их проигнорирует
	ids := make([]int64, 0, len(req.FeeIDs)+len(req.TaxIDs))
	ids = append(ids, req.FeeIDs...)
	ids = append(ids, req.TaxIDs...)

	catalog, err := uc.ruleRepo.GetByIDs(ctx, ids)
	if err != nil {
		uc.logger.Error("ComputeQuote: failed to get pricing rules: %v", err)
		return nil, fmt.Errorf("%w: failed to get pricing rules: %v", ErrInternal, err)
	}

	breakdown := domain.ComputePriceBreakdown(req.BasePrice, req.FeeIDs, req.TaxIDs, catalog)

	uc.logger.Info("ComputeQuote: user=%d, applied %d fees and %d taxes, total=%s",
		req.UserID, len(breakdown.Fees), len(breakdown.Taxes), breakdown.Total)

	return &Response{Breakdown: breakdown}, nil
}
