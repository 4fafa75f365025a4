package compute_quote

import (
	"github.com/m04kA/SMC-VenueService/internal/api/handlers"
	"github.com/m04kA/SMC-VenueService/internal/domain"
	computeQuote "github.com/m04kA/SMC-VenueService/internal/usecase/compute_quote"
)

// ComputeQuoteRequest HTTP request model
type ComputeQuoteRequest struct {
	BasePrice     handlers.Amount `json:"basePrice"`
	EnabledFeeIDs []int64         `json:"enabledFeeIds"`
	EnabledTaxIDs []int64         `json:"enabledTaxIds"`
}

// PriceLineResponse строка детализации (сбор или налог)
type PriceLineResponse struct {
	RuleID int64  `json:"ruleId"`
	Name   string `json:"name"`
	Amount string `json:"amount"`
}

// QuoteResponse HTTP response model
type QuoteResponse struct {
	BasePrice         string              `json:"basePrice"`
	Fees              []PriceLineResponse `json:"fees"`
	Taxes             []PriceLineResponse `json:"taxes"`
	SubtotalAfterFees string              `json:"subtotalAfterFees"`
	Total             string              `json:"total"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ComputeQuoteRequest) ToUseCaseRequest(userID int64) *computeQuote.Request {
	return &computeQuote.Request{
		UserID:    userID,
		BasePrice: r.BasePrice.Decimal,
		FeeIDs:    r.EnabledFeeIDs,
		TaxIDs:    r.EnabledTaxIDs,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *computeQuote.Response) *QuoteResponse {
	return FromDomainBreakdown(resp.Breakdown)
}

// FromDomainBreakdown конвертирует детализацию стоимости в HTTP response
func FromDomainBreakdown(b *domain.PriceBreakdown) *QuoteResponse {
	return &QuoteResponse{
		BasePrice:         b.BasePrice.String(),
		Fees:              fromDomainLines(b.Fees),
		Taxes:             fromDomainLines(b.Taxes),
		SubtotalAfterFees: b.SubtotalAfterFees.String(),
		Total:             b.Total.String(),
	}
}

func fromDomainLines(lines []domain.PriceLine) []PriceLineResponse {
	result := make([]PriceLineResponse, len(lines))
	for i, line := range lines {
		result[i] = PriceLineResponse{
			RuleID: line.RuleID,
			Name:   line.Name,
			Amount: line.Amount.String(),
		}
	}
	return result
}
