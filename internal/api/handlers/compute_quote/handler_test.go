package compute_quote

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueService/internal/domain"
	computeQuote "github.com/m04kA/SMC-VenueService/internal/usecase/compute_quote"
)

type stubUseCase struct {
	gotRequest *computeQuote.Request
	response   *computeQuote.Response
	err        error
}

func (s *stubUseCase) Execute(_ context.Context, req *computeQuote.Request) (*computeQuote.Response, error) {
	s.gotRequest = req
	if s.err != nil {
		return nil, s.err
	}
	return s.response, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandler_Handle_ReturnsBreakdown(t *testing.T) {
	uc := &stubUseCase{
		response: &computeQuote.Response{
			Breakdown: &domain.PriceBreakdown{
				BasePrice: decimal.NewFromInt(100),
				Fees: []domain.PriceLine{
					{RuleID: 1, Name: "Service charge", Amount: decimal.NewFromInt(10)},
				},
				Taxes: []domain.PriceLine{
					{RuleID: 2, Name: "VAT", Amount: decimal.NewFromInt(11)},
				},
				SubtotalAfterFees: decimal.NewFromInt(110),
				Total:             decimal.NewFromInt(121),
			},
		},
	}
	handler := NewHandler(uc, nopLogger{})

	body := `{"basePrice": 100, "enabledFeeIds": [1], "enabledTaxIds": [2]}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/quotes", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp QuoteResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "100", resp.BasePrice)
	assert.Equal(t, "110", resp.SubtotalAfterFees)
	assert.Equal(t, "121", resp.Total)
	require.Len(t, resp.Fees, 1)
	assert.Equal(t, int64(1), resp.Fees[0].RuleID)
	assert.Equal(t, "10", resp.Fees[0].Amount)
	require.Len(t, resp.Taxes, 1)
	assert.Equal(t, "VAT", resp.Taxes[0].Name)
}

func TestHandler_Handle_GarbageBasePriceBecomesZero(t *testing.T) {
	uc := &stubUseCase{
		response: &computeQuote.Response{
			Breakdown: &domain.PriceBreakdown{
				BasePrice:         decimal.Zero,
				Fees:              []domain.PriceLine{},
				Taxes:             []domain.PriceLine{},
				SubtotalAfterFees: decimal.Zero,
				Total:             decimal.Zero,
			},
		},
	}
	handler := NewHandler(uc, nopLogger{})

	// Мусорная цена нормализуется в 0 на границе, а не отклоняется
	body := `{"basePrice": "garbage", "enabledFeeIds": [], "enabledTaxIds": []}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/quotes", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, uc.gotRequest)
	assert.True(t, uc.gotRequest.BasePrice.IsZero())
}

func TestHandler_Handle_InvalidBody(t *testing.T) {
	handler := NewHandler(&stubUseCase{}, nopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/quotes", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	handler.Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_Handle_UseCaseError(t *testing.T) {
	handler := NewHandler(&stubUseCase{err: errors.New("db down")}, nopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/quotes", strings.NewReader(`{"basePrice": 10}`))
	rec := httptest.NewRecorder()

	handler.Handle(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
