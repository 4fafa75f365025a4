package compute_quote

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueService/internal/domain"
)

// stubRuleRepo возвращает только правила, присутствующие в каталоге,
// как настоящий репозиторий при выборке по id
type stubRuleRepo struct {
	catalog map[int64]*domain.Rule
	err     error
}

func (s *stubRuleRepo) GetByIDs(_ context.Context, ids []int64) ([]*domain.Rule, error) {
	if s.err != nil {
		return nil, s.err
	}
	rules := make([]*domain.Rule, 0, len(ids))
	// Каталог упорядочен по id
	for id := int64(0); id < 100; id++ {
		rule, ok := s.catalog[id]
		if !ok {
			continue
		}
		for _, requested := range ids {
			if requested == id {
				rules = append(rules, rule)
				break
			}
		}
	}
	return rules, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestUseCase_Execute(t *testing.T) {
	repo := &stubRuleRepo{catalog: map[int64]*domain.Rule{
		1: {ID: 1, Name: "Cleaning fee", Kind: domain.RuleKindFee, Calculation: domain.CalculationFixed, Value: decimal.NewFromInt(10)},
		2: {ID: 2, Name: "Sales tax", Kind: domain.RuleKindTax, Calculation: domain.CalculationPercentage, Value: decimal.NewFromInt(10)},
	}}
	uc := NewUseCase(repo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		BasePrice: decimal.NewFromInt(100),
		FeeIDs:    []int64{1},
		TaxIDs:    []int64{2},
	})

	require.NoError(t, err)
	breakdown := resp.Breakdown
	require.Len(t, breakdown.Fees, 1)
	require.Len(t, breakdown.Taxes, 1)
	assert.True(t, breakdown.SubtotalAfterFees.Equal(decimal.NewFromInt(110)))
	assert.True(t, breakdown.Total.Equal(decimal.NewFromInt(121)))
}

func TestUseCase_Execute_DanglingRuleIDsIgnored(t *testing.T) {
	// id=99 удален из каталога, но всё ещё выбран в пакете
	repo := &stubRuleRepo{catalog: map[int64]*domain.Rule{
		2: {ID: 2, Name: "Sales tax", Kind: domain.RuleKindTax, Calculation: domain.CalculationPercentage, Value: decimal.NewFromInt(10)},
	}}
	uc := NewUseCase(repo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		BasePrice: decimal.NewFromInt(100),
		FeeIDs:    []int64{99},
		TaxIDs:    []int64{2},
	})

	require.NoError(t, err)
	assert.Empty(t, resp.Breakdown.Fees)
	assert.True(t, resp.Breakdown.Total.Equal(decimal.NewFromInt(110)))
}

func TestUseCase_Execute_EmptySelection(t *testing.T) {
	repo := &stubRuleRepo{catalog: map[int64]*domain.Rule{}}
	uc := NewUseCase(repo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		BasePrice: decimal.NewFromInt(100),
	})

	require.NoError(t, err)
	assert.Empty(t, resp.Breakdown.Fees)
	assert.Empty(t, resp.Breakdown.Taxes)
	assert.True(t, resp.Breakdown.Total.Equal(decimal.NewFromInt(100)))
}

func TestUseCase_Execute_RepositoryError(t *testing.T) {
	repo := &stubRuleRepo{err: errors.New("connection refused")}
	uc := NewUseCase(repo, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		BasePrice: decimal.NewFromInt(100),
		FeeIDs:    []int64{1},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternal)
}
