package rules

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueService/internal/domain"
	ruleRepo "github.com/m04kA/SMC-VenueService/internal/infra/storage/rule"
	"github.com/m04kA/SMC-VenueService/internal/service/rules/models"
)

type stubRuleRepo struct {
	rules       []*domain.Rule
	deletedID   int64
	missingRule bool
}

func (s *stubRuleRepo) Create(_ context.Context, rule *domain.Rule) (*domain.Rule, error) {
	rule.ID = 1
	return rule, nil
}

func (s *stubRuleRepo) List(_ context.Context, kind *domain.RuleKind) ([]*domain.Rule, error) {
	if kind == nil {
		return s.rules, nil
	}
	filtered := make([]*domain.Rule, 0)
	for _, r := range s.rules {
		if r.Kind == *kind {
			filtered = append(filtered, r)
		}
	}
	return filtered, nil
}

func (s *stubRuleRepo) Delete(_ context.Context, id int64) error {
	if s.missingRule {
		return ruleRepo.ErrRuleNotFound
	}
	s.deletedID = id
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestService_Create_Validation(t *testing.T) {
	svc := NewService(&stubRuleRepo{}, nopLogger{})

	tests := []struct {
		name string
		req  models.CreateRuleRequest
		ok   bool
	}{
		{
			name: "valid percentage fee",
			req:  models.CreateRuleRequest{Name: "Service charge", Kind: "fee", Calculation: "percentage", Value: decimal.NewFromInt(10)},
			ok:   true,
		},
		{
			name: "valid fixed tax",
			req:  models.CreateRuleRequest{Name: "City levy", Kind: "tax", Calculation: "fixed", Value: decimal.NewFromInt(25)},
			ok:   true,
		},
		{
			name: "missing name",
			req:  models.CreateRuleRequest{Kind: "fee", Calculation: "fixed", Value: decimal.NewFromInt(1)},
		},
		{
			name: "unknown kind",
			req:  models.CreateRuleRequest{Name: "x", Kind: "discount", Calculation: "fixed", Value: decimal.NewFromInt(1)},
		},
		{
			name: "unknown calculation",
			req:  models.CreateRuleRequest{Name: "x", Kind: "fee", Calculation: "tiered", Value: decimal.NewFromInt(1)},
		},
		{
			name: "negative value",
			req:  models.CreateRuleRequest{Name: "x", Kind: "fee", Calculation: "fixed", Value: decimal.NewFromInt(-5)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := svc.Create(context.Background(), &tt.req)
			if tt.ok {
				require.NoError(t, err)
				assert.Equal(t, int64(1), resp.ID)
				return
			}
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestService_List_FiltersByKind(t *testing.T) {
	svc := NewService(&stubRuleRepo{rules: []*domain.Rule{
		{ID: 1, Name: "VAT", Kind: domain.RuleKindTax, Calculation: domain.CalculationPercentage, Value: decimal.NewFromInt(20)},
		{ID: 2, Name: "Service charge", Kind: domain.RuleKindFee, Calculation: domain.CalculationPercentage, Value: decimal.NewFromInt(10)},
	}}, nopLogger{})

	all, err := svc.List(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, all.Rules, 2)

	kind := "tax"
	taxes, err := svc.List(context.Background(), &kind)
	require.NoError(t, err)
	require.Len(t, taxes.Rules, 1)
	assert.Equal(t, "VAT", taxes.Rules[0].Name)
	assert.Equal(t, "tax", taxes.Rules[0].Kind)

	bad := "discount"
	_, err = svc.List(context.Background(), &bad)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_Delete(t *testing.T) {
	repo := &stubRuleRepo{}
	svc := NewService(repo, nopLogger{})

	require.NoError(t, svc.Delete(context.Background(), 7))
	assert.Equal(t, int64(7), repo.deletedID)

	missing := NewService(&stubRuleRepo{missingRule: true}, nopLogger{})
	assert.ErrorIs(t, missing.Delete(context.Background(), 8), ErrRuleNotFound)
}
