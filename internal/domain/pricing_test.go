package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func percentRule(id int64, kind RuleKind, name string, value int64) *Rule {
	return &Rule{ID: id, Name: name, Kind: kind, Calculation: CalculationPercentage, Value: decimal.NewFromInt(value)}
}

func fixedRule(id int64, kind RuleKind, name string, value int64) *Rule {
	return &Rule{ID: id, Name: name, Kind: kind, Calculation: CalculationFixed, Value: decimal.NewFromInt(value)}
}

func TestComputePriceBreakdown_EmptySelection(t *testing.T) {
	catalog := []*Rule{
		percentRule(1, RuleKindFee, "Service charge", 10),
		percentRule(2, RuleKindTax, "VAT", 20),
	}

	breakdown := ComputePriceBreakdown(decimal.NewFromInt(100), nil, nil, catalog)

	assert.Empty(t, breakdown.Fees)
	assert.Empty(t, breakdown.Taxes)
	assert.True(t, breakdown.SubtotalAfterFees.Equal(decimal.NewFromInt(100)),
		"subtotal = %s", breakdown.SubtotalAfterFees)
	assert.True(t, breakdown.Total.Equal(decimal.NewFromInt(100)), "total = %s", breakdown.Total)
}

func TestComputePriceBreakdown_FixedFeePercentageTax(t *testing.T) {
	// basePrice=100, fee fixed 10 -> subtotal 110, tax 10% -> 11, total 121
	catalog := []*Rule{
		fixedRule(1, RuleKindFee, "Cleaning fee", 10),
		percentRule(2, RuleKindTax, "Sales tax", 10),
	}

	breakdown := ComputePriceBreakdown(decimal.NewFromInt(100), []int64{1}, []int64{2}, catalog)

	require.Len(t, breakdown.Fees, 1)
	require.Len(t, breakdown.Taxes, 1)
	assert.True(t, breakdown.Fees[0].Amount.Equal(decimal.NewFromInt(10)))
	assert.True(t, breakdown.SubtotalAfterFees.Equal(decimal.NewFromInt(110)))
	assert.True(t, breakdown.Taxes[0].Amount.Equal(decimal.NewFromInt(11)))
	assert.True(t, breakdown.Total.Equal(decimal.NewFromInt(121)))
}

func TestComputePriceBreakdown_FeesComputedOnOriginalBase(t *testing.T) {
	// Оба процентных сбора считаются от 200, а не от нарастающего итога
	catalog := []*Rule{
		percentRule(1, RuleKindFee, "Service charge", 5),
		percentRule(2, RuleKindFee, "Gratuity", 10),
	}

	breakdown := ComputePriceBreakdown(decimal.NewFromInt(200), []int64{1, 2}, nil, catalog)

	require.Len(t, breakdown.Fees, 2)
	assert.True(t, breakdown.Fees[0].Amount.Equal(decimal.NewFromInt(10)))
	assert.True(t, breakdown.Fees[1].Amount.Equal(decimal.NewFromInt(20)))
	assert.True(t, breakdown.SubtotalAfterFees.Equal(decimal.NewFromInt(230)))
}

func TestComputePriceBreakdown_SelectionOrderInvariance(t *testing.T) {
	catalog := []*Rule{
		percentRule(1, RuleKindFee, "Service charge", 5),
		fixedRule(2, RuleKindFee, "Setup fee", 25),
		percentRule(3, RuleKindTax, "VAT", 20),
		percentRule(4, RuleKindTax, "City tax", 3),
	}
	base := decimal.NewFromInt(500)

	a := ComputePriceBreakdown(base, []int64{1, 2}, []int64{3, 4}, catalog)
	b := ComputePriceBreakdown(base, []int64{2, 1}, []int64{4, 3}, catalog)

	assert.Equal(t, a, b, "permuting the id sets must not change the breakdown")
}

func TestComputePriceBreakdown_Idempotence(t *testing.T) {
	catalog := []*Rule{
		percentRule(1, RuleKindFee, "Service charge", 7),
		percentRule(2, RuleKindTax, "VAT", 19),
	}
	base := decimal.RequireFromString("123.45")

	a := ComputePriceBreakdown(base, []int64{1}, []int64{2}, catalog)
	b := ComputePriceBreakdown(base, []int64{1}, []int64{2}, catalog)

	assert.Equal(t, a, b)
}

func TestComputePriceBreakdown_Monotonicity(t *testing.T) {
	catalog := []*Rule{
		percentRule(1, RuleKindFee, "Service charge", 5),
		fixedRule(2, RuleKindFee, "Setup fee", 40),
		percentRule(3, RuleKindTax, "VAT", 20),
	}
	base := decimal.NewFromInt(300)

	without := ComputePriceBreakdown(base, []int64{1}, []int64{3}, catalog)
	with := ComputePriceBreakdown(base, []int64{1, 2}, []int64{3}, catalog)

	assert.True(t, with.Total.GreaterThanOrEqual(without.Total),
		"adding a positive rule must not decrease the total")
	assert.True(t, without.Total.GreaterThanOrEqual(base),
		"total must never drop below the base price for non-negative rules")
}

func TestComputePriceBreakdown_DanglingRuleIgnored(t *testing.T) {
	catalog := []*Rule{
		percentRule(2, RuleKindTax, "VAT", 10),
	}

	// id=99 отсутствует в каталоге - молча пропускаем
	breakdown := ComputePriceBreakdown(decimal.NewFromInt(100), []int64{99}, []int64{2}, catalog)

	assert.Empty(t, breakdown.Fees)
	assert.True(t, breakdown.SubtotalAfterFees.Equal(decimal.NewFromInt(100)))
	assert.True(t, breakdown.Total.Equal(decimal.NewFromInt(110)))
}

func TestComputePriceBreakdown_KindIsAuthoritative(t *testing.T) {
	// Налог, оказавшийся в наборе сборов (и наоборот), игнорируется
	catalog := []*Rule{
		percentRule(1, RuleKindTax, "VAT", 20),
		fixedRule(2, RuleKindFee, "Cleaning fee", 15),
	}

	breakdown := ComputePriceBreakdown(decimal.NewFromInt(100), []int64{1}, []int64{2}, catalog)

	assert.Empty(t, breakdown.Fees)
	assert.Empty(t, breakdown.Taxes)
	assert.True(t, breakdown.Total.Equal(decimal.NewFromInt(100)))
}

func TestComputePriceBreakdown_FixedTaxIsFlatAdd(t *testing.T) {
	catalog := []*Rule{
		fixedRule(1, RuleKindTax, "Resort levy", 30),
		percentRule(2, RuleKindTax, "VAT", 10),
	}

	breakdown := ComputePriceBreakdown(decimal.NewFromInt(100), nil, []int64{1, 2}, catalog)

	require.Len(t, breakdown.Taxes, 2)
	// Оба налога считаются независимо от одного итога: 30 + 10 = 40
	assert.True(t, breakdown.Taxes[0].Amount.Equal(decimal.NewFromInt(30)))
	assert.True(t, breakdown.Taxes[1].Amount.Equal(decimal.NewFromInt(10)))
	assert.True(t, breakdown.Total.Equal(decimal.NewFromInt(140)))
}

func TestComputePriceBreakdown_LinesFollowCatalogOrder(t *testing.T) {
	catalog := []*Rule{
		fixedRule(5, RuleKindFee, "Setup fee", 10),
		fixedRule(3, RuleKindFee, "Cleaning fee", 20),
	}

	breakdown := ComputePriceBreakdown(decimal.NewFromInt(100), []int64{3, 5}, nil, catalog)

	require.Len(t, breakdown.Fees, 2)
	assert.Equal(t, int64(5), breakdown.Fees[0].RuleID)
	assert.Equal(t, int64(3), breakdown.Fees[1].RuleID)
}
