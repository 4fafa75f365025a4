package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RuleKind determines whether a pricing rule is a tax or a fee
type RuleKind string

const (
	RuleKindTax RuleKind = "tax"
	RuleKindFee RuleKind = "fee"
)

// RuleCalculation determines how a rule value is applied
type RuleCalculation string

const (
	CalculationPercentage RuleCalculation = "percentage"
	CalculationFixed      RuleCalculation = "fixed"
)

// Rule represents an immutable tax or fee definition from the pricing catalog.
// Value holds percentage points for percentage rules and a currency amount for fixed ones.
type Rule struct {
	ID          int64
	Name        string
	Kind        RuleKind
	Calculation RuleCalculation
	Value       decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsTax returns true if the rule is a tax
func (r *Rule) IsTax() bool {
	return r.Kind == RuleKindTax
}

// IsFee returns true if the rule is a fee
func (r *Rule) IsFee() bool {
	return r.Kind == RuleKindFee
}

// IsPercentage returns true if the rule value is applied as a percentage
func (r *Rule) IsPercentage() bool {
	return r.Calculation == CalculationPercentage
}

// IsValidRuleKind reports whether the given string is a known rule kind
func IsValidRuleKind(kind string) bool {
	return kind == string(RuleKindTax) || kind == string(RuleKindFee)
}

// IsValidRuleCalculation reports whether the given string is a known calculation mode
func IsValidRuleCalculation(calculation string) bool {
	return calculation == string(CalculationPercentage) || calculation == string(CalculationFixed)
}
