package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-VenueService/internal/domain"
)

// Request модели

// CreateRuleRequest запрос на создание правила ценообразования
type CreateRuleRequest struct {
	Name        string          `json:"name"`
	Kind        string          `json:"type"`        // "tax" | "fee"
	Calculation string          `json:"calculation"` // "percentage" | "fixed"
	Value       decimal.Decimal `json:"value"`
}

// ToDomainRule конвертирует request в domain модель
func (r *CreateRuleRequest) ToDomainRule() *domain.Rule {
	return &domain.Rule{
		Name:        r.Name,
		Kind:        domain.RuleKind(r.Kind),
		Calculation: domain.RuleCalculation(r.Calculation),
		Value:       r.Value,
	}
}

// Response модели

// RuleResponse ответ с данными правила
type RuleResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Kind        string    `json:"type"`
	Calculation string    `json:"calculation"`
	Value       string    `json:"value"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// RuleListResponse ответ со списком правил
type RuleListResponse struct {
	Rules []RuleResponse `json:"rules"`
}

// Методы конвертации

// FromDomainRule конвертирует domain модель в DTO
func FromDomainRule(r *domain.Rule) *RuleResponse {
	if r == nil {
		return nil
	}

	return &RuleResponse{
		ID:          r.ID,
		Name:        r.Name,
		Kind:        string(r.Kind),
		Calculation: string(r.Calculation),
		Value:       r.Value.String(),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// FromDomainRuleList конвертирует список domain моделей в DTO
func FromDomainRuleList(rules []*domain.Rule) *RuleListResponse {
	if rules == nil {
		return &RuleListResponse{
			Rules: []RuleResponse{},
		}
	}

	resp := &RuleListResponse{
		Rules: make([]RuleResponse, len(rules)),
	}

	for i, rule := range rules {
		if ruleResp := FromDomainRule(rule); ruleResp != nil {
			resp.Rules[i] = *ruleResp
		}
	}

	return resp
}
