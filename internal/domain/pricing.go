package domain

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// PriceLine represents a single applied fee or tax in a price breakdown
type PriceLine struct {
	RuleID int64
	Name   string
	Amount decimal.Decimal
}

// PriceBreakdown is the itemized result of applying selected fees and taxes
// to a base price. It is computed on every call and never stored.
type PriceBreakdown struct {
	BasePrice         decimal.Decimal
	Fees              []PriceLine
	Taxes             []PriceLine
	SubtotalAfterFees decimal.Decimal
	Total             decimal.Decimal
}

// ComputePriceBreakdown applies the selected fee and tax rules to a base price.
//
// Порядок вычислений фиксирован и является бизнес-правилом, менять его нельзя:
//  1. Каждый сбор (fee) считается от ИСХОДНОЙ базовой цены, а не от
//     накопленного промежуточного итога - поэтому набор сборов коммутативен.
//  2. subtotalAfterFees = basePrice + сумма всех сборов.
//  3. Каждый налог считается независимо от ОДНОГО И ТОГО ЖЕ subtotalAfterFees,
//     без начисления налога на налог.
//  4. total = subtotalAfterFees + сумма всех налогов.
//
// Ссылки на отсутствующие в каталоге правила молча игнорируются: правило
// могли удалить уже после того, как его выбрали в пакете или услуге.
// Принадлежность правила (tax/fee) определяется каталогом, а не тем,
// в каком наборе оказался его id.
//
// Строки результата следуют порядку каталога, поэтому порядок элементов в
// feeIDs/taxIDs не влияет ни на итог, ни на отдельные суммы.
func ComputePriceBreakdown(basePrice decimal.Decimal, feeIDs, taxIDs []int64, catalog []*Rule) *PriceBreakdown {
	feeSet := make(map[int64]struct{}, len(feeIDs))
	for _, id := range feeIDs {
		feeSet[id] = struct{}{}
	}
	taxSet := make(map[int64]struct{}, len(taxIDs))
	for _, id := range taxIDs {
		taxSet[id] = struct{}{}
	}

	breakdown := &PriceBreakdown{
		BasePrice: basePrice,
		Fees:      []PriceLine{},
		Taxes:     []PriceLine{},
	}

	// Шаг 1-2: сборы от базовой цены
	feesTotal := decimal.Zero
	for _, rule := range catalog {
		if rule == nil || !rule.IsFee() {
			continue
		}
		if _, ok := feeSet[rule.ID]; !ok {
			continue
		}

		amount := rule.Value
		if rule.IsPercentage() {
			amount = basePrice.Mul(rule.Value).Div(hundred)
		}

		breakdown.Fees = append(breakdown.Fees, PriceLine{
			RuleID: rule.ID,
			Name:   rule.Name,
			Amount: amount,
		})
		feesTotal = feesTotal.Add(amount)
	}

	breakdown.SubtotalAfterFees = basePrice.Add(feesTotal)

	// Шаг 3: налоги от промежуточного итога после сборов
	taxesTotal := decimal.Zero
	for _, rule := range catalog {
		if rule == nil || !rule.IsTax() {
			continue
		}
		if _, ok := taxSet[rule.ID]; !ok {
			continue
		}

		// Фиксированный налог в этой модели - плоская надбавка к тому же итогу
		amount := rule.Value
		if rule.IsPercentage() {
			amount = breakdown.SubtotalAfterFees.Mul(rule.Value).Div(hundred)
		}

		breakdown.Taxes = append(breakdown.Taxes, PriceLine{
			RuleID: rule.ID,
			Name:   rule.Name,
			Amount: amount,
		})
		taxesTotal = taxesTotal.Add(amount)
	}

	breakdown.Total = breakdown.SubtotalAfterFees.Add(taxesTotal)

	return breakdown
}
