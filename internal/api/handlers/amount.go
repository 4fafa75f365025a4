package handlers

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Amount денежная сумма во входящем JSON
// Принимает число или строку; мусорные и отрицательные значения
// приводятся к нулю на границе API, дальше по коду идут только
// корректные неотрицательные decimal
type Amount struct {
	decimal.Decimal
}

// UnmarshalJSON реализует json.Unmarshaler
func (a *Amount) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if raw == "" || raw == "null" {
		a.Decimal = decimal.Zero
		return nil
	}

	value, err := decimal.NewFromString(raw)
	if err != nil || value.IsNegative() {
		a.Decimal = decimal.Zero
		return nil
	}

	a.Decimal = value
	return nil
}
