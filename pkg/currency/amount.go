package currency

import (
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// Amount is a monetary value as exchanged with the API: a decimal string and
// its currency.
type Amount struct {
	Amount   string `json:"amount"`
	Currency Code   `json:"currency"`
}

// NewAmount formats value with the currency's number of decimals, rounding
// half away from zero.
func NewAmount(value decimal.Decimal, code Code) Amount {
	return Amount{
		Amount:   value.StringFixed(int32(GetDecimals(code))),
		Currency: code,
	}
}

// NewAmountFromString parses value as a decimal and formats it via NewAmount.
func NewAmountFromString(value string, code Code) (Amount, error) {
	parsed, err := decimal.NewFromString(value)
	if err != nil {
		return Amount{}, errors.Wrapf(err, "invalid amount %q", value)
	}
	return NewAmount(parsed, code), nil
}

// Decimal parses the amount string.
func (a Amount) Decimal() (decimal.Decimal, error) {
	parsed, err := decimal.NewFromString(a.Amount)
	if err != nil {
		return decimal.Zero, errors.Wrapf(err, "invalid amount %q", a.Amount)
	}
	return parsed, nil
}

// IsPositive reports whether the amount parses to a value greater than zero.
func (a Amount) IsPositive() bool {
	parsed, err := a.Decimal()
	return err == nil && parsed.IsPositive()
}
