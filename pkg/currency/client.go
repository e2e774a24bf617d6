package currency

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidBase = errors.New("invalid base currency")
	ErrMissingRate = errors.New("no exchange rate for currency")

	ErrHistoricalRatesUnsupported = errors.New("historical rates are not supported")
)

// ExchangeData is a snapshot of the rates from Base to every other currency a
// provider quotes.
type ExchangeData struct {
	Base      Code
	Rates     map[Code]float64
	Timestamp time.Time
}

// Convert prices amount, which must be in the base currency, in target.
func (d *ExchangeData) Convert(amount Amount, target Code) (Amount, error) {
	if amount.Currency != d.Base {
		return Amount{}, errors.Wrapf(ErrInvalidBase, "amount is in %s, rates are from %s", amount.Currency, d.Base)
	}

	rate, ok := d.Rates[target]
	if !ok {
		return Amount{}, errors.Wrapf(ErrMissingRate, "%s to %s", d.Base, target)
	}

	value, err := amount.Decimal()
	if err != nil {
		return Amount{}, err
	}
	return NewAmount(value.Mul(decimal.NewFromFloat(rate)), target), nil
}

type Client interface {
	// GetCurrentRates gets the current set of exchange rates against a base
	// currency.
	GetCurrentRates(ctx context.Context, base Code) (*ExchangeData, error)

	// GetHistoricalRates gets the historical set of exchange rates against a
	// base currency. Providers without history return ErrHistoricalRatesUnsupported.
	GetHistoricalRates(ctx context.Context, base Code, timestamp time.Time) (*ExchangeData, error)
}
