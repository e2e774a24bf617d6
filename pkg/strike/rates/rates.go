package rates

import (
	"context"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/code-payments/strike-go/pkg/strike"
)

const tickerURLFormat = "rates/ticker/"

// Rate is a single ticker entry: one unit of SourceCurrency is worth Amount
// units of TargetCurrency.
type Rate struct {
	Amount         string `json:"amount"`
	SourceCurrency string `json:"sourceCurrency"`
	TargetCurrency string `json:"targetCurrency"`
}

func (r Rate) Decimal() (decimal.Decimal, error) {
	value, err := decimal.NewFromString(r.Amount)
	if err != nil {
		return decimal.Zero, errors.Wrapf(err, "invalid %s/%s rate %q", r.SourceCurrency, r.TargetCurrency, r.Amount)
	}
	return value, nil
}

// Request fetches the current ticker.
type Request struct {
	strike.Endpoint
}

func NewRequest(endpoint strike.Endpoint) *Request {
	return &Request{
		Endpoint: endpoint,
	}
}

func (r *Request) URL() string {
	return r.Environment.URL(tickerURLFormat)
}

// List returns every currency pair on the ticker.
func List(ctx context.Context, c *strike.Client, r *Request) ([]Rate, error) {
	return strike.Get[[]Rate](ctx, c, r)
}
