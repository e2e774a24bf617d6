package rates

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/code-payments/strike-go/pkg/currency"
	"github.com/code-payments/strike-go/pkg/metrics"
	"github.com/code-payments/strike-go/pkg/strike"
)

const (
	metricsStructName = "strike.rates.exchange"
)

type exchangeClient struct {
	log      *logrus.Entry
	client   *strike.Client
	endpoint strike.Endpoint
}

// NewExchangeClient returns a currency.Client backed by the Strike ticker.
func NewExchangeClient(client *strike.Client, endpoint strike.Endpoint) currency.Client {
	return &exchangeClient{
		log:      logrus.StandardLogger().WithField("type", "strike/rates/exchange"),
		client:   client,
		endpoint: endpoint,
	}
}

// GetCurrentRates implements currency.Client.GetCurrentRates
func (c *exchangeClient) GetCurrentRates(ctx context.Context, base currency.Code) (*currency.ExchangeData, error) {
	tracer := metrics.TraceMethodCall(ctx, metricsStructName, "GetCurrentRates")
	defer tracer.End()

	ticker, err := List(ctx, c.client, NewRequest(c.endpoint))
	if err != nil {
		tracer.OnError(err)
		return nil, err
	}

	data, err := c.toExchangeData(base, ticker)
	if err != nil {
		tracer.OnError(err)
		return nil, err
	}
	return data, nil
}

// GetHistoricalRates implements currency.Client.GetHistoricalRates
func (c *exchangeClient) GetHistoricalRates(_ context.Context, _ currency.Code, _ time.Time) (*currency.ExchangeData, error) {
	return nil, currency.ErrHistoricalRatesUnsupported
}

func (c *exchangeClient) toExchangeData(base currency.Code, ticker []Rate) (*currency.ExchangeData, error) {
	rates := make(map[currency.Code]float64)
	for _, rate := range ticker {
		source, err := currency.ParseCode(rate.SourceCurrency)
		if err != nil || source != base {
			continue
		}

		target, err := currency.ParseCode(rate.TargetCurrency)
		if err != nil {
			continue
		}

		value, err := rate.Decimal()
		if err != nil {
			c.log.WithError(err).Warn("skipping malformed ticker entry")
			continue
		}

		rates[target], _ = value.Float64()
	}

	if len(rates) == 0 {
		return nil, currency.ErrInvalidBase
	}

	return &currency.ExchangeData{
		Base:      base,
		Rates:     rates,
		Timestamp: time.Now(),
	}, nil
}
