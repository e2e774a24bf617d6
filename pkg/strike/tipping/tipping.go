package tipping

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/code-payments/strike-go/pkg/currency"
	"github.com/code-payments/strike-go/pkg/metrics"
	"github.com/code-payments/strike-go/pkg/strike"
	"github.com/code-payments/strike-go/pkg/strike/invoice"
	"github.com/code-payments/strike-go/pkg/strike/quote"
)

const (
	metricsStructName = "strike.tipping"

	tipIssuedEventName = "StrikeTipIssued"
)

var ErrMissingHandle = errors.New("account handle is required")

// Request describes a tip paid to a Strike account over lightning.
type Request struct {
	Endpoint      strike.Endpoint
	Handle        string
	Amount        currency.Amount
	Description   string
	CorrelationID string
}

func NewRequest(endpoint strike.Endpoint, handle string, amount currency.Amount) *Request {
	return &Request{
		Endpoint:    endpoint,
		Handle:      handle,
		Amount:      amount,
		Description: invoice.DefaultDescription,
	}
}

// Tip issues an invoice to the recipient and returns a quote whose lightning
// invoice pays it. The invoice is left unpaid if the quote cannot be generated.
func Tip(ctx context.Context, c *strike.Client, r *Request) (*quote.Quote, error) {
	tracer := metrics.TraceMethodCall(ctx, metricsStructName, "Tip")
	defer tracer.End()

	log := logrus.StandardLogger().WithFields(logrus.Fields{
		"type":   "strike/tipping",
		"handle": r.Handle,
		"amount": r.Amount.Amount,
	})

	if len(r.Handle) == 0 {
		return nil, ErrMissingHandle
	}

	issueRequest := invoice.NewIssueRequest(r.Endpoint, r.Handle, r.Amount, r.Description).
		WithCorrelationID(r.CorrelationID)

	issued, err := invoice.Issue(ctx, c, issueRequest)
	if err != nil {
		tracer.OnError(err)
		log.WithError(err).Warn("failure issuing tip invoice")
		return nil, err
	}

	log = log.WithField("invoice", issued.InvoiceID)

	generated, err := quote.Generate(ctx, c, quote.NewRequest(r.Endpoint, issued.InvoiceID))
	if err != nil {
		tracer.OnError(err)
		log.WithError(err).Warn("failure generating tip quote")
		return nil, err
	}

	metrics.RecordEvent(ctx, tipIssuedEventName, map[string]interface{}{
		"currency": r.Amount.Currency.String(),
		"amount":   r.Amount.Amount,
	})
	log.WithField("quote", generated.QuoteID).Debug("tip quote generated")

	return generated, nil
}
