package quote

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/code-payments/strike-go/pkg/currency"
	"github.com/code-payments/strike-go/pkg/strike"
)

const requestURLFormat = "invoices/%s/quote"

var ErrMissingInvoiceID = errors.New("invoice id is required")

// Quote is a lightning payment request for an invoice, converted from the
// payer's source currency into the invoice's target currency.
type Quote struct {
	QuoteID         string          `json:"quoteId"`
	Description     string          `json:"description"`
	LnInvoice       string          `json:"lnInvoice"`
	OnchainAddress  string          `json:"onchainAddress,omitempty"`
	Expiration      string          `json:"expiration"`
	ExpirationInSec int64           `json:"expirationInSec"`
	SourceAmount    currency.Amount `json:"sourceAmount"`
	TargetAmount    currency.Amount `json:"targetAmount"`
	ConversionRate  ConversionRate  `json:"conversionRate"`
}

type ConversionRate struct {
	Amount         string        `json:"amount"`
	SourceCurrency currency.Code `json:"sourceCurrency"`
	TargetCurrency currency.Code `json:"targetCurrency"`
}

// ExpiresAt parses the quote's expiration timestamp.
func (q *Quote) ExpiresAt() (time.Time, error) {
	expiresAt, err := time.Parse(time.RFC3339Nano, q.Expiration)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "invalid expiration %q", q.Expiration)
	}
	return expiresAt, nil
}

// Rate parses the conversion rate.
func (r ConversionRate) Rate() (decimal.Decimal, error) {
	rate, err := decimal.NewFromString(r.Amount)
	if err != nil {
		return decimal.Zero, errors.Wrapf(err, "invalid conversion rate %q", r.Amount)
	}
	return rate, nil
}

// Request generates a quote for an existing invoice. The request has no
// payload.
type Request struct {
	strike.Endpoint

	InvoiceID string
}

func NewRequest(endpoint strike.Endpoint, invoiceID string) *Request {
	return &Request{
		Endpoint:  endpoint,
		InvoiceID: invoiceID,
	}
}

func (r *Request) URL() string {
	return r.Environment.URL(requestURLFormat, strike.PathSegment(r.InvoiceID))
}

// Generate requests a new quote for the invoice.
func Generate(ctx context.Context, c *strike.Client, r *Request) (*Quote, error) {
	if len(r.InvoiceID) == 0 {
		return nil, ErrMissingInvoiceID
	}

	generated, err := strike.Post[Quote](ctx, c, r)
	if err != nil {
		return nil, err
	}
	return &generated, nil
}
