package invoice

import (
	"context"

	"github.com/pkg/errors"

	"github.com/code-payments/strike-go/pkg/strike"
)

var (
	ErrInvalidAmount    = errors.New("invoice amount must be positive")
	ErrMissingInvoiceID = errors.New("invoice id is required")
)

// Issue creates an invoice. No request is sent if the amount is not positive.
func Issue(ctx context.Context, c *strike.Client, r *IssueRequest) (*Invoice, error) {
	if !r.Data.Amount.IsPositive() {
		return nil, errors.Wrapf(ErrInvalidAmount, "got %q", r.Data.Amount.Amount)
	}

	issued, err := strike.Post[Invoice](ctx, c, r)
	if err != nil {
		return nil, err
	}
	return &issued, nil
}

func Find(ctx context.Context, c *strike.Client, r *FindRequest) (*Invoice, error) {
	if len(r.InvoiceID) == 0 {
		return nil, ErrMissingInvoiceID
	}

	found, err := strike.Get[Invoice](ctx, c, r)
	if err != nil {
		return nil, err
	}
	return &found, nil
}

// Cancel cancels an unpaid invoice and returns it in its new state.
func Cancel(ctx context.Context, c *strike.Client, r *CancelRequest) (*Invoice, error) {
	if len(r.InvoiceID) == 0 {
		return nil, ErrMissingInvoiceID
	}

	cancelled, err := strike.Patch[Invoice](ctx, c, r)
	if err != nil {
		return nil, err
	}
	return &cancelled, nil
}

func List(ctx context.Context, c *strike.Client, r *ListRequest) (*Invoices, error) {
	listed, err := strike.Get[Invoices](ctx, c, r)
	if err != nil {
		return nil, err
	}
	return &listed, nil
}
