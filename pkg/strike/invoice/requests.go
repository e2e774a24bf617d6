package invoice

import (
	"encoding/json"

	"github.com/code-payments/strike-go/pkg/currency"
	"github.com/code-payments/strike-go/pkg/strike"
)

const (
	issueURLFormat          = "invoices/"
	issueForHandleURLFormat = "invoices/handle/%s/"
	findURLFormat           = "invoices/%s"
	cancelURLFormat         = "invoices/%s/cancel"
	listURLFormat           = "invoices/"

	DefaultDescription = "Tip"
)

// IssueData is the payload of an issue request.
type IssueData struct {
	CorrelationID string          `json:"correlationId,omitempty"`
	Description   string          `json:"description"`
	Amount        currency.Amount `json:"amount"`
}

// IssueRequest issues an invoice. When Handle is empty the invoice is issued
// for the account owning the API key.
type IssueRequest struct {
	strike.Endpoint

	Handle string
	Data   IssueData
}

// NewIssueRequest returns a request issuing an invoice for the account with the
// given handle.
func NewIssueRequest(endpoint strike.Endpoint, handle string, amount currency.Amount, description string) *IssueRequest {
	if len(description) == 0 {
		description = DefaultDescription
	}

	return &IssueRequest{
		Endpoint: endpoint,
		Handle:   handle,
		Data: IssueData{
			Description: description,
			Amount:      amount,
		},
	}
}

// WithCorrelationID sets the caller supplied correlation id.
func (r *IssueRequest) WithCorrelationID(correlationID string) *IssueRequest {
	r.Data.CorrelationID = correlationID
	return r
}

func (r *IssueRequest) URL() string {
	if len(r.Handle) == 0 {
		return r.Environment.URL(issueURLFormat)
	}
	return r.Environment.URL(issueForHandleURLFormat, strike.PathSegment(r.Handle))
}

func (r *IssueRequest) Body() (string, error) {
	body, err := json.Marshal(r.Data)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// FindRequest fetches a single invoice.
type FindRequest struct {
	strike.Endpoint

	InvoiceID string
}

func NewFindRequest(endpoint strike.Endpoint, invoiceID string) *FindRequest {
	return &FindRequest{
		Endpoint:  endpoint,
		InvoiceID: invoiceID,
	}
}

func (r *FindRequest) URL() string {
	return r.Environment.URL(findURLFormat, strike.PathSegment(r.InvoiceID))
}

// CancelRequest cancels an unpaid invoice.
type CancelRequest struct {
	strike.Endpoint

	InvoiceID string
}

func NewCancelRequest(endpoint strike.Endpoint, invoiceID string) *CancelRequest {
	return &CancelRequest{
		Endpoint:  endpoint,
		InvoiceID: invoiceID,
	}
}

func (r *CancelRequest) URL() string {
	return r.Environment.URL(cancelURLFormat, strike.PathSegment(r.InvoiceID))
}

// ListRequest lists invoices, optionally narrowed by an OData query.
type ListRequest struct {
	strike.Endpoint

	Query strike.Query
}

func NewListRequest(endpoint strike.Endpoint, query strike.Query) *ListRequest {
	return &ListRequest{
		Endpoint: endpoint,
		Query:    query,
	}
}

func (r *ListRequest) URL() string {
	return r.Environment.URL(listURLFormat) + r.Query.Encode()
}
