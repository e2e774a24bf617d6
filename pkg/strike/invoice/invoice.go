package invoice

import (
	"github.com/code-payments/strike-go/pkg/currency"
)

type State string

const (
	StateUnpaid    State = "UNPAID"
	StatePending   State = "PENDING"
	StatePaid      State = "PAID"
	StateCancelled State = "CANCELLED"
)

// Invoice is a request for payment issued to a Strike account.
type Invoice struct {
	InvoiceID     string          `json:"invoiceId"`
	Amount        currency.Amount `json:"amount"`
	State         State           `json:"state"`
	Created       string          `json:"created"`
	CorrelationID string          `json:"correlationId,omitempty"`
	Description   string          `json:"description"`
	IssuerID      string          `json:"issuerId"`
	ReceiverID    string          `json:"receiverId"`
	PayerID       string          `json:"payerId,omitempty"`
}

// Invoices is a page of invoices as returned by List.
type Invoices struct {
	Items []Invoice `json:"items"`
	Count int       `json:"count"`
}

func (s State) IsTerminal() bool {
	return s == StatePaid || s == StateCancelled
}
