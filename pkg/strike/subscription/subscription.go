package subscription

import (
	"crypto/rand"
	"math/big"

	"github.com/pkg/errors"
)

type EventType string

const (
	EventTypeInvoiceCreated EventType = "invoice.created"
	EventTypeInvoiceUpdated EventType = "invoice.updated"
)

const (
	DefaultWebhookVersion = "v1"

	secretLength   = 30
	secretAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

var (
	ErrInvalidWebhookURL     = errors.New("invalid webhook url")
	ErrMissingEventTypes     = errors.New("at least one event type is required")
	ErrMissingSubscriptionID = errors.New("subscription id is required")
)

// Subscription is a registered webhook. Secret is only known locally: the API
// never returns it, so operations that send one copy it onto the result.
type Subscription struct {
	ID             string      `json:"id"`
	WebhookURL     string      `json:"webhookUrl"`
	WebhookVersion string      `json:"webhookVersion"`
	Enabled        bool        `json:"enabled"`
	Created        string      `json:"created,omitempty"`
	EventTypes     []EventType `json:"eventTypes"`
	Secret         string      `json:"secret,omitempty"`
}

func (t EventType) IsValid() bool {
	switch t {
	case EventTypeInvoiceCreated, EventTypeInvoiceUpdated:
		return true
	}
	return false
}

// GenerateSecret returns a random alphanumeric secret used to sign webhook
// deliveries.
func GenerateSecret() (string, error) {
	alphabetSize := big.NewInt(int64(len(secretAlphabet)))

	secret := make([]byte, secretLength)
	for i := range secret {
		index, err := rand.Int(rand.Reader, alphabetSize)
		if err != nil {
			return "", errors.Wrap(err, "error generating secret")
		}
		secret[i] = secretAlphabet[index.Int64()]
	}
	return string(secret), nil
}
