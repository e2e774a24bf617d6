package webhook

import (
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/code-payments/strike-go/pkg/strike/subscription"
)

// Event is a webhook delivery. It only names the changed entity; the entity
// itself is fetched separately, e.g. with invoice.Find.
type Event struct {
	ID              string                 `json:"id"`
	EventType       subscription.EventType `json:"eventType"`
	WebhookVersion  string                 `json:"webhookVersion"`
	Data            EventData              `json:"data"`
	Created         string                 `json:"created"`
	DeliverySuccess bool                   `json:"deliverySuccess"`
}

type EventData struct {
	EntityID string   `json:"entityId"`
	Changes  []string `json:"changes,omitempty"`
}

// Parse decodes and validates a delivery body.
func Parse(body []byte) (*Event, error) {
	var event Event
	if err := json.Unmarshal(body, &event); err != nil {
		return nil, errors.Wrap(err, "invalid event payload")
	}

	if len(event.ID) == 0 {
		return nil, errors.New("event id is missing")
	}
	if len(event.Data.EntityID) == 0 {
		return nil, errors.New("event entity id is missing")
	}
	return &event, nil
}

// HasChanged reports whether field is listed among the event's changes.
func (e *Event) HasChanged(field string) bool {
	for _, changed := range e.Data.Changes {
		if changed == field {
			return true
		}
	}
	return false
}
