package subscription

import (
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/code-payments/strike-go/pkg/netutil"
	"github.com/code-payments/strike-go/pkg/strike"
)

const (
	collectionURLFormat = "subscriptions/"
	itemURLFormat       = "subscriptions/%s"
)

// Settings is the payload of create and update requests.
type Settings struct {
	WebhookURL     string      `json:"webhookUrl"`
	WebhookVersion string      `json:"webhookVersion"`
	Secret         string      `json:"secret"`
	Enabled        bool        `json:"enabled"`
	EventTypes     []EventType `json:"eventTypes"`
}

func (s *Settings) Validate() error {
	if err := netutil.ValidateHttpUrl(s.WebhookURL, false); err != nil {
		return errors.Wrap(ErrInvalidWebhookURL, err.Error())
	}

	if len(s.EventTypes) == 0 {
		return ErrMissingEventTypes
	}
	for _, eventType := range s.EventTypes {
		if !eventType.IsValid() {
			return errors.Errorf("unsupported event type %q", eventType)
		}
	}
	return nil
}

func (s *Settings) body() (string, error) {
	body, err := json.Marshal(s)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// CreateRequest registers a new webhook subscription.
type CreateRequest struct {
	strike.Endpoint

	Settings Settings
}

// NewCreateRequest returns an enabled v1 subscription request for webhookURL
// with a freshly generated secret.
func NewCreateRequest(endpoint strike.Endpoint, webhookURL string, eventTypes ...EventType) (*CreateRequest, error) {
	secret, err := GenerateSecret()
	if err != nil {
		return nil, err
	}

	r := &CreateRequest{
		Endpoint: endpoint,
		Settings: Settings{
			WebhookURL:     webhookURL,
			WebhookVersion: DefaultWebhookVersion,
			Secret:         secret,
			Enabled:        true,
			EventTypes:     eventTypes,
		},
	}
	if err := r.Settings.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *CreateRequest) URL() string {
	return r.Environment.URL(collectionURLFormat)
}

func (r *CreateRequest) Body() (string, error) {
	return r.Settings.body()
}

// UpdateRequest replaces the settings of an existing subscription.
type UpdateRequest struct {
	strike.Endpoint

	SubscriptionID string
	Settings       Settings
}

// NewUpdateRequest returns a request that writes subscription's current
// fields back to the API.
func NewUpdateRequest(endpoint strike.Endpoint, subscription *Subscription) *UpdateRequest {
	webhookVersion := subscription.WebhookVersion
	if len(webhookVersion) == 0 {
		webhookVersion = DefaultWebhookVersion
	}

	return &UpdateRequest{
		Endpoint:       endpoint,
		SubscriptionID: subscription.ID,
		Settings: Settings{
			WebhookURL:     subscription.WebhookURL,
			WebhookVersion: webhookVersion,
			Secret:         subscription.Secret,
			Enabled:        subscription.Enabled,
			EventTypes:     subscription.EventTypes,
		},
	}
}

func (r *UpdateRequest) URL() string {
	return r.Environment.URL(itemURLFormat, strike.PathSegment(r.SubscriptionID))
}

func (r *UpdateRequest) Body() (string, error) {
	return r.Settings.body()
}

// ItemRequest addresses a single subscription for find and delete.
type ItemRequest struct {
	strike.Endpoint

	SubscriptionID string
}

func NewItemRequest(endpoint strike.Endpoint, subscriptionID string) *ItemRequest {
	return &ItemRequest{
		Endpoint:       endpoint,
		SubscriptionID: subscriptionID,
	}
}

func (r *ItemRequest) URL() string {
	return r.Environment.URL(itemURLFormat, strike.PathSegment(r.SubscriptionID))
}

// ListRequest lists every subscription of the account.
type ListRequest struct {
	strike.Endpoint
}

func NewListRequest(endpoint strike.Endpoint) *ListRequest {
	return &ListRequest{
		Endpoint: endpoint,
	}
}

func (r *ListRequest) URL() string {
	return r.Environment.URL(collectionURLFormat)
}
