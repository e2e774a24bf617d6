package subscription

import (
	"context"

	"github.com/code-payments/strike-go/pkg/strike"
)

// Create registers the subscription. The secret and event types sent are
// copied onto the result.
func Create(ctx context.Context, c *strike.Client, r *CreateRequest) (*Subscription, error) {
	if err := r.Settings.Validate(); err != nil {
		return nil, err
	}

	created, err := strike.Post[Subscription](ctx, c, r)
	if err != nil {
		return nil, err
	}

	created.Secret = r.Settings.Secret
	created.EventTypes = r.Settings.EventTypes
	return &created, nil
}

func Find(ctx context.Context, c *strike.Client, r *ItemRequest) (*Subscription, error) {
	if len(r.SubscriptionID) == 0 {
		return nil, ErrMissingSubscriptionID
	}

	found, err := strike.Get[Subscription](ctx, c, r)
	if err != nil {
		return nil, err
	}
	return &found, nil
}

func List(ctx context.Context, c *strike.Client, r *ListRequest) ([]Subscription, error) {
	return strike.Get[[]Subscription](ctx, c, r)
}

// Update writes the request's settings. The secret sent is copied onto the
// result.
func Update(ctx context.Context, c *strike.Client, r *UpdateRequest) (*Subscription, error) {
	if len(r.SubscriptionID) == 0 {
		return nil, ErrMissingSubscriptionID
	}
	if err := r.Settings.Validate(); err != nil {
		return nil, err
	}

	updated, err := strike.Patch[Subscription](ctx, c, r)
	if err != nil {
		return nil, err
	}

	updated.Secret = r.Settings.Secret
	return &updated, nil
}

func Delete(ctx context.Context, c *strike.Client, r *ItemRequest) error {
	if len(r.SubscriptionID) == 0 {
		return ErrMissingSubscriptionID
	}

	return c.Delete(ctx, r)
}
