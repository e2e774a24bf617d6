package subscription

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/code-payments/strike-go/pkg/strike"
	"github.com/code-payments/strike-go/pkg/testutil"
)

const webhookURL = "https://example.com/strike/webhooks/invoice_created"

type testEnv struct {
	ctx      context.Context
	server   *testutil.TestAPIServer
	endpoint strike.Endpoint
	client   *strike.Client
}

func setup(t *testing.T) *testEnv {
	server := testutil.NewTestAPIServer(t)
	return &testEnv{
		ctx:    context.Background(),
		server: server,
		endpoint: strike.Endpoint{
			APIKey:      "abc",
			Environment: strike.Environment{BaseURL: server.URL(), APIVersion: "v1"},
		},
		client: strike.NewClient(),
	}
}

func TestSettings_JSON(t *testing.T) {
	settings := Settings{
		WebhookURL:     "webhook_url",
		WebhookVersion: "webhook_version",
		Secret:         "secret",
		Enabled:        true,
		EventTypes:     []EventType{EventTypeInvoiceCreated},
	}

	body, err := settings.body()
	require.NoError(t, err)
	assert.Equal(t, `{"webhookUrl":"webhook_url","webhookVersion":"webhook_version","secret":"secret","enabled":true,"eventTypes":["invoice.created"]}`, body)
}

func TestGenerateSecret(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		secret, err := GenerateSecret()
		require.NoError(t, err)
		require.Len(t, secret, 30)
		assert.Regexp(t, "^[A-Za-z0-9]{30}$", secret)

		_, ok := seen[secret]
		require.False(t, ok)
		seen[secret] = struct{}{}
	}
}

func TestNewCreateRequest(t *testing.T) {
	endpoint := strike.NewEndpoint("abc")

	r, err := NewCreateRequest(endpoint, webhookURL, EventTypeInvoiceCreated, EventTypeInvoiceUpdated)
	require.NoError(t, err)
	assert.Equal(t, "https://api.strike.me/v1/subscriptions/", r.URL())
	assert.Equal(t, DefaultWebhookVersion, r.Settings.WebhookVersion)
	assert.True(t, r.Settings.Enabled)
	assert.Len(t, r.Settings.Secret, 30)

	_, err = NewCreateRequest(endpoint, "not a url", EventTypeInvoiceCreated)
	assert.ErrorIs(t, err, ErrInvalidWebhookURL)

	_, err = NewCreateRequest(endpoint, "ftp://example.com/hooks", EventTypeInvoiceCreated)
	assert.ErrorIs(t, err, ErrInvalidWebhookURL)

	_, err = NewCreateRequest(endpoint, webhookURL)
	assert.Equal(t, ErrMissingEventTypes, err)

	_, err = NewCreateRequest(endpoint, webhookURL, EventType("invoice.deleted"))
	assert.Error(t, err)
}

func TestCreate(t *testing.T) {
	env := setup(t)

	id := testutil.NewRandomID()
	env.server.HandleJSON(t, http.MethodPost, "/v1/subscriptions/", http.StatusCreated, map[string]interface{}{
		"id":             id,
		"webhookUrl":     webhookURL,
		"webhookVersion": "v1",
		"enabled":        true,
		"created":        "2021-11-12T20:08:21.337Z",
	})

	r, err := NewCreateRequest(env.endpoint, webhookURL, EventTypeInvoiceCreated)
	require.NoError(t, err)

	created, err := Create(env.ctx, env.client, r)
	require.NoError(t, err)
	assert.Equal(t, id, created.ID)
	assert.Equal(t, r.Settings.Secret, created.Secret)
	assert.Equal(t, []EventType{EventTypeInvoiceCreated}, created.EventTypes)

	requests := env.server.GetReceivedRequests()
	require.Len(t, requests, 1)

	var sent Settings
	require.NoError(t, json.Unmarshal([]byte(requests[0].Body), &sent))
	assert.Equal(t, r.Settings, sent)
}

func TestFindListUpdateDelete(t *testing.T) {
	env := setup(t)

	existing := Subscription{
		ID:             testutil.NewRandomID(),
		WebhookURL:     webhookURL,
		WebhookVersion: "v1",
		Enabled:        true,
		Created:        "2021-11-12T20:08:21.337Z",
		EventTypes:     []EventType{EventTypeInvoiceCreated},
	}
	disabled := existing
	disabled.Enabled = false

	path := "/v1/subscriptions/" + existing.ID
	env.server.HandleJSON(t, http.MethodGet, path, http.StatusOK, existing)
	env.server.HandleJSON(t, http.MethodGet, "/v1/subscriptions/", http.StatusOK, []Subscription{existing})
	env.server.HandleJSON(t, http.MethodPatch, path, http.StatusOK, disabled)
	env.server.Handle(http.MethodDelete, path, http.StatusNoContent, "")

	found, err := Find(env.ctx, env.client, NewItemRequest(env.endpoint, existing.ID))
	require.NoError(t, err)
	assert.Equal(t, existing, *found)

	listed, err := List(env.ctx, env.client, NewListRequest(env.endpoint))
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, existing, listed[0])

	found.Enabled = false
	found.Secret = "dfsdfsdfsdfsdfewf7sd5fs6df67"
	updated, err := Update(env.ctx, env.client, NewUpdateRequest(env.endpoint, found))
	require.NoError(t, err)
	assert.False(t, updated.Enabled)
	assert.Equal(t, found.Secret, updated.Secret)

	require.NoError(t, Delete(env.ctx, env.client, NewItemRequest(env.endpoint, existing.ID)))

	requests := env.server.GetReceivedRequests()
	require.Len(t, requests, 4)
	assert.Equal(t, http.MethodPatch, requests[2].Method)
	assert.JSONEq(t, `{"webhookUrl":"`+webhookURL+`","webhookVersion":"v1","secret":"dfsdfsdfsdfsdfewf7sd5fs6df67","enabled":false,"eventTypes":["invoice.created"]}`, requests[2].Body)
	assert.Equal(t, http.MethodDelete, requests[3].Method)
}

func TestDelete_NotFound(t *testing.T) {
	env := setup(t)

	err := Delete(env.ctx, env.client, NewItemRequest(env.endpoint, "missing"))
	responseErr := testutil.RequireErrorAs[*strike.HTTPResponseError](t, err)
	assert.Equal(t, http.StatusNotFound, responseErr.Status)

	assert.Equal(t, ErrMissingSubscriptionID, Delete(env.ctx, env.client, NewItemRequest(env.endpoint, "")))
	_, err = Find(env.ctx, env.client, NewItemRequest(env.endpoint, ""))
	assert.Equal(t, ErrMissingSubscriptionID, err)
	_, err = Update(env.ctx, env.client, NewUpdateRequest(env.endpoint, &Subscription{}))
	assert.Equal(t, ErrMissingSubscriptionID, err)
}
