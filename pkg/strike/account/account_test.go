package account

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/code-payments/strike-go/pkg/currency"
	"github.com/code-payments/strike-go/pkg/strike"
	"github.com/code-payments/strike-go/pkg/testutil"
)

func TestProfileRequest_URL(t *testing.T) {
	endpoint := strike.NewEndpoint("abc")

	assert.Equal(t, "https://api.strike.me/v1/accounts/handle/magog/profile", NewProfileByHandleRequest(endpoint, "magog").URL())
	assert.Equal(t, "https://api.strike.me/v1/accounts/0ba5f3aa/profile", NewProfileByIDRequest(endpoint, "0ba5f3aa").URL())
}

func TestGetProfile(t *testing.T) {
	server := testutil.NewTestAPIServer(t)
	endpoint := strike.Endpoint{
		APIKey:      "abc",
		Environment: strike.Environment{BaseURL: server.URL(), APIVersion: "v1"},
	}
	client := strike.NewClient()
	ctx := context.Background()

	expected := Profile{
		ID:         testutil.NewRandomID(),
		Handle:     "magog",
		CanReceive: true,
		Currencies: []CurrencySupport{
			{Currency: currency.BTC, IsAvailable: true},
			{Currency: currency.USD, IsDefaultCurrency: true, IsAvailable: true, IsInvoiceable: true},
		},
	}
	server.HandleJSON(t, http.MethodGet, "/v1/accounts/handle/magog/profile", http.StatusOK, expected)
	server.HandleJSON(t, http.MethodGet, "/v1/accounts/"+expected.ID+"/profile", http.StatusOK, expected)

	byHandle, err := GetByHandle(ctx, client, endpoint, "magog")
	require.NoError(t, err)
	assert.Equal(t, expected, *byHandle)

	byID, err := GetByID(ctx, client, endpoint, expected.ID)
	require.NoError(t, err)
	assert.Equal(t, expected, *byID)

	defaultCurrency, ok := byHandle.DefaultCurrency()
	require.True(t, ok)
	assert.Equal(t, currency.USD, defaultCurrency)
	assert.True(t, byHandle.CanBeInvoicedIn(currency.USD))
	assert.False(t, byHandle.CanBeInvoicedIn(currency.BTC))
	assert.False(t, byHandle.CanBeInvoicedIn(currency.EUR))

	_, err = GetByHandle(ctx, client, endpoint, "unknown")
	assert.Equal(t, http.StatusNotFound, strike.ResponseStatus(err))

	_, err = GetByHandle(ctx, client, endpoint, "")
	assert.Equal(t, ErrMissingIdentifier, err)
	assert.Len(t, server.GetReceivedRequests(), 3)
}
