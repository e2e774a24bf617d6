package testutil

import (
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTestAPIServer(t *testing.T) {
	server := NewTestAPIServer(t)
	server.HandleJSON(t, http.MethodPost, "/v1/invoices", http.StatusCreated, map[string]string{"invoiceId": "1"})

	resp, err := http.Post(server.URL()+"/v1/invoices?top=1", "application/json", strings.NewReader(`{"a":1}`))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.JSONEq(t, `{"invoiceId":"1"}`, string(body))

	requests := server.GetReceivedRequests()
	require.Len(t, requests, 1)
	assert.Equal(t, http.MethodPost, requests[0].Method)
	assert.Equal(t, "/v1/invoices", requests[0].Path)
	assert.Equal(t, "top=1", requests[0].RawQuery)
	assert.Equal(t, `{"a":1}`, requests[0].Body)

	// Unknown routes
	resp, err = http.Get(server.URL() + "/v1/invoices")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	server.SimulateErrors()
	server.SimulateDelay(10 * time.Millisecond)
	start := time.Now()
	resp, err = http.Post(server.URL()+"/v1/invoices", "application/json", http.NoBody)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.True(t, time.Since(start) >= 10*time.Millisecond)

	server.Reset()
	assert.Empty(t, server.GetReceivedRequests())
	resp, err = http.Post(server.URL()+"/v1/invoices", "application/json", http.NoBody)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	assert.NotEqual(t, NewRandomID(), NewRandomID())
	assert.Len(t, NewRandomID(), 36)
}
