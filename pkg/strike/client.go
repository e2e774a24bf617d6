package strike

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/code-payments/strike-go/pkg/metrics"
)

const (
	metricsStructName = "strike.client"

	requestDurationMetricName = "Strike.Request.Duration"
	responseErrorEventName    = "StrikeHttpResponseError"
)

// HTTPClient is the transport used to reach the API. *http.Client satisfies
// it; implementations must be safe for concurrent use.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client executes Requestable values against the API. It holds configuration
// only and may be shared across goroutines.
type Client struct {
	log        *logrus.Entry
	httpClient HTTPClient
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient overrides the transport.
func WithHTTPClient(httpClient HTTPClient) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTimeout configures a transport level timeout on a default *http.Client.
// It replaces any transport set by an earlier WithHTTPClient.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient = &http.Client{Timeout: timeout}
	}
}

// WithLogger overrides the log entry the client writes to.
func WithLogger(log *logrus.Entry) ClientOption {
	return func(c *Client) {
		c.log = log
	}
}

// NewClient returns a new Client. Without options it uses http.DefaultClient.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		log:        logrus.StandardLogger().WithField("type", "strike/client"),
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Post sends r with POST and decodes a 201 Created response into T.
func Post[T any](ctx context.Context, c *Client, r Requestable) (T, error) {
	var result T
	err := c.execute(ctx, http.MethodPost, http.StatusCreated, r, &result)
	return result, err
}

// Get sends r with GET and decodes a 200 OK response into T.
func Get[T any](ctx context.Context, c *Client, r Requestable) (T, error) {
	var result T
	err := c.execute(ctx, http.MethodGet, http.StatusOK, r, &result)
	return result, err
}

// Patch sends r with PATCH and decodes a 200 OK response into T.
func Patch[T any](ctx context.Context, c *Client, r Requestable) (T, error) {
	var result T
	err := c.execute(ctx, http.MethodPatch, http.StatusOK, r, &result)
	return result, err
}

// Delete sends r with DELETE and expects 204 No Content. The response body is
// not read on success.
func (c *Client) Delete(ctx context.Context, r Requestable) error {
	return c.execute(ctx, http.MethodDelete, http.StatusNoContent, r, nil)
}

// execute performs exactly one exchange for r. The returned error is always one
// of *TransportError, *HTTPResponseError or *SerializationError. A nil out
// skips response decoding.
func (c *Client) execute(ctx context.Context, method string, expectedStatus int, r Requestable, out interface{}) error {
	tracer := metrics.TraceMethodCall(ctx, metricsStructName, method)
	defer tracer.End()

	url := r.URL()
	tracer.AddAttribute("url", url)

	log := c.log.WithFields(logrus.Fields{
		"method": method,
		"url":    url,
	})

	err := c.submitRequest(ctx, log, method, url, expectedStatus, r, out)
	if err != nil {
		tracer.OnError(err)
		log.WithError(err).Debug("strike request failed")
	}
	return err
}

func (c *Client) submitRequest(ctx context.Context, log *logrus.Entry, method, url string, expectedStatus int, r Requestable, out interface{}) error {
	var body io.Reader = http.NoBody
	if method == http.MethodPost || method == http.MethodPatch {
		payload, err := BodyOf(r)
		if err != nil {
			return &SerializationError{Message: "failed to encode request body: " + err.Error()}
		}
		body = strings.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return &TransportError{Message: "failed to create request: " + err.Error()}
	}
	req.Header = AuthorizationHeaders(r)

	start := time.Now()
	external := metrics.TraceExternalRequest(req)
	resp, err := c.httpClient.Do(req)
	external.End(resp)
	metrics.RecordDuration(ctx, requestDurationMetricName, time.Since(start))
	if err != nil {
		return &TransportError{Message: err.Error()}
	}
	defer resp.Body.Close()

	log = log.WithField("status", resp.StatusCode)

	if resp.StatusCode != expectedStatus {
		// Best effort; an unreadable body is reported as empty.
		responseBody, err := io.ReadAll(resp.Body)
		if err != nil {
			responseBody = nil
		}

		metrics.RecordEvent(ctx, responseErrorEventName, map[string]interface{}{
			"method":   method,
			"status":   resp.StatusCode,
			"expected": expectedStatus,
		})

		return &HTTPResponseError{
			Status: resp.StatusCode,
			Body:   string(responseBody),
		}
	}

	log.Trace("strike request succeeded")

	if out == nil {
		return nil
	}

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &SerializationError{Message: "failed to read response body: " + err.Error()}
	}

	if err := json.Unmarshal(responseBody, out); err != nil {
		return &SerializationError{Message: "failed to decode response: " + err.Error()}
	}
	return nil
}
