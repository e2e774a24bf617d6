package strike

import (
	"net/http"
	"net/url"
)

const (
	contentTypeHeaderName   = "Content-Type"
	acceptHeaderName        = "Accept"
	authorizationHeaderName = "Authorization"

	jsonMediaType = "application/json"
)

// EmptyBody is the payload sent by POST and PATCH requests that do not provide
// one.
const EmptyBody = "{}"

// Requestable is the contract every endpoint request implements. The verb
// functions derive headers, body and target from it, so a request only states
// its credential and its fully resolved URL.
type Requestable interface {
	// Credential returns the bearer token authenticating the request.
	Credential() string

	// URL returns the fully resolved target, including any query string.
	URL() string
}

// BodyProvider is implemented by requests that send a JSON payload with POST
// or PATCH.
type BodyProvider interface {
	Body() (string, error)
}

// BodyOf returns the request's payload, or EmptyBody if it does not provide
// one.
func BodyOf(r Requestable) (string, error) {
	provider, ok := r.(BodyProvider)
	if !ok {
		return EmptyBody, nil
	}
	return provider.Body()
}

// AuthorizationHeaders returns the headers sent with every request. Only the
// credential varies.
func AuthorizationHeaders(r Requestable) http.Header {
	headers := make(http.Header, 3)
	headers.Set(contentTypeHeaderName, jsonMediaType)
	headers.Set(acceptHeaderName, jsonMediaType)
	headers.Set(authorizationHeaderName, "Bearer "+r.Credential())
	return headers
}

// Endpoint carries the credential and deployment shared by every request.
// Adapters embed it and supply their own URL.
type Endpoint struct {
	APIKey      string
	Environment Environment
}

// NewEndpoint returns an Endpoint for the Production environment.
func NewEndpoint(apiKey string) Endpoint {
	return Endpoint{
		APIKey:      apiKey,
		Environment: Production,
	}
}

// Credential implements Requestable.Credential.
func (e Endpoint) Credential() string {
	return e.APIKey
}

// PathSegment escapes an identifier for use as a single URL path segment.
func PathSegment(value string) string {
	return url.PathEscape(value)
}
