package strike

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRequest struct {
	credential string
	url        string
}

func (r *testRequest) Credential() string { return r.credential }
func (r *testRequest) URL() string        { return r.url }

type testBodyRequest struct {
	testRequest
	body    string
	bodyErr error
}

func (r *testBodyRequest) Body() (string, error) { return r.body, r.bodyErr }

func TestAuthorizationHeaders(t *testing.T) {
	headers := AuthorizationHeaders(&testRequest{credential: "abc", url: "https://api.strike.me/v1/invoices"})

	assert.Equal(t, http.Header{
		"Content-Type":  []string{"application/json"},
		"Accept":        []string{"application/json"},
		"Authorization": []string{"Bearer abc"},
	}, headers)

	// Only the credential affects the header set
	other := AuthorizationHeaders(&testRequest{credential: "xyz", url: "https://example.com"})
	assert.Len(t, other, 3)
	assert.Equal(t, "Bearer xyz", other.Get("Authorization"))
	assert.Equal(t, headers.Get("Content-Type"), other.Get("Content-Type"))
	assert.Equal(t, headers.Get("Accept"), other.Get("Accept"))
}

func TestBodyOf(t *testing.T) {
	body, err := BodyOf(&testRequest{})
	require.NoError(t, err)
	assert.Equal(t, "{}", body)

	body, err = BodyOf(&testBodyRequest{body: `{"amount":"1.00"}`})
	require.NoError(t, err)
	assert.Equal(t, `{"amount":"1.00"}`, body)

	_, err = BodyOf(&testBodyRequest{bodyErr: errors.New("cannot encode")})
	assert.Error(t, err)
}

func TestEnvironment_URL(t *testing.T) {
	for _, tc := range []struct {
		env      Environment
		format   string
		args     []interface{}
		expected string
	}{
		{Production, "invoices/%s", []interface{}{"abc"}, "https://api.strike.me/v1/invoices/abc"},
		{Production, "rates/ticker/", nil, "https://api.strike.me/v1/rates/ticker/"},
		{Environment{}, "/subscriptions/", nil, "https://api.strike.me/v1/subscriptions/"},
		{Environment{BaseURL: "http://127.0.0.1:8080/", APIVersion: "/v2/"}, "invoices", nil, "http://127.0.0.1:8080/v2/invoices"},
	} {
		assert.Equal(t, tc.expected, tc.env.URL(tc.format, tc.args...))
	}
}

func TestQuery_Encode(t *testing.T) {
	filter := "invoiceId eq X"
	order := "created desc"
	skip := uint32(5)
	top := uint32(10)

	for _, tc := range []struct {
		query    Query
		expected string
	}{
		{Query{}, ""},
		{Query{Filter: &filter, Top: &top}, "?filter=invoiceId%20eq%20X&top=10"},
		{Query{Top: &top, Skip: &skip, Order: &order, Filter: &filter}, "?filter=invoiceId%20eq%20X&order=created%20desc&skip=5&top=10"},
		{Query{Skip: &skip}, "?skip=5"},
	} {
		assert.Equal(t, tc.expected, tc.query.Encode())
	}
}

func TestEndpoint(t *testing.T) {
	endpoint := NewEndpoint("abc")
	assert.Equal(t, "abc", endpoint.Credential())
	assert.Equal(t, Production, endpoint.Environment)

	assert.Equal(t, "magog", PathSegment("magog"))
	assert.Equal(t, "a%2Fb%20c", PathSegment("a/b c"))
	assert.Equal(t, "..%3F", PathSegment("..?"))
}
