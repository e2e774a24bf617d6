package netutil

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateHttpUrl(t *testing.T) {
	for _, tc := range []struct {
		value         string
		requireSecure bool
		isError       bool
	}{
		{value: "https://example.com/strike/webhooks", requireSecure: true},
		{value: "http://127.0.0.1:8080/webhook"},
		{value: "http://localhost:8080/webhook"},
		{value: "https://bücher.com/hooks"},
		{value: "http://example.com/webhook", requireSecure: true, isError: true},
		{value: "ftp://example.com/webhook", isError: true},
		{value: "example.com/webhook", isError: true},
		{value: "https:///webhook", isError: true},
		{value: "://bad", isError: true},
		{value: fmt.Sprintf("https://%s.com", strings.Repeat("a", 260)), isError: true},
	} {
		err := ValidateHttpUrl(tc.value, tc.requireSecure)
		if tc.isError {
			assert.Error(t, err, tc.value)
		} else {
			assert.NoError(t, err, tc.value)
		}
	}
}

func TestValidateDomainName(t *testing.T) {
	assert.NoError(t, ValidateDomainName("api.strike.me"))
	assert.NoError(t, ValidateDomainName("api.strike.me."))
	assert.Error(t, ValidateDomainName(""))
	assert.Error(t, ValidateDomainName("."))
	assert.Error(t, ValidateDomainName(strings.Repeat("a", 64)+".com"))
	assert.Error(t, ValidateDomainName(strings.Repeat("a.", 127)+"com"))
	assert.Error(t, ValidateDomainName("under_score.com"))
}

func TestNormalizeDomainName(t *testing.T) {
	normalized, err := NormalizeDomainName("bücher.com.")
	require.NoError(t, err)
	assert.Equal(t, "xn--bcher-kva.com", normalized)

	normalized, err = NormalizeDomainName("API.Strike.me")
	require.NoError(t, err)
	assert.Equal(t, "api.strike.me", normalized)
}
