package strike

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/code-payments/strike-go/pkg/config"
	"github.com/code-payments/strike-go/pkg/config/env"
)

const (
	envConfigPrefix = "STRIKE_"

	APIKeyConfigEnvName = envConfigPrefix + "API_KEY"
	defaultAPIKey       = ""

	BaseURLConfigEnvName = envConfigPrefix + "BASE_URL"
	defaultBaseURL       = DefaultBaseURL

	APIVersionConfigEnvName = envConfigPrefix + "API_VERSION"
	defaultAPIVersion       = DefaultAPIVersion

	HTTPTimeoutConfigEnvName = envConfigPrefix + "HTTP_TIMEOUT"
	defaultHTTPTimeout       = 30 * time.Second
)

// ErrMissingAPIKey is returned when no API key is configured.
var ErrMissingAPIKey = errors.New("strike: api key is not configured")

// Config is a source of client settings. The client itself never reads
// ambient state; callers resolve a Config and pass the results in.
type Config struct {
	APIKey      config.String
	BaseURL     config.String
	APIVersion  config.String
	HTTPTimeout config.Duration
}

// NewEnvConfig returns a Config backed by STRIKE_* environment variables.
func NewEnvConfig() *Config {
	return &Config{
		APIKey:      env.NewStringConfig(APIKeyConfigEnvName, defaultAPIKey),
		BaseURL:     env.NewStringConfig(BaseURLConfigEnvName, defaultBaseURL),
		APIVersion:  env.NewStringConfig(APIVersionConfigEnvName, defaultAPIVersion),
		HTTPTimeout: env.NewDurationConfig(HTTPTimeoutConfigEnvName, defaultHTTPTimeout),
	}
}

// Credential returns the configured API key.
func (c *Config) Credential(ctx context.Context) (string, error) {
	apiKey, err := c.APIKey.GetSafe(ctx)
	if err != nil {
		return "", errors.Wrap(err, "error getting api key")
	}
	if len(apiKey) == 0 {
		return "", ErrMissingAPIKey
	}
	return apiKey, nil
}

// Environment returns the configured API deployment.
func (c *Config) Environment(ctx context.Context) Environment {
	return Environment{
		BaseURL:    c.BaseURL.Get(ctx),
		APIVersion: c.APIVersion.Get(ctx),
	}
}

// NewClientFromConfig returns a Client whose transport timeout comes from the
// config. Additional options are applied afterwards.
func NewClientFromConfig(ctx context.Context, c *Config, opts ...ClientOption) *Client {
	allOpts := append([]ClientOption{WithTimeout(c.HTTPTimeout.Get(ctx))}, opts...)
	return NewClient(allOpts...)
}
