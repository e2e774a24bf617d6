package strike

import (
	"fmt"
	"strings"
)

const (
	DefaultBaseURL    = "https://api.strike.me"
	DefaultAPIVersion = "v1"
)

// Environment identifies the API deployment requests are sent to.
type Environment struct {
	BaseURL    string
	APIVersion string
}

// Production is the public Strike API.
var Production = Environment{
	BaseURL:    DefaultBaseURL,
	APIVersion: DefaultAPIVersion,
}

// URL resolves a path, formatted with args, against the environment as
// <base>/<version>/<path>. Unset fields fall back to Production.
func (e Environment) URL(pathFormat string, args ...interface{}) string {
	baseURL := e.BaseURL
	if len(baseURL) == 0 {
		baseURL = DefaultBaseURL
	}

	apiVersion := e.APIVersion
	if len(apiVersion) == 0 {
		apiVersion = DefaultAPIVersion
	}

	return fmt.Sprintf(
		"%s/%s/%s",
		strings.TrimRight(baseURL, "/"),
		strings.Trim(apiVersion, "/"),
		strings.TrimLeft(fmt.Sprintf(pathFormat, args...), "/"),
	)
}
