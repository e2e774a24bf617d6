package config

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

var (
	ErrNoValue = errors.New("config: no value set")

	// ErrShutdown is returned by Get once Shutdown has been called.
	ErrShutdown = errors.New("config: shutdown")
)

// Config is an untyped source of a single setting, such as an environment
// variable. The typed wrappers below convert its value and fall back to a
// default.
type Config interface {
	Get(ctx context.Context) (interface{}, error)
	Shutdown()
}

// NoopConfig never has a value, so wrappers built on it always yield their
// default.
var NoopConfig = &noopConfig{}

type noopConfig struct{}

func (*noopConfig) Get(_ context.Context) (interface{}, error) {
	return nil, ErrNoValue
}

func (*noopConfig) Shutdown() {
}

// Bool is a feature toggle read from a Config.
type Bool interface {
	Get(ctx context.Context) bool
	GetSafe(ctx context.Context) (bool, error)
	Shutdown()
}

// Duration is a setting such as STRIKE_HTTP_TIMEOUT. GetSafe reports
// conversion errors that Get hides behind the default.
type Duration interface {
	Get(ctx context.Context) time.Duration
	GetSafe(ctx context.Context) (time.Duration, error)
	Shutdown()
}

// String is a setting such as STRIKE_API_KEY or STRIKE_BASE_URL.
type String interface {
	Get(ctx context.Context) string
	GetSafe(ctx context.Context) (string, error)
	Shutdown()
}
