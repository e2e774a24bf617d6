package memory

import (
	"context"
	"sync"

	"github.com/pkg/errors"

	"github.com/code-payments/strike-go/pkg/config"
)

var errDeveloperInduced = errors.New("memory config: induced failure")

// Config holds a setting in process. Tests use it in place of an environment
// variable.
type Config struct {
	mu       sync.RWMutex
	value    interface{}
	err      error
	shutdown bool
}

// NewConfig holds value, where nil means unset.
func NewConfig(value interface{}) *Config {
	return &Config{value: value}
}

func (c *Config) Get(_ context.Context) (interface{}, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.shutdown {
		return nil, config.ErrShutdown
	}
	if c.err != nil {
		return nil, c.err
	}
	if c.value == nil {
		return nil, config.ErrNoValue
	}
	return c.value, nil
}

func (c *Config) Shutdown() {
	c.update(func() { c.shutdown = true })
}

func (c *Config) SetValue(value interface{}) {
	c.update(func() { c.value = value })
}

// ClearValue makes Get report config.ErrNoValue.
func (c *Config) ClearValue() {
	c.SetValue(nil)
}

// InduceErrors makes Get fail until StopInducingErrors is called.
func (c *Config) InduceErrors() {
	c.update(func() { c.err = errDeveloperInduced })
}

func (c *Config) StopInducingErrors() {
	c.update(func() { c.err = nil })
}

func (c *Config) update(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fn()
}
