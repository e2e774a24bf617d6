package env

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/code-payments/strike-go/pkg/config"
)

func TestConfigDoesntExist(t *testing.T) {
	const env = "ENV_CONFIG_TEST_VAR"

	c := NewConfig(env)

	t.Setenv(env, "value")
	v, err := c.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []byte("value"), v)

	t.Setenv(env, "  ")
	v, err = c.Get(context.Background())
	assert.Nil(t, v)
	assert.Equal(t, config.ErrNoValue, err)
}

func TestConfigLowercaseKey(t *testing.T) {
	t.Setenv("ENV_CONFIG_TEST_LOWER", "found")

	v, err := NewConfig("env_config_test_lower").Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []byte("found"), v)
}

func TestTypedConfigs(t *testing.T) {
	ctx := context.Background()

	t.Setenv("ENV_CONFIG_TEST_TIMEOUT", "1500ms")
	assert.Equal(t, 1500*time.Millisecond, NewDurationConfig("ENV_CONFIG_TEST_TIMEOUT", time.Second).Get(ctx))
	assert.Equal(t, time.Second, NewDurationConfig("ENV_CONFIG_TEST_UNSET", time.Second).Get(ctx))

	t.Setenv("ENV_CONFIG_TEST_ENABLED", "true")
	assert.True(t, NewBoolConfig("ENV_CONFIG_TEST_ENABLED", false).Get(ctx))

	t.Setenv("ENV_CONFIG_TEST_NAME", "strike")
	assert.Equal(t, "strike", NewStringConfig("ENV_CONFIG_TEST_NAME", "default").Get(ctx))
	assert.Equal(t, "default", NewStringConfig("ENV_CONFIG_TEST_NAME_UNSET", "default").Get(ctx))
}
