package app

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/code-payments/strike-go/pkg/metrics"
)

// Environment is the result of Setup: the resolved config and the optional
// New Relic application.
type Environment struct {
	Config          BaseConfig
	MetricsProvider *newrelic.Application
}

// Setup loads a .env file if one is present, resolves BaseConfig from the
// environment and configures logging. defaultAppName is used when APP_NAME is
// not set.
func Setup(defaultAppName string) (*Environment, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "failed to load .env file")
	}

	config := defaultConfig
	config.AppName = defaultAppName
	if err := viper.Unmarshal(&config); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	if len(config.AppName) == 0 {
		return nil, errors.New("must specify an application name")
	}

	var metricsProvider *newrelic.Application
	if len(config.NewRelicLicenseKey) > 0 {
		nr, err := newrelic.NewApplication(
			newrelic.ConfigFromEnvironment(),
			newrelic.ConfigAppName(config.AppName),
			newrelic.ConfigLicense(config.NewRelicLicenseKey),
			newrelic.ConfigDistributedTracerEnabled(true),
			newrelic.ConfigAppLogForwardingEnabled(true),
		)
		if err != nil {
			return nil, errors.Wrap(err, "error connecting to new relic")
		}

		metricsProvider = nr
	}

	configureLogger(config, metricsProvider)

	return &Environment{
		Config:          config,
		MetricsProvider: metricsProvider,
	}, nil
}

// Context returns a context that is cancelled on SIGINT or SIGTERM and that
// carries the New Relic application, if any.
func (e *Environment) Context() (context.Context, context.CancelFunc) {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	return metrics.NewContext(ctx, e.MetricsProvider), cancel
}

// StartTransaction starts a New Relic transaction and attaches it to ctx. The
// returned end func must be called when the unit of work completes.
func (e *Environment) StartTransaction(ctx context.Context, name string) (context.Context, func()) {
	if e.MetricsProvider == nil {
		return ctx, func() {}
	}

	txn := e.MetricsProvider.StartTransaction(name)
	return newrelic.NewContext(ctx, txn), txn.End
}

func configureLogger(config BaseConfig, metricsProvider *newrelic.Application) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	metrics.InstallLogFormatter(logrus.StandardLogger(), metricsProvider)

	level, err := logrus.ParseLevel(strings.ToLower(config.LogLevel))
	if err != nil {
		logrus.StandardLogger().WithField("log_level", config.LogLevel).Warn("unknown log level, ignoring")
	} else {
		logrus.SetLevel(level)
	}

	logrus.SetOutput(os.Stdout)
}
