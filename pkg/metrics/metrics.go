package metrics

import (
	"context"
	"time"
)

// RecordDuration reports duration in milliseconds as a custom metric. It is a
// no-op unless ctx carries an application (see NewContext).
func RecordDuration(ctx context.Context, metricName string, duration time.Duration) {
	if nr, ok := applicationFromContext(ctx); ok {
		nr.RecordCustomMetric(metricName, float64(duration/time.Millisecond))
	}
}

// RecordEvent reports a custom event. It is a no-op unless ctx carries an
// application.
func RecordEvent(ctx context.Context, eventName string, attributes map[string]interface{}) {
	if nr, ok := applicationFromContext(ctx); ok {
		nr.RecordCustomEvent(eventName, attributes)
	}
}
