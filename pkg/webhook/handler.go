package webhook

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/code-payments/strike-go/pkg/metrics"
)

const (
	metricsStructName = "webhook.handler"

	eventReceivedEventName = "StrikeWebhookReceived"
)

// EventHandler processes a verified event. A returned error answers the
// delivery with 500 so that it is redelivered.
type EventHandler func(ctx context.Context, event *Event) error

// Handler returns a gin handler that verifies deliveries signed with secret
// and passes them to fn.
func Handler(secret string, fn EventHandler) gin.HandlerFunc {
	log := logrus.StandardLogger().WithField("type", "webhook/handler")

	return func(c *gin.Context) {
		ctx := c.Request.Context()

		tracer := metrics.TraceMethodCall(ctx, metricsStructName, "Handle")
		defer tracer.End()

		body, err := c.GetRawData()
		if err != nil {
			log.WithError(err).Warn("failure reading webhook body")
			c.AbortWithStatus(http.StatusBadRequest)
			return
		}

		if err := Verify(secret, body, c.GetHeader(SignatureHeaderName)); err != nil {
			log.WithError(err).Info("rejecting unsigned webhook")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		event, err := Parse(body)
		if err != nil {
			log.WithError(err).Warn("rejecting malformed webhook")
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		log := log.WithFields(logrus.Fields{
			"event":      event.ID,
			"event_type": event.EventType,
			"entity":     event.Data.EntityID,
		})

		metrics.RecordEvent(ctx, eventReceivedEventName, map[string]interface{}{
			"event_type": string(event.EventType),
		})

		if err := fn(ctx, event); err != nil {
			tracer.OnError(err)
			log.WithError(err).Warn("failure handling webhook event")
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		log.Debug("webhook event handled")
		c.Status(http.StatusOK)
	}
}
