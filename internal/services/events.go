package services

import "go.uber.org/zap"

// Routing keys of the domain events emitted after successful writes.
const (
	EventBuildSaved   = "build.saved"
	EventBuildDeleted = "build.deleted"
	EventUserDeleted  = "user.deleted"
)

// EventPublisher publishes domain events. Implementations must be safe for
// concurrent use.
type EventPublisher interface {
	PublishEvent(routingKey string, payload any) error
}

// publishEvent sends an event when a publisher is configured. Failures are
// logged and never surface to the caller.
func publishEvent(p EventPublisher, routingKey string, payload any) {
	if p == nil {
		return
	}
	if err := p.PublishEvent(routingKey, payload); err != nil {
		zap.L().Warn("Failed to publish event", zap.String("event", routingKey), zap.Error(err))
	}
}
