package services

// EventPublisher publishes activity events to a message broker. A nil
// publisher is valid and disables eventing; publish failures are logged by
// callers and never fail the originating request.
type EventPublisher interface {
	Publish(routingKey string, body []byte) error
}
