package ports

import "github.com/lampo-network/lampod/internal/core/domain"

// EventSink forwards domain events to an external pub/sub system.
type EventSink interface {
	// Forward publishes the events received from the channel until it's closed.
	Forward(events <-chan domain.Event)
	// Close waits for every forwarded channel to be closed.
	Close()
}
