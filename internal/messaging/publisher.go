package messaging

import (
	"context"

	"github.com/alexpan006/blockdash-api/internal/domain"
)

// Publisher defines the interface for publishing events to message queue
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishGraphEvent publishes a graph change notification to the message broker
	PublishGraphEvent(ctx context.Context, event *domain.GraphEvent) error
	// Close closes the connection
	Close()
	// CloseChan returns a channel that is closed when the publisher is closed
	CloseChan() <-chan struct{}
}
