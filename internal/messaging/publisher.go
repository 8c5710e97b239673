package messaging

import (
	"context"

	"github.com/RackSavant/sistachat-sub000/internal/domain"
)

// Publisher defines the interface for publishing committed ledger events to the message broker
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishEvent publishes a ledger event. Publishing the same event twice is deduplicated by the broker.
	PublishEvent(ctx context.Context, event *domain.LedgerEvent) error
	// Close closes the connection
	Close()
}
