package driven

import (
	"context"

	"github.com/docuchat/docuchat/internal/core/domain"
)

// ChatHistoryStore persists chat session history.
// Chat persistence is an external collaborator; docuchat defines only
// this boundary contract and ships no implementation.
type ChatHistoryStore interface {
	// SaveMessage appends a message to its session.
	SaveMessage(ctx context.Context, msg *domain.ChatMessage) error

	// ListSession returns a session's messages in timestamp order.
	ListSession(ctx context.Context, sessionID string) ([]domain.ChatMessage, error)

	// DeleteSession removes a session and its messages.
	DeleteSession(ctx context.Context, sessionID string) error
}
