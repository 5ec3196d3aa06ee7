package domain

import "time"

// ChatRole identifies the author of a chat message.
type ChatRole int

const (
	// RoleUser is a message written by the end user.
	RoleUser ChatRole = iota

	// RoleAssistant is a model-generated reply.
	RoleAssistant

	// RoleSystem is an instruction message.
	RoleSystem
)

// ChatMessage is one turn of a chat session that consumes search
// results. Persistence of chat history is an external collaborator;
// only the boundary contract lives in this module.
type ChatMessage struct {
	// ID is the unique identifier for the message.
	ID string

	// SessionID groups messages into a conversation.
	SessionID string

	// Role is the author of the message.
	Role ChatRole

	// Content is the message text.
	Content string

	// UserID identifies the end user owning the session.
	UserID string

	// Timestamp is when the message was recorded.
	Timestamp time.Time
}
